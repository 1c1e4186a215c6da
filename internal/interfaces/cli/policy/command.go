// Package policy mirrors the grant graph into casbin rules for operators.
// Request gating never reads the mirror.
package policy

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/application/authorization"
	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/permission"
	"github.com/orris-inc/warden/internal/infrastructure/repository"
	"github.com/orris-inc/warden/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

var (
	flags      bootstrap.Flags
	userID     uint
	opCode     string
	outputPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the grant graph as casbin rules",
		Long: `Copy assignments and authorizations into the casbin_rule table and query
or export the copy. The copy goes stale as grants change; run sync again.`,
	}

	flags.Register(cmd)

	cmd.AddCommand(
		newSyncCommand(),
		newCheckCommand(),
		newExportCommand(),
	)

	return cmd
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replace the mirrored rules with the current grants",
		RunE: withDatabase(func(cmd *cobra.Command, gdb *gorm.DB, log logger.Interface) error {
			return Sync(cmd.Context(), gdb, cmd.OutOrStdout(), log)
		}),
	}
}

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the mirror with a live resolution for one user and code",
		RunE: withDatabase(func(cmd *cobra.Command, gdb *gorm.DB, log logger.Interface) error {
			if !opcode.Valid(opCode) {
				return fmt.Errorf("invalid operation code %q", opCode)
			}
			_, err := Check(cmd.Context(), gdb, userID, opCode, cmd.OutOrStdout(), log)
			return err
		}),
	}

	cmd.Flags().UintVarP(&userID, "user", "u", 0, "User id (required)")
	cmd.Flags().StringVarP(&opCode, "op", "o", "", "Operation code (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the mirrored rules as YAML",
		RunE: withDatabase(func(cmd *cobra.Command, gdb *gorm.DB, log logger.Interface) error {
			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outputPath, err)
				}
				defer f.Close()
				out = f
			}
			return Export(gdb, out, log)
		}),
	}

	cmd.Flags().StringVarP(&outputPath, "output", "f", "", "Write to file instead of stdout")

	return cmd
}

func withDatabase(fn func(cmd *cobra.Command, gdb *gorm.DB, log logger.Interface) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := flags.Load()
		if err != nil {
			return err
		}

		gdb, err := bootstrap.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		return fn(cmd, gdb, log.Named("policy"))
	}
}

// Sync loads the grant graph from the store and replaces the mirror with it.
func Sync(ctx context.Context, gdb *gorm.DB, w io.Writer, log logger.Interface) error {
	snap, err := repository.NewGrantRepository(gdb).Snapshot(ctx)
	if err != nil {
		return err
	}

	mirror, err := permission.NewMirror(gdb, log)
	if err != nil {
		return err
	}
	if err := mirror.Sync(snap); err != nil {
		return err
	}

	fmt.Fprintf(w, "synced %d role links and %d grants\n", len(snap.Assignments), len(snap.Authorizations))
	return nil
}

// Check prints the mirror's answer next to the resolver's and reports
// whether they agree.
func Check(ctx context.Context, gdb *gorm.DB, uid uint, code string, w io.Writer, log logger.Interface) (bool, error) {
	mirror, err := permission.NewMirror(gdb, log)
	if err != nil {
		return false, err
	}
	mirrored, err := mirror.Check(uid, code)
	if err != nil {
		return false, err
	}

	resolver := authorization.NewResolver(repository.NewGrantRepository(gdb), log)
	txs, err := resolver.ResolveAuthorizedTransactions(ctx, uid, code)
	if err != nil {
		return false, err
	}
	live := len(txs) > 0

	fmt.Fprintf(w, "user %d, code %s: mirror=%t live=%t\n", uid, code, mirrored, live)
	if mirrored != live {
		log.Warnw("policy mirror is stale", "user_id", uid, "op_code", code)
		fmt.Fprintln(w, "mirror is stale, run `warden policy sync`")
		return false, nil
	}
	return true, nil
}

// Export writes the mirror as YAML.
func Export(gdb *gorm.DB, w io.Writer, log logger.Interface) error {
	mirror, err := permission.NewMirror(gdb, log)
	if err != nil {
		return err
	}

	out, err := mirror.ExportYAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
