package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/warden/internal/infrastructure/auth"
	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/warden/internal/interfaces/cli/bootstrap"
)

var flags bootstrap.Flags

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed operation codes and the super user",
		Long: `Insert every registered operation code that is missing, then ensure the
super user exists and holds the super role with every code granted.
Running it again changes nothing.`,
		RunE: run,
	}

	flags.Register(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := flags.Load()
	if err != nil {
		return err
	}

	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("seeding database", "environment", flags.Environment(), "admin", cfg.Seed.AdminUsername)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeds.Run(gdb, cfg.Seed, hasher); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seed completed successfully")
	fmt.Fprintln(cmd.OutOrStdout(), "Seed data is in place")
	return nil
}
