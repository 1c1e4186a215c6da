package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/migration"
	"github.com/orris-inc/warden/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/warden/internal/shared/logger"
)

var (
	flags bootstrap.Flags
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply the versioned SQL scripts, roll them back, or derive the schema from the models.`,
	}

	flags.Register(cmd)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Create or update tables from the models",
		Long:  `Run gorm auto-migration for every model. Intended for development databases.`,
		RunE:  runAuto,
	}
}

func initEnv() (*gorm.DB, logger.Interface, error) {
	cfg, log, err := flags.Load()
	if err != nil {
		return nil, nil, err
	}

	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	return gdb, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	gdb, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", flags.Environment())

	if err := migration.NewGooseStrategy().Migrate(gdb); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	gdb, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", flags.Environment(), "steps", steps)

	if err := migration.NewGooseStrategy().Down(gdb, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gdb, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", flags.Environment())

	strategy := migration.NewGooseStrategy()
	version, err := strategy.Version(gdb)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", flags.Environment())
	fmt.Fprintf(out, "  Driver:          %s\n", gdb.Dialector.Name())
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(gdb); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runAuto(cmd *cobra.Command, args []string) error {
	gdb, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running gorm auto-migration", "environment", flags.Environment())

	manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
	if err := manager.Migrate(gdb); err != nil {
		return err
	}

	log.Infow("auto-migration completed successfully")
	return nil
}
