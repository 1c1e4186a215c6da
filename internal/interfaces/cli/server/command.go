package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/auth"
	"github.com/orris-inc/warden/internal/infrastructure/config"
	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/migration"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/seeds"
	httpRouter "github.com/orris-inc/warden/internal/interfaces/http"
	"github.com/orris-inc/warden/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/goroutine"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/version"
)

const shutdownTimeout = 10 * time.Second

var (
	flags              bootstrap.Flags
	autoMigrate        bool
	skipMigrationCheck bool
	runSeeds           bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Warden HTTP server with specified configuration.`,
		RunE:  run,
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")
	cmd.Flags().BoolVar(&runSeeds, "seed", false, "Seed operation codes and the super user before serving")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env := flags.Environment()

	cfg, log, err := flags.Load()
	if err != nil {
		return err
	}

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto-migrate", autoMigrate || cfg.Database.AutoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := handleMigrations(gdb, cfg, env, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	if runSeeds {
		if err := seeds.Run(gdb, cfg.Seed, auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infow("seed data ensured")
	}

	limiter, closeLimiter := bootstrap.LoginLimiter(cmd.Context(), *cfg, log)
	defer closeLimiter()

	router, err := httpRouter.NewRouter(gdb, cfg, limiter, log.Named("http"))
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	log.Infow("server starting",
		"address", cfg.Server.GetAddr(),
		"mode", cfg.Server.Mode)

	serveErr := goroutine.Go(log, "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Errorw("failed to start server", "error", err)
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(gdb *gorm.DB, cfg *config.Config, environment string, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate || cfg.Database.AutoMigrate {
		if environment == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		log.Infow("running auto-migration")
		if err := migration.NewManager(environment).Migrate(gdb); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	log.Infow("checking migration status")

	current, err := migration.NewGooseStrategy().Version(gdb)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", current)

	return nil
}
