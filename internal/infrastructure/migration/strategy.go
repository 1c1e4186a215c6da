package migration

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/migration/scripts"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// Strategy is one way of bringing the schema up to date.
type Strategy interface {
	Migrate(db *gorm.DB) error
	Name() string
}

// GormAutoMigrateStrategy derives the schema from the gorm models.
type GormAutoMigrateStrategy struct {
	log logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{log: logger.NewLogger().Named("migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Name() string { return "gorm_auto_migrate" }

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.log.Debugw("auto-migrating models", "count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}
	return nil
}

// gooseDialects maps a gorm dialector name to the goose dialect and the
// scripts directory written for it.
var gooseDialects = map[string][2]string{
	"mysql":    {"mysql", "mysql"},
	"postgres": {"postgres", "postgres"},
	"sqlite":   {"sqlite3", "sqlite"},
}

// GooseStrategy applies the embedded SQL scripts for the connection's dialect.
type GooseStrategy struct {
	log logger.Interface
}

func NewGooseStrategy() *GooseStrategy {
	return &GooseStrategy{log: logger.NewLogger().Named("migration.goose")}
}

func (s *GooseStrategy) Name() string { return "goose" }

// open configures goose for db and returns the raw handle plus the scripts
// directory to run.
func (s *GooseStrategy) open(db *gorm.DB) (*sql.DB, string, error) {
	d, ok := gooseDialects[db.Dialector.Name()]
	if !ok {
		return nil, "", fmt.Errorf("no migration scripts for dialect %q", db.Dialector.Name())
	}

	goose.SetBaseFS(scripts.FS)
	if err := goose.SetDialect(d[0]); err != nil {
		return nil, "", fmt.Errorf("goose dialect %s: %w", d[0], err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, "", fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return sqlDB, d[1], nil
}

// Migrate applies every pending script.
func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, dir, err := s.open(db)
	if err != nil {
		return err
	}

	from, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if err := goose.Up(sqlDB, dir); err != nil {
		return fmt.Errorf("apply scripts: %w", err)
	}
	to, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	s.log.Infow("scripts applied", "dir", dir, "from_version", from, "to_version", to)
	return nil
}

// Down rolls back the newest steps scripts.
func (s *GooseStrategy) Down(db *gorm.DB, steps int) error {
	sqlDB, dir, err := s.open(db)
	if err != nil {
		return err
	}

	for i := 1; i <= steps; i++ {
		if err := goose.Down(sqlDB, dir); err != nil {
			return fmt.Errorf("roll back step %d of %d: %w", i, steps, err)
		}
	}
	s.log.Infow("scripts rolled back", "dir", dir, "steps", steps)
	return nil
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	sqlDB, _, err := s.open(db)
	if err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Status prints the applied/pending table through goose's logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, dir, err := s.open(db)
	if err != nil {
		return err
	}
	if err := goose.Status(sqlDB, dir); err != nil {
		return fmt.Errorf("script status: %w", err)
	}
	return nil
}
