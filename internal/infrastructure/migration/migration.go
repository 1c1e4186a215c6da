// Package migration brings the database schema up to date, either from the
// gorm models or from versioned SQL scripts.
package migration

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// Manager runs one Strategy and logs around it.
type Manager struct {
	strategy Strategy
	log      logger.Interface
}

// NewManager uses versioned scripts for test and production, auto-migration
// otherwise.
func NewManager(environment string) *Manager {
	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		return NewManagerWithStrategy(NewGooseStrategy())
	}
	return NewManagerWithStrategy(NewGormAutoMigrateStrategy())
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		log:      logger.NewLogger().Named("migration"),
	}
}

func (m *Manager) Strategy() Strategy { return m.strategy }

// Migrate applies the strategy to db.
func (m *Manager) Migrate(db *gorm.DB) error {
	name := m.strategy.Name()
	began := time.Now()
	m.log.Infow("migrating schema", "strategy", name, "dialect", db.Dialector.Name())

	if err := m.strategy.Migrate(db); err != nil {
		m.log.Errorw("schema migration failed", "strategy", name, "error", err)
		return fmt.Errorf("migrate with %s: %w", name, err)
	}

	m.log.Infow("schema up to date", "strategy", name, "took", time.Since(began))
	return nil
}
