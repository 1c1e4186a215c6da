// Package testdb opens throwaway SQLite databases for repository and
// handler tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/config"
)

// New returns an in-memory database with every table migrated and foreign
// keys enforced. It is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	gdb := Empty(t)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

// Empty returns an in-memory database with no tables.
func Empty(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: "file::memory:",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
