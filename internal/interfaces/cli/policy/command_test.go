package policy

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/auth"
	"github.com/orris-inc/warden/internal/infrastructure/database/testdb"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/warden/internal/shared/config"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

func seededDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()
	gdb := testdb.New(t)
	require.NoError(t, seeds.Run(gdb, config.SeedConfig{
		AdminUsername:    "admin",
		AdminDisplayName: "Administrador",
		AdminEmail:       "admin@teste.com.br",
		AdminPassword:    "admin123",
		AdminRole:        "SUPER ADMIN",
	}, auth.NewBcryptPasswordHasher(4)))

	var admin models.UserModel
	require.NoError(t, gdb.Where("username = ?", "admin").First(&admin).Error)
	return gdb, admin.ID
}

func TestSyncCheckExport(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()
	gdb, adminID := seededDB(t)

	var out bytes.Buffer
	agree, err := Check(ctx, gdb, adminID, opcode.RoleList, &out, log)
	require.NoError(t, err)
	assert.False(t, agree)
	assert.Contains(t, out.String(), "mirror=false live=true")

	out.Reset()
	require.NoError(t, Sync(ctx, gdb, &out, log))
	assert.Contains(t, out.String(), "synced 1 role links")

	out.Reset()
	agree, err = Check(ctx, gdb, adminID, opcode.RoleList, &out, log)
	require.NoError(t, err)
	assert.True(t, agree)

	agree, err = Check(ctx, gdb, adminID+100, opcode.RoleList, &out, log)
	require.NoError(t, err)
	assert.True(t, agree, "unknown user is denied by both")

	out.Reset()
	require.NoError(t, Export(gdb, &out, log))
	assert.Contains(t, out.String(), "role_id:")
	assert.Contains(t, out.String(), opcode.RoleList)
}
