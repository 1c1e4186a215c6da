package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
)

func TestTransactionMapper_RoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	audit := shared.ReconstructAudit("10.0.0.1", "admin", created, created.Add(time.Hour))
	entity, err := access.ReconstructTransaction(7, "1050001", "Role - Create", "", audit)
	require.NoError(t, err)

	m := NewTransactionMapper()
	model, err := m.ToModel(entity)
	require.NoError(t, err)
	assert.Equal(t, uint(7), model.ID)
	assert.Equal(t, "1050001", model.OperationCode)
	assert.Equal(t, "10.0.0.1", model.AuditUserIP)
	assert.Equal(t, "admin", model.AuditUserLogin)
	assert.Equal(t, created, model.CreatedAt)

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, entity, back)
}

func TestMappers_NilModel(t *testing.T) {
	u, err := NewUserMapper().ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, u)

	r, err := NewRoleMapper().ToModel(nil)
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestAssignmentMapper_ToEntities(t *testing.T) {
	list := []*models.AssignmentModel{
		{ID: 1, UserID: 1, RoleID: 2},
		nil,
		{ID: 2, UserID: 3, RoleID: 2},
	}

	got, err := NewAssignmentMapper().ToEntities(list)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(3), got[1].UserID())
}

func TestAuthorizationMapper_ZeroIDRejected(t *testing.T) {
	list := []*models.AuthorizationModel{{ID: 5, RoleID: 1, TransactionID: 1}, {ID: 0, RoleID: 2, TransactionID: 1}}

	_, err := NewAuthorizationMapper().ToEntities(list)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0:")
}
