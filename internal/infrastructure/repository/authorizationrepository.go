package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/constants"
)

type AuthorizationRepositoryImpl struct {
	*GormStore[*access.Authorization, models.AuthorizationModel]
}

func NewAuthorizationRepository(db *gorm.DB) access.AuthorizationRepository {
	return &AuthorizationRepositoryImpl{
		GormStore: NewGormStore(db, Schema[*access.Authorization, models.AuthorizationModel]{
			Entity:        access.EntityAuthorization,
			Table:         constants.TableAuthorizations,
			Mapper:        mappers.NewAuthorizationMapper(),
			UpdateColumns: []string{"role_id", "transaction_id"},
			NumberFilters: map[string]string{
				"role_id":        "role_id",
				"transaction_id": "transaction_id",
			},
			UniqueIndexes: map[string][]string{
				"idx_role_transaction": {"role_id", "transaction_id"},
			},
		}),
	}
}

func (r *AuthorizationRepositoryImpl) GetByPair(ctx context.Context, roleID, transactionID uint) (*access.Authorization, error) {
	return r.findOne(ctx, "role_id = ? AND transaction_id = ?", roleID, transactionID)
}
