package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/constants"
)

type RoleRepositoryImpl struct {
	*GormStore[*access.Role, models.RoleModel]
}

func NewRoleRepository(db *gorm.DB) access.RoleRepository {
	return &RoleRepositoryImpl{
		GormStore: NewGormStore(db, Schema[*access.Role, models.RoleModel]{
			Entity:        access.EntityRole,
			Table:         constants.TableRoles,
			Mapper:        mappers.NewRoleMapper(),
			UpdateColumns: []string{"name", "description"},
			TextFilters:   map[string]string{"name": "name"},
			UniqueIndexes: map[string][]string{
				"idx_role_name": {"name"},
			},
		}),
	}
}

func (r *RoleRepositoryImpl) GetByName(ctx context.Context, name string) (*access.Role, error) {
	return r.findOne(ctx, "name = ?", name)
}
