package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/constants"
)

type AssignmentRepositoryImpl struct {
	*GormStore[*access.Assignment, models.AssignmentModel]
}

func NewAssignmentRepository(db *gorm.DB) access.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		GormStore: NewGormStore(db, Schema[*access.Assignment, models.AssignmentModel]{
			Entity:        access.EntityAssignment,
			Table:         constants.TableAssignments,
			Mapper:        mappers.NewAssignmentMapper(),
			UpdateColumns: []string{"user_id", "role_id"},
			NumberFilters: map[string]string{
				"user_id": "user_id",
				"role_id": "role_id",
			},
			UniqueIndexes: map[string][]string{
				"idx_user_role": {"user_id", "role_id"},
			},
		}),
	}
}

func (r *AssignmentRepositoryImpl) GetByPair(ctx context.Context, userID, roleID uint) (*access.Assignment, error) {
	return r.findOne(ctx, "user_id = ? AND role_id = ?", userID, roleID)
}
