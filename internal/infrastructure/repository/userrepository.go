package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/constants"
)

type UserRepositoryImpl struct {
	*GormStore[*user.User, models.UserModel]
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		GormStore: NewGormStore(db, Schema[*user.User, models.UserModel]{
			Entity:        "User",
			Table:         constants.TableUsers,
			Mapper:        mappers.NewUserMapper(),
			UpdateColumns: []string{"username", "display_name", "email", "password"},
			TextFilters: map[string]string{
				"username": "username",
				"email":    "email",
			},
			UniqueIndexes: map[string][]string{
				"idx_user_username": {"username"},
				"idx_user_email":    {"email"},
			},
		}),
	}
}

// GetByUsername returns nil when no user has that username.
func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "username = ?", username)
}
