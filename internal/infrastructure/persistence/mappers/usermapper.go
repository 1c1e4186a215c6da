package mappers

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models.
type UserMapper interface {
	EntityMapper[*user.User, models.UserModel]
	ToModels(entities []*user.User) ([]*models.UserModel, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.DisplayName,
		model.Email,
		model.Password,
		columnsToAudit(model.AuditColumns),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		DisplayName:  entity.DisplayName(),
		Email:        entity.Email(),
		Password:     entity.PasswordHash(),
		AuditColumns: auditToColumns(entity.Audit()),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *UserMapperImpl) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	return mapper.Rows(list, m.ToEntity, func(model *models.UserModel) uint {
		return model.ID
	})
}

// ToModels converts multiple domain entities to persistence models.
func (m *UserMapperImpl) ToModels(entities []*user.User) ([]*models.UserModel, error) {
	return mapper.Rows(entities, m.ToModel, func(entity *user.User) uint {
		return entity.ID()
	})
}
