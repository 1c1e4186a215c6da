package mappers

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/mapper"
)

type AssignmentMapper interface {
	EntityMapper[*access.Assignment, models.AssignmentModel]
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToEntity(model *models.AssignmentModel) (*access.Assignment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := access.ReconstructAssignment(model.ID, model.UserID, model.RoleID, columnsToAudit(model.AuditColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assignment entity: %w", err)
	}
	return entity, nil
}

func (m *AssignmentMapperImpl) ToModel(entity *access.Assignment) (*models.AssignmentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AssignmentModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		RoleID:       entity.RoleID(),
		AuditColumns: auditToColumns(entity.Audit()),
	}, nil
}

func (m *AssignmentMapperImpl) ToEntities(list []*models.AssignmentModel) ([]*access.Assignment, error) {
	return mapper.Rows(list, m.ToEntity, func(model *models.AssignmentModel) uint {
		return model.ID
	})
}

type AuthorizationMapper interface {
	EntityMapper[*access.Authorization, models.AuthorizationModel]
}

type AuthorizationMapperImpl struct{}

func NewAuthorizationMapper() AuthorizationMapper {
	return &AuthorizationMapperImpl{}
}

func (m *AuthorizationMapperImpl) ToEntity(model *models.AuthorizationModel) (*access.Authorization, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := access.ReconstructAuthorization(model.ID, model.RoleID, model.TransactionID, columnsToAudit(model.AuditColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct authorization entity: %w", err)
	}
	return entity, nil
}

func (m *AuthorizationMapperImpl) ToModel(entity *access.Authorization) (*models.AuthorizationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AuthorizationModel{
		ID:            entity.ID(),
		RoleID:        entity.RoleID(),
		TransactionID: entity.TransactionID(),
		AuditColumns:  auditToColumns(entity.Audit()),
	}, nil
}

func (m *AuthorizationMapperImpl) ToEntities(list []*models.AuthorizationModel) ([]*access.Authorization, error) {
	return mapper.Rows(list, m.ToEntity, func(model *models.AuthorizationModel) uint {
		return model.ID
	})
}
