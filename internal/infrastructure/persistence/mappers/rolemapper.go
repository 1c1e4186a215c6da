package mappers

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/mapper"
)

type RoleMapper interface {
	EntityMapper[*access.Role, models.RoleModel]
}

type RoleMapperImpl struct{}

func NewRoleMapper() RoleMapper {
	return &RoleMapperImpl{}
}

func (m *RoleMapperImpl) ToEntity(model *models.RoleModel) (*access.Role, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := access.ReconstructRole(model.ID, model.Name, model.Description, columnsToAudit(model.AuditColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role entity: %w", err)
	}
	return entity, nil
}

func (m *RoleMapperImpl) ToModel(entity *access.Role) (*models.RoleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RoleModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		AuditColumns: auditToColumns(entity.Audit()),
	}, nil
}

func (m *RoleMapperImpl) ToEntities(list []*models.RoleModel) ([]*access.Role, error) {
	return mapper.Rows(list, m.ToEntity, func(model *models.RoleModel) uint {
		return model.ID
	})
}
