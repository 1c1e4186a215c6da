package mappers

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/mapper"
)

type TransactionMapper interface {
	EntityMapper[*access.Transaction, models.TransactionModel]
}

type TransactionMapperImpl struct{}

func NewTransactionMapper() TransactionMapper {
	return &TransactionMapperImpl{}
}

func (m *TransactionMapperImpl) ToEntity(model *models.TransactionModel) (*access.Transaction, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := access.ReconstructTransaction(
		model.ID,
		model.OperationCode,
		model.Name,
		model.Description,
		columnsToAudit(model.AuditColumns),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transaction entity: %w", err)
	}
	return entity, nil
}

func (m *TransactionMapperImpl) ToModel(entity *access.Transaction) (*models.TransactionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TransactionModel{
		ID:            entity.ID(),
		OperationCode: entity.OperationCode(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		AuditColumns:  auditToColumns(entity.Audit()),
	}, nil
}

func (m *TransactionMapperImpl) ToEntities(list []*models.TransactionModel) ([]*access.Transaction, error) {
	return mapper.Rows(list, m.ToEntity, func(model *models.TransactionModel) uint {
		return model.ID
	})
}
