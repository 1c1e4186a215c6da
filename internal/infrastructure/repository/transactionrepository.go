package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/constants"
)

type TransactionRepositoryImpl struct {
	*GormStore[*access.Transaction, models.TransactionModel]
}

func NewTransactionRepository(db *gorm.DB) access.TransactionRepository {
	return &TransactionRepositoryImpl{
		GormStore: NewGormStore(db, Schema[*access.Transaction, models.TransactionModel]{
			Entity:        access.EntityTransaction,
			Table:         constants.TableTransactions,
			Mapper:        mappers.NewTransactionMapper(),
			UpdateColumns: []string{"operation_code", "name", "description"},
			TextFilters: map[string]string{
				"op_code": "operation_code",
				"name":    "name",
			},
			UniqueIndexes: map[string][]string{
				"idx_transaction_op_code": {"operation_code"},
			},
		}),
	}
}

func (r *TransactionRepositoryImpl) GetByOperationCode(ctx context.Context, code string) (*access.Transaction, error) {
	return r.findOne(ctx, "operation_code = ?", code)
}
