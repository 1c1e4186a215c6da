package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/models"
	"github.com/orris-inc/warden/internal/shared/db"
)

type GrantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
}

func NewGrantRepository(gdb *gorm.DB) access.GrantRepository {
	return &GrantRepositoryImpl{db: gdb, mapper: mappers.NewTransactionMapper()}
}

// AuthorizedTransactions yields one row per assignment/authorization path,
// so a transaction reachable through two roles comes back twice.
func (r *GrantRepositoryImpl) AuthorizedTransactions(ctx context.Context, userID uint, opCode string) ([]*access.Transaction, error) {
	tx := db.Conn(ctx, r.db).
		Model(&models.TransactionModel{}).
		Select("transactions.*").
		Joins("JOIN authorizations ON authorizations.transaction_id = transactions.id").
		Joins("JOIN roles ON roles.id = authorizations.role_id").
		Joins("JOIN assignments ON assignments.role_id = roles.id").
		Joins("JOIN users ON users.id = assignments.user_id").
		Where("users.id = ?", userID)
	if opCode != "" {
		tx = tx.Where("transactions.operation_code = ?", opCode)
	}

	var rows []*models.TransactionModel
	if err := tx.Order("assignments.id, authorizations.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve authorized transactions: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *GrantRepositoryImpl) Snapshot(ctx context.Context) (*access.Snapshot, error) {
	conn := db.Conn(ctx, r.db)

	var assignments []access.RoleEdge
	if err := conn.Model(&models.AssignmentModel{}).
		Select("user_id, role_id").
		Order("id").
		Scan(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	var grants []access.GrantEdge
	if err := conn.Model(&models.AuthorizationModel{}).
		Select("authorizations.role_id, transactions.operation_code").
		Joins("JOIN transactions ON transactions.id = authorizations.transaction_id").
		Order("authorizations.id").
		Scan(&grants).Error; err != nil {
		return nil, fmt.Errorf("failed to load authorizations: %w", err)
	}

	return &access.Snapshot{Assignments: assignments, Authorizations: grants}, nil
}
