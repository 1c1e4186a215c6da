package models

import "github.com/orris-inc/warden/internal/shared/constants"

type TransactionModel struct {
	ID            uint   `gorm:"primarykey"`
	OperationCode string `gorm:"column:operation_code;not null;size:7;uniqueIndex:idx_transaction_op_code"`
	Name          string `gorm:"not null;size:100"`
	Description   string `gorm:"type:text"`
	AuditColumns
}

func (TransactionModel) TableName() string {
	return constants.TableTransactions
}
