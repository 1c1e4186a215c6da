package access

import (
	"fmt"
	"strings"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

const maxTransactionNameLength = 100

// Transaction is a protected capability. Its operation code is the stable
// identifier route guards refer to and is unique across the table.
type Transaction struct {
	id            uint
	operationCode string
	name          string
	description   string
	audit         shared.Audit
}

func NewTransaction(operationCode, name, description string, audit shared.Audit) (*Transaction, error) {
	if !opcode.Valid(operationCode) {
		return nil, errors.NewValidationError("operation code must be seven digits", operationCode)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("transaction name is required")
	}
	if len(name) > maxTransactionNameLength {
		return nil, errors.NewValidationError(fmt.Sprintf("transaction name too long (max %d characters)", maxTransactionNameLength))
	}

	return &Transaction{
		operationCode: operationCode,
		name:          name,
		description:   description,
		audit:         audit,
	}, nil
}

func ReconstructTransaction(id uint, operationCode, name, description string, audit shared.Audit) (*Transaction, error) {
	if id == 0 {
		return nil, fmt.Errorf("transaction ID cannot be zero")
	}

	return &Transaction{
		id:            id,
		operationCode: operationCode,
		name:          name,
		description:   description,
		audit:         audit,
	}, nil
}

func (t *Transaction) ID() uint {
	return t.id
}

func (t *Transaction) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transaction ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Transaction) OperationCode() string {
	return t.operationCode
}

func (t *Transaction) Name() string {
	return t.name
}

func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) Audit() shared.Audit {
	return t.audit
}
