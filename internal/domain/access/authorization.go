package access

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
)

// Authorization grants a transaction to a role. A (role, transaction) pair
// exists at most once.
type Authorization struct {
	id            uint
	roleID        uint
	transactionID uint
	audit         shared.Audit
}

func NewAuthorization(roleID, transactionID uint, audit shared.Audit) (*Authorization, error) {
	if roleID == 0 {
		return nil, errors.NewValidationError("authorization role is required")
	}
	if transactionID == 0 {
		return nil, errors.NewValidationError("authorization transaction is required")
	}

	return &Authorization{
		roleID:        roleID,
		transactionID: transactionID,
		audit:         audit,
	}, nil
}

func ReconstructAuthorization(id, roleID, transactionID uint, audit shared.Audit) (*Authorization, error) {
	if id == 0 {
		return nil, fmt.Errorf("authorization ID cannot be zero")
	}

	return &Authorization{
		id:            id,
		roleID:        roleID,
		transactionID: transactionID,
		audit:         audit,
	}, nil
}

func (a *Authorization) ID() uint {
	return a.id
}

func (a *Authorization) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("authorization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("authorization ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Authorization) RoleID() uint {
	return a.roleID
}

func (a *Authorization) TransactionID() uint {
	return a.transactionID
}

func (a *Authorization) Audit() shared.Audit {
	return a.audit
}
