package access

import (
	"fmt"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
)

// Assignment grants a role to a user. A (user, role) pair exists at most once.
type Assignment struct {
	id     uint
	userID uint
	roleID uint
	audit  shared.Audit
}

func NewAssignment(userID, roleID uint, audit shared.Audit) (*Assignment, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("assignment user is required")
	}
	if roleID == 0 {
		return nil, errors.NewValidationError("assignment role is required")
	}

	return &Assignment{
		userID: userID,
		roleID: roleID,
		audit:  audit,
	}, nil
}

func ReconstructAssignment(id, userID, roleID uint, audit shared.Audit) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}

	return &Assignment{
		id:     id,
		userID: userID,
		roleID: roleID,
		audit:  audit,
	}, nil
}

func (a *Assignment) ID() uint {
	return a.id
}

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignment) UserID() uint {
	return a.userID
}

func (a *Assignment) RoleID() uint {
	return a.roleID
}

func (a *Assignment) Audit() shared.Audit {
	return a.audit
}
