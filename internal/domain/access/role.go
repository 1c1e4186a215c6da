// Package access models the grant graph: users are assigned roles, roles
// are authorized for transactions, and a transaction is identified by its
// operation code.
package access

import (
	"fmt"
	"strings"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
)

const maxRoleNameLength = 50

type Role struct {
	id          uint
	name        string
	description string
	audit       shared.Audit
}

func NewRole(name, description string, audit shared.Audit) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("role name is required")
	}
	if len(name) > maxRoleNameLength {
		return nil, errors.NewValidationError(fmt.Sprintf("role name too long (max %d characters)", maxRoleNameLength))
	}

	return &Role{
		name:        name,
		description: description,
		audit:       audit,
	}, nil
}

func ReconstructRole(id uint, name, description string, audit shared.Audit) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}

	return &Role{
		id:          id,
		name:        name,
		description: description,
		audit:       audit,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) Audit() shared.Audit {
	return r.audit
}
