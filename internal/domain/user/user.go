package user

import (
	"fmt"
	"strings"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
)

const (
	maxUsernameLength    = 50
	maxDisplayNameLength = 100
	maxEmailLength       = 120
)

// User is an authenticated identity. The password is only ever held as a
// one-way hash.
type User struct {
	id           uint
	username     string
	displayName  string
	email        string
	passwordHash string
	audit        shared.Audit
}

func NewUser(username, displayName, email, passwordHash string, audit shared.Audit) (*User, error) {
	if err := validate(username, displayName, email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password hash is required")
	}

	return &User{
		username:     username,
		displayName:  strings.TrimSpace(displayName),
		email:        strings.TrimSpace(email),
		passwordHash: passwordHash,
		audit:        audit,
	}, nil
}

func ReconstructUser(id uint, username, displayName, email, passwordHash string, audit shared.Audit) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:           id,
		username:     username,
		displayName:  displayName,
		email:        email,
		passwordHash: passwordHash,
		audit:        audit,
	}, nil
}

func validate(username, displayName, email string) error {
	if strings.TrimSpace(username) == "" {
		return errors.NewValidationError("username is required")
	}
	if len(username) > maxUsernameLength {
		return errors.NewValidationError(fmt.Sprintf("username too long (max %d characters)", maxUsernameLength))
	}
	if strings.TrimSpace(displayName) == "" {
		return errors.NewValidationError("display name is required")
	}
	if len(displayName) > maxDisplayNameLength {
		return errors.NewValidationError(fmt.Sprintf("display name too long (max %d characters)", maxDisplayNameLength))
	}
	if strings.TrimSpace(email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(email) > maxEmailLength {
		return errors.NewValidationError(fmt.Sprintf("email too long (max %d characters)", maxEmailLength))
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Username is compared case-sensitively.
func (u *User) Username() string {
	return u.username
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Audit() shared.Audit {
	return u.audit
}
