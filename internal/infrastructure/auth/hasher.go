package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/orris-inc/warden/internal/shared/errors"
)

// MaxPasswordBytes is the longest secret bcrypt accepts.
const MaxPasswordBytes = 72

// BcryptPasswordHasher stores secrets as bcrypt hashes. Costs outside
// bcrypt's range fall back to bcrypt.DefaultCost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash rejects secrets longer than MaxPasswordBytes with a validation
// error instead of truncating them.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", appErrors.NewValidationError("Password too long",
			fmt.Sprintf("at most %d bytes", MaxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", appErrors.NewValidationError("Password too long")
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash is a
// mismatch, not an error.
func (h *BcryptPasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
