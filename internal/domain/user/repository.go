package user

import (
	"context"

	"github.com/orris-inc/warden/internal/domain/shared"
)

// Repository defines the interface for user data operations
type Repository interface {
	shared.Repository[*User]

	// GetByUsername returns nil when no user has exactly this username
	GetByUsername(ctx context.Context, username string) (*User, error)
}
