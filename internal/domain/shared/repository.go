package shared

import (
	"context"

	"github.com/orris-inc/warden/internal/shared/query"
)

// Repository is the storage port shared by every entity type.
//
// GetByID returns the zero value of E with a nil error when no row exists.
// Create assigns the generated id to the entity. Update overwrites the
// mutable columns of row id from the given entity and refreshes its update
// timestamp; creation audit fields are left untouched.
type Repository[E any] interface {
	GetByID(ctx context.Context, id uint) (E, error)
	List(ctx context.Context, q query.ListQuery) ([]E, error)
	Create(ctx context.Context, entity E) error
	Update(ctx context.Context, id uint, entity E) error
	Delete(ctx context.Context, id uint) error
}
