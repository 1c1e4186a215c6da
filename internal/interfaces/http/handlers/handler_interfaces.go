package handlers

import (
	"context"

	"github.com/orris-inc/warden/internal/application/auth"
	appUser "github.com/orris-inc/warden/internal/application/user"
	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/query"
)

// Service interfaces for the handlers - enables unit testing with mocks.

type loginService interface {
	Login(ctx context.Context, username, password string) (*auth.TokenResult, error)
}

type userService interface {
	Create(ctx context.Context, cmd appUser.SaveUserCommand) (*user.User, error)
	Update(ctx context.Context, id uint, cmd appUser.SaveUserCommand) (*user.User, error)
	Get(ctx context.Context, id uint) (*user.User, error)
	List(ctx context.Context, q query.ListQuery) ([]*user.User, error)
	Delete(ctx context.Context, id uint) error
}

type transactionResolver interface {
	ResolveAuthorizedTransactions(ctx context.Context, userID uint, opCode string) ([]*access.Transaction, error)
}

// EntityService is the generic CRUD surface an EntityHandler drives.
type EntityService[E any] interface {
	Entity() string
	Get(ctx context.Context, id uint) (E, error)
	List(ctx context.Context, q query.ListQuery) ([]E, error)
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, id uint, entity E) (E, error)
	Delete(ctx context.Context, id uint) error
}

// Pinger reports store liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
