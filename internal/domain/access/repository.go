package access

import (
	"context"

	"github.com/orris-inc/warden/internal/domain/shared"
)

type RoleRepository interface {
	shared.Repository[*Role]
	GetByName(ctx context.Context, name string) (*Role, error)
}

type TransactionRepository interface {
	shared.Repository[*Transaction]
	GetByOperationCode(ctx context.Context, code string) (*Transaction, error)
}

type AssignmentRepository interface {
	shared.Repository[*Assignment]
	GetByPair(ctx context.Context, userID, roleID uint) (*Assignment, error)
}

type AuthorizationRepository interface {
	shared.Repository[*Authorization]
	GetByPair(ctx context.Context, roleID, transactionID uint) (*Authorization, error)
}

// GrantRepository walks user -> assignment -> role -> authorization -> transaction.
type GrantRepository interface {
	// AuthorizedTransactions returns every transaction reachable from
	// userID, one entry per join path, restricted to opCode when it is not
	// empty. Rows come back in join order; duplicates are possible when
	// several roles reach the same transaction.
	AuthorizedTransactions(ctx context.Context, userID uint, opCode string) ([]*Transaction, error)

	// Snapshot loads the whole grant graph.
	Snapshot(ctx context.Context) (*Snapshot, error)
}
