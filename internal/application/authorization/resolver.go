// Package authorization decides whether a user may invoke an operation code.
// Every decision is derived from the current store state; nothing is cached
// between calls, so revoking an assignment or authorization takes effect on
// the next check.
package authorization

import (
	"context"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
)

type Resolver struct {
	grants access.GrantRepository
	logger logger.Interface
}

func NewResolver(grants access.GrantRepository, log logger.Interface) *Resolver {
	return &Resolver{
		grants: grants,
		logger: log.Named("authorization.resolver"),
	}
}

// ResolveAuthorizedTransactions returns the distinct transactions reachable
// from userID, in first-seen join order. When opCode is not empty only
// transactions carrying that code are returned. An empty result is a valid
// "no grants" answer.
func (r *Resolver) ResolveAuthorizedTransactions(ctx context.Context, userID uint, opCode string) ([]*access.Transaction, error) {
	rows, err := r.grants.AuthorizedTransactions(ctx, userID, opCode)
	if err != nil {
		r.logger.Errorw("failed to resolve authorized transactions", "user_id", userID, "op_code", opCode, "error", err)
		return nil, err
	}
	return distinct(rows), nil
}

// ValidateAccess returns nil when u holds exactly one grant for opCode.
//
// A nil user fails with CredentialsInvalid. No grant fails with
// AccessDenied. More than one distinct transaction for the code fails with
// AmbiguousGrant. A resolved transaction whose code differs from the
// requested one fails with AccessDenied naming the resolved code.
func (r *Resolver) ValidateAccess(ctx context.Context, u *user.User, opCode string) error {
	if u == nil {
		return errors.NewCredentialsInvalidError()
	}

	txs, err := r.ResolveAuthorizedTransactions(ctx, u.ID(), opCode)
	if err != nil {
		return err
	}

	switch {
	case len(txs) == 0:
		r.logger.Warnw("access denied", "user_id", u.ID(), "username", u.Username(), "op_code", opCode)
		return errors.NewAccessDeniedError(u.ID(), opCode)
	case len(txs) > 1:
		r.logger.Errorw("ambiguous grant: more than one transaction resolved for a single operation code",
			"user_id", u.ID(), "op_code", opCode, "resolved", len(txs))
		return errors.NewAmbiguousGrantError(u.ID(), opCode)
	}

	if resolved := txs[0].OperationCode(); resolved != opCode {
		r.logger.Warnw("access denied: resolved code mismatch", "user_id", u.ID(), "op_code", opCode, "resolved", resolved)
		return errors.NewAccessDeniedError(u.ID(), resolved)
	}

	r.logger.Debugw("access granted", "user_id", u.ID(), "op_code", opCode)
	return nil
}

// distinct keeps the first occurrence of each transaction id.
func distinct(rows []*access.Transaction) []*access.Transaction {
	seen := make(map[uint]struct{}, len(rows))
	out := make([]*access.Transaction, 0, len(rows))
	for _, tx := range rows {
		if tx == nil {
			continue
		}
		if _, dup := seen[tx.ID()]; dup {
			continue
		}
		seen[tx.ID()] = struct{}{}
		out = append(out, tx)
	}
	return out
}
