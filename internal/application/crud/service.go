// Package crud provides the uniform get/list/create/update/delete service
// shared by every stored entity.
package crud

import (
	"context"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/db"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/query"
)

// Entity is satisfied by the pointer types of the domain entities.
type Entity interface {
	comparable
	ID() uint
}

// Service runs each mutating call inside one transaction, so a failed
// call leaves the store as it found it.
type Service[E Entity] struct {
	entity string
	repo   shared.Repository[E]
	tx     db.Runner
	logger logger.Interface
}

func NewService[E Entity](entity string, repo shared.Repository[E], tx db.Runner, log logger.Interface) *Service[E] {
	return &Service[E]{
		entity: entity,
		repo:   repo,
		tx:     tx,
		logger: log.With("entity", entity),
	}
}

// Entity returns the type name used in errors and logs.
func (s *Service[E]) Entity() string {
	return s.entity
}

func (s *Service[E]) Get(ctx context.Context, id uint) (E, error) {
	var zero E

	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get entity", "id", id, "error", err)
		return zero, err
	}
	if found == zero {
		s.logger.Warnw("entity not found", "id", id)
		return zero, errors.NewEntityNotFoundError(s.entity, id)
	}
	return found, nil
}

func (s *Service[E]) List(ctx context.Context, q query.ListQuery) ([]E, error) {
	q = q.Normalize()

	items, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Errorw("failed to list entities", "error", err)
		return nil, err
	}

	s.logger.Debugw("listed entities", "count", len(items), "skip", q.Skip, "limit", q.Limit)
	return items, nil
}

func (s *Service[E]) Create(ctx context.Context, entity E) (E, error) {
	var zero E

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, entity)
	})
	if err != nil {
		s.logFailure("create", 0, err)
		return zero, err
	}

	s.logger.Infow("entity created", "id", entity.ID())
	return entity, nil
}

// Update replaces the mutable fields of row id with those of entity and
// returns the stored result.
func (s *Service[E]) Update(ctx context.Context, id uint, entity E) (E, error) {
	var updated E

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, id, entity); err != nil {
			return err
		}
		reloaded, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		s.logFailure("update", id, err)
		var zero E
		return zero, err
	}

	s.logger.Infow("entity updated", "id", id)
	return updated, nil
}

func (s *Service[E]) Delete(ctx context.Context, id uint) error {
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		s.logFailure("delete", id, err)
		return err
	}

	s.logger.Infow("entity deleted", "id", id)
	return nil
}

func (s *Service[E]) logFailure(op string, id uint, err error) {
	switch {
	case errors.IsNotFoundError(err), errors.IsValidationError(err):
		return
	case errors.IsIntegrityRejected(err):
		s.logger.Warnw("entity write rejected", "op", op, "id", id, "error", err)
	default:
		s.logger.Errorw("entity write failed", "op", op, "id", id, "error", err)
	}
}
