package crud

import (
	"context"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/shared/query"
)

type mockRoleRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*access.Role, error)
	ListFunc    func(ctx context.Context, q query.ListQuery) ([]*access.Role, error)
	CreateFunc  func(ctx context.Context, r *access.Role) error
	UpdateFunc  func(ctx context.Context, id uint, r *access.Role) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*access.Role, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoleRepository) List(ctx context.Context, q query.ListQuery) ([]*access.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockRoleRepository) Create(ctx context.Context, r *access.Role) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRoleRepository) Update(ctx context.Context, id uint, r *access.Role) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, r)
	}
	return nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// fakeRunner runs fn inline and counts how many units of work failed.
type fakeRunner struct {
	calls     int
	rollbacks int
}

func (f *fakeRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	err := fn(ctx)
	if err != nil {
		f.rollbacks++
	}
	return err
}
