package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/query"
)

type mockUserRepository struct {
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	ListFunc          func(ctx context.Context, q query.ListQuery) ([]*user.User, error)
	CreateFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, id uint, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, q query.ListQuery) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, id uint, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

type inlineRunner struct{}

func (inlineRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (prefixHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

func TestService_Create_HashesPassword(t *testing.T) {
	var stored *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			stored = u
			return u.SetID(1)
		},
	}
	svc := NewService(repo, inlineRunner{}, prefixHasher{}, logger.NewNop())

	created, err := svc.Create(context.Background(), SaveUserCommand{
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "s3cret",
		OriginIP:    "10.1.1.1",
		Login:       "system",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(1), created.ID())
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash())
	assert.Equal(t, "system", stored.Audit().Login())
	assert.Equal(t, "10.1.1.1", stored.Audit().OriginIP())
}

func TestService_Create_RequiresPassword(t *testing.T) {
	svc := NewService(&mockUserRepository{}, inlineRunner{}, prefixHasher{}, logger.NewNop())

	_, err := svc.Create(context.Background(), SaveUserCommand{Username: "alice", DisplayName: "Alice", Email: "a@b.c"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestService_Update_RehashesPassword(t *testing.T) {
	existing, err := user.ReconstructUser(3, "alice", "Alice", "alice@example.com", "hashed:old", shared.Audit{})
	require.NoError(t, err)

	var written *user.User
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if written != nil {
				return user.ReconstructUser(id, written.Username(), written.DisplayName(), written.Email(), written.PasswordHash(), shared.Audit{})
			}
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, id uint, u *user.User) error {
			written = u
			return nil
		},
	}
	svc := NewService(repo, inlineRunner{}, prefixHasher{}, logger.NewNop())

	updated, err := svc.Update(context.Background(), 3, SaveUserCommand{
		Username:    "alice",
		DisplayName: "Alice B",
		Email:       "alice@example.com",
		Password:    "new",
		Login:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:new", updated.PasswordHash())
	assert.Equal(t, "Alice B", updated.DisplayName())
}

func TestService_Update_MissingUser(t *testing.T) {
	svc := NewService(&mockUserRepository{}, inlineRunner{}, prefixHasher{}, logger.NewNop())

	_, err := svc.Update(context.Background(), 99, SaveUserCommand{
		Username: "ghost", DisplayName: "Ghost", Email: "g@example.com", Password: "x",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "User with ID [99] not found", errors.GetAppError(err).Message)
}
