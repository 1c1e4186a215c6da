package auth

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
)

type mockUserLookup struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func (m *mockUserLookup) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

type plainVerifier struct{}

func (plainVerifier) Verify(password, hash string) bool { return "h:"+password == hash }

type mockTokenService struct {
	IssueFunc          func(subject string) (string, error)
	ResolveSubjectFunc func(token string) (string, error)
}

func (m *mockTokenService) Issue(subject string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(subject)
	}
	return "token-for-" + subject, nil
}

func (m *mockTokenService) ResolveSubject(token string) (string, error) {
	if m.ResolveSubjectFunc != nil {
		return m.ResolveSubjectFunc(token)
	}
	return "", errors.NewTokenInvalidError()
}

func admin(t *testing.T) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(1, "admin", "Administrador", "admin@teste.com.br", "h:admin123", shared.Audit{})
	require.NoError(t, err)
	return u
}

func lookupOf(t *testing.T, users ...*user.User) *mockUserLookup {
	return &mockUserLookup{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			for _, u := range users {
				if u.Username() == username {
					return u, nil
				}
			}
			return nil, nil
		},
	}
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: true},
		{name: "unknown user", username: "ghost", password: "admin123", wantErr: true},
		{name: "username is case-sensitive", username: "ADMIN", password: "admin123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(lookupOf(t, admin(t)), plainVerifier{}, &mockTokenService{}, 1800, logger.NewNop())

			res, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsIncorrectLogin(err))
				assert.Equal(t, "Incorrect email or password", errors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-for-admin", res.AccessToken)
			assert.Equal(t, "bearer", res.TokenType)
			assert.Equal(t, int64(1800), res.ExpiresIn)
		})
	}
}

func TestService_Login_IssueFailure(t *testing.T) {
	tokens := &mockTokenService{IssueFunc: func(string) (string, error) { return "", stderrors.New("hsm offline") }}
	svc := NewService(lookupOf(t, admin(t)), plainVerifier{}, tokens, 1800, logger.NewNop())

	_, err := svc.Login(context.Background(), "admin", "admin123")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
}

func TestService_CurrentUser(t *testing.T) {
	tokens := &mockTokenService{
		ResolveSubjectFunc: func(token string) (string, error) {
			switch token {
			case "good":
				return "admin", nil
			case "orphan":
				return "deleted-user", nil
			default:
				return "", errors.NewTokenInvalidError("bad signature")
			}
		},
	}
	svc := NewService(lookupOf(t, admin(t)), plainVerifier{}, tokens, 1800, logger.NewNop())

	u, err := svc.CurrentUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID())

	_, err = svc.CurrentUser(context.Background(), "")
	assert.True(t, errors.IsCredentialsInvalid(err))

	_, err = svc.CurrentUser(context.Background(), "forged")
	assert.True(t, errors.IsTokenInvalid(err))

	_, err = svc.CurrentUser(context.Background(), "orphan")
	assert.True(t, errors.IsCredentialsInvalid(err))
}
