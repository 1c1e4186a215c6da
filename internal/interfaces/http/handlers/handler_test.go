package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/application/auth"
	appUser "github.com/orris-inc/warden/internal/application/user"
	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/query"
	"github.com/orris-inc/warden/internal/shared/services/sanitize"
)

// =====================================================================
// Mock services
// =====================================================================

type mockRoleService struct {
	getFunc    func(ctx context.Context, id uint) (*access.Role, error)
	listFunc   func(ctx context.Context, q query.ListQuery) ([]*access.Role, error)
	createFunc func(ctx context.Context, r *access.Role) (*access.Role, error)
	updateFunc func(ctx context.Context, id uint, r *access.Role) (*access.Role, error)
	deleteFunc func(ctx context.Context, id uint) error
}

func (m *mockRoleService) Entity() string { return access.EntityRole }

func (m *mockRoleService) Get(ctx context.Context, id uint) (*access.Role, error) {
	return m.getFunc(ctx, id)
}

func (m *mockRoleService) List(ctx context.Context, q query.ListQuery) ([]*access.Role, error) {
	return m.listFunc(ctx, q)
}

func (m *mockRoleService) Create(ctx context.Context, r *access.Role) (*access.Role, error) {
	return m.createFunc(ctx, r)
}

func (m *mockRoleService) Update(ctx context.Context, id uint, r *access.Role) (*access.Role, error) {
	return m.updateFunc(ctx, id, r)
}

func (m *mockRoleService) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

type mockUserService struct {
	createFunc func(ctx context.Context, cmd appUser.SaveUserCommand) (*user.User, error)
	updateFunc func(ctx context.Context, id uint, cmd appUser.SaveUserCommand) (*user.User, error)
	getFunc    func(ctx context.Context, id uint) (*user.User, error)
	listFunc   func(ctx context.Context, q query.ListQuery) ([]*user.User, error)
	deleteFunc func(ctx context.Context, id uint) error
}

func (m *mockUserService) Create(ctx context.Context, cmd appUser.SaveUserCommand) (*user.User, error) {
	return m.createFunc(ctx, cmd)
}

func (m *mockUserService) Update(ctx context.Context, id uint, cmd appUser.SaveUserCommand) (*user.User, error) {
	return m.updateFunc(ctx, id, cmd)
}

func (m *mockUserService) Get(ctx context.Context, id uint) (*user.User, error) {
	return m.getFunc(ctx, id)
}

func (m *mockUserService) List(ctx context.Context, q query.ListQuery) ([]*user.User, error) {
	return m.listFunc(ctx, q)
}

func (m *mockUserService) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

type mockResolver struct {
	resolveFunc func(ctx context.Context, userID uint, opCode string) ([]*access.Transaction, error)
}

func (m *mockResolver) ResolveAuthorizedTransactions(ctx context.Context, userID uint, opCode string) ([]*access.Transaction, error) {
	return m.resolveFunc(ctx, userID, opCode)
}

type mockLoginService struct {
	loginFunc func(ctx context.Context, username, password string) (*auth.TokenResult, error)
}

func (m *mockLoginService) Login(ctx context.Context, username, password string) (*auth.TokenResult, error) {
	return m.loginFunc(ctx, username, password)
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestUser(t *testing.T, id uint, username string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, "Test User", username+"@example.com", "$2a$04$hash", shared.NewAudit("127.0.0.1", "system"))
	require.NoError(t, err)
	return u
}

func createTestRole(t *testing.T, id uint, name string) *access.Role {
	t.Helper()
	r, err := access.ReconstructRole(id, name, "", shared.NewAudit("127.0.0.1", "admin"))
	require.NoError(t, err)
	return r
}

func newRoleHandler(svc *mockRoleService) *EntityHandler[*access.Role, dto.RoleRequest] {
	s := sanitize.NewTextSanitizer()
	return NewEntityHandler[*access.Role, dto.RoleRequest](svc,
		func(r *dto.RoleRequest, c dto.Caller) (*access.Role, error) { return r.ToEntity(s, c) },
		func(e *access.Role) any { return dto.ToRoleResponse(e) },
		testutil.NewMockLogger(), "name")
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Message
}

// =====================================================================
// EntityHandler
// =====================================================================

func TestEntityHandler_Create(t *testing.T) {
	admin := createTestUser(t, 1, "admin")

	t.Run("created with caller audit", func(t *testing.T) {
		svc := &mockRoleService{createFunc: func(_ context.Context, r *access.Role) (*access.Role, error) {
			assert.Equal(t, "admin", r.Audit().Login())
			assert.Equal(t, "203.0.113.5", r.Audit().OriginIP())
			require.NoError(t, r.SetID(9))
			return r, nil
		}}
		c, w := testutil.NewTestContext(http.MethodPost, "/role", dto.RoleRequest{Name: "Auditors"})
		c.Request.RemoteAddr = "203.0.113.5:40112"
		testutil.SetAuthContext(c, admin)

		newRoleHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var data dto.RoleResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, uint(9), data.ID)
		assert.Equal(t, "Auditors", data.Name)
	})

	t.Run("invalid body", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodPost, "/role", map[string]string{"description": "no name"})
		testutil.SetAuthContext(c, admin)

		newRoleHandler(&mockRoleService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		svc := &mockRoleService{createFunc: func(context.Context, *access.Role) (*access.Role, error) {
			return nil, errors.NewIntegrityRejectedError("Object ROLE was not accepted", "unique index idx_role_name")
		}}
		c, w := testutil.NewTestContext(http.MethodPost, "/role", dto.RoleRequest{Name: "Auditors"})
		testutil.SetAuthContext(c, admin)

		newRoleHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Object ROLE was not accepted", errorMessage(t, w.Body.Bytes()))
		assert.NotContains(t, w.Body.String(), "idx_role_name")
	})
}

func TestEntityHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "found", param: "4", wantStatus: http.StatusOK},
		{name: "not found", param: "999", err: errors.NewEntityNotFoundError("Role", 999), wantStatus: http.StatusNotFound, wantMsg: "Role with ID [999] not found"},
		{name: "bad id", param: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRoleService{getFunc: func(_ context.Context, id uint) (*access.Role, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return createTestRole(t, id, "Ops"), nil
			}}
			c, w := testutil.NewTestContext(http.MethodGet, "/role/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)

			newRoleHandler(svc).Get(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, w.Body.Bytes()))
			}
		})
	}
}

func TestEntityHandler_List(t *testing.T) {
	svc := &mockRoleService{listFunc: func(_ context.Context, q query.ListQuery) ([]*access.Role, error) {
		assert.Equal(t, 5, q.Skip)
		assert.Equal(t, 2, q.Limit)
		assert.Equal(t, map[string]string{"name": "op"}, q.Filters)
		return []*access.Role{createTestRole(t, 6, "Ops"), createTestRole(t, 7, "Operators")}, nil
	}}
	c, w := testutil.NewTestContext(http.MethodGet, "/role", nil)
	testutil.SetQueryParams(c, map[string]string{"skip": "5", "limit": "2", "name": "op", "ignored": "x"})

	newRoleHandler(svc).List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, 5, list.Skip)
}

func TestEntityHandler_Update(t *testing.T) {
	admin := createTestUser(t, 1, "admin")
	svc := &mockRoleService{updateFunc: func(_ context.Context, id uint, r *access.Role) (*access.Role, error) {
		assert.Equal(t, uint(3), id)
		assert.Equal(t, "Renamed", r.Name())
		return createTestRole(t, id, r.Name()), nil
	}}
	c, w := testutil.NewTestContext(http.MethodPut, "/role/3", dto.RoleRequest{Name: "Renamed"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, admin)

	newRoleHandler(svc).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEntityHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &mockRoleService{deleteFunc: func(_ context.Context, id uint) error {
			assert.Equal(t, uint(3), id)
			return nil
		}}
		c, w := testutil.NewTestContext(http.MethodDelete, "/role/3", nil)
		testutil.SetURLParam(c, "id", "3")

		newRoleHandler(svc).Delete(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"detail":"Object ROLE was deleted"}`, w.Body.String())
	})

	t.Run("referenced", func(t *testing.T) {
		svc := &mockRoleService{deleteFunc: func(context.Context, uint) error {
			return errors.NewIntegrityRejectedError("Object ROLE was not accepted", "foreign key violation")
		}}
		c, w := testutil.NewTestContext(http.MethodDelete, "/role/3", nil)
		testutil.SetURLParam(c, "id", "3")

		newRoleHandler(svc).Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =====================================================================
// UserHandler
// =====================================================================

func newTestUserHandler(users *mockUserService, resolver *mockResolver) *UserHandler {
	return NewUserHandler(users, resolver, sanitize.NewTextSanitizer(), testutil.NewMockLogger())
}

func TestUserHandler_CreateUser_AttributedToSystem(t *testing.T) {
	users := &mockUserService{createFunc: func(_ context.Context, cmd appUser.SaveUserCommand) (*user.User, error) {
		assert.Equal(t, "system", cmd.Login)
		assert.Equal(t, "Bob", cmd.DisplayName)
		assert.Equal(t, "secret", cmd.Password)
		return createTestUser(t, 5, cmd.Username), nil
	}}
	body := dto.SaveUserRequest{Username: "bob", DisplayName: "<i>Bob</i>", Email: "bob@example.com", Password: "secret"}
	c, w := testutil.NewTestContext(http.MethodPost, "/users", body)

	newTestUserHandler(users, nil).CreateUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestUserHandler_UpdateUser_AttributedToCaller(t *testing.T) {
	admin := createTestUser(t, 1, "admin")
	users := &mockUserService{updateFunc: func(_ context.Context, id uint, cmd appUser.SaveUserCommand) (*user.User, error) {
		assert.Equal(t, uint(5), id)
		assert.Equal(t, "admin", cmd.Login)
		return createTestUser(t, id, cmd.Username), nil
	}}
	body := dto.SaveUserRequest{Username: "bob", DisplayName: "Bob", Email: "bob@example.com", Password: "new"}
	c, w := testutil.NewTestContext(http.MethodPut, "/users/5", body)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, admin)

	newTestUserHandler(users, nil).UpdateUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	users := &mockUserService{deleteFunc: func(_ context.Context, id uint) error {
		assert.Equal(t, uint(5), id)
		return nil
	}}
	c, w := testutil.NewTestContext(http.MethodDelete, "/users/5", nil)
	testutil.SetURLParam(c, "id", "5")

	newTestUserHandler(users, nil).DeleteUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"Object USER was deleted"}`, w.Body.String())
}

func TestUserHandler_UserTransactions(t *testing.T) {
	tx, err := access.ReconstructTransaction(2, "1050003", "Role - List", "", shared.NewAudit("0.0.0.0", "system"))
	require.NoError(t, err)

	resolver := &mockResolver{resolveFunc: func(_ context.Context, userID uint, opCode string) ([]*access.Transaction, error) {
		assert.Equal(t, uint(5), userID)
		assert.Empty(t, opCode)
		return []*access.Transaction{tx}, nil
	}}

	t.Run("existing user", func(t *testing.T) {
		users := &mockUserService{getFunc: func(_ context.Context, id uint) (*user.User, error) {
			return createTestUser(t, id, "bob"), nil
		}}
		c, w := testutil.NewTestContext(http.MethodGet, "/users/5/transactions", nil)
		testutil.SetURLParam(c, "id", "5")

		newTestUserHandler(users, resolver).UserTransactions(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var list testutil.ListData
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		var items []dto.TransactionResponse
		require.NoError(t, json.Unmarshal(list.Items, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "1050003", items[0].OperationCode)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &mockUserService{getFunc: func(_ context.Context, id uint) (*user.User, error) {
			return nil, errors.NewEntityNotFoundError("User", id)
		}}
		c, w := testutil.NewTestContext(http.MethodGet, "/users/5/transactions", nil)
		testutil.SetURLParam(c, "id", "5")

		newTestUserHandler(users, resolver).UserTransactions(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("me", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/users/me/transactions", nil)
		testutil.SetAuthContext(c, createTestUser(t, 5, "bob"))

		newTestUserHandler(&mockUserService{}, resolver).MyTransactions(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// =====================================================================
// AuthHandler
// =====================================================================

func TestAuthHandler_Token(t *testing.T) {
	svc := &mockLoginService{loginFunc: func(_ context.Context, username, password string) (*auth.TokenResult, error) {
		if username == "admin" && password == "admin123" {
			return &auth.TokenResult{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 1800}, nil
		}
		return nil, errors.NewIncorrectLoginError()
	}}
	handler := NewAuthHandler(svc, testutil.NewMockLogger())

	t.Run("form body", func(t *testing.T) {
		c, w := testutil.NewFormContext(http.MethodPost, "/auth/token", url.Values{"username": {"admin"}, "password": {"admin123"}})

		handler.Token(c)

		require.Equal(t, http.StatusOK, w.Code)
		var tok dto.TokenResponse
		require.NoError(t, testutil.ParseResponse(w, &tok))
		assert.Equal(t, "tok", tok.AccessToken)
		assert.Equal(t, "bearer", tok.TokenType)
		assert.Equal(t, int64(1800), tok.ExpiresIn)
	})

	t.Run("json body", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/token", dto.TokenRequest{Username: "admin", Password: "admin123"})

		handler.Token(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		c, w := testutil.NewFormContext(http.MethodPost, "/auth/token", url.Values{"username": {"admin"}, "password": {"nope"}})

		handler.Token(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Incorrect email or password", errorMessage(t, w.Body.Bytes()))
	})

	t.Run("missing fields", func(t *testing.T) {
		c, w := testutil.NewFormContext(http.MethodPost, "/auth/token", url.Values{"username": {"admin"}})

		handler.Token(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =====================================================================
// HealthHandler
// =====================================================================

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHealthHandler(pingFunc(func(context.Context) error { return nil }), testutil.NewMockLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHealthHandler(pingFunc(func(context.Context) error { return stderrors.New("down") }), testutil.NewMockLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/", nil)
	NewHealthHandler(nil, testutil.NewMockLogger()).Welcome(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
