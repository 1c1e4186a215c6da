package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/infrastructure/auth"
	"github.com/orris-inc/warden/internal/infrastructure/config"
	"github.com/orris-inc/warden/internal/infrastructure/database/testdb"
	"github.com/orris-inc/warden/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/handlers/testutil"
	sharedConfig "github.com/orris-inc/warden/internal/shared/config"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

const testBcryptCost = 4

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testdb.New(t)
	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Mode: "test", AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: testBcryptCost},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", Issuer: "warden-test", AccessExpMinutes: 30},
		},
		Seed: sharedConfig.SeedConfig{
			AdminUsername:    "admin",
			AdminDisplayName: "Administrador",
			AdminEmail:       "admin@teste.com.br",
			AdminPassword:    "admin123",
			AdminRole:        "SUPER ADMIN",
		},
	}
	require.NoError(t, seeds.Run(gdb, cfg.Seed, auth.NewBcryptPasswordHasher(testBcryptCost)))

	router, err := NewRouter(gdb, cfg, nil, logger.NewNop())
	require.NoError(t, err)
	router.SetupRoutes()

	return &apiClient{t: t, engine: router.GetEngine()}
}

func (a *apiClient) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *apiClient) login(username, password string) *httptest.ResponseRecorder {
	a.t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(nethttp.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *apiClient) token(username, password string) string {
	a.t.Helper()
	w := a.login(username, password)
	require.Equal(a.t, nethttp.StatusOK, w.Code, w.Body.String())
	var tok dto.TokenResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &tok))
	return tok.AccessToken
}

// createdID posts body and returns the id of the created row.
func (a *apiClient) createdID(path, token string, body any) uint {
	a.t.Helper()
	w := a.do(nethttp.MethodPost, path, token, body)
	require.Equal(a.t, nethttp.StatusCreated, w.Code, w.Body.String())
	var resp testutil.APIResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(resp.Data, &created))
	require.NotZero(a.t, created.ID)
	return created.ID
}

func decodeList[T any](t *testing.T, w *httptest.ResponseRecorder) []T {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	var items []T
	require.NoError(t, json.Unmarshal(list.Items, &items))
	return items
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Message
}

func TestRouter_PublicEndpoints(t *testing.T) {
	api := newTestServer(t)

	w := api.do(nethttp.MethodGet, "/", "", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Process-Time"))

	w = api.do(nethttp.MethodGet, "/health", "", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)

	w = api.do(nethttp.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/users/me/transactions")

	w = api.login("admin", "wrong")
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Equal(t, "Incorrect email or password", errorMessage(t, w))

	w = api.login("ghost", "admin123")
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	w = api.do(nethttp.MethodGet, "/role", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", errorMessage(t, w))

	w = api.do(nethttp.MethodGet, "/role", "not-a-jwt", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestRouter_GrantLifecycle(t *testing.T) {
	api := newTestServer(t)
	admin := api.token("admin", "admin123")

	bobID := api.createdID("/users", "", dto.SaveUserRequest{
		Username: "bob", DisplayName: "Bob", Email: "bob@example.com", Password: "bobpass",
	})
	bob := api.token("bob", "bobpass")

	// No grants yet.
	w := api.do(nethttp.MethodGet, "/role", bob, nil)
	require.Equal(t, nethttp.StatusForbidden, w.Code)
	assert.Equal(t, fmt.Sprintf("User[%d] not authorized to access Transaction[%s]", bobID, opcode.RoleList), errorMessage(t, w))

	w = api.do(nethttp.MethodGet, "/users/me/transactions", bob, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Empty(t, decodeList[dto.TransactionResponse](t, w))

	// Grant Role - List through a new role.
	roleID := api.createdID("/role", admin, dto.RoleRequest{Name: "Readers", Description: "read only"})
	api.createdID("/assignment", admin, dto.AssignmentRequest{UserID: bobID, RoleID: roleID})

	w = api.do(nethttp.MethodGet, "/transaction?op_code="+opcode.RoleList, admin, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	txs := decodeList[dto.TransactionResponse](t, w)
	require.Len(t, txs, 1)
	authzID := api.createdID("/authorization", admin, dto.AuthorizationRequest{RoleID: roleID, TransactionID: txs[0].ID})

	w = api.do(nethttp.MethodGet, "/role", bob, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	roles := decodeList[dto.RoleResponse](t, w)
	assert.Len(t, roles, 2)

	w = api.do(nethttp.MethodGet, "/users/me/transactions", bob, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	mine := decodeList[dto.TransactionResponse](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, opcode.RoleList, mine[0].OperationCode)

	w = api.do(nethttp.MethodGet, fmt.Sprintf("/users/%d/transactions", bobID), admin, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Len(t, decodeList[dto.TransactionResponse](t, w), 1)

	// Bob holds List, not Create.
	w = api.do(nethttp.MethodPost, "/role", bob, dto.RoleRequest{Name: "Sneaky"})
	assert.Equal(t, nethttp.StatusForbidden, w.Code)

	// Duplicate grant is rejected by the unique index.
	w = api.do(nethttp.MethodPost, "/authorization", admin, dto.AuthorizationRequest{RoleID: roleID, TransactionID: txs[0].ID})
	require.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Equal(t, "Object AUTHORIZATION was not accepted", errorMessage(t, w))

	// A referenced role cannot be deleted.
	w = api.do(nethttp.MethodDelete, fmt.Sprintf("/role/%d", roleID), admin, nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	w = api.do(nethttp.MethodDelete, fmt.Sprintf("/authorization/%d", authzID), admin, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"Object AUTHORIZATION was deleted"}`, w.Body.String())

	// Revocation takes effect on the next request.
	w = api.do(nethttp.MethodGet, "/role", bob, nil)
	assert.Equal(t, nethttp.StatusForbidden, w.Code)
}

func TestRouter_UserEndpoints(t *testing.T) {
	api := newTestServer(t)
	admin := api.token("admin", "admin123")

	w := api.do(nethttp.MethodPost, "/users", "", dto.SaveUserRequest{
		Username: "admin", DisplayName: "Again", Email: "other@example.com", Password: "x",
	})
	require.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Equal(t, "Object USER was not accepted", errorMessage(t, w))

	carolID := api.createdID("/users", "", dto.SaveUserRequest{
		Username: "carol", DisplayName: "Carol", Email: "carol@example.com", Password: "first",
	})

	w = api.do(nethttp.MethodGet, "/users?username=car", admin, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$")
	users := decodeList[dto.UserResponse](t, w)
	require.Len(t, users, 1)
	assert.Equal(t, "system", users[0].AuditUserLogin)

	w = api.do(nethttp.MethodPut, fmt.Sprintf("/users/%d", carolID), admin, dto.SaveUserRequest{
		Username: "carol", DisplayName: "Carol C.", Email: "carol@example.com", Password: "second",
	})
	require.Equal(t, nethttp.StatusOK, w.Code)

	assert.Equal(t, nethttp.StatusBadRequest, api.login("carol", "first").Code)
	api.token("carol", "second")

	w = api.do(nethttp.MethodGet, "/users/999", admin, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)
	assert.Equal(t, "User with ID [999] not found", errorMessage(t, w))

	w = api.do(nethttp.MethodDelete, fmt.Sprintf("/users/%d", carolID), admin, nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)

	w = api.do(nethttp.MethodPost, "/transaction", admin, dto.TransactionRequest{OperationCode: "12345", Name: "bad"})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}
