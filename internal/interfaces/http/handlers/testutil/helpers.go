// Package testutil builds gin contexts and decodes envelopes for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body io.Reader, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	if contentType != "" {
		c.Request.Header.Set(constants.HeaderContentType, contentType)
	}
	return c, w
}

// NewTestContext returns a context for method and path. A non-nil body is
// sent as JSON.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	if body == nil {
		return newContext(method, path, nil, "")
	}
	raw, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return newContext(method, path, bytes.NewReader(raw), constants.ContentTypeJSON)
}

// NewFormContext returns a context carrying a urlencoded form.
func NewFormContext(method, path string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	return newContext(method, path, strings.NewReader(form.Encode()), constants.ContentTypeForm)
}

// SetAuthContext stores u the way the auth middleware does.
func SetAuthContext(c *gin.Context, u *user.User) {
	c.Set(constants.ContextKeyUser, u)
	c.Set(constants.ContextKeyUserID, u.ID())
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func SetQueryParams(c *gin.Context, params map[string]string) {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse is the decoded envelope with data left raw.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListData is a list payload with items left raw.
type ListData struct {
	Items json.RawMessage `json:"items"`
	Count int             `json:"count"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

func NewMockLogger() logger.Interface {
	return logger.NewNop()
}
