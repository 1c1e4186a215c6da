package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/warden/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newQueryContext(rawQuery string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/items?"+rawQuery, nil)
	return c
}

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name        string
		rawQuery    string
		keys        []string
		wantSkip    int
		wantLimit   int
		wantFilters map[string]string
	}{
		{
			name:      "defaults",
			rawQuery:  "",
			wantSkip:  constants.DefaultSkip,
			wantLimit: constants.DefaultLimit,
		},
		{
			name:      "explicit window",
			rawQuery:  "skip=10&limit=5",
			wantSkip:  10,
			wantLimit: 5,
		},
		{
			name:      "garbage falls back",
			rawQuery:  "skip=abc&limit=-1",
			wantSkip:  constants.DefaultSkip,
			wantLimit: constants.DefaultLimit,
		},
		{
			name:      "limit capped",
			rawQuery:  "limit=999999",
			wantSkip:  0,
			wantLimit: constants.MaxLimit,
		},
		{
			name:        "only declared filters copied",
			rawQuery:    "op_code=1010001&name=x",
			keys:        []string{"op_code"},
			wantSkip:    0,
			wantLimit:   constants.DefaultLimit,
			wantFilters: map[string]string{"op_code": "1010001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseListQuery(newQueryContext(tt.rawQuery), tt.keys...)
			assert.Equal(t, tt.wantSkip, q.Skip)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantFilters, q.Filters)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	c := newQueryContext("")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, ok = ParseIDParam(c, "id")
	assert.False(t, ok)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = ParseIDParam(c, "id")
	assert.False(t, ok)
}
