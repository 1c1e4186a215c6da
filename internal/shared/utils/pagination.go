package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/query"
)

// ParseListQuery reads skip/limit from the query string and copies the
// named filter parameters. Defaults and caps come from query.Normalize.
func ParseListQuery(c *gin.Context, filterKeys ...string) query.ListQuery {
	opts := []query.ListOption{
		query.WithPage(
			parseQueryInt(c, "skip", constants.DefaultSkip),
			parseQueryInt(c, "limit", constants.DefaultLimit),
		),
	}
	for _, key := range filterKeys {
		opts = append(opts, query.WithFilter(key, c.Query(key)))
	}
	return query.NewListQuery(opts...)
}

// parseQueryInt parses a non-negative integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}

// ParseIDParam parses a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
