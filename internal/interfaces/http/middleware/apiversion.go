package middleware

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/utils"
)

const (
	// Versions the API can serve; every route is v1 today.
	MinAPIVersion     = 1
	CurrentAPIVersion = 1
)

var vendorMediaType = regexp.MustCompile(`application/vnd\.warden\.v(\d+)\+json`)

// APIVersion negotiates the version from X-API-Version, then from a
// vendor Accept type, and echoes it back. Unknown versions get 400.
func APIVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		version, requested := requestedVersion(c)
		if requested && (version < MinAPIVersion || version > CurrentAPIVersion) {
			utils.ErrorResponseWithError(c, errors.NewValidationError(
				"Unsupported API version",
				"supported: "+strconv.Itoa(MinAPIVersion)+"-"+strconv.Itoa(CurrentAPIVersion)))
			c.Abort()
			return
		}
		if !requested {
			version = CurrentAPIVersion
		}

		c.Set(constants.ContextKeyAPIVersion, version)
		c.Header(constants.HeaderAPIVersion, strconv.Itoa(version))
		c.Next()
	}
}

// APIVersionFrom returns the negotiated version, or CurrentAPIVersion when
// the middleware did not run.
func APIVersionFrom(c *gin.Context) int {
	if v, ok := c.Get(constants.ContextKeyAPIVersion); ok {
		if version, ok := v.(int); ok {
			return version
		}
	}
	return CurrentAPIVersion
}

func requestedVersion(c *gin.Context) (int, bool) {
	if h := c.GetHeader(constants.HeaderAPIVersion); h != "" {
		v, err := strconv.Atoi(h)
		if err != nil {
			return 0, true
		}
		return v, true
	}

	if m := vendorMediaType.FindStringSubmatch(c.GetHeader("Accept")); len(m) == 2 {
		v, _ := strconv.Atoi(m[1])
		return v, true
	}

	return 0, false
}
