// Package version reports the build version stamped at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden with -ldflags "-X .../version.Current=1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical semver of Current, or Current unchanged
// for development builds.
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return Current
	}
	return semver.Canonical(v)
}
