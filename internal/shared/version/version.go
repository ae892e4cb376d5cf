// Package version reports the build and API versions.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the build version, set with -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"

// API is the version of the public HTTP surface reported by the banner.
const API = "2.0.0"

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

// IsRelease reports whether v is a valid semver without a prerelease suffix.
// "dev" and "unknown" builds are not releases.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}
