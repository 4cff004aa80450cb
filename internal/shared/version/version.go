// Package version reports the build version stamped at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X github.com/stealthycommerce/stealthy/internal/shared/version.Version=1.4.0".
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version without a prerelease suffix.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}

// String returns the canonical build version, or the raw value for
// non-semver builds such as "dev".
func String() string {
	n := Normalize(Version)
	if !semver.IsValid(n) {
		return Version
	}
	s := semver.Canonical(n)
	if Commit != "" {
		s += "+" + Commit
	}
	return s
}
