// Package buildinfo holds the version metadata injected via ldflags.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const devVersion = "dev"

var (
	version = devVersion
	commit  = "unknown"
	date    = "unknown"
)

// Set records the build metadata passed from main.
func Set(v, c, d string) {
	version, commit, date = v, c, d
}

// Version returns the build version normalised to "vMAJOR.MINOR.PATCH[-pre]".
// Versions that are not valid semver (including "dev") yield "dev".
func Version() string {
	sv, err := parseSemver(version)
	if err != nil {
		return devVersion
	}
	return "v" + sv.String()
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version(), commit, date)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	return semver.NewVersion(v)
}
