// Package version records the module version reported by the server and migrator.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the current semantic version of the drill engine.
var Version = "0.3.1"

// DevVersion is the version suffix used for development builds.
var DevVersion = fmt.Sprintf("%s-dev", Version)

func GetCurrentVersion(mode string) string {
	if mode == "dev" {
		return DevVersion
	}
	return Version
}

// IsVersionGreaterOrEqualThan reports whether version is greater than or equal to target.
func IsVersionGreaterOrEqualThan(version, target string) bool {
	return !IsVersionGreaterThan(target, version)
}

// IsVersionGreaterThan reports whether version is greater than target.
func IsVersionGreaterThan(version, target string) bool {
	vParts := strings.Split(version, ".")
	tParts := strings.Split(target, ".")
	for i := 0; i < len(vParts) || i < len(tParts); i++ {
		v, t := 0, 0
		if i < len(vParts) {
			v, _ = strconv.Atoi(vParts[i])
		}
		if i < len(tParts) {
			t, _ = strconv.Atoi(tParts[i])
		}
		if v != t {
			return v > t
		}
	}
	return false
}
