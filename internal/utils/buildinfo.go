// Package utils provides helper functions, including version retrieval and logger construction.
package utils

import (
	"runtime/debug"
)

const (
	// defaultVersion is reported when the binary carries no module version.
	defaultVersion    = "1.0.0"
	develBuildVersion = "(devel)"
)

// GetApplicationVersion returns the module version recorded in the build info,
// falling back to the release version compiled into the binary.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != develBuildVersion {
		return buildInfo.Main.Version
	}
	return defaultVersion
}
