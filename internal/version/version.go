// Package version reports the bumpfile build version.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X ...version.version=1.2.3".
var version = ""

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linker-provided version, the module version
// recorded by "go install", or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
