// Package misc holds build information.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X bidiflip/misc.version=... -X bidiflip/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

const appName = "bidiflip"

// GetAppName returns program name used in logs and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, module version when not set at build time.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
