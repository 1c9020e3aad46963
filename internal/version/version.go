package version

import (
	"runtime/debug"
	"sync"
)

// Version is set at build time with
// -ldflags "-X github.com/shindakun/ethicstraining/internal/version.Version=v1.2.3"
var Version = "dev"

var (
	gitCommit   string
	versionOnce sync.Once
)

// commit reads the VCS revision recorded by the Go toolchain
func commit() string {
	versionOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				gitCommit = s.Value[:7]
			}
		}
	})
	return gitCommit
}

// GetVersion returns the version string with git commit if available
func GetVersion() string {
	if c := commit(); c != "" && Version != "dev" {
		return Version + "-" + c
	}
	return Version
}

// GetFullVersion returns version with commit info
func GetFullVersion() string {
	if c := commit(); c != "" {
		return Version + " (commit: " + c + ")"
	}
	return Version
}
