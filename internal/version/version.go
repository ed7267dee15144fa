// Package version provides build-time version information for herodex.
// Variables are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/HerbHall/herodex/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the service name reported by health checks and the MCP server.
const Name = "herodex"

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns a formatted version string suitable for `herodex version`.
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		Name, Short(), commit(), BuildDate, runtime.Version())
}

// Short returns just the version string (e.g., "0.1.0" or "dev").
func Short() string {
	return Version
}

// Map returns version info as a map for JSON serialization.
func Map() map[string]string {
	return map[string]string{
		"version":    Short(),
		"git_commit": commit(),
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	}
}

// commit falls back to the VCS revision stamped by the go tool when no
// commit was injected.
func commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return GitCommit
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return GitCommit
}
