// Package buildinfo exposes the version stamped into the binary at build time.
//
// Release builds overwrite the defaults with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/gridpush/gridpush/pkg/buildinfo.Version=v1.0.0 \
//	  -X github.com/gridpush/gridpush/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/gridpush/gridpush/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Stamped by the linker; see the package comment. The defaults identify a
// local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template, so "gridpush --version" prints
// the stamped fields.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version(), commit(), Date)
}

// version falls back to the module version recorded by "go install" when the
// linker did not stamp one.
func version() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// commit prefers the VCS revision the Go toolchain embeds on its own.
func commit() string {
	if Commit != "none" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return Commit
}
