// Package version holds build-time version metadata injected via ldflags.
//
//	go build -ldflags "-X github.com/okdaichi/metro/internal/version.version=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info is the metadata of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string // empty when build info is unavailable
}

// Get returns the build metadata. Binaries built with "go install
// module@version" carry no ldflags; their module version is used instead.
func Get() Info {
	info := Info{Version: version, Commit: commit, Date: date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Go = bi.GoVersion
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	return info
}

// String returns a human-readable multi-line version string.
func (i Info) String() string {
	s := fmt.Sprintf("metro %s\n  commit: %s\n  built:  %s", i.Version, i.Commit, i.Date)
	if i.Go != "" {
		s += fmt.Sprintf("\n  go:     %s", i.Go)
	}
	return s
}

// Short returns "metro <version>" for one-line output.
func (i Info) Short() string {
	return "metro " + i.Version
}
