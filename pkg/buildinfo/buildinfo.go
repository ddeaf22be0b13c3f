// Package buildinfo provides build metadata for hashfn binaries.
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is intended to be injected at build time with -ldflags "-X".
	Version string
	// Commit is the source control revision and is intended to be injected at build time.
	Commit string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata with defaults when build flags are not provided.
func Get() Info {
	version := Version
	if version == "" {
		version = "dev"
	}

	commit := Commit
	if commit == "" {
		commit = "unknown"
	}

	return Info{
		Version: version,
		Commit:  commit,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String formats build metadata for the --version flag.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, %s %s/%s)", i.Version, i.Commit, i.Go, i.OS, i.Arch)
}
