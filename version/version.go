// Package version exposes the build metadata stamped into loam
// binaries at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at release build time. The zero values identify a
// local development build.
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

// Info is the full build record reported by `loam version`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

// GetInfo combines the stamped variables with the runtime's own
// build facts.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build record as aligned label/value lines. The
// version itself is left to the caller, which prints it on the
// banner line.
func (i Info) String() string {
	return fmt.Sprintf(
		"Commit:     %s\nBranch:     %s\nBuilt:      %s\nGo:         %s (%s)\nPlatform:   %s",
		i.Commit, i.Branch, i.BuildDate, i.GoVersion, i.Compiler, i.Platform,
	)
}
