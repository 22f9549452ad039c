// Package version provides build information for the docparse binary.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/connerohnesorge/docparser/internal/docparser"
)

// Build information variables set via ldflags during compilation.
// Example: go build -ldflags
// "-X github.com/connerohnesorge/docparser/internal/version.Version=v0.1.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the timestamp when the binary was built.
	Date = "unknown"
)

// BuildInfo contains version and build metadata. Commands and HTMLTags
// report the size of the built-in grammar this binary was compiled
// with, which drifts across releases as commands.go/htmltags.go grow;
// a bug report that includes `docparse version` output carries enough
// to tell which grammar revision produced a given diagnostic.
type BuildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Commands int    `json:"commands"`
	HTMLTags int    `json:"html_tags"`
}

// GetBuildInfo returns the current build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:  Version,
		Commit:   Commit,
		Date:     Date,
		Commands: docparser.CommandCount(),
		HTMLTags: docparser.HTMLTagCount(),
	}
}

// String returns a formatted multi-line representation of build info.
func (b BuildInfo) String() string {
	return fmt.Sprintf(
		"Version:  %s\nCommit:   %s\nDate:     %s\nGrammar:  %d commands, %d HTML tags",
		b.Version,
		b.Commit,
		b.Date,
		b.Commands,
		b.HTMLTags,
	)
}

// JSON returns the build info as JSON bytes.
func (b BuildInfo) JSON() ([]byte, error) {
	return json.Marshal(b)
}

// Short returns just the version string.
func (b BuildInfo) Short() string {
	return b.Version
}
