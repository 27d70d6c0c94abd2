// Package version carries build metadata injected with -ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git revision.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
