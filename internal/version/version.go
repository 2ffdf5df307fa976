// Package version provides build-time version information for the
// halo-fixer binaries.
package version

// These variables are set at build time using -ldflags, e.g.
// -X halo-fixer/internal/version.GitCommit=$(git rev-parse --short HEAD)
var (
	// Version is the semantic version
	Version = "0.3.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)
