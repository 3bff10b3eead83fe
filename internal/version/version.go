// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/series-data/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/series-data/internal/version.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/seriesagg
package version

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// String returns a formatted version string for -version output.
func String() string {
	return "seriesagg " + Version + " (" + Commit + ") built " + BuildTime
}

// LogAttrs returns version fields as slog key/value pairs.
func LogAttrs() []any {
	return []any{"version", Version, "commit", Commit}
}
