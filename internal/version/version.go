package version

import (
	"fmt"
	"runtime"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X gitline/internal/version.Version=v1.0.0 -X gitline/internal/version.Commit=abc123"
var (
	Version = "dev"     // Semantic version or "dev"
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date (RFC3339)
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("gitline %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}
