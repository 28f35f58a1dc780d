package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "Sit quietly in Twitch chat and log everything that happens"

// Build information injected at build time via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("lurker %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
