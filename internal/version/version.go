package version

import "fmt"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

// GetVersion is the full build description logged at startup.
func GetVersion() string {
	return fmt.Sprintf("webserver %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// GetShortVersion is the bare version used in the Server response header.
func GetShortVersion() string {
	return Version
}
