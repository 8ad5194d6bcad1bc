// Package version exposes build version information.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Info returns a human-readable version string.
func Info() string {
	return fmt.Sprintf("pourwatch %s (%s)", Version, Commit)
}
