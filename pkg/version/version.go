// Package version holds build metadata injected with -ldflags.
package version

import "fmt"

// Build metadata. Overridden at link time, e.g.
// -X github.com/Sumatoshi-tech/linewidth/pkg/version.Version=v1.2.0.
var (
	Version = "dev"     //nolint:gochecknoglobals // set by ldflags
	Commit  = "unknown" //nolint:gochecknoglobals // set by ldflags
	Date    = "unknown" //nolint:gochecknoglobals // set by ldflags
)

// String formats the metadata as shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
