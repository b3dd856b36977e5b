// Package config binds linewidth run options from command-line flags.
package config

import (
	"github.com/Sumatoshi-tech/linewidth/pkg/discovery"
	"github.com/Sumatoshi-tech/linewidth/pkg/linewidth"
)

// Flag names, which double as option keys.
const (
	KeyMaxWidth = "max-width"
	KeyTabWidth = "tab-width"
	KeyExt      = "ext"
	KeyNoColor  = "no-color"
	KeySummary  = "summary"
	KeyVerbose  = "verbose"
)

// Default option values.
const (
	DefaultMaxWidth = linewidth.DefaultMaxWidth
	DefaultTabWidth = linewidth.DefaultTabStop
	DefaultNoColor  = false
	DefaultSummary  = false
	DefaultVerbose  = false
)

// DefaultExtensions returns the walk allow-list.
func DefaultExtensions() []string {
	return append([]string(nil), discovery.DefaultExtensions...)
}
