package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/linewidth/pkg/discovery"
)

// Sentinel validation errors.
var (
	ErrInvalidMaxWidth = errors.New("max width must be positive")
	ErrInvalidTabWidth = errors.New("tab width must be positive")
	ErrEmptyExtensions = errors.New("at least one file extension is required")
)

// Options holds everything a lint run is configured with.
type Options struct {
	Extensions []string `mapstructure:"ext"`
	MaxWidth   int      `mapstructure:"max-width"`
	TabWidth   int      `mapstructure:"tab-width"`
	NoColor    bool     `mapstructure:"no-color"`
	Summary    bool     `mapstructure:"summary"`
	Verbose    bool     `mapstructure:"verbose"`
}

// AddFlags registers the option flags on flags. The extension allow-list is
// only meaningful when the caller walks directories, so it is registered
// only when walk is set.
func AddFlags(flags *pflag.FlagSet, walk bool) {
	flags.Int(KeyMaxWidth, DefaultMaxWidth, "flag lines wider than this many columns")
	flags.Int(KeyTabWidth, DefaultTabWidth, "columns between tab stops")
	flags.Bool(KeyNoColor, DefaultNoColor, "disable colored output")
	flags.Bool(KeySummary, DefaultSummary, "print a per-file summary table after a successful run")
	flags.BoolP(KeyVerbose, "v", DefaultVerbose, "verbose diagnostics on stderr")

	if walk {
		flags.StringSlice(KeyExt, DefaultExtensions(), "file extensions collected when no files are given")
	}
}

// Load resolves Options from the parsed flag set. Only flags are consulted:
// no config file is read and the environment is ignored.
func Load(flags *pflag.FlagSet) (*Options, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	bindErr := viperCfg.BindPFlags(flags)
	if bindErr != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	var opts Options

	unmarshalErr := viperCfg.Unmarshal(&opts)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", unmarshalErr)
	}

	opts.Extensions = discovery.NormalizeExtensions(opts.Extensions)

	validateErr := validate(&opts)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid options: %w", validateErr)
	}

	return &opts, nil
}

// setDefaults sets default option values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault(KeyMaxWidth, DefaultMaxWidth)
	viperCfg.SetDefault(KeyTabWidth, DefaultTabWidth)
	viperCfg.SetDefault(KeyExt, DefaultExtensions())
	viperCfg.SetDefault(KeyNoColor, DefaultNoColor)
	viperCfg.SetDefault(KeySummary, DefaultSummary)
	viperCfg.SetDefault(KeyVerbose, DefaultVerbose)
}

func validate(opts *Options) error {
	if opts.MaxWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxWidth, opts.MaxWidth)
	}

	if opts.TabWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTabWidth, opts.TabWidth)
	}

	if len(opts.Extensions) == 0 {
		return ErrEmptyExtensions
	}

	return nil
}
