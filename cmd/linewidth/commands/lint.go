// Package commands implements the cobra commands of the linewidth binaries.
// Both front ends parse their arguments differently and then share one lint
// routine.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/linewidth/pkg/config"
	"github.com/Sumatoshi-tech/linewidth/pkg/discovery"
	"github.com/Sumatoshi-tech/linewidth/pkg/lint"
	"github.com/Sumatoshi-tech/linewidth/pkg/observability"
	"github.com/Sumatoshi-tech/linewidth/pkg/report"
	"github.com/Sumatoshi-tech/linewidth/pkg/version"
)

// ErrAborted is returned once a file that could not be read has been reported
// on standard output. Callers should exit with a failure status without
// printing it again.
var ErrAborted = errors.New("lint aborted")

// lintRunner holds what differs between the front ends.
type lintRunner struct {
	root string
	mode observability.Mode
}

func (lr *lintRunner) run(cmd *cobra.Command, explicit []string) error {
	opts, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cmd.ErrOrStderr(), opts.Verbose, lr.mode)
	printer := report.NewPrinter(cmd.OutOrStdout(), report.NewPalette(opts.NoColor))

	paths := discovery.NewResolver(lr.root, opts.Extensions, logger).Resolve(explicit)

	linter := lint.NewLinter(lint.Options{
		MaxWidth: opts.MaxWidth,
		TabStop:  opts.TabWidth,
	}, printer, logger)

	result, err := linter.Run(paths)
	if err != nil {
		printer.Failure(err)

		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	if opts.Summary {
		printer.Summary(result)
	}

	logger.Debug("run completed", "files", len(result.Files), "errors", result.TotalErrors())

	return nil
}

func newCommand(use, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
