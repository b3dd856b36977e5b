package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/linewidth/pkg/config"
	"github.com/Sumatoshi-tech/linewidth/pkg/observability"
)

// NewBatchCommand creates the batch command: lint the given files, or every
// file under the current directory with an allowed extension.
func NewBatchCommand() *cobra.Command {
	return newBatchCommand(".")
}

func newBatchCommand(root string) *cobra.Command {
	lr := &lintRunner{root: root, mode: observability.ModeBatch}

	cmd := newCommand(
		"linewidth [file ...]",
		"Report lines wider than the column limit",
		`Report lines whose width, with tabs expanded to the next tab stop,
exceeds the column limit.

With no arguments every .c and .h file below the current directory is
checked (see --ext). Otherwise exactly the given files are checked, in order.
The run stops at the first file that cannot be read.`,
	)
	cmd.Args = cobra.ArbitraryArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lr.run(cmd, args)
	}

	config.AddFlags(cmd.Flags(), true)

	return cmd
}
