package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/linewidth/pkg/config"
	"github.com/Sumatoshi-tech/linewidth/pkg/observability"
)

// NewFileCommand creates the single-file command. Without an argument it
// prints its usage to standard output and succeeds without touching any file.
func NewFileCommand() *cobra.Command {
	lr := &lintRunner{root: ".", mode: observability.ModeFile}

	cmd := newCommand(
		"linewidth-file <filename>",
		"Report lines of one file wider than the column limit",
		`Report lines of a single file whose width, with tabs expanded to the next
tab stop, exceeds the column limit.`,
	)
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())

			return nil
		}

		return lr.run(cmd, args)
	}

	config.AddFlags(cmd.Flags(), false)

	return cmd
}
