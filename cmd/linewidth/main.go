// Package main provides the entry point for the linewidth batch CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/linewidth/cmd/linewidth/commands"
)

func main() {
	err := commands.NewBatchCommand().Execute()
	if err != nil {
		if !errors.Is(err, commands.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
