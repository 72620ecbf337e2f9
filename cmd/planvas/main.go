package main

import (
	"fmt"
	"os"

	"github.com/planvas/planvas/internal/cli"
	"github.com/planvas/planvas/internal/tui"
)

func main() {
	// No args: launch the TUI at the plan list. Otherwise route to the CLI.
	if len(os.Args) == 1 {
		cfg, closer, err := cli.Setup()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()

		if err := tui.Run(cfg, tui.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
