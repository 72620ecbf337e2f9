// Package cli wires the planvas command-line surface. The bare binary
// launches the TUI; subcommands cover the non-interactive operations.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/planvas/planvas/internal/config"
	"github.com/planvas/planvas/internal/logging"
	"github.com/planvas/planvas/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "planvas",
	Short:   "Plan canvas for agent execution graphs",
	Long:    `Planvas renders an agent's execution plan as a directed graph on a scrollable canvas and keeps it synchronized with the execution's event stream.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Setup loads the layered configuration and routes logging to the
// configured file. The closer flushes the log on exit.
func Setup() (*config.Config, io.Closer, error) {
	cfg, err := config.NewLoader(nil).Load()
	if err != nil {
		return nil, nil, err
	}
	closer := logging.Setup(cfg.Log)
	return cfg, closer, nil
}
