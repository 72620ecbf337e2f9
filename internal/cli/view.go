package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planvas/planvas/internal/planfile"
	"github.com/planvas/planvas/internal/stream"
	"github.com/planvas/planvas/internal/tui"
	"github.com/planvas/planvas/internal/tui/views"
)

var viewCmd = &cobra.Command{
	Use:   "view <plan-name>",
	Short: "Open a stored plan on the canvas, following its event log live",
	Long: `Open a stored plan on the canvas. The canvas tails the plan's
events.jsonl: history already in the log is applied first, and new events
appended by a running producer show up as they land.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	dir, err := planfile.FindPlanDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, closer, err := Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	opts := tui.Options{Canvas: &views.CanvasOptions{
		PlanDir:   dir,
		Feed:      stream.NewTail(dir),
		FeedLabel: "live",
		Reset:     true,
	}}
	if err := tui.Run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
