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

var replaySpeed float64

var replayCmd = &cobra.Command{
	Use:   "replay <plan-name>",
	Short: "Replay a recorded event log on the canvas",
	Long: `Replay a stored plan's events.jsonl with its original pacing,
scaled by --speed. The canvas starts from a pristine snapshot and the
events drive it exactly as the live feed did.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0,
		"Playback speed multiplier (2 = twice as fast)")
}

func runReplay(cmd *cobra.Command, args []string) {
	dir, err := planfile.FindPlanDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events, err := stream.NewLog(dir).ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(events) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s has no recorded events\n", args[0])
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
		Feed:      stream.NewReplayer(events, replaySpeed),
		FeedLabel: fmt.Sprintf("replay ×%g", replaySpeed),
		Reset:     true,
	}}
	if err := tui.Run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
