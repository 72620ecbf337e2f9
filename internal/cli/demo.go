package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/planvas/planvas/internal/demo"
	"github.com/planvas/planvas/internal/tui"
	"github.com/planvas/planvas/internal/tui/views"
)

var (
	demoScenario string
	demoSpeed    float64
	demoInstall  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the built-in demo plan execute on the canvas",
	Long: `Play a scripted execution of the built-in research plan. No agent
required; the demo drives the same event path a live execution does.

Scenarios:
  success  every node completes (default)
  failure  a node fails with a pending instruction, then reruns

With --install the demo plan and its full event log are written to
.planvas/plans/ instead, so 'planvas plans', 'view' and 'replay' have
something to work on.`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoScenario, "scenario", demo.ScenarioSuccess,
		"Demo scenario: success, failure")
	demoCmd.Flags().Float64Var(&demoSpeed, "speed", 1.0,
		"Playback speed multiplier (2 = twice as fast)")
	demoCmd.Flags().BoolVar(&demoInstall, "install", false,
		"Write the demo plan and event log to .planvas/plans/ instead of playing")
}

func runDemo(cmd *cobra.Command, args []string) {
	if demoInstall {
		dir, err := demo.Install(demoScenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		color.Green("✓ demo plan installed at %s", dir)
		return
	}

	plan, replayer, err := demo.Feed(demoScenario, demoSpeed)
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
		Plan:      plan,
		Feed:      replayer,
		FeedLabel: "demo",
	}}
	if err := tui.Run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
