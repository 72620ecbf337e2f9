package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/planfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <plan-name>",
	Short: "Check a plan snapshot for structural problems",
	Long: `Validate a stored plan.json: duplicate node ids, dangling edge
references, duplicate edges, and cycles. The canvas tolerates all of these
by degrading, so validate is how a producer finds out it is emitting a
broken graph.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	dir, err := planfile.FindPlanDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := planfile.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	findings := graph.Lint(p)
	if len(findings) == 0 {
		color.Green("✓ %s: %d nodes, %d edges, no problems", p.Name, len(p.Nodes), len(p.Edges))
		return
	}

	color.Red("✗ %s: %d problem(s)", p.Name, len(findings))
	for _, f := range findings {
		fmt.Printf("  - %s\n", f)
	}
	os.Exit(1)
}
