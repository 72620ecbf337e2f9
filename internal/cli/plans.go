package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/planvas/planvas/internal/planfile"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List stored plans",
	Long:  `List every plan under .planvas/plans/ with node counts and completion state.`,
	RunE:  runPlans,
}

func runPlans(cmd *cobra.Command, args []string) error {
	infos, err := planfile.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No plans stored. Run 'planvas demo --install' to create one.")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNODES\tSTATE\tDIR")
	for _, info := range infos {
		state := yellow(fmt.Sprintf("%d/%d done", info.Completed, info.Nodes))
		switch {
		case info.Errors > 0:
			state = red(fmt.Sprintf("%d failed", info.Errors))
		case info.Completed == info.Nodes && info.Nodes > 0:
			state = green("completed")
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", info.Name, info.Nodes, state, info.Dir)
	}
	return w.Flush()
}
