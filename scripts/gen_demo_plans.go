// Command gen_demo_plans installs every demo scenario into .planvas/plans/.
//
// Usage:
//
//	go run ./scripts/gen_demo_plans.go
//
// Handy for exercising 'planvas plans', 'view' and 'replay' against a
// populated store without a real producer.
package main

import (
	"fmt"
	"os"

	"github.com/planvas/planvas/internal/demo"
)

func main() {
	for _, scenario := range demo.Scenarios {
		dir, err := demo.Install(scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "install %s: %v\n", scenario, err)
			os.Exit(1)
		}
		fmt.Printf("installed %s at %s\n", scenario, dir)
	}
}
