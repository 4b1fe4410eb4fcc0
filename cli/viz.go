// ABOUTME: Visualization CLI commands
// ABOUTME: Renders the automation event dependency graph
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/careops/automation"
)

// VizGraphAutomationCommand renders the event dependency graph as DOT.
func VizGraphAutomationCommand(args []string) error {
	fs := flag.NewFlagSet("viz graph automation", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	dot, err := automation.GenerateGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
