package main

import (
	"os"

	"github.com/spf13/cobra"

	askcmder "github.com/numaan0/travel-genius/cmd/genius/ask"
	plancmder "github.com/numaan0/travel-genius/cmd/genius/plan"
)

const rootLongDesc string = `Travel Genius command line client.

Talks to the travel agent service directly, without going through
the gateway. Set ADK_SERVICE_URL or pass --agent to point at a
non-local agent.`

func main() {
	root := &cobra.Command{
		Use:          "genius",
		Short:        "AI travel planner CLI",
		Long:         rootLongDesc,
		SilenceUsage: true,
	}

	root.AddCommand(plancmder.NewPlanCmd())
	root.AddCommand(askcmder.NewAskCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
