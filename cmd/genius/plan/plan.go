package plancmder

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/numaan0/travel-genius/pkg/agent"
	"github.com/numaan0/travel-genius/pkg/logger"
	"github.com/numaan0/travel-genius/pkg/trip"
)

const planLongDesc string = `Generate a complete multi-day itinerary for a destination.

The agent plans day by day within your budget and travel personality
(adventure, luxury, cultural or party).

Examples:
  genius plan Paris --budget 45000 --days 7
  genius plan "New Delhi" --budget 20000 --days 3 --group 2 --personality cultural --pref museums --pref "street food"`

const planShortDesc string = "Generate a travel itinerary"

type planCommander struct {
	agentURL    string
	budget      int
	days        int
	groupSize   int
	personality string
	preferences []string
	plain       bool
	debug       bool
}

func NewPlanCmd() *cobra.Command {
	cmder := &planCommander{}

	cmd := &cobra.Command{
		Use:   "plan <destination>",
		Short: planShortDesc,
		Long:  planLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&cmder.agentURL, "agent", agent.BaseURLFromEnv(), "Agent service base URL")
	cmd.Flags().IntVarP(&cmder.budget, "budget", "b", 0, "Total budget (required)")
	cmd.Flags().IntVarP(&cmder.days, "days", "d", 0, "Trip length in days (required)")
	cmd.Flags().IntVarP(&cmder.groupSize, "group", "g", 1, "Number of travelers")
	cmd.Flags().StringVarP(&cmder.personality, "personality", "p", "adventure", "Travel personality (adventure, luxury, cultural, party)")
	cmd.Flags().StringArrayVar(&cmder.preferences, "pref", nil, "Preference, repeatable")
	cmd.Flags().BoolVar(&cmder.plain, "plain", false, "Disable the progress spinner and styled output")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	cobra.CheckErr(cmd.MarkFlagRequired("budget"))
	cobra.CheckErr(cmd.MarkFlagRequired("days"))

	return cmd
}

func (c *planCommander) run(ctx context.Context, cmd *cobra.Command, destination string) error {
	req := agent.TripRequest{
		Destination: destination,
		Budget:      c.budget,
		Days:        c.days,
		GroupSize:   c.groupSize,
		Personality: c.personality,
		Preferences: c.preferences,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	log := zap.NewNop()
	if c.debug {
		log = logger.NewLogger(true)
		defer log.Sync()
	}
	client := agent.NewClient(agent.Config{BaseURL: c.agentURL}, log)

	interactive := !c.plain && term.IsTerminal(int(os.Stdout.Fd()))

	var (
		result *trip.TravelItinerary
		err    error
	)
	if interactive {
		result, err = c.generateWithSpinner(ctx, cmd, client, req)
	} else {
		result, err = client.GenerateItineraryStream(ctx, req, agent.Callbacks[*trip.TravelItinerary]{
			OnProgress: func(message string) {
				fmt.Fprintln(cmd.ErrOrStderr(), message)
			},
		})
	}
	if err != nil {
		return err
	}
	if result == nil {
		// Canceled; nothing to render.
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderItinerary(result, req, c.plain))
	return nil
}

// generateWithSpinner drives the generation behind a terminal spinner that
// follows the transport's progress callbacks.
func (c *planCommander) generateWithSpinner(ctx context.Context, cmd *cobra.Command, client *agent.Client, req agent.TripRequest) (*trip.TravelItinerary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newPlanModel(), tea.WithOutput(cmd.ErrOrStderr()))

	var (
		result *trip.TravelItinerary
		genErr error
	)
	go func() {
		result, genErr = client.GenerateItineraryStream(ctx, req, agent.Callbacks[*trip.TravelItinerary]{
			OnProgress: func(message string) {
				program.Send(progressMsg(message))
			},
		})
		program.Send(finishedMsg{})
	}()

	final, err := program.Run()
	if err != nil {
		cancel()
		return nil, err
	}

	if model, ok := final.(planModel); ok && model.interrupted {
		// User bailed out; abort the in-flight call and resolve silently.
		cancel()
		return nil, nil
	}

	return result, genErr
}
