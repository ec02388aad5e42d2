package askcmder

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/numaan0/travel-genius/pkg/agent"
	"github.com/numaan0/travel-genius/pkg/logger"
	"github.com/numaan0/travel-genius/pkg/trip"
)

const askLongDesc string = `Ask the travel assistant a free-form question.

Examples:
  genius ask "What's the best month to visit Goa?"
  genius ask what should I pack for day 2`

const askShortDesc string = "Ask the travel assistant a question"

type askCommander struct {
	agentURL string
	plain    bool
	debug    bool
}

func NewAskCmd() *cobra.Command {
	cmder := &askCommander{}

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: askShortDesc,
		Long:  askLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&cmder.agentURL, "agent", agent.BaseURLFromEnv(), "Agent service base URL")
	cmd.Flags().BoolVar(&cmder.plain, "plain", false, "Print the raw answer without markdown rendering")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *askCommander) run(ctx context.Context, cmd *cobra.Command, question string) error {
	log := zap.NewNop()
	if c.debug {
		log = logger.NewLogger(true)
		defer log.Sync()
	}
	client := agent.NewClient(agent.Config{BaseURL: c.agentURL}, log)

	answer, err := client.AskQuestionStream(ctx, question, agent.Callbacks[*trip.AssistantResponse]{
		OnProgress: func(message string) {
			fmt.Fprintln(cmd.ErrOrStderr(), message)
		},
	})
	if err != nil {
		return err
	}
	if answer == nil {
		// Canceled; nothing to print.
		return nil
	}

	if answer.Day != nil {
		tag := fmt.Sprintf("Day %d", *answer.Day)
		if answer.Activity != nil {
			tag += " · " + *answer.Activity
		}
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.renderAnswer(answer))
	return nil
}

// renderAnswer formats the assistant's answer, rendering markdown unless
// plain output is requested. Rendering failures fall back to the raw text.
func (c *askCommander) renderAnswer(answer *trip.AssistantResponse) string {
	text := strings.TrimSpace(answer.Answer)
	if answer.Emoji != "" {
		text = answer.Emoji + " " + text
	}
	if c.plain {
		return text
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}
