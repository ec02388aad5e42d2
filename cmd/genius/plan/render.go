package plancmder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/numaan0/travel-genius/pkg/agent"
	"github.com/numaan0/travel-genius/pkg/trip"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dayStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	costStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	activityStyle = lipgloss.NewStyle().Bold(true)
	detailStyle   = lipgloss.NewStyle().Faint(true)
)

// renderItinerary formats a generated itinerary for the terminal. With plain
// set the lipgloss styles are skipped so output pipes cleanly.
func renderItinerary(it *trip.TravelItinerary, req agent.TripRequest, plain bool) string {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	b.WriteString(style(titleStyle, it.TripTitle))
	b.WriteString("\n")
	b.WriteString(style(costStyle, fmt.Sprintf("Estimated total: ₹%d", it.TotalEstimatedCost)))
	b.WriteString("\n\n")

	breakdown := trip.AllocateBudget(req.Budget)
	b.WriteString(style(detailStyle, fmt.Sprintf(
		"Budget split — accommodation ₹%d · activities ₹%d · transport ₹%d · food ₹%d",
		breakdown.Accommodation, breakdown.Activities, breakdown.Transport, breakdown.Food,
	)))
	b.WriteString("\n")

	for _, day := range it.DailyPlans {
		b.WriteString("\n")
		header := fmt.Sprintf("Day %d", day.Day)
		if day.WeatherSummary.Condition != "" {
			header += " — " + day.WeatherSummary.Condition
		}
		b.WriteString(style(dayStyle, header))
		b.WriteString("\n")

		for _, act := range day.Activities {
			line := act.Title
			if act.Timing != "" {
				line += "  (" + act.Timing + ")"
			}
			b.WriteString("  " + style(activityStyle, line))
			b.WriteString("  " + style(costStyle, fmt.Sprintf("₹%d", act.Cost)))
			b.WriteString("\n")
			if act.Description != "" {
				b.WriteString("    " + style(detailStyle, act.Description))
				b.WriteString("\n")
			}
		}
	}

	if len(it.AIRecommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(style(dayStyle, "Recommendations"))
		b.WriteString("\n")
		for _, rec := range it.AIRecommendations {
			b.WriteString("  • " + rec + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
