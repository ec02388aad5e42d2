package plancmder

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressMsg carries one progress callback message into the TUI.
type progressMsg string

// finishedMsg signals that the generation goroutine has settled.
type finishedMsg struct{}

type planModel struct {
	spinner     spinner.Model
	step        string
	done        bool
	interrupted bool
}

func newPlanModel() planModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return planModel{
		spinner: s,
		step:    "🚀 Generating your itinerary...",
	}
}

func (m planModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.step = string(msg)
		return m, nil

	case finishedMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m planModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	return m.spinner.View() + " " + m.step + "\n"
}
