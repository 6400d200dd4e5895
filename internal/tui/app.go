package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kvpairs/internal/output"
	"github.com/muurk/kvpairs/internal/session"
)

// AppModel adapts the session state machine to Bubble Tea
type AppModel struct {
	State  *session.State
	Format output.Format // Named in the exit prompt

	// Set when ctrl+c ends the program; no output is emitted
	Aborted bool

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys KeyMap
}

// NewAppModel creates the model for state
func NewAppModel(state *session.State, format output.Format) AppModel {
	return AppModel{
		State:  state,
		Format: format,
		Help:   help.New(),
		Keys:   DefaultKeyMap(),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages, routing key presses into the session
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global abort handler
		if key.Matches(msg, m.Keys.Abort) {
			m.Aborted = true
			return m, tea.Quit
		}

		for _, ev := range m.Keys.Translate(m.State.Screen(), msg) {
			if m.State.Apply(ev).Terminal() {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// Outcome reports how the program ended
func (m AppModel) Outcome() session.Outcome {
	if m.Aborted {
		return session.ExitWithoutOutput
	}
	return m.State.Outcome()
}
