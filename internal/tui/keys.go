package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kvpairs/internal/session"
)

// mainKeyMap defines key bindings for the main screen
type mainKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	NewPair key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k mainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.NewPair, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k mainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NewPair, k.Quit},
	}
}

// editingKeyMap defines key bindings for the editing popup
type editingKeyMap struct {
	Switch    key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Switch, k.Commit}
}

// FullHelp returns keybindings for the expanded help view
func (k editingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Switch, k.Commit, k.Backspace},
	}
}

// exitKeyMap defines key bindings for the exit confirmation
type exitKeyMap struct {
	Output   key.Binding
	NoOutput key.Binding
	NewPair  key.Binding
	Back     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k exitKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Output, k.NoOutput, k.NewPair, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k exitKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Output, k.NoOutput, k.NewPair, k.Back},
	}
}

// KeyMap holds the bindings for every screen
type KeyMap struct {
	Main    mainKeyMap
	Editing editingKeyMap
	Exit    exitKeyMap
	Abort   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Main: mainKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter", "right"),
				key.WithHelp("enter/→", "select"),
			),
			NewPair: key.NewBinding(
				key.WithKeys("n"),
				key.WithHelp("n", "new pair"),
			),
			Quit: key.NewBinding(
				key.WithKeys("esc", "q", "e"),
				key.WithHelp("esc/q", "quit"),
			),
		},
		Editing: editingKeyMap{
			Switch: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "switch field"),
			),
			Commit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "save pair"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
			Backspace: key.NewBinding(
				key.WithKeys("backspace"),
				key.WithHelp("backspace", "delete"),
			),
		},
		Exit: exitKeyMap{
			Output: key.NewBinding(
				key.WithKeys("y"),
				key.WithHelp("y", "quit and print"),
			),
			NoOutput: key.NewBinding(
				key.WithKeys("n", "q"),
				key.WithHelp("n/q", "quit"),
			),
			NewPair: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "new pair"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// Translate maps a key press on screen to session events.
// Unbound keys yield no events, except typed text while editing.
func (k KeyMap) Translate(screen session.Screen, msg tea.KeyMsg) []session.Event {
	switch screen {
	case session.ScreenMain:
		switch {
		case key.Matches(msg, k.Main.Up):
			return events(session.EventNavigateUp)
		case key.Matches(msg, k.Main.Down):
			return events(session.EventNavigateDown)
		case key.Matches(msg, k.Main.Select):
			return events(session.EventConfirm)
		case key.Matches(msg, k.Main.NewPair):
			return events(session.EventNewPair)
		case key.Matches(msg, k.Main.Quit):
			return events(session.EventQuit)
		}

	case session.ScreenEditing:
		switch {
		case key.Matches(msg, k.Editing.Switch):
			return events(session.EventSwitchField)
		case key.Matches(msg, k.Editing.Commit):
			return events(session.EventConfirm)
		case key.Matches(msg, k.Editing.Cancel):
			return events(session.EventCancel)
		case key.Matches(msg, k.Editing.Backspace):
			return events(session.EventBackspace)
		}
		return textEvents(msg)

	case session.ScreenConfirmExit:
		switch {
		case key.Matches(msg, k.Exit.Output):
			return events(session.EventAcceptWithOutput)
		case key.Matches(msg, k.Exit.NoOutput):
			return events(session.EventAcceptWithoutOutput)
		case key.Matches(msg, k.Exit.NewPair):
			return events(session.EventNewPair)
		case key.Matches(msg, k.Exit.Back):
			return events(session.EventCancel)
		}
	}
	return nil
}

// helpFor returns the help bindings for screen
func (k KeyMap) helpFor(screen session.Screen) help.KeyMap {
	switch screen {
	case session.ScreenEditing:
		return k.Editing
	case session.ScreenConfirmExit:
		return k.Exit
	default:
		return k.Main
	}
}

func events(kind session.EventKind) []session.Event {
	return []session.Event{session.On(kind)}
}

// textEvents turns typed or pasted characters into text events
func textEvents(msg tea.KeyMsg) []session.Event {
	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, session.TextChar(r))
		}
		return evs
	case tea.KeySpace:
		return []session.Event{session.TextChar(' ')}
	}
	return nil
}
