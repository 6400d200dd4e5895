package menu

import (
	"fmt"
	"strings"

	"github.com/muurk/kvpairs/internal/apperror"
)

// DefaultMarker is prefixed to the label of the selected item
const DefaultMarker = "✨ "

// Action identifies what confirming a menu item does
type Action int

const (
	// ActionSync is reserved for database synchronisation
	ActionSync Action = iota
	// ActionCredentials is reserved for credential management
	ActionCredentials
	// ActionExit asks the user how to leave the application
	ActionExit
)

// String returns a human-readable name for the action
func (a Action) String() string {
	switch a {
	case ActionSync:
		return "sync"
	case ActionCredentials:
		return "credentials"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Placeholder reports whether the action has no handler yet
func (a Action) Placeholder() bool {
	return a == ActionSync || a == ActionCredentials
}

// Item is a single selectable menu entry
type Item struct {
	Label    string // Base label, never decorated
	Action   Action
	Selected bool
}

// Model is an ordered menu with exactly one selected item
type Model struct {
	items  []Item
	index  int
	marker string
}

// New creates a menu from items with the first item selected.
// An empty item list is an invariant violation.
func New(marker string, items ...Item) (*Model, error) {
	if len(items) == 0 {
		return nil, apperror.NewInvariantViolation("menu.New", "menu requires at least one item")
	}

	m := &Model{
		items:  make([]Item, len(items)),
		marker: marker,
	}
	for i, item := range items {
		item.Label = Strip(marker, item.Label)
		item.Selected = i == 0
		m.items[i] = item
	}
	return m, nil
}

// Default creates the main menu: synchronise, credentials, exit
func Default(marker string) (*Model, error) {
	return New(marker,
		Item{Label: "Synchronise Databases", Action: ActionSync},
		Item{Label: "Credentials", Action: ActionCredentials},
		Item{Label: "Exit", Action: ActionExit},
	)
}

// SelectNext moves the selection forward, wrapping to the first item
func (m *Model) SelectNext() {
	if len(m.items) == 0 {
		return
	}
	m.moveTo((m.index + 1) % len(m.items))
}

// SelectPrevious moves the selection backward, wrapping to the last item
func (m *Model) SelectPrevious() {
	if len(m.items) == 0 {
		return
	}
	next := m.index - 1
	if next < 0 {
		next = len(m.items) - 1
	}
	m.moveTo(next)
}

func (m *Model) moveTo(next int) {
	m.items[m.index].Selected = false
	m.items[next].Selected = true
	m.index = next
}

// Current returns the selected item
func (m *Model) Current() (Item, error) {
	if len(m.items) == 0 {
		return Item{}, apperror.NewInvariantViolation("menu.Current", "menu has no items")
	}
	return m.items[m.index], nil
}

// Index returns the selected index
func (m *Model) Index() int {
	return m.index
}

// Len returns the number of items
func (m *Model) Len() int {
	return len(m.items)
}

// Marker returns the selection marker
func (m *Model) Marker() string {
	return m.marker
}

// Items returns a copy of the menu items
func (m *Model) Items() []Item {
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// DisplayLabel returns the label of item i as it should be shown
func (m *Model) DisplayLabel(i int) string {
	item := m.items[i]
	if item.Selected {
		return Decorate(m.marker, item.Label)
	}
	return Strip(m.marker, item.Label)
}

// DisplayLabels returns every item's display label in order
func (m *Model) DisplayLabels() []string {
	labels := make([]string, len(m.items))
	for i := range m.items {
		labels[i] = m.DisplayLabel(i)
	}
	return labels
}

// Decorate prefixes label with marker unless it already starts with it
func Decorate(marker, label string) string {
	if marker == "" || strings.HasPrefix(label, marker) {
		return label
	}
	return marker + label
}

// Strip removes one leading marker from label
func Strip(marker, label string) string {
	if marker == "" {
		return label
	}
	return strings.TrimPrefix(label, marker)
}
