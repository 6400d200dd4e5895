package session

import "fmt"

// EventKind is the closed set of interaction events
type EventKind int

const (
	EventNavigateUp EventKind = iota
	EventNavigateDown
	EventConfirm
	EventCancel
	EventSwitchField
	EventTextChar
	EventBackspace
	EventQuit
	EventAcceptWithOutput
	EventAcceptWithoutOutput
	EventNewPair
)

var eventNames = map[EventKind]string{
	EventNavigateUp:          "navigate-up",
	EventNavigateDown:        "navigate-down",
	EventConfirm:             "confirm",
	EventCancel:              "cancel",
	EventSwitchField:         "switch-field",
	EventTextChar:            "text-char",
	EventBackspace:           "backspace",
	EventQuit:                "quit",
	EventAcceptWithOutput:    "accept-with-output",
	EventAcceptWithoutOutput: "accept-without-output",
	EventNewPair:             "new-pair",
}

// String returns the event name
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is a single interaction delivered by the input source
type Event struct {
	Kind EventKind
	Char rune // Only meaningful for EventTextChar
}

// String returns the event name, including the character for text input
func (e Event) String() string {
	if e.Kind == EventTextChar {
		return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
	}
	return e.Kind.String()
}

// On returns an event of the given kind
func On(kind EventKind) Event {
	return Event{Kind: kind}
}

// TextChar returns a text input event for r
func TextChar(r rune) Event {
	return Event{Kind: EventTextChar, Char: r}
}
