package session

import "fmt"

// Screen is the top-level interaction mode
type Screen int

const (
	ScreenMain Screen = iota
	ScreenEditing
	ScreenConfirmExit
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenEditing:
		return "editing"
	case ScreenConfirmExit:
		return "confirm-exit"
	default:
		return fmt.Sprintf("Screen(%d)", s)
	}
}

// Outcome tells the event loop what to do after an event
type Outcome int

const (
	// Continue keeps the loop running
	Continue Outcome = iota
	// ExitWithOutput ends the loop and emits the pair collection
	ExitWithOutput
	// ExitWithoutOutput ends the loop silently
	ExitWithoutOutput
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case ExitWithOutput:
		return "exit-with-output"
	case ExitWithoutOutput:
		return "exit-without-output"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Terminal reports whether the outcome ends the event loop
func (o Outcome) Terminal() bool {
	return o == ExitWithOutput || o == ExitWithoutOutput
}
