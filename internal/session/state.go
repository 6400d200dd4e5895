package session

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/muurk/kvpairs/internal/editor"
	"github.com/muurk/kvpairs/internal/logging"
	"github.com/muurk/kvpairs/internal/menu"
)

// Notices shown in the status line
const (
	NoticePlaceholder = "%s is not available yet"
	NoticeEmptyKey    = "key cannot be empty"
)

// Options configures a new State
type Options struct {
	Marker         string // Selection marker for menu labels
	AllowEmptyKeys bool   // Commit pairs whose key is empty
}

// DefaultOptions returns the options used when no preferences are set
func DefaultOptions() Options {
	return Options{Marker: menu.DefaultMarker}
}

// Pair is a committed key/value pair
type Pair struct {
	Key   string
	Value string
}

// State is the interaction state machine
type State struct {
	screen  Screen
	menu    *menu.Model
	buffer  editor.Buffer
	pairs   map[string]string
	notice  string
	outcome Outcome
	opts    Options
}

// New creates a state on the main screen with the default menu
func New(opts Options) (*State, error) {
	m, err := menu.Default(opts.Marker)
	if err != nil {
		return nil, fmt.Errorf("failed to build main menu: %w", err)
	}
	return &State{
		screen: ScreenMain,
		menu:   m,
		pairs:  make(map[string]string),
		opts:   opts,
	}, nil
}

// Apply processes a single event and reports what the loop should do next.
// Events with no meaning on the current screen leave the state unchanged.
func (s *State) Apply(ev Event) Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}

	s.notice = ""
	from := s.screen
	handled := false

	switch s.screen {
	case ScreenMain:
		handled = s.applyMain(ev)
	case ScreenEditing:
		handled = s.applyEditing(ev)
	case ScreenConfirmExit:
		handled = s.applyConfirmExit(ev)
	}

	if !handled {
		logging.LogIgnored(s.screen.String(), ev.String())
		return Continue
	}
	if s.screen != from {
		logging.LogTransition(from.String(), s.screen.String(), ev.String())
	}
	return s.outcome
}

func (s *State) applyMain(ev Event) bool {
	switch ev.Kind {
	case EventNavigateDown:
		s.menu.SelectNext()
	case EventNavigateUp:
		s.menu.SelectPrevious()
	case EventConfirm:
		item, err := s.menu.Current()
		if err != nil {
			// New always builds a non-empty menu
			return false
		}
		if item.Action == menu.ActionExit {
			s.screen = ScreenConfirmExit
			return true
		}
		s.notice = fmt.Sprintf(NoticePlaceholder, item.Label)
		logging.Warn("Placeholder action selected", zap.String("action", item.Action.String()))
	case EventQuit:
		s.screen = ScreenConfirmExit
	case EventNewPair:
		s.beginEditing()
	default:
		return false
	}
	return true
}

func (s *State) applyEditing(ev Event) bool {
	switch ev.Kind {
	case EventSwitchField:
		if err := s.buffer.ToggleFocus(); err != nil {
			return false
		}
	case EventTextChar:
		s.buffer.PushChar(ev.Char)
	case EventBackspace:
		s.buffer.PopChar()
	case EventConfirm:
		s.commit()
	case EventCancel:
		s.buffer.Reset()
		s.screen = ScreenMain
	default:
		return false
	}
	return true
}

func (s *State) applyConfirmExit(ev Event) bool {
	switch ev.Kind {
	case EventAcceptWithOutput:
		s.outcome = ExitWithOutput
	case EventAcceptWithoutOutput:
		s.outcome = ExitWithoutOutput
	case EventNewPair:
		s.beginEditing()
	case EventCancel:
		s.screen = ScreenMain
	default:
		return false
	}
	return true
}

func (s *State) beginEditing() {
	s.buffer.Begin()
	s.screen = ScreenEditing
}

// commit moves the buffer into the collection and returns to the main screen.
// An empty key is refused unless AllowEmptyKeys is set; the user stays on
// the editing screen with their input intact.
func (s *State) commit() {
	if s.buffer.Key() == "" && !s.opts.AllowEmptyKeys {
		s.notice = NoticeEmptyKey
		logging.Warn("Commit rejected", zap.String("reason", NoticeEmptyKey))
		return
	}

	key, value := s.buffer.TakePair()
	_, overwritten := s.pairs[key]
	s.pairs[key] = value
	s.buffer.Reset()
	s.screen = ScreenMain
	logging.LogCommit(key, overwritten, len(s.pairs))
}

// Screen returns the current screen
func (s *State) Screen() Screen {
	return s.screen
}

// Focus returns the focused edit field, or FieldNone outside the editing screen
func (s *State) Focus() editor.Field {
	if s.screen != ScreenEditing {
		return editor.FieldNone
	}
	return s.buffer.Focus()
}

// Outcome returns the last terminal outcome, or Continue while running
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Notice returns the status message produced by the last event, if any
func (s *State) Notice() string {
	return s.notice
}

// Pairs returns a copy of the pair collection
func (s *State) Pairs() map[string]string {
	pairs := make(map[string]string, len(s.pairs))
	for k, v := range s.pairs {
		pairs[k] = v
	}
	return pairs
}

// Len returns the number of committed pairs
func (s *State) Len() int {
	return len(s.pairs)
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Screen     Screen
	Focus      editor.Field
	MenuLabels []string
	MenuIndex  int
	Key        string
	Value      string
	Pairs      []Pair // Sorted by key
	Notice     string
}

// Snapshot returns a copy of the current state for rendering
func (s *State) Snapshot() Snapshot {
	pairs := make([]Pair, 0, len(s.pairs))
	for k, v := range s.pairs {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })

	return Snapshot{
		Screen:     s.screen,
		Focus:      s.Focus(),
		MenuLabels: s.menu.DisplayLabels(),
		MenuIndex:  s.menu.Index(),
		Key:        s.buffer.Key(),
		Value:      s.buffer.Value(),
		Pairs:      pairs,
		Notice:     s.notice,
	}
}
