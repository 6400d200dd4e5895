package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/kvpairs/internal/logging"
	"github.com/muurk/kvpairs/internal/output"
	"github.com/muurk/kvpairs/internal/session"
)

// Run shows the interactive editor until the user leaves and returns how
// they left. The UI draws on stderr and the terminal is restored before Run
// returns, so the caller can write to stdout safely.
func Run(state *session.State, format output.Format, opts ...tea.ProgramOption) (session.Outcome, error) {
	model := NewAppModel(state, format)
	// Stdout is reserved for the emitted pair line, so frames go to stderr.
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}, opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return session.ExitWithoutOutput, fmt.Errorf("terminal UI failed: %w", err)
	}

	app, ok := final.(AppModel)
	if !ok {
		return session.ExitWithoutOutput, fmt.Errorf("unexpected final model %T", final)
	}
	logging.Info("Session ended",
		zap.String("outcome", app.Outcome().String()),
		zap.Int("pairs", state.Len()),
	)
	return app.Outcome(), nil
}
