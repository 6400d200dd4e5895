// Package tui implements the terminal user interface for kvpairs.
//
// The package is a thin adapter between Bubble Tea and the session state
// machine. AppModel translates key presses into session events using
// per-screen bindings from bubbles/key, applies them one at a time, and
// renders a Snapshot of the state with Lip Gloss. No interaction logic lives
// here: if a key means nothing on the current screen, Translate returns no
// events and the state is untouched.
//
// # Screens
//
//   - Main: pair listing, action menu (↑/↓ to move, enter to select),
//     n for a new pair, esc/q to quit
//   - Editing: key and value fields in a popup, tab switches, enter saves,
//     esc cancels
//   - Confirm exit: y prints the pairs and quits, n/q quits silently,
//     e starts another pair, esc returns to the menu
//
// ctrl+c aborts from anywhere without printing anything.
//
// # Usage Example
//
//	state, _ := session.New(session.DefaultOptions())
//	outcome, err := tui.Run(state, output.FormatJSON)
//	if err != nil {
//	    return err
//	}
//	if outcome == session.ExitWithOutput {
//	    return output.NewEmitter(os.Stdout, output.FormatJSON).Emit(state.Pairs())
//	}
package tui
