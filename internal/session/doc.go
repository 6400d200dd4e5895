// Package session implements the interaction state machine at the heart of
// kvpairs.
//
// A State owns everything that changes while the program runs: the current
// screen, the main menu, the edit buffer and the collection of committed
// key/value pairs. Input arrives as discrete Event values and is applied one
// at a time with Apply, which returns an Outcome telling the caller whether to
// keep going or to exit (with or without printing the pairs).
//
// # Screens
//
//	Main         -- navigate the menu, start a new pair, or ask to quit
//	Editing      -- type a key and a value, tab between them, enter commits
//	ConfirmExit  -- choose to print the pairs, quit silently, or add another
//
// Events that mean nothing on the current screen are ignored. Free-form
// keyboard input produces plenty of those and none of them are errors.
//
// # Rendering
//
// Renderers read a Snapshot, which is a copy of the state and cannot be used
// to mutate it. Pairs returns a copy of the collection for the serializer.
//
// # Thread Safety
//
// State is not safe for concurrent use. The Bubble Tea update loop delivers
// one message at a time, which is the only access pattern required.
package session
