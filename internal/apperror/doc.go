// Package apperror defines the error types shared by the kvpairs packages.
//
// There are only two kinds of error in the application:
//
//   - InvariantViolation: a programmer error, such as querying an empty menu
//     or toggling edit focus while nothing is being edited. These are caught
//     at construction time and abort startup rather than being handled
//     mid-session.
//   - SerializationFailure: the pair collection could not be encoded or
//     written. The CLI reports it as a terminal error box and exits non-zero.
//
// Unmapped key presses are not errors. The session ignores them.
//
// # Usage Example
//
//	if _, err := menu.New(nil); apperror.IsInvariantViolation(err) {
//	    // abort startup
//	}
package apperror
