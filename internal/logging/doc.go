// Package logging provides structured logging for kvpairs.
//
// This package wraps zap logger with convenience functions for the events the
// interaction loop produces: screen transitions, committed pairs, ignored
// keys and output emission.
//
// # Log Levels
//
//   - Debug: Every applied or ignored event
//   - Info: Screen transitions, commits, output emission
//   - Warn: Rejected commits, placeholder actions
//   - Error: Serialization and startup failures
//
// # Destination
//
// The TUI owns stdout, so logs are never written there. When a level is set
// the logger appends to the file given by --log-file or KVPAIRS_LOG_FILE,
// falling back to kvpairs.log in the working directory.
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/kvpairs.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// When neither a level argument nor KVPAIRS_LOG_LEVEL is set, logging is
// silent (zap.NewNop).
package logging
