// Package ui provides terminal output components for the kvpairs CLI.
//
// These components render outside the interactive editor, for the config
// subcommands and for errors reported after the editor has closed. They
// follow a "print once" pattern: a header box, a success or failure box, and
// a yes/no prompt for destructive actions.
//
// Output goes to a Printer, which wraps an io.Writer so commands can direct
// boxes to stdout or stderr. The emitted pair line never goes through this
// package; it is written unstyled so scripts can parse it.
//
// # Usage Example
//
//	p := ui.NewPrinter(os.Stderr)
//	p.PrintError("Could not print pairs", err, []string{
//	    "Try --format yaml",
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled via the KVPAIRS_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, so the
// boxes are the only thing the user sees.
package ui
