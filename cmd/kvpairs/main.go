// Kvpairs is an interactive terminal editor for key/value string pairs.
//
// It shows a small menu and a pair listing, lets the user add pairs one at a
// time in a popup, and on exit can print the collected pairs as a single line
// of JSON or YAML on stdout for use in scripts.
//
// Usage:
//
//	kvpairs [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'kvpairs --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/kvpairs/internal/output"
	"github.com/muurk/kvpairs/internal/session"
	"github.com/muurk/kvpairs/internal/tui"
	"github.com/muurk/kvpairs/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd(func(state *session.State, format output.Format) (session.Outcome, error) {
	return tui.Run(state, format)
})

// newRootCmd builds the command tree. runUI shows the editor; tests swap it
// for a scripted session.
func newRootCmd(runUI uiRunner) *cobra.Command {
	app := &cli{runUI: runUI}

	cmd := &cobra.Command{
		Use:   "kvpairs",
		Short: "Interactive key/value pair editor",
		Long: `An interactive terminal editor for building a set of key/value pairs.

Press 'n' to add a pair, 'q' to leave. When leaving you can choose to print
the pairs on stdout as one line of JSON (default) or YAML.

If no command is specified, the interactive editor will launch automatically.`,
		Example: `  # Build pairs and capture them as JSON
  pairs=$(kvpairs)

  # Emit YAML flow mapping instead
  kvpairs --format yaml

  # Debug logging to a file
  kvpairs --log-level debug --log-file /tmp/kvpairs.log`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runEditor,
	}

	// Disable automatic completion command generation
	cmd.CompletionOptions.DisableDefaultCmd = true

	app.registerFlags(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(app.newConfigCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Line("kvpairs"))
		},
	}
}
