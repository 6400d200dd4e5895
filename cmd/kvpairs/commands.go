package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/kvpairs/internal/apperror"
	"github.com/muurk/kvpairs/internal/config"
	"github.com/muurk/kvpairs/internal/logging"
	"github.com/muurk/kvpairs/internal/output"
	"github.com/muurk/kvpairs/internal/session"
	"github.com/muurk/kvpairs/internal/ui"
	"github.com/muurk/kvpairs/internal/urls"
)

// uiRunner runs the interactive editor to completion
type uiRunner func(state *session.State, format output.Format) (session.Outcome, error)

// cli holds flag values shared by the command tree
type cli struct {
	runUI uiRunner

	configPath string
	format     string
	clipboard  bool
	logLevel   string
	logFile    string
	force      bool
}

func (c *cli) registerFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "Preferences file (default $XDG_CONFIG_HOME/kvpairs/config.yaml)")
	pf.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	pf.StringVar(&c.logFile, "log-file", "", "Log file path; overrides "+logging.LogFileEnvVar)

	cmd.Flags().StringVar(&c.format, "format", string(output.FormatJSON), "Output format (json, yaml)")
	cmd.Flags().BoolVar(&c.clipboard, "clipboard", false, "Also copy the output line to the clipboard")
}

// preferences loads the preferences file and applies explicitly set flags
func (c *cli) preferences(cmd *cobra.Command) (*config.Preferences, error) {
	prefs, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		if _, err := output.ParseFormat(c.format); err != nil {
			return nil, err
		}
		prefs.Output.Format = c.format
	}
	if f := cmd.Flags().Lookup("clipboard"); f != nil && f.Changed {
		prefs.Output.Clipboard = c.clipboard
	}
	return prefs, nil
}

func (c *cli) runEditor(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(c.logLevel, c.logFile); err != nil {
		return err
	}
	defer logging.Sync()

	prefs, err := c.preferences(cmd)
	if err != nil {
		return err
	}
	format := prefs.OutputFormat()

	state, err := session.New(session.Options{
		Marker:         prefs.Menu.Marker,
		AllowEmptyKeys: prefs.Editing.AllowEmptyKeys,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	logging.Info("Starting editor",
		zap.String("format", string(format)),
		zap.Bool("clipboard", prefs.Output.Clipboard),
	)

	outcome, err := c.runUI(state, format)
	if err != nil {
		return err
	}
	if outcome != session.ExitWithOutput {
		return nil
	}

	emitter := output.NewEmitter(cmd.OutOrStdout(), format).WithClipboard(prefs.Output.Clipboard)
	if err := emitter.Emit(state.Pairs()); err != nil {
		if apperror.IsSerializationFailure(err) {
			ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Could not output pairs", err, []string{
				"Try the other output format with --format",
				"Check that stdout is writable",
				"Report the problem at " + urls.Issues,
			})
		}
		return err
	}
	return nil
}

func (c *cli) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the preferences file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(c.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective preferences",
		Long: `Display the preferences in effect, as YAML.

Values missing from the file are shown with their defaults. If no file
exists, the defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: c.runConfigShow,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file with default values",
		Example: `  # Create the default preferences file
  kvpairs config init

  # Replace an existing file without asking
  kvpairs config init --force`,
		Args: cobra.NoArgs,
		RunE: c.runConfigInit,
	}
	initCmd.Flags().BoolVar(&c.force, "force", false, "Overwrite an existing file without asking")

	configCmd.AddCommand(pathCmd, showCmd, initCmd)
	return configCmd
}

func (c *cli) runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(c.configPath)
	if err != nil {
		return err
	}
	prefs, err := config.Load(path)
	if err != nil {
		return err
	}
	data, err := prefs.Marshal()
	if err != nil {
		return err
	}

	source := path
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		source = path + " (not created, showing defaults)"
	}

	out := cmd.OutOrStdout()
	ui.NewPrinter(out).PrintHeader("Preferences", "kvpairs config show", map[string]string{
		"File": source,
	})
	fmt.Fprint(out, string(data))
	return nil
}

func (c *cli) runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(c.configPath)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !c.force {
		if !printer.Confirm(cmd.InOrStdin(), fmt.Sprintf("%s already exists. Overwrite?", path)) {
			return nil
		}
	}

	prefs := config.NewPreferences()
	if err := prefs.Save(path); err != nil {
		printer.PrintError("Could not write preferences", err, []string{
			"Check permissions on " + path,
			"Pass --config to write somewhere else",
		})
		return err
	}

	printer.PrintSuccess("Preferences written", map[string]string{
		"File":   path,
		"Format": prefs.Output.Format,
		"Marker": prefs.Menu.Marker,
		"Docs":   urls.Preferences,
	})
	return nil
}
