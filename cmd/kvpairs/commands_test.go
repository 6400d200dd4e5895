package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kvpairs/internal/config"
	"github.com/muurk/kvpairs/internal/output"
	"github.com/muurk/kvpairs/internal/session"
	"github.com/muurk/kvpairs/internal/tui"
)

// scripted returns a runner that feeds events to the state instead of
// showing the terminal UI. It records the format it was started with.
func scripted(gotFormat *output.Format, events ...session.Event) uiRunner {
	return func(state *session.State, format output.Format) (session.Outcome, error) {
		if gotFormat != nil {
			*gotFormat = format
		}
		outcome := session.Continue
		for _, ev := range events {
			outcome = state.Apply(ev)
		}
		return outcome, nil
	}
}

func typeText(s string) []session.Event {
	var evs []session.Event
	for _, r := range s {
		evs = append(evs, session.TextChar(r))
	}
	return evs
}

// addPair enters a pair from the main screen
func addPair(key, value string) []session.Event {
	evs := []session.Event{session.On(session.EventNewPair)}
	evs = append(evs, typeText(key)...)
	evs = append(evs, session.On(session.EventSwitchField))
	evs = append(evs, typeText(value)...)
	return append(evs, session.On(session.EventConfirm))
}

func execute(t *testing.T, runUI uiRunner, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KVPAIRS_LOG_LEVEL", "")

	cmd := newRootCmd(runUI)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunEditor_Outcomes(t *testing.T) {
	exitWith := func(kind session.EventKind) []session.Event {
		return []session.Event{session.On(session.EventQuit), session.On(kind)}
	}

	tests := []struct {
		name     string
		args     []string
		events   []session.Event
		expected string
	}{
		{
			name:     "output as json",
			events:   append(addPair("x", "y"), exitWith(session.EventAcceptWithOutput)...),
			expected: "{\"x\":\"y\"}\n",
		},
		{
			name:     "output as yaml",
			args:     []string{"--format", "yaml"},
			events:   append(addPair("name", "alice"), exitWith(session.EventAcceptWithOutput)...),
			expected: "{name: alice}\n",
		},
		{
			name:     "leave without output",
			events:   append(addPair("x", "y"), exitWith(session.EventAcceptWithoutOutput)...),
			expected: "",
		},
		{
			name:     "empty collection",
			events:   exitWith(session.EventAcceptWithOutput),
			expected: "{}\n",
		},
		{
			name:     "aborted session",
			events:   addPair("x", "y"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, scripted(nil, tt.events...), "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tt.expected {
				t.Errorf("stdout = %q, want %q", stdout, tt.expected)
			}
		})
	}
}

func TestRunEditor_FormatFromPreferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	prefs := config.NewPreferences()
	prefs.Output.Format = "yaml"
	if err := prefs.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got output.Format
	if _, _, err := execute(t, scripted(&got), "", "--config", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != output.FormatYAML {
		t.Errorf("format = %q, want yaml from preferences", got)
	}

	if _, _, err := execute(t, scripted(&got), "", "--config", path, "--format", "json"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != output.FormatJSON {
		t.Errorf("format = %q, want json from explicit flag", got)
	}
}

func TestRunEditor_InvalidFormat(t *testing.T) {
	called := false
	runUI := func(state *session.State, format output.Format) (session.Outcome, error) {
		called = true
		return session.ExitWithoutOutput, nil
	}

	_, _, err := execute(t, runUI, "", "--format", "toml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if called {
		t.Error("editor should not start with an invalid format")
	}
}

func TestRunEditor_UIError(t *testing.T) {
	runUI := func(state *session.State, format output.Format) (session.Outcome, error) {
		return session.ExitWithoutOutput, errors.New("no tty")
	}

	stdout, _, err := execute(t, runUI, "")
	if err == nil || !strings.Contains(err.Error(), "no tty") {
		t.Errorf("Execute() error = %v, want the UI error", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, scripted(nil), "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "kvpairs ") || !strings.Contains(stdout, "commit:") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}

func TestConfigPath(t *testing.T) {
	xdg := t.TempDir()
	cmd := newRootCmd(scripted(nil))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"config", "path"})
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	expected, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != expected {
		t.Errorf("config path = %q, want %q", stdout.String(), expected)
	}
}

func TestConfigShow_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	stdout, _, err := execute(t, scripted(nil), "", "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, part := range []string{"PREFERENCES", "showing defaults", "format: json", "allow_empty_keys: false"} {
		if !strings.Contains(stdout, part) {
			t.Errorf("config show missing %q:\n%s", part, stdout)
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := execute(t, scripted(nil), "", "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Preferences written") {
		t.Errorf("expected success box, got:\n%s", stdout)
	}

	prefs, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", prefs.Output.Format)
	}
}

func TestConfigInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		overwritten bool
	}{
		{name: "declined", stdin: "n\n", overwritten: false},
		{name: "accepted", stdin: "y\n", overwritten: true},
		{name: "forced", args: []string{"--force"}, overwritten: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte("version: 1\noutput:\n  format: yaml\n"), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			args := append([]string{"config", "init", "--config", path}, tt.args...)
			if _, _, err := execute(t, scripted(nil), tt.stdin, args...); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			prefs, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			gotOverwritten := prefs.Output.Format == "json"
			if gotOverwritten != tt.overwritten {
				t.Errorf("overwritten = %v, want %v", gotOverwritten, tt.overwritten)
			}
		})
	}
}

// failingWriter rejects every write and remembers whether one was attempted
type failingWriter struct {
	attempted bool
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.attempted = true
	return 0, errors.New("broken pipe")
}

func TestRunEditor_WriteFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KVPAIRS_LOG_LEVEL", "")

	events := append(addPair("x", "y"),
		session.On(session.EventQuit),
		session.On(session.EventAcceptWithOutput),
	)

	cmd := newRootCmd(scripted(nil, events...))
	out := &failingWriter{}
	var stderr bytes.Buffer
	cmd.SetOut(out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error when stdout cannot be written")
	}
	if !strings.Contains(stderr.String(), "Could not output pairs") {
		t.Errorf("stderr missing error box:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "broken pipe") {
		t.Errorf("stderr missing cause:\n%s", stderr.String())
	}
	if !out.attempted {
		t.Error("expected a single write attempt on stdout")
	}
}

func TestRunEditor_TerminalOutputStaysOffStdout(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KVPAIRS_LOG_LEVEL", "")

	dir := t.TempDir()
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdout, stderr
	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
		stdout.Close()
		stderr.Close()
	}()

	in, keys := io.Pipe()
	defer keys.Close()
	go func() {
		for _, k := range []string{"q", "y"} {
			time.Sleep(50 * time.Millisecond)
			_, _ = io.WriteString(keys, k)
		}
	}()

	cmd := newRootCmd(func(state *session.State, format output.Format) (session.Outcome, error) {
		return tui.Run(state, format, tea.WithInput(in))
	})
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(stdout.Name())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("stdout = %q, want exactly one line %q", data, "{}\n")
	}
}
