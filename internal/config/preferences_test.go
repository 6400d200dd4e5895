package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/kvpairs/internal/menu"
	"github.com/muurk/kvpairs/internal/output"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join(base, "kvpairs") {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, filepath.Join(base, "kvpairs"))
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewPreferences(t *testing.T) {
	prefs := NewPreferences()

	if prefs.Version != CurrentVersion {
		t.Errorf("Version = %v, want %v", prefs.Version, CurrentVersion)
	}
	if prefs.OutputFormat() != output.FormatJSON {
		t.Errorf("OutputFormat() = %v, want json", prefs.OutputFormat())
	}
	if prefs.Menu.Marker != menu.DefaultMarker {
		t.Errorf("Menu.Marker = %q, want %q", prefs.Menu.Marker, menu.DefaultMarker)
	}
	if prefs.Editing.AllowEmptyKeys {
		t.Error("empty keys should be rejected by default")
	}
	if err := prefs.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	prefs, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", prefs.Output.Format)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	prefs := NewPreferences()
	prefs.Output.Format = "yaml"
	prefs.Output.Clipboard = true
	prefs.Menu.Marker = "> "
	prefs.Editing.AllowEmptyKeys = true

	if err := prefs.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# kvpairs preferences") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *prefs {
		t.Errorf("Load() = %+v, want %+v", *loaded, *prefs)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nediting:\n  allow_empty_keys: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Output.Format != "json" || prefs.Menu.Marker != menu.DefaultMarker {
		t.Errorf("defaults not applied: %+v", prefs)
	}
	if !prefs.Editing.AllowEmptyKeys {
		t.Error("explicit value should be kept")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "version: [1"},
		{"wrong version", "version: 2\n"},
		{"bad format", "version: 1\noutput:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}
