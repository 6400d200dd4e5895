package config

import (
	"fmt"

	"github.com/muurk/kvpairs/internal/menu"
	"github.com/muurk/kvpairs/internal/output"
)

// CurrentVersion is the preferences file format version
const CurrentVersion = 1

// Preferences represents the entire preferences file
type Preferences struct {
	Version int          `yaml:"version"`
	Output  OutputPrefs  `yaml:"output"`
	Menu    MenuPrefs    `yaml:"menu"`
	Editing EditingPrefs `yaml:"editing"`
}

// OutputPrefs controls how pairs are emitted on exit
type OutputPrefs struct {
	Format    string `yaml:"format"`    // json or yaml
	Clipboard bool   `yaml:"clipboard"` // Also copy the output line to the clipboard
}

// MenuPrefs controls main menu presentation
type MenuPrefs struct {
	Marker string `yaml:"marker"` // Prefix shown on the selected item
}

// EditingPrefs controls commit rules
type EditingPrefs struct {
	AllowEmptyKeys bool `yaml:"allow_empty_keys"`
}

// NewPreferences creates preferences with default values
func NewPreferences() *Preferences {
	return &Preferences{
		Version: CurrentVersion,
		Output: OutputPrefs{
			Format: string(output.FormatJSON),
		},
		Menu: MenuPrefs{
			Marker: menu.DefaultMarker,
		},
	}
}

// applyDefaults fills in fields left empty in a loaded file
func (p *Preferences) applyDefaults() {
	defaults := NewPreferences()
	if p.Output.Format == "" {
		p.Output.Format = defaults.Output.Format
	}
	if p.Menu.Marker == "" {
		p.Menu.Marker = defaults.Menu.Marker
	}
}

// Validate checks the preferences for unusable values
func (p *Preferences) Validate() error {
	if p.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", p.Version, CurrentVersion)
	}
	if _, err := output.ParseFormat(p.Output.Format); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}
	return nil
}

// OutputFormat returns the parsed output format
func (p *Preferences) OutputFormat() output.Format {
	f, err := output.ParseFormat(p.Output.Format)
	if err != nil {
		return output.FormatJSON
	}
	return f
}
