// Package config manages the kvpairs preferences file.
//
// Preferences are stored as YAML and follow OS-specific conventions for their
// location:
//   - Linux: $XDG_CONFIG_HOME/kvpairs/config.yaml or $HOME/.config/kvpairs/config.yaml
//   - macOS: $HOME/.config/kvpairs/config.yaml
//   - Windows: %LOCALAPPDATA%\kvpairs\config.yaml
//
// A missing file is not an error; defaults are returned instead. Pairs built
// in a session are never written here.
//
// # Usage Example
//
//	prefs, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	prefs.Output.Format = "yaml"
//	if err := prefs.Save(""); err != nil {
//	    return err
//	}
package config
