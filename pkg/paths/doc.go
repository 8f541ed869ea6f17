// Package paths provides centralized path handling for promptpaste.
//
// It resolves the storage root that holds every entry and the XDG
// locations used for configuration and logs.
//
// # Environment Variables
//
//   - PROMPT_PASTE_STORAGE: storage root (default: ~/.prompt_paste)
//   - PP_CONFIG_DIR: override config directory (default: $XDG_CONFIG_HOME/promptpaste)
//   - XDG_STATE_HOME: base for the log directory (default: ~/.local/state)
//
// # Usage
//
//	p, err := paths.New("")      // storage root from env or default
//	root := p.StorageRoot()       // /home/user/.prompt_paste
//	cfg := p.ConfigFilePath()     // /home/user/.config/promptpaste/config.toml
package paths
