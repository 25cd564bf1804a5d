// Package config loads showtrack's configuration file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/showtrack/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Blank fields use defaults
//
// # TOML Format
//
//	api_url = "https://api.trakt.tv"
//	api_key = "<trakt client id>"
//	db_path = "~/.local/share/showtrack/showtrack.db"
//	log_dir = "~/.local/share/showtrack"
//	tick_ms = 250
//
// Every field is optional. Tilde expansion is applied to db_path and log_dir.
// SHOWTRACK_TRAKT_API_KEY, when set, replaces api_key so the key can stay out
// of the file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML syntax errors. A missing file is not an error.
package config
