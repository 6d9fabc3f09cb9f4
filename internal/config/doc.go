// Package config handles loading and validation of ghp configuration.
//
// Configuration is read from ~/.config/ghp/config.toml with environment
// variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - GHP_HOOKS_FILE env var: location of the event hook store
//   - Config file settings
//   - Default values
//
// # Hooks Section
//
//	[hooks]
//	file = "~/.config/ghp/event-hooks.json"
//	default_timeout = 30000
//	default_mode = "fire-and-forget"
//	pager = "less -R"
//
// The pager falls back to $PAGER and then "less -R" when unset.
//
// # Path Validation
//
// hooks.file must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
