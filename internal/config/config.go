package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bretwardjames/ghp-sub000/internal/storage"
)

// Environment variables that override config file settings.
const (
	EnvHooksFile = "GHP_HOOKS_FILE"
	EnvPager     = "PAGER"
)

// Defaults for the [hooks] section.
const (
	DefaultTimeoutMs = 30000
	DefaultMode      = "fire-and-forget"
	DefaultPager     = "less -R"
	hooksFileName    = "event-hooks.json"
)

// HooksConfig holds the [hooks] section
type HooksConfig struct {
	File           string `toml:"file"`            // hook store document
	DefaultTimeout int    `toml:"default_timeout"` // ms, used by "ghp hooks add"
	DefaultMode    string `toml:"default_mode"`    // used by "ghp hooks add"
	Pager          string `toml:"pager"`           // used to view full interactive output
}

// Config holds the ghp configuration
type Config struct {
	Hooks HooksConfig `toml:"hooks"`
}

// Default returns the default configuration. The hooks file falls back to
// ~/.config/ghp/event-hooks.json.
func Default() Config {
	cfg := Config{
		Hooks: HooksConfig{
			DefaultTimeout: DefaultTimeoutMs,
			DefaultMode:    DefaultMode,
		},
	}
	if dir, err := storage.ConfigDir(); err == nil {
		cfg.Hooks.File = filepath.Join(dir, hooksFileName)
	}
	return cfg
}

// DefaultPath returns ~/.config/ghp/config.toml
func DefaultPath() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config from path and applies environment overrides.
// Returns Default() (with overrides) if the file doesn't exist.
// Returns an error only if the file exists but is invalid.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if env := os.Getenv(EnvHooksFile); env != "" {
		cfg.Hooks.File = env
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	expanded, err := expandPath(cfg.Hooks.File)
	if err != nil {
		return Default(), fmt.Errorf("expand hooks.file: %w", err)
	}
	cfg.Hooks.File = expanded

	// Zero values mean "not configured"
	if cfg.Hooks.DefaultTimeout == 0 {
		cfg.Hooks.DefaultTimeout = DefaultTimeoutMs
	}
	if cfg.Hooks.DefaultMode == "" {
		cfg.Hooks.DefaultMode = DefaultMode
	}

	return cfg, nil
}

// PagerCommand returns the pager to use: config, then $PAGER, then less.
func (c *Config) PagerCommand() string {
	if c.Hooks.Pager != "" {
		return c.Hooks.Pager
	}
	if env := strings.TrimSpace(os.Getenv(EnvPager)); env != "" {
		return env
	}
	return DefaultPager
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches the loaded config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context, or Default() if none is
// attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

const defaultConfig = `# ghp configuration

[hooks]
# Where event hook definitions are stored. Must be absolute or start with ~.
# The file is rewritten with 0600 permissions on every change because hook
# commands may contain secrets. GHP_HOOKS_FILE overrides this setting.
# file = "~/.config/ghp/event-hooks.json"

# Defaults applied by "ghp hooks add" when --timeout / --mode are omitted.
# default_timeout = 30000            # milliseconds
# default_mode = "fire-and-forget"   # fire-and-forget, blocking, or interactive

# Pager used to view the full output of an interactive hook ("v" at the
# prompt). Falls back to $PAGER, then "less -R".
# pager = "less -R"

# Example hooks (managed with "ghp hooks add", stored in the hooks file):
#
#   ghp hooks add slack-notify --event pr-merged \
#     --command 'notify-send "Merged ${pr.title}"'
#
#   ghp hooks add tests --event worktree-created --mode blocking \
#     --command 'cd ${worktree.path} && make test'
#
#   ghp hooks add review --event pr-created --mode interactive \
#     --command 'my-linter --event ${_event_file}' --prompt 'Open the PR anyway?'
#
# Every ${...} value is single-quoted before substitution, so titles and
# bodies coming from the hosting service cannot inject shell syntax.
`

// DefaultContent returns the commented config written by Init.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0o600)
}
