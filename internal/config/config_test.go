package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Hooks.DefaultTimeout != DefaultTimeoutMs {
		t.Errorf("default_timeout = %d, want %d", cfg.Hooks.DefaultTimeout, DefaultTimeoutMs)
	}
	if cfg.Hooks.DefaultMode != DefaultMode {
		t.Errorf("default_mode = %q, want %q", cfg.Hooks.DefaultMode, DefaultMode)
	}
	if !strings.HasSuffix(cfg.Hooks.File, filepath.Join(".config", "ghp", "event-hooks.json")) {
		t.Errorf("file = %q, want ~/.config/ghp/event-hooks.json", cfg.Hooks.File)
	}
}

func TestLoad_Nonexistent(t *testing.T) {
	t.Setenv(EnvHooksFile, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg.Hooks.DefaultTimeout != DefaultTimeoutMs {
		t.Errorf("default_timeout = %d, want %d", cfg.Hooks.DefaultTimeout, DefaultTimeoutMs)
	}
}

func TestLoad_HooksSection(t *testing.T) {
	t.Setenv(EnvHooksFile, "")

	path := writeConfig(t, `
[hooks]
file = "/srv/ghp/hooks.json"
default_timeout = 5000
default_mode = "blocking"
pager = "more"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Hooks.File != "/srv/ghp/hooks.json" {
		t.Errorf("file = %q", cfg.Hooks.File)
	}
	if cfg.Hooks.DefaultTimeout != 5000 {
		t.Errorf("default_timeout = %d", cfg.Hooks.DefaultTimeout)
	}
	if cfg.Hooks.DefaultMode != "blocking" {
		t.Errorf("default_mode = %q", cfg.Hooks.DefaultMode)
	}
	if got := cfg.PagerCommand(); got != "more" {
		t.Errorf("PagerCommand() = %q, want more", got)
	}
}

func TestLoad_ExpandsTilde(t *testing.T) {
	t.Setenv(EnvHooksFile, "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg, err := Load(writeConfig(t, "[hooks]\nfile = \"~/hooks.json\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(home, "hooks.json"); cfg.Hooks.File != want {
		t.Errorf("file = %q, want %q", cfg.Hooks.File, want)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvHooksFile, "/tmp/override.json")

	cfg, err := Load(writeConfig(t, "[hooks]\nfile = \"/srv/hooks.json\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Hooks.File != "/tmp/override.json" {
		t.Errorf("file = %q, want env override", cfg.Hooks.File)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvHooksFile, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"relative file", "[hooks]\nfile = \"hooks.json\"\n", "hooks.file must be absolute"},
		{"bad mode", "[hooks]\ndefault_mode = \"eventually\"\n", `invalid hooks.default_mode "eventually"`},
		{"negative timeout", "[hooks]\ndefault_timeout = -1\n", "invalid hooks.default_timeout"},
		{"broken toml", "[hooks\n", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPagerCommand_Fallbacks(t *testing.T) {
	cfg := Config{}

	t.Setenv(EnvPager, "most")
	if got := cfg.PagerCommand(); got != "most" {
		t.Errorf("PagerCommand() = %q, want $PAGER", got)
	}

	t.Setenv(EnvPager, "")
	if got := cfg.PagerCommand(); got != DefaultPager {
		t.Errorf("PagerCommand() = %q, want %q", got, DefaultPager)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~/hooks.json", false},
		{"/abs/hooks.json", false},
		{".", true},
		{"../hooks.json", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "hooks.file")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	if got := FormatOptions([]string{"a", "b"}); got != `"a" or "b"` {
		t.Errorf("FormatOptions(2) = %s", got)
	}
	if got := FormatOptions(ValidModes); got != `"fire-and-forget", "blocking", or "interactive"` {
		t.Errorf("FormatOptions(modes) = %s", got)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ghp", "config.toml")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init(path, false); err == nil {
		t.Error("Init() on existing file should fail without force")
	}
	if err := Init(path, true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}

	// The generated file must itself be loadable.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[hooks]") {
		t.Error("default config should contain a [hooks] section")
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{Hooks: HooksConfig{File: "/x.json"}}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Error("FromContext did not return the stored config")
	}
	if got := FromContext(context.Background()); got.Hooks.DefaultTimeout != DefaultTimeoutMs {
		t.Error("FromContext fallback should be Default()")
	}
}
