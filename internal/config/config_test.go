package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"TODO_THEME", "TODO_TITLE", "TODO_TOAST_SECONDS", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return dir
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	return Load(fs, args)
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, DefaultSubtitle, cfg.Subtitle)
	assert.Equal(t, DefaultCharLimit, cfg.CharLimit)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration())
	assert.Equal(t, DefaultMaxToasts, cfg.MaxToasts)
	assert.Equal(t, filepath.Join(dir, "state", "todo", "todo.log"), cfg.LogFile)
	assert.Empty(t, cfg.Path, "missing user file is not an error")
}

func TestUserConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "todo", "config.toml")
	writeConfig(t, path, `
theme = "mono"
title = "Groceries"
toast_seconds = 5
log_level = "debug"
`)

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "Groceries", cfg.Title)
	assert.Equal(t, 5*time.Second, cfg.ToastDuration())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultSubtitle, cfg.Subtitle)
}

func TestPriorityEnvThenFlags(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config", "todo", "config.toml"), `
theme = "mono"
title = "From file"
`)
	t.Setenv("TODO_THEME", "catppuccin")
	t.Setenv("TODO_TITLE", "From env")

	cfg, err := load(t, "-title", "From flag")
	require.NoError(t, err)

	assert.Equal(t, "catppuccin", cfg.Theme)
	assert.Equal(t, "From flag", cfg.Title)
}

func TestExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := load(t, "-config", filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestExplicitConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `char_limit = 40`)

	cfg, err := load(t, "-config", path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.CharLimit)
	assert.Equal(t, path, cfg.Path)
}

func TestUnknownKeyRejected(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `colour = "red"`)

	_, err := load(t, "-config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }, false},
		{"zero char limit", func(c *Config) { c.CharLimit = 0 }, false},
		{"negative toast", func(c *Config) { c.ToastSeconds = -1 }, false},
		{"zero toasts", func(c *Config) { c.MaxToasts = 0 }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"warning alias", func(c *Config) { c.LogLevel = "warning" }, true},
		{"json format", func(c *Config) { c.LogFormat = "json" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInvalidEnvToastIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_TOAST_SECONDS", "soon")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, DefaultToastSeconds, cfg.ToastSeconds)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TODO_TEST_DIR", "/var/tmp")

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "logs", "todo.log"), expandPath("~/logs/todo.log"))
	assert.Equal(t, "/var/tmp/todo.log", expandPath("$TODO_TEST_DIR/todo.log"))
}
