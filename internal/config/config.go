// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme        = "tokyo-night"
	DefaultTitle        = "My Tasks"
	DefaultSubtitle     = "Organize your tasks simply and efficiently"
	DefaultCharLimit    = 200
	DefaultToastSeconds = 3
	DefaultMaxToasts    = 3
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"

	appName = "todo"
)

// Config holds the full configuration for the app.
type Config struct {
	// Appearance
	Theme    string `toml:"theme"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`

	// Input
	CharLimit int `toml:"char_limit"`

	// Notifications
	ToastSeconds int `toml:"toast_seconds"`
	MaxToasts    int `toml:"max_toasts"`

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`

	// File the config was read from, empty when none was found
	Path string `toml:"-"`
}

// ToastDuration returns how long a notification stays on screen.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (-config, or $XDG_CONFIG_HOME/todo/config.toml)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	fl := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	path := *fl.config
	explicit := path != ""
	if !explicit {
		path = findUserConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	loadFromEnv(cfg)
	fl.apply(fs, cfg)

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Title = DefaultTitle
	cfg.Subtitle = DefaultSubtitle
	cfg.CharLimit = DefaultCharLimit
	cfg.ToastSeconds = DefaultToastSeconds
	cfg.MaxToasts = DefaultMaxToasts
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogFile = defaultLogFile()
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.LogFile = expandPath(cfg.LogFile)
	return Validate(cfg)
}

// Validate checks that all values are usable.
func Validate(cfg *Config) error {
	if !isKnownTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	if cfg.CharLimit <= 0 {
		return fmt.Errorf("char_limit must be positive, got %d", cfg.CharLimit)
	}
	if cfg.ToastSeconds <= 0 {
		return fmt.Errorf("toast_seconds must be positive, got %d", cfg.ToastSeconds)
	}
	if cfg.MaxToasts <= 0 {
		return fmt.Errorf("max_toasts must be positive, got %d", cfg.MaxToasts)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}
	return nil
}

// Themes lists the theme names accepted by the theme option.
var Themes = []string{"tokyo-night", "catppuccin", "mono"}

func isKnownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// findUserConfigFile returns the config path under the XDG config directory.
// The file does not need to exist.
func findUserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, "config.toml")
}

// defaultLogFile returns the log path under the XDG state directory.
func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appName+".log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, appName, appName+".log")
}
