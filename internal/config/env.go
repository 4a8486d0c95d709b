package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("TODO_TOAST_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ToastSeconds = n
		}
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}
