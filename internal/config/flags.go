package config

import "flag"

type flagValues struct {
	config   *string
	theme    *string
	title    *string
	logLevel *string
	logFile  *string
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	return &flagValues{
		config:   fs.String("config", "", "Path to a TOML config file"),
		theme:    fs.String("theme", "", "Color theme (tokyo-night, catppuccin, mono)"),
		title:    fs.String("title", "", "Header title"),
		logLevel: fs.String("log-level", "", "Log level (debug, info, warn, error)"),
		logFile:  fs.String("log-file", "", "Path of the log file"),
	}
}

// apply copies flags that were set explicitly on the command line.
func (f *flagValues) apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "theme":
			cfg.Theme = *f.theme
		case "title":
			cfg.Title = *f.title
		case "log-level":
			cfg.LogLevel = *f.logLevel
		case "log-file":
			cfg.LogFile = *f.logFile
		}
	})
}
