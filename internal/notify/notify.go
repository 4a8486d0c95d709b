// Package notify provides sinks for transient user feedback.
package notify

import (
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/models"
)

// Sink receives notifications
type Sink interface {
	Notify(title, description string, severity models.Severity)
}

// Func adapts a plain function to a Sink
type Func func(title, description string, severity models.Severity)

func (f Func) Notify(title, description string, severity models.Severity) {
	f(title, description, severity)
}

// Multi fans a notification out to every sink in order
type Multi []Sink

func (m Multi) Notify(title, description string, severity models.Severity) {
	for _, s := range m {
		if s != nil {
			s.Notify(title, description, severity)
		}
	}
}

// Logger writes notifications to a log. Destructive ones are logged as warnings.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a log sink with a "notify" prefix
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{logger: logger.WithPrefix("notify")}
}

func (l *Logger) Notify(title, description string, severity models.Severity) {
	if severity == models.SeverityDestructive {
		l.logger.Warn(title, "description", description)
		return
	}
	l.logger.Info(title, "description", description)
}
