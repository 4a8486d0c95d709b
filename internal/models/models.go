package models

import "time"

// Task represents a single to-do item
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Severity controls how a notification is presented
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is a transient feedback message shown to the user
type Notification struct {
	ID          int64
	Title       string
	Description string
	Severity    Severity
	At          time.Time
}
