// Package todo holds the in-memory task list and the operations on it.
package todo

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tgienger/todo/internal/models"
)

// Notification texts
const (
	EmptyDraftTitle       = "Oops!"
	EmptyDraftDescription = "Type something to add a task."
	AddedTitle            = "Task added!"
	AddedDescription      = "New task created successfully."
	RemovedTitle          = "Task removed"
	RemovedDescription    = "The task was deleted successfully."
)

// Notifier receives transient feedback for the user
type Notifier interface {
	Notify(title, description string, severity models.Severity)
}

// List owns the tasks and the draft input. It is not safe for concurrent
// use; callers drive it from a single event loop.
type List struct {
	tasks  []models.Task
	draft  string
	notify Notifier
	newID  func() string
	now    func() time.Time
	logger *log.Logger
}

// Option configures a List
type Option func(*List)

// WithIDFunc overrides task id generation
func WithIDFunc(fn func() string) Option {
	return func(l *List) {
		l.newID = fn
	}
}

// WithClock overrides the creation timestamp source
func WithClock(fn func() time.Time) Option {
	return func(l *List) {
		l.now = fn
	}
}

// WithLogger sets the logger used for mutation events
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		l.logger = logger
	}
}

// New creates an empty list that reports feedback to sink
func New(sink Notifier, opts ...Option) *List {
	l := &List{
		notify: sink,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetDraft replaces the draft text
func (l *List) SetDraft(s string) {
	l.draft = s
}

// Draft returns the current draft text
func (l *List) Draft() string {
	return l.draft
}

// Add creates a task from the draft and puts it at the front of the list.
// A blank draft leaves the list untouched and emits a destructive notification.
func (l *List) Add() bool {
	text := strings.TrimSpace(l.draft)
	if text == "" {
		l.logger.Debug("rejected empty draft")
		l.emit(EmptyDraftTitle, EmptyDraftDescription, models.SeverityDestructive)
		return false
	}

	task := models.Task{
		ID:        l.newID(),
		Text:      text,
		Completed: false,
		CreatedAt: l.now(),
	}
	l.tasks = append([]models.Task{task}, l.tasks...)
	l.draft = ""

	l.logger.Debug("task added", "id", task.ID, "total", len(l.tasks))
	l.emit(AddedTitle, AddedDescription, models.SeverityDefault)
	return true
}

// Toggle flips the completed flag of the task with the given id.
// It reports whether a task matched.
func (l *List) Toggle(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	l.logger.Debug("task toggled", "id", id, "completed", l.tasks[i].Completed)
	return true
}

// Delete removes the task with the given id. The removal notification is
// only emitted when a task was actually removed.
func (l *List) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		l.logger.Debug("delete of unknown task", "id", id)
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.logger.Debug("task removed", "id", id, "total", len(l.tasks))
	l.emit(RemovedTitle, RemovedDescription, models.SeverityDefault)
	return true
}

// Tasks returns a copy of the list, most recent first
func (l *List) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.tasks)
}

// Views derives the pending and completed projections of the list
func (l *List) Views() Views {
	var v Views
	for _, t := range l.tasks {
		if t.Completed {
			v.Completed = append(v.Completed, t)
		} else {
			v.Pending = append(v.Pending, t)
		}
	}
	v.PendingCount = len(v.Pending)
	v.CompletedCount = len(v.Completed)
	v.Total = len(l.tasks)
	v.IsEmpty = v.Total == 0
	return v
}

func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) emit(title, description string, severity models.Severity) {
	if l.notify == nil {
		return
	}
	l.notify.Notify(title, description, severity)
}
