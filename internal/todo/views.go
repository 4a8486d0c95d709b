package todo

import "github.com/tgienger/todo/internal/models"

// Views is a read-only projection of the list, recomputed on every read
type Views struct {
	Pending        []models.Task
	Completed      []models.Task
	PendingCount   int
	CompletedCount int
	Total          int
	IsEmpty        bool
}

// Ordered returns the tasks in rendering order: pending first, then completed
func (v Views) Ordered() []models.Task {
	out := make([]models.Task, 0, v.Total)
	out = append(out, v.Pending...)
	return append(out, v.Completed...)
}
