package notify

import (
	"time"

	"github.com/tgienger/todo/internal/models"
)

// Queue collects notifications for on-screen toasts. Each toast lives for
// the queue's TTL; the UI schedules expiry for toasts returned by TakeNew.
type Queue struct {
	items     []models.Notification
	scheduled int // items[:scheduled] have been handed out by TakeNew
	nextID    int64
	ttl       time.Duration
	max       int
	now       func() time.Time
}

// NewQueue creates a queue showing at most maxVisible toasts for ttl each
func NewQueue(ttl time.Duration, maxVisible int) *Queue {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return &Queue{ttl: ttl, max: maxVisible, now: time.Now}
}

// SetClock overrides the time source
func (q *Queue) SetClock(now func() time.Time) {
	q.now = now
}

// TTL returns how long a toast stays visible
func (q *Queue) TTL() time.Duration {
	return q.ttl
}

func (q *Queue) Notify(title, description string, severity models.Severity) {
	q.nextID++
	q.items = append(q.items, models.Notification{
		ID:          q.nextID,
		Title:       title,
		Description: description,
		Severity:    severity,
		At:          q.now(),
	})
}

// TakeNew returns notifications added since the previous call
func (q *Queue) TakeNew() []models.Notification {
	if q.scheduled >= len(q.items) {
		return nil
	}
	out := make([]models.Notification, len(q.items)-q.scheduled)
	copy(out, q.items[q.scheduled:])
	q.scheduled = len(q.items)
	return out
}

// Expire drops the notification with the given id
func (q *Queue) Expire(id int64) {
	for i, n := range q.items {
		if n.ID != id {
			continue
		}
		q.items = append(q.items[:i], q.items[i+1:]...)
		if i < q.scheduled {
			q.scheduled--
		}
		return
	}
}

// Active returns the visible toasts, newest first
func (q *Queue) Active() []models.Notification {
	now := q.now()
	var out []models.Notification
	for i := len(q.items) - 1; i >= 0 && len(out) < q.max; i-- {
		n := q.items[i]
		if q.ttl > 0 && !now.Before(n.At.Add(q.ttl)) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Len returns the number of notifications not yet expired by Expire
func (q *Queue) Len() int {
	return len(q.items)
}
