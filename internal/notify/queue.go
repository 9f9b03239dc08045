// Package notify holds user-facing notifications until the view picks them up.
package notify

import (
	"sync"
	"time"

	"github.com/AlexZinkM/wallet-session/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLimit is the queue capacity used when NewQueue gets a non-positive limit
const DefaultLimit = 50

// Queue is an in-memory notification list. Once full, the oldest entry is dropped.
// Safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	limit int
	items []model.Notification
	now   func() time.Time
}

// NewQueue creates a Queue holding at most limit notifications
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Queue{
		limit: limit,
		now:   time.Now,
	}
}

// Notify appends n, filling in ID and Time when they are missing
func (q *Queue) Notify(n model.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Time.IsZero() {
		n.Time = q.now().UTC()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	if over := len(q.items) - q.limit; over > 0 {
		q.items = append(q.items[:0:0], q.items[over:]...)
	}
}

// List returns a copy of the queued notifications, oldest first
func (q *Queue) List() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Drain returns the queued notifications and empties the queue
func (q *Queue) Drain() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		out = []model.Notification{}
	}
	return out
}

// Len returns the number of queued notifications
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Sink receives notifications
type Sink interface {
	Notify(n model.Notification)
}

// LoggingSink logs every notification before passing it on
type LoggingSink struct {
	next   Sink
	logger *zap.Logger
}

// WithLogging wraps next so each notification is also logged
func WithLogging(next Sink, logger *zap.Logger) *LoggingSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingSink{next: next, logger: logger}
}

func (s *LoggingSink) Notify(n model.Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("kind", string(n.Kind)),
	}
	if n.Kind == model.NotificationError {
		s.logger.Warn("notification", fields...)
	} else {
		s.logger.Info("notification", fields...)
	}
	s.next.Notify(n)
}
