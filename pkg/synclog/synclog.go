// Package synclog keeps the rolling operation log of sync runs.
package synclog

import (
	"context"
	"sync"
	"time"

	"github.com/umputun/feedsync/pkg/domain"
)

// DefaultMaxEntries is the retention of the operation log
const DefaultMaxEntries = 200

// Ring is an in-memory bounded log, oldest lines are dropped once full
type Ring struct {
	mu      sync.Mutex
	entries []domain.LogEntry
	max     int
	next    int64
}

// NewRing makes a ring keeping up to maxEntries lines
func NewRing(maxEntries int) *Ring {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Ring{max: maxEntries}
}

// Append adds a line to the log
func (r *Ring) Append(_ context.Context, line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.entries = append(r.entries, domain.LogEntry{ID: r.next, Time: time.Now(), Line: line})
	if over := len(r.entries) - r.max; over > 0 {
		r.entries = append(r.entries[:0:0], r.entries[over:]...)
	}
	return nil
}

// Recent returns up to limit newest lines in chronological order, all lines if limit <= 0
func (r *Ring) Recent(_ context.Context, limit int) ([]domain.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := 0
	if limit > 0 && limit < len(r.entries) {
		start = len(r.entries) - limit
	}
	res := make([]domain.LogEntry, len(r.entries)-start)
	copy(res, r.entries[start:])
	return res, nil
}
