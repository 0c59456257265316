// Package submissionlock provides a TTL lock keyed by submission ID so
// that only one consumer validates a given submission at a time.
package submissionlock

import (
	"context"
	"sync"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// Lock is a best-effort mutual exclusion guard with expiry.
type Lock interface {
	// Acquire returns true if the caller now holds the lock.
	Acquire(ctx context.Context, id domain.SubmissionID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, id domain.SubmissionID) error
}

// InMemoryLock is a single-process Lock for tests and local runs.
type InMemoryLock struct {
	mu      sync.Mutex
	held    map[domain.SubmissionID]time.Time
	nowFunc func() time.Time
}

func NewInMemoryLock() *InMemoryLock {
	return &InMemoryLock{
		held:    make(map[domain.SubmissionID]time.Time),
		nowFunc: time.Now,
	}
}

// SetNow overrides the clock. Test helper.
func (l *InMemoryLock) SetNow(now func() time.Time) { l.nowFunc = now }

func (l *InMemoryLock) Acquire(_ context.Context, id domain.SubmissionID, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.nowFunc()
	if expiry, ok := l.held[id]; ok && expiry.After(now) {
		return false, nil
	}
	l.held[id] = now.Add(ttl)
	return true, nil
}

func (l *InMemoryLock) Release(_ context.Context, id domain.SubmissionID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, id)
	return nil
}
