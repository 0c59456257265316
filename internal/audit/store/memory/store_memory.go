package memory

import (
	"context"
	"sync"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// InMemoryStore keeps audit events per submission. Used by tests and local
// runs where no database is configured.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[domain.SubmissionID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[domain.SubmissionID][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.SubmissionID] = append(s.events[event.SubmissionID], event)
	return nil
}

func (s *InMemoryStore) ListBySubmission(_ context.Context, submissionID domain.SubmissionID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[submissionID]...), nil
}

// Clear drops all recorded events. Test helper.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[domain.SubmissionID][]audit.Event)
}
