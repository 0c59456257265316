package provider

import (
	"context"
	"sync"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// InMemoryService is a provider registry fake for tests and local runs.
type InMemoryService struct {
	mu        sync.RWMutex
	schedules map[string][]domain.ScheduleLine

	// Err, when set, is returned by every lookup. Test hook for transient
	// failure paths.
	Err error
}

func NewInMemoryService() *InMemoryService {
	return &InMemoryService{schedules: make(map[string][]domain.ScheduleLine)}
}

// PutSchedules seeds the schedule lines for one office and area.
func (s *InMemoryService) PutSchedules(officeCode string, area domain.AreaOfLaw, lines []domain.ScheduleLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[officeCode+"|"+area.String()] = lines
}

func (s *InMemoryService) GetProviderFirmSchedules(_ context.Context, officeCode string, area domain.AreaOfLaw, _ *time.Time) ([]domain.ScheduleLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]domain.ScheduleLine{}, s.schedules[officeCode+"|"+area.String()]...), nil
}
