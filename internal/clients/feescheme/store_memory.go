package feescheme

import (
	"context"
	"fmt"
	"sync"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// InMemoryService is a fee scheme fake for tests and local runs. Fee codes
// are seeded up front; the calculation behavior is pluggable.
type InMemoryService struct {
	mu       sync.RWMutex
	feeCodes map[string]domain.FeeDetails

	// CalculateFunc overrides fee calculation. Default: a zero-total
	// success with no messages.
	CalculateFunc func(req domain.FeeCalculationRequest) (*domain.FeeCalculationResult, error)
}

func NewInMemoryService() *InMemoryService {
	return &InMemoryService{feeCodes: make(map[string]domain.FeeDetails)}
}

// PutFeeDetails seeds one fee code.
func (s *InMemoryService) PutFeeDetails(details domain.FeeDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeCodes[details.FeeCode] = details
}

func (s *InMemoryService) GetFeeDetails(_ context.Context, feeCode string) (*domain.FeeDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	details, ok := s.feeCodes[feeCode]
	if !ok {
		return nil, fmt.Errorf("fee code %s: %w", feeCode, sentinel.ErrNotFound)
	}
	return &details, nil
}

func (s *InMemoryService) CalculateFee(_ context.Context, req domain.FeeCalculationRequest) (*domain.FeeCalculationResult, error) {
	if s.CalculateFunc != nil {
		return s.CalculateFunc(req)
	}
	return &domain.FeeCalculationResult{Calculation: &domain.FeeCalculation{}}, nil
}
