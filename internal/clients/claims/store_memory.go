package claims

import (
	"context"
	"fmt"
	"sync"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// InMemoryStore is a claims store for tests and local runs. It applies the
// same duplicate-candidate filters as the real API.
type InMemoryStore struct {
	mu          sync.RWMutex
	submissions map[domain.SubmissionID]*domain.Submission
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{submissions: make(map[domain.SubmissionID]*domain.Submission)}
}

// PutSubmission seeds or replaces a submission and its claims.
func (s *InMemoryStore) PutSubmission(sub *domain.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sub
	copied.Claims = append([]domain.Claim{}, sub.Claims...)
	for i := range copied.Claims {
		copied.Claims[i].SubmissionID = copied.ID
		if copied.Claims[i].OfficeCode == "" {
			copied.Claims[i].OfficeCode = copied.OfficeCode
		}
		if copied.Claims[i].SubmissionPeriod == "" {
			copied.Claims[i].SubmissionPeriod = copied.SubmissionPeriod
		}
	}
	s.submissions[copied.ID] = &copied
}

func (s *InMemoryStore) GetSubmission(_ context.Context, id domain.SubmissionID) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, sentinel.ErrNotFound)
	}
	copied := *sub
	copied.Claims = append([]domain.Claim{}, sub.Claims...)
	return &copied, nil
}

func (s *InMemoryStore) GetClaim(_ context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID) (*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[submissionID]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", submissionID, sentinel.ErrNotFound)
	}
	for i := range sub.Claims {
		if sub.Claims[i].ID == claimID {
			claim := sub.Claims[i]
			return &claim, nil
		}
	}
	return nil, fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) GetClaims(_ context.Context, q ports.ClaimsQuery) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Claim
	for _, sub := range s.submissions {
		if !q.ExcludeSubmissionID.IsNil() && sub.ID == q.ExcludeSubmissionID {
			continue
		}
		if len(q.SubmissionStatuses) > 0 && !containsSubmissionStatus(q.SubmissionStatuses, sub.Status) {
			continue
		}
		for _, claim := range sub.Claims {
			if q.OfficeCode != "" && claim.OfficeCode != q.OfficeCode {
				continue
			}
			if q.FeeCode != "" && claim.FeeCode != q.FeeCode {
				continue
			}
			if q.UniqueFileNumber != "" && claim.UniqueFileNumber != q.UniqueFileNumber {
				continue
			}
			if q.UniqueClientNumber != "" && claim.UniqueClientNumber != q.UniqueClientNumber {
				continue
			}
			if len(q.ClaimStatuses) > 0 && !containsClaimStatus(q.ClaimStatuses, claim.Status) {
				continue
			}
			out = append(out, claim)
		}
	}
	return out, nil
}

func (s *InMemoryStore) UpdateClaim(_ context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID, patch domain.ClaimPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[submissionID]
	if !ok {
		return fmt.Errorf("submission %s: %w", submissionID, sentinel.ErrNotFound)
	}
	for i := range sub.Claims {
		if sub.Claims[i].ID == claimID {
			sub.Claims[i].Status = patch.Status
			return nil
		}
	}
	return fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) UpdateSubmission(_ context.Context, submissionID domain.SubmissionID, patch domain.SubmissionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[submissionID]
	if !ok {
		return fmt.Errorf("submission %s: %w", submissionID, sentinel.ErrNotFound)
	}
	sub.Status = patch.Status
	return nil
}

// SubmissionStatus reads back a submission's status. Test helper.
func (s *InMemoryStore) SubmissionStatus(id domain.SubmissionID) (domain.SubmissionStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[id]
	if !ok {
		return "", false
	}
	return sub.Status, true
}

// ClaimStatus reads back a claim's status. Test helper.
func (s *InMemoryStore) ClaimStatus(submissionID domain.SubmissionID, claimID domain.ClaimID) (domain.ClaimStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[submissionID]
	if !ok {
		return "", false
	}
	for i := range sub.Claims {
		if sub.Claims[i].ID == claimID {
			return sub.Claims[i].Status, true
		}
	}
	return "", false
}

func containsSubmissionStatus(statuses []domain.SubmissionStatus, status domain.SubmissionStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func containsClaimStatus(statuses []domain.ClaimStatus, status domain.ClaimStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
