package duplicates

import (
	"context"
	"fmt"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
)

// equalityStrategy is the plain duplicate rule: two claims are duplicates
// when they share office code, fee code, and unique file number, plus the
// unique client number where the area keys on it.
type equalityStrategy struct {
	submission *domain.Submission
	store      ports.ClaimsStore
	useUCN     bool
}

func newEquality(submission *domain.Submission, store ports.ClaimsStore, useUCN bool) *equalityStrategy {
	return &equalityStrategy{submission: submission, store: store, useUCN: useUCN}
}

func (s *equalityStrategy) Detect(ctx context.Context, claim *domain.Claim, vctx *validation.Context) error {
	if claim.UniqueFileNumber == "" || claim.FeeCode == "" {
		// Missing keys are mandatory-field errors, not duplicates.
		return nil
	}

	s.detectWithinSubmission(claim, vctx)
	return s.detectAcrossSubmissions(ctx, claim, vctx)
}

// detectWithinSubmission compares the claim against every other non-invalid
// claim in the current submission. Each claim's own run reports its side of
// a matching pair, so both members end up flagged.
func (s *equalityStrategy) detectWithinSubmission(claim *domain.Claim, vctx *validation.Context) {
	for i := range s.submission.Claims {
		other := &s.submission.Claims[i]
		if other.ID == claim.ID || other.Status == domain.ClaimInvalid {
			continue
		}
		if s.matches(claim, other) {
			vctx.AddError(claim.ID, models.ErrDuplicateClaimInSubmission)
			return
		}
	}
}

func (s *equalityStrategy) detectAcrossSubmissions(ctx context.Context, claim *domain.Claim, vctx *validation.Context) error {
	query := ports.ClaimsQuery{
		OfficeCode:          s.submission.OfficeCode,
		ExcludeSubmissionID: s.submission.ID,
		SubmissionStatuses:  domain.NonTerminalSubmissionStatuses(),
		FeeCode:             claim.FeeCode,
		UniqueFileNumber:    claim.UniqueFileNumber,
		ClaimStatuses:       domain.DuplicateSearchClaimStatuses(),
	}
	if s.useUCN {
		query.UniqueClientNumber = claim.UniqueClientNumber
	}

	candidates, err := s.store.GetClaims(ctx, query)
	if err != nil {
		return fmt.Errorf("search duplicate candidates: %w", err)
	}
	if len(candidates) > 0 {
		vctx.AddError(claim.ID, models.ErrDuplicateClaimInAnotherSubmission)
	}
	return nil
}

func (s *equalityStrategy) matches(a, b *domain.Claim) bool {
	if a.OfficeCode != b.OfficeCode || a.FeeCode != b.FeeCode || a.UniqueFileNumber != b.UniqueFileNumber {
		return false
	}
	if s.useUCN && a.UniqueClientNumber != b.UniqueClientNumber {
		return false
	}
	return true
}
