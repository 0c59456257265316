package duplicates

import (
	"context"
	"fmt"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
)

// cutoffDayOfMonth is the fixed payment-run day the temporal boundary sits
// on.
const cutoffDayOfMonth = 20

// ruleBStrategy is the temporal duplicate rule for Legal Help
// disbursement-only claims. A prior claim for the same office, fee code,
// UFN, and UCN is a duplicate when the earlier of the two case-concluded
// dates falls inside the three-month grace window anchored on the later
// submission period. Landing exactly on the cutoff date is accepted.
type ruleBStrategy struct {
	submission *domain.Submission
	store      ports.ClaimsStore
}

func newRuleB(submission *domain.Submission, store ports.ClaimsStore) *ruleBStrategy {
	return &ruleBStrategy{submission: submission, store: store}
}

// anchorClaim is the candidate selected for the boundary comparison,
// together with its parsed dates.
type anchorClaim struct {
	concluded time.Time
	period    domain.Period
	hasPeriod bool
}

func (s *ruleBStrategy) Detect(ctx context.Context, claim *domain.Claim, vctx *validation.Context) error {
	if !claim.IsDisbursementOnly() {
		return nil
	}
	if claim.UniqueFileNumber == "" || claim.FeeCode == "" {
		return nil
	}

	incomingConcluded, ok := claim.ConcludedDate()
	if !ok {
		// A missing or bad concluded date is the field checks' problem.
		return nil
	}
	incomingPeriod, err := claim.Period()
	if err != nil {
		return nil
	}

	candidates, err := s.store.GetClaims(ctx, ports.ClaimsQuery{
		OfficeCode:          s.submission.OfficeCode,
		ExcludeSubmissionID: s.submission.ID,
		FeeCode:             claim.FeeCode,
		UniqueFileNumber:    claim.UniqueFileNumber,
		UniqueClientNumber:  claim.UniqueClientNumber,
		ClaimStatuses:       domain.DuplicateSearchClaimStatuses(),
	})
	if err != nil {
		return fmt.Errorf("search disbursement duplicate candidates: %w", err)
	}

	anchor, ok := selectAnchor(incomingConcluded, candidates)
	if !ok {
		return nil
	}

	anchorPeriod := incomingPeriod
	if anchor.hasPeriod {
		anchorPeriod = anchor.period
	}
	cutoff := CutoffDate(incomingPeriod, anchorPeriod)

	earlier := incomingConcluded
	if anchor.concluded.Before(earlier) {
		earlier = anchor.concluded
	}

	// Inclusive boundary: a conclusion on the cutoff date itself is not a
	// duplicate. Only the incoming claim is flagged; the anchor stands.
	if earlier.After(cutoff) {
		vctx.AddError(claim.ID, models.ErrDuplicateClaimInAnotherSubmission)
	}
	return nil
}

// selectAnchor picks, among candidates with a parseable case-concluded
// date, the one closest in days to the incoming date. Ties prefer the
// candidate from the later submission period; a missing or unparsable
// period always loses the tie-break.
func selectAnchor(incoming time.Time, candidates []domain.Claim) (anchorClaim, bool) {
	var (
		best     anchorClaim
		bestDist int
		found    bool
	)

	for i := range candidates {
		concluded, ok := candidates[i].ConcludedDate()
		if !ok {
			continue
		}
		candidate := anchorClaim{concluded: concluded}
		if period, err := candidates[i].Period(); err == nil {
			candidate.period = period
			candidate.hasPeriod = true
		}

		dist := dayDistance(incoming, concluded)
		switch {
		case !found, dist < bestDist:
			best, bestDist, found = candidate, dist, true
		case dist == bestDist && laterPeriodWins(candidate, best):
			best = candidate
		}
	}
	return best, found
}

// laterPeriodWins reports whether challenger should displace incumbent in
// an equal-distance tie.
func laterPeriodWins(challenger, incumbent anchorClaim) bool {
	if !challenger.hasPeriod {
		return false
	}
	if !incumbent.hasPeriod {
		return true
	}
	return incumbent.period.Before(challenger.period)
}

func dayDistance(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// CutoffPeriod is the later of the two submission periods, minus three
// months. Symmetric in its arguments.
func CutoffPeriod(a, b domain.Period) domain.Period {
	return domain.LaterPeriod(a, b).AddMonths(-3)
}

// CutoffDate is the temporal duplicate boundary for two submission
// periods: the fixed payment-run day of the month after the cutoff period.
// Concluded dates on or before it fall outside the grace window regardless
// of which claim was processed first.
func CutoffDate(a, b domain.Period) time.Time {
	return CutoffPeriod(a, b).AddMonths(1).Day(cutoffDayOfMonth)
}
