package fields

import (
	"context"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// DisbursementStartDate checks that a disbursement-only claim's case
// started no more than three calendar months before the end of its
// submission-period month. A case started exactly on the minimum eligible
// date still passes.
type DisbursementStartDate struct{}

func NewDisbursementStartDate() *DisbursementStartDate { return &DisbursementStartDate{} }

func (d *DisbursementStartDate) Priority() int { return PriorityDisbursementDate }

func (d *DisbursementStartDate) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, _ domain.AreaOfLaw) {
	if !claim.IsDisbursementOnly() {
		return
	}

	start, err := time.Parse(domain.ClaimDateLayout, claim.CaseStartDate)
	if err != nil {
		// Bad or missing start dates are the date-range check's problem.
		return
	}
	period, err := claim.Period()
	if err != nil {
		return
	}

	minEligible := MinimumEligibleStartDate(period)
	if start.Before(minEligible) {
		vctx.AddError(claim.ID, models.DisbursementStartDateError(minEligible))
	}
}

// MinimumEligibleStartDate is the earliest case start date a disbursement
// claim may carry for a given submission period: three calendar months
// before the end of the period's month.
func MinimumEligibleStartDate(period domain.Period) time.Time {
	return period.EndOfMonth().AddDate(0, -3, 0)
}
