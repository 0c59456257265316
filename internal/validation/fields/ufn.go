package fields

import (
	"context"
	"strings"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// ufnDateLayout is the ddMMyy date prefix of a unique file number,
// e.g. "010425/123".
const ufnDateLayout = "020106"

// UFNDate checks that the unique file number begins with a real calendar
// date. A blank UFN is left to the mandatory-field check.
type UFNDate struct{}

func NewUFNDate() *UFNDate { return &UFNDate{} }

func (u *UFNDate) Priority() int { return PriorityUFNDate }

func (u *UFNDate) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, _ domain.AreaOfLaw) {
	ufn := strings.TrimSpace(claim.UniqueFileNumber)
	if ufn == "" {
		return
	}

	prefix, _, _ := strings.Cut(ufn, "/")
	if len(prefix) != len(ufnDateLayout) {
		vctx.AddError(claim.ID, models.ErrInvalidDateInUniqueFileNumber)
		return
	}
	if _, err := time.Parse(ufnDateLayout, prefix); err != nil {
		vctx.AddError(claim.ID, models.ErrInvalidDateInUniqueFileNumber)
	}
}
