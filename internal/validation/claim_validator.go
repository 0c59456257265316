package validation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// ClaimCheck is one validation rule applied to a claim. Checks side-effect
// only on the run context. Priority gives a total order deciding message
// arrival order; it never short-circuits later checks.
type ClaimCheck interface {
	Priority() int
	Validate(ctx context.Context, claim *domain.Claim, vctx *Context, area domain.AreaOfLaw)
}

// ClaimValidator runs every registered check against one claim, lowest
// priority first.
type ClaimValidator struct {
	checks []ClaimCheck
	logger *slog.Logger
}

type ClaimValidatorOption func(*ClaimValidator)

func WithLogger(logger *slog.Logger) ClaimValidatorOption {
	return func(v *ClaimValidator) {
		v.logger = logger
	}
}

func NewClaimValidator(checks []ClaimCheck, opts ...ClaimValidatorOption) (*ClaimValidator, error) {
	if len(checks) == 0 {
		return nil, fmt.Errorf("at least one claim check is required")
	}

	ordered := make([]ClaimCheck, len(checks))
	copy(ordered, checks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	v := &ClaimValidator{checks: ordered}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate runs all checks for one claim in priority order.
func (v *ClaimValidator) Validate(ctx context.Context, claim *domain.Claim, vctx *Context, area domain.AreaOfLaw) {
	for _, check := range v.checks {
		check.Validate(ctx, claim, vctx, area)
	}

	if v.logger != nil {
		v.logger.DebugContext(ctx, "claim validated",
			"claim_id", claim.ID,
			"has_errors", vctx.HasErrors(claim.ID),
			"flagged_for_retry", vctx.IsFlaggedForRetry(claim.ID),
		)
	}
}
