// Package duplicates detects duplicate claims within the current submission
// and across previously submitted ones. Detection is strategy-based: each
// area of law maps to one strategy in a fixed table, and Legal Help
// disbursement-only claims follow the temporal boundary rule implemented in
// ruleb.go.
package duplicates

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
)

// Priority orders the duplicate checks after the field checks and the
// category-of-law check.
const Priority = 70

// Strategy is one area-of-law-specific duplicate rule. A returned error
// means candidate retrieval failed and the claim must be flagged for retry.
type Strategy interface {
	Detect(ctx context.Context, claim *domain.Claim, vctx *validation.Context) error
}

// Engine dispatches each claim to its area's strategy. It is built per
// validation run because the within-submission comparison needs the
// submission's claim list.
type Engine struct {
	strategies map[domain.AreaOfLaw]Strategy
	logger     *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine builds the strategy table for one submission validation run.
func NewEngine(submission *domain.Submission, store ports.ClaimsStore, opts ...Option) (*Engine, error) {
	if submission == nil {
		return nil, fmt.Errorf("submission is required")
	}
	if store == nil {
		return nil, fmt.Errorf("claims store is required")
	}

	civil := newEquality(submission, store, true)
	crime := newEquality(submission, store, false)
	mediation := newEquality(submission, store, true)
	legalHelp := &legalHelpStrategy{
		equality: newEquality(submission, store, true),
		ruleB:    newRuleB(submission, store),
	}

	e := &Engine{
		strategies: map[domain.AreaOfLaw]Strategy{
			domain.AreaCivil:      civil,
			domain.AreaCrimeLower: crime,
			domain.AreaMediation:  mediation,
			domain.AreaLegalHelp:  legalHelp,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Priority() int { return Priority }

// Validate runs the area's duplicate strategy for one claim. Retrieval
// failures flag the claim for retry rather than erroring it.
func (e *Engine) Validate(ctx context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	strategy, ok := e.strategies[area]
	if !ok {
		return
	}
	if err := strategy.Detect(ctx, claim, vctx); err != nil {
		if e.logger != nil {
			e.logger.WarnContext(ctx, "duplicate candidate search failed, flagging claim for retry",
				"claim_id", claim.ID,
				"error", err,
			)
		}
		vctx.FlagForRetry(claim.ID)
	}
}

// legalHelpStrategy switches Legal Help claims between the temporal rule
// for disbursement-only claims and the plain equality rule for the rest.
type legalHelpStrategy struct {
	equality *equalityStrategy
	ruleB    *ruleBStrategy
}

func (s *legalHelpStrategy) Detect(ctx context.Context, claim *domain.Claim, vctx *validation.Context) error {
	if claim.IsDisbursementOnly() {
		return s.ruleB.Detect(ctx, claim, vctx)
	}
	return s.equality.Detect(ctx, claim, vctx)
}
