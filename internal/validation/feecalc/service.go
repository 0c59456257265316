// Package feecalc invokes the fee-scheme calculator for each claim and
// folds its response into the validation context.
package feecalc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// Priority runs the fee calculation last: it is the most expensive check
// and its figures only matter for claims that may still be paid.
const Priority = 80

// Validator prices one claim through the fee scheme and classifies the
// response: business errors and warnings go on the report, priced figures
// go on the patch, and anything transient flags the claim for retry.
type Validator struct {
	feeScheme ports.FeeSchemeService
	logger    *slog.Logger
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

func New(feeScheme ports.FeeSchemeService, opts ...Option) (*Validator, error) {
	if feeScheme == nil {
		return nil, fmt.Errorf("fee scheme service is required")
	}
	v := &Validator{feeScheme: feeScheme}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *Validator) Priority() int { return Priority }

func (v *Validator) Validate(ctx context.Context, claim *domain.Claim, vctx *validation.Context, _ domain.AreaOfLaw) {
	// A claim already flagged this run cannot be written back, so pricing
	// it would be wasted work.
	if vctx.IsFlaggedForRetry(claim.ID) {
		return
	}

	result, err := v.feeScheme.CalculateFee(ctx, buildRequest(claim))
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrBadRequest):
		// The request itself is malformed; retrying cannot fix it.
		vctx.AddSourcedError(claim.ID, domain.SourceFeeScheme, models.ErrFeeCalculationValidationFailed)
		return
	default:
		if v.logger != nil {
			v.logger.WarnContext(ctx, "fee calculation failed, flagging claim for retry",
				"claim_id", claim.ID,
				"error", err,
			)
		}
		vctx.FlagForRetry(claim.ID)
		return
	}

	if result == nil || (result.Calculation == nil && len(result.Messages) == 0) {
		vctx.FlagForRetry(claim.ID)
		return
	}

	for _, msg := range result.Messages {
		switch msg.Type {
		case domain.MessageTypeError:
			vctx.AddSourcedError(claim.ID, domain.SourceFeeScheme, models.FeeSchemeError(msg.Text))
		case domain.MessageTypeWarning:
			vctx.AddWarning(claim.ID, domain.SourceFeeScheme, models.FeeSchemeWarning(msg.Text))
		}
	}

	if result.Calculation != nil {
		vctx.SetFeeCalculation(claim.ID, result.Calculation)
	}
}

func buildRequest(claim *domain.Claim) domain.FeeCalculationRequest {
	return domain.FeeCalculationRequest{
		ClaimID:                claim.ID,
		FeeCode:                claim.FeeCode,
		StartDate:              claim.CaseStartDate,
		CaseConcludedDate:      claim.CaseConcludedDate,
		NetProfitCostsAmount:   claim.NetProfitCostsAmount,
		DisbursementsAmount:    claim.DisbursementsAmount,
		DisbursementsVATAmount: claim.DisbursementsVATAmount,
	}
}
