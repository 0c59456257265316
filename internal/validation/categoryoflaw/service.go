// Package categoryoflaw resolves each claim's fee code to a category of
// law and checks it against the provider's contracted categories for the
// claim's effective date.
package categoryoflaw

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
)

// Priority orders the category check after the field checks.
const Priority = 60

// Validator checks fee-code categories per claim. It is built once per
// submission validation run so fee-code and schedule lookups memoize
// across the claim batch; claims validate concurrently, so each memo entry
// resolves exactly once behind a sync.Once.
type Validator struct {
	submission *domain.Submission
	feeScheme  ports.FeeSchemeService
	provider   ports.ProviderService
	logger     *slog.Logger

	mu        sync.Mutex
	feeCodes  map[string]*feeCodeEntry
	schedules map[string]*scheduleEntry
}

type feeCodeEntry struct {
	once     sync.Once
	category string
	err      error
}

type scheduleEntry struct {
	once       sync.Once
	categories map[string]struct{}
	err        error
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

func New(submission *domain.Submission, feeScheme ports.FeeSchemeService, provider ports.ProviderService, opts ...Option) (*Validator, error) {
	if submission == nil {
		return nil, fmt.Errorf("submission is required")
	}
	if feeScheme == nil {
		return nil, fmt.Errorf("fee scheme service is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider service is required")
	}

	v := &Validator{
		submission: submission,
		feeScheme:  feeScheme,
		provider:   provider,
		feeCodes:   make(map[string]*feeCodeEntry),
		schedules:  make(map[string]*scheduleEntry),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *Validator) Priority() int { return Priority }

func (v *Validator) Validate(ctx context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	if claim.FeeCode == "" {
		// Left to the mandatory-field check.
		return
	}

	category, err := v.resolveCategory(ctx, claim.FeeCode)
	if err != nil {
		// A failed lookup is transient by definition here: the claim is
		// retried later rather than errored.
		if v.logger != nil {
			v.logger.WarnContext(ctx, "fee code category lookup failed, flagging claim for retry",
				"claim_id", claim.ID,
				"fee_code", claim.FeeCode,
				"error", err,
			)
		}
		vctx.FlagForRetry(claim.ID)
		return
	}

	if category == "" {
		vctx.AddError(claim.ID, models.ErrFeeCodeHasNoCategoryOfLaw)
		return
	}

	var effective *time.Time
	if t, ok := claim.EffectiveDate(); ok {
		effective = &t
	}

	authorised, err := v.authorisedCategories(ctx, area, effective)
	if err != nil {
		if v.logger != nil {
			v.logger.WarnContext(ctx, "provider schedule lookup failed, flagging claim for retry",
				"claim_id", claim.ID,
				"error", err,
			)
		}
		vctx.FlagForRetry(claim.ID)
		return
	}

	if _, ok := authorised[category]; !ok {
		vctx.AddError(claim.ID, models.ErrCategoryOfLawNotAuthorised)
	}
}

// resolveCategory memoizes the fee-scheme category lookup per fee code.
func (v *Validator) resolveCategory(ctx context.Context, feeCode string) (string, error) {
	v.mu.Lock()
	entry, ok := v.feeCodes[feeCode]
	if !ok {
		entry = &feeCodeEntry{}
		v.feeCodes[feeCode] = entry
	}
	v.mu.Unlock()

	entry.once.Do(func() {
		details, err := v.feeScheme.GetFeeDetails(ctx, feeCode)
		if err != nil {
			entry.err = err
			return
		}
		if details != nil {
			entry.category = details.CategoryOfLawCode
		}
	})
	return entry.category, entry.err
}

// authorisedCategories memoizes the provider schedule lookup per effective
// date.
func (v *Validator) authorisedCategories(ctx context.Context, area domain.AreaOfLaw, effective *time.Time) (map[string]struct{}, error) {
	key := ""
	if effective != nil {
		key = effective.Format(domain.ClaimDateLayout)
	}

	v.mu.Lock()
	entry, ok := v.schedules[key]
	if !ok {
		entry = &scheduleEntry{}
		v.schedules[key] = entry
	}
	v.mu.Unlock()

	entry.once.Do(func() {
		lines, err := v.provider.GetProviderFirmSchedules(ctx, v.submission.OfficeCode, area, effective)
		if err != nil {
			entry.err = err
			return
		}
		categories := make(map[string]struct{})
		for _, category := range domain.CategoriesOfLaw(lines) {
			categories[category] = struct{}{}
		}
		entry.categories = categories
	})
	return entry.categories, entry.err
}
