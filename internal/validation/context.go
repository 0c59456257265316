// Package validation holds the claim validation engine: the shared
// validation context, the per-claim orchestrator, and the validator
// contract implemented by the field, category-of-law, duplicate, and
// fee-calculation checks.
package validation

import (
	"sync"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// Context is the single point of shared mutable state for one submission
// validation run. It owns one report slot per claim, the set of claims
// flagged for retry, and any submission-level errors. It is created per run
// and discarded after write-back; it is never persisted or shared across
// runs.
//
// Claims validate concurrently, so slot creation and the retry set are
// guarded by a mutex. Validators for a single claim run sequentially and
// mutate only that claim's report.
type Context struct {
	mu               sync.Mutex
	reports          map[domain.ClaimID]*models.ClaimValidationReport
	retry            map[domain.ClaimID]struct{}
	submissionErrors []domain.ValidationMessage
	feeCalculations  map[domain.ClaimID]*domain.FeeCalculation
}

// NewContext creates an empty context for one submission validation run.
func NewContext() *Context {
	return &Context{
		reports:         make(map[domain.ClaimID]*models.ClaimValidationReport),
		retry:           make(map[domain.ClaimID]struct{}),
		feeCalculations: make(map[domain.ClaimID]*domain.FeeCalculation),
	}
}

// Report returns the report slot for a claim, creating it lazily.
func (c *Context) Report(claimID domain.ClaimID) *models.ClaimValidationReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.reports[claimID]
	if !ok {
		r = &models.ClaimValidationReport{}
		c.reports[claimID] = r
	}
	return r
}

// AddError records an error from this engine against a claim.
func (c *Context) AddError(claimID domain.ClaimID, verr models.ValidationError) {
	c.Report(claimID).AddError(domain.SourceClaimsValidation, verr)
}

// AddSourcedError records an error attributed to an external source.
func (c *Context) AddSourcedError(claimID domain.ClaimID, source domain.MessageSource, verr models.ValidationError) {
	c.Report(claimID).AddError(source, verr)
}

// AddWarning records a non-blocking warning against a claim.
func (c *Context) AddWarning(claimID domain.ClaimID, source domain.MessageSource, verr models.ValidationError) {
	c.Report(claimID).AddWarning(source, verr)
}

// HasErrors reports whether any error has been recorded against the claim.
func (c *Context) HasErrors(claimID domain.ClaimID) bool {
	return c.Report(claimID).HasErrors()
}

// FlagForRetry marks a claim as unresolved this run due to a transient
// external failure. A flagged claim is never written back this run.
func (c *Context) FlagForRetry(claimID domain.ClaimID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retry[claimID] = struct{}{}
}

// IsFlaggedForRetry reports whether the claim has been flagged this run.
func (c *Context) IsFlaggedForRetry(claimID domain.ClaimID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.retry[claimID]
	return ok
}

// RetryCount returns how many claims were flagged for retry this run.
func (c *Context) RetryCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.retry)
}

// AddSubmissionError records an error that applies to the whole submission.
// Any submission-level error forces every written-back claim to INVALID.
func (c *Context) AddSubmissionError(verr models.ValidationError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submissionErrors = append(c.submissionErrors, domain.ValidationMessage{
		Type:             domain.MessageTypeError,
		Source:           domain.SourceClaimsValidation,
		Code:             verr.Code,
		TechnicalMessage: verr.TechnicalMessage,
		DisplayMessage:   verr.DisplayMessage,
	})
}

// SubmissionErrors returns the submission-level errors in arrival order.
func (c *Context) SubmissionErrors() []domain.ValidationMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ValidationMessage, len(c.submissionErrors))
	copy(out, c.submissionErrors)
	return out
}

// HasSubmissionErrors reports whether any submission-level error exists.
func (c *Context) HasSubmissionErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.submissionErrors) > 0
}

// SetFeeCalculation records the priced figures to merge into the claim's
// write-back patch.
func (c *Context) SetFeeCalculation(claimID domain.ClaimID, calc *domain.FeeCalculation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feeCalculations[claimID] = calc
}

// FeeCalculation returns the recorded figures for a claim, if any.
func (c *Context) FeeCalculation(claimID domain.ClaimID) *domain.FeeCalculation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feeCalculations[claimID]
}
