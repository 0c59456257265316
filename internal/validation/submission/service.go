// Package submission drives a full submission through validation: the
// status gate, the nil-submission and provider-contract rules, bounded
// parallel per-claim validation, result write-back, and the terminal
// status transition.
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/categoryoflaw"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/duplicates"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/feecalc"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/fields"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/metrics"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// defaultMaxInFlight caps concurrent per-claim validations per submission
// so the backing services are not overwhelmed.
const defaultMaxInFlight = 8

// Outcome summarizes one validation run.
type Outcome struct {
	SubmissionID  domain.SubmissionID
	Status        domain.SubmissionStatus
	ClaimsValid   int
	ClaimsInvalid int
	ClaimsRetry   int

	// RetryNeeded is set when claims were left flagged for retry and the
	// submission must be re-queued for another run.
	RetryNeeded bool
}

// Service validates submissions end to end.
type Service struct {
	store       ports.ClaimsStore
	feeScheme   ports.FeeSchemeService
	provider    ports.ProviderService
	fieldChecks []validation.ClaimCheck
	maxInFlight int
	logger      *slog.Logger
	metrics     *metrics.Metrics
	audit       ports.AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMaxInFlight(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxInFlight = n
		}
	}
}

func New(store ports.ClaimsStore, feeScheme ports.FeeSchemeService, provider ports.ProviderService, rules *config.Rules, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("claims store is required")
	}
	if feeScheme == nil {
		return nil, fmt.Errorf("fee scheme service is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider service is required")
	}
	if rules == nil {
		rules = config.Default()
	}

	fieldChecks, err := fields.All(rules)
	if err != nil {
		return nil, fmt.Errorf("build field checks: %w", err)
	}

	s := &Service{
		store:       store,
		feeScheme:   feeScheme,
		provider:    provider,
		fieldChecks: fieldChecks,
		maxInFlight: defaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ValidateSubmission runs one full validation pass over a submission. It
// is safe to call any number of times: claims decided on an earlier run
// are skipped, and claims flagged for retry are picked up by the next run.
func (s *Service) ValidateSubmission(ctx context.Context, submissionID domain.SubmissionID) (*Outcome, error) {
	started := time.Now()

	sub, err := s.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", submissionID, err)
	}
	if sub == nil {
		return nil, fmt.Errorf("submission %s: %w", submissionID, sentinel.ErrNotFound)
	}

	if err := s.enterValidation(ctx, sub); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.Event{
		Action:       audit.ActionValidationStarted,
		SubmissionID: sub.ID,
		Detail:       fmt.Sprintf("%d claims, area %s", len(sub.Claims), sub.AreaOfLaw),
	})

	vctx := validation.NewContext()

	// Nil-submission rules. A nil submission carrying claims is a
	// submission-level error that invalidates every claim at write-back; a
	// non-nil submission without claims has nothing to validate and fails
	// outright.
	if sub.IsNilSubmission && len(sub.Claims) > 0 {
		vctx.AddSubmissionError(models.ErrNilSubmissionContainsClaims)
	}
	if !sub.IsNilSubmission && len(sub.Claims) == 0 {
		if err := s.store.UpdateSubmission(ctx, sub.ID, domain.SubmissionPatch{Status: domain.SubmissionValidationFailed}); err != nil {
			return nil, fmt.Errorf("fail empty submission %s: %w", sub.ID, err)
		}
		s.emitAudit(ctx, audit.Event{
			Action:       audit.ActionValidationAborted,
			SubmissionID: sub.ID,
			Detail:       models.ErrSubmissionHasNoClaims.TechnicalMessage,
		})
		return nil, fmt.Errorf("submission %s has no claims: %w", sub.ID, sentinel.ErrInvalidState)
	}

	if len(sub.Claims) > 0 {
		if err := s.checkProviderContract(ctx, sub, vctx); err != nil {
			// Could not establish contract coverage; retry the whole batch.
			return s.finishWithRetry(ctx, sub, started)
		}
		if err := s.validateClaims(ctx, sub, vctx); err != nil {
			return nil, err
		}
	}

	outcome, err := s.writeBack(ctx, sub, vctx)
	if err != nil {
		return nil, err
	}

	if err := s.finish(ctx, sub, outcome); err != nil {
		return nil, err
	}

	s.metrics.ObserveDuration(time.Since(started))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "submission validated",
			"submission_id", sub.ID,
			"status", outcome.Status,
			"claims_valid", outcome.ClaimsValid,
			"claims_invalid", outcome.ClaimsInvalid,
			"claims_retry", outcome.ClaimsRetry,
		)
	}
	return outcome, nil
}

// enterValidation enforces the status gate and moves a ready submission
// into VALIDATION_IN_PROGRESS. Resuming an in-progress submission is
// idempotent.
func (s *Service) enterValidation(ctx context.Context, sub *domain.Submission) error {
	switch sub.Status {
	case domain.SubmissionReadyForValidation:
		if err := s.store.UpdateSubmission(ctx, sub.ID, domain.SubmissionPatch{Status: domain.SubmissionValidationInProgress}); err != nil {
			return fmt.Errorf("mark submission %s in progress: %w", sub.ID, err)
		}
		sub.Status = domain.SubmissionValidationInProgress
		return nil
	case domain.SubmissionValidationInProgress:
		return nil
	default:
		return fmt.Errorf("submission %s status %q is not validatable: %w", sub.ID, sub.Status, sentinel.ErrInvalidState)
	}
}

// checkProviderContract records a submission-level error when the provider
// holds no contracted categories for the submission's area of law. Claim
// level validation still runs so caseworkers see every problem at once.
func (s *Service) checkProviderContract(ctx context.Context, sub *domain.Submission, vctx *validation.Context) error {
	lines, err := s.provider.GetProviderFirmSchedules(ctx, sub.OfficeCode, sub.AreaOfLaw, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "provider contract lookup failed, retrying submission",
				"submission_id", sub.ID,
				"error", err,
			)
		}
		return err
	}
	if len(domain.CategoriesOfLaw(lines)) == 0 {
		vctx.AddSubmissionError(models.ErrAreaOfLawNotAuthorised)
	}
	return nil
}

// validateClaims runs the per-claim checks with bounded concurrency. The
// context is the only shared mutable state between claims.
func (s *Service) validateClaims(ctx context.Context, sub *domain.Submission, vctx *validation.Context) error {
	checks := make([]validation.ClaimCheck, 0, len(s.fieldChecks)+3)
	checks = append(checks, s.fieldChecks...)

	category, err := categoryoflaw.New(sub, s.feeScheme, s.provider, categoryoflaw.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("build category of law check: %w", err)
	}
	dupes, err := duplicates.NewEngine(sub, s.store, duplicates.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("build duplicate engine: %w", err)
	}
	fees, err := feecalc.New(s.feeScheme, feecalc.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("build fee calculation check: %w", err)
	}
	checks = append(checks, category, dupes, fees)

	claimValidator, err := validation.NewClaimValidator(checks, validation.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("build claim validator: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)
	for i := range sub.Claims {
		claim := &sub.Claims[i]
		if claim.Status != domain.ClaimReadyToProcess {
			continue
		}
		g.Go(func() error {
			claimValidator.Validate(gctx, claim, vctx, sub.AreaOfLaw)
			return nil
		})
	}
	return g.Wait()
}

// writeBack patches every processed claim that was not flagged for retry.
// A claim's final status is a pure function of its report at this moment,
// plus any submission-level error.
func (s *Service) writeBack(ctx context.Context, sub *domain.Submission, vctx *validation.Context) (*Outcome, error) {
	outcome := &Outcome{SubmissionID: sub.ID}
	submissionErrors := vctx.SubmissionErrors()

	for i := range sub.Claims {
		claim := &sub.Claims[i]

		if claim.Status == domain.ClaimInvalid {
			outcome.ClaimsInvalid++
			continue
		}
		if claim.Status == domain.ClaimValid {
			outcome.ClaimsValid++
			continue
		}

		if vctx.IsFlaggedForRetry(claim.ID) {
			outcome.ClaimsRetry++
			s.metrics.IncrementRetry()
			s.emitAudit(ctx, audit.Event{
				Action:       audit.ActionClaimFlaggedRetry,
				SubmissionID: sub.ID,
				ClaimID:      claim.ID,
			})
			continue
		}

		report := vctx.Report(claim.ID)
		status := domain.ClaimValid
		if report.HasErrors() || len(submissionErrors) > 0 {
			status = domain.ClaimInvalid
		}

		messages := append(append([]domain.ValidationMessage{}, submissionErrors...), report.Messages()...)
		patch := domain.ClaimPatch{
			Status:             status,
			ValidationMessages: messages,
			FeeCalculation:     vctx.FeeCalculation(claim.ID),
		}

		if err := s.store.UpdateClaim(ctx, sub.ID, claim.ID, patch); err != nil {
			// The decision stands in the context only; leave the claim for
			// the next run rather than lose the outcome.
			if s.logger != nil {
				s.logger.WarnContext(ctx, "claim write-back failed, leaving for retry",
					"claim_id", claim.ID,
					"error", err,
				)
			}
			outcome.ClaimsRetry++
			s.metrics.IncrementRetry()
			continue
		}

		s.metrics.IncrementClaim(status.String())
		s.emitAudit(ctx, audit.Event{
			Action:       audit.ActionClaimValidated,
			SubmissionID: sub.ID,
			ClaimID:      claim.ID,
			Detail:       status.String(),
		})

		if status == domain.ClaimInvalid {
			outcome.ClaimsInvalid++
		} else {
			outcome.ClaimsValid++
		}
	}

	return outcome, nil
}

// finish applies the terminal status transition once no claims remain
// flagged for retry.
func (s *Service) finish(ctx context.Context, sub *domain.Submission, outcome *Outcome) error {
	if outcome.ClaimsRetry > 0 {
		outcome.Status = domain.SubmissionValidationInProgress
		outcome.RetryNeeded = true
		s.metrics.IncrementSubmission("retry_pending")
		s.emitAudit(ctx, audit.Event{
			Action:       audit.ActionValidationCompleted,
			SubmissionID: sub.ID,
			Detail:       fmt.Sprintf("incomplete, %d claims flagged for retry", outcome.ClaimsRetry),
		})
		return nil
	}

	final := domain.SubmissionValidationSucceeded
	if outcome.ClaimsInvalid > 0 {
		final = domain.SubmissionValidationFailed
	}

	if err := s.store.UpdateSubmission(ctx, sub.ID, domain.SubmissionPatch{Status: final}); err != nil {
		return fmt.Errorf("finalize submission %s: %w", sub.ID, err)
	}
	outcome.Status = final

	label := "succeeded"
	if final == domain.SubmissionValidationFailed {
		label = "failed"
	}
	s.metrics.IncrementSubmission(label)
	s.emitAudit(ctx, audit.Event{
		Action:       audit.ActionValidationCompleted,
		SubmissionID: sub.ID,
		Detail:       final.String(),
	})
	return nil
}

// finishWithRetry leaves the submission in progress for a later run when a
// submission-wide dependency was unavailable.
func (s *Service) finishWithRetry(ctx context.Context, sub *domain.Submission, started time.Time) (*Outcome, error) {
	outcome := &Outcome{
		SubmissionID: sub.ID,
		Status:       domain.SubmissionValidationInProgress,
		ClaimsRetry:  len(sub.Claims),
		RetryNeeded:  true,
	}
	s.metrics.IncrementSubmission("retry_pending")
	s.metrics.ObserveDuration(time.Since(started))
	s.emitAudit(ctx, audit.Event{
		Action:       audit.ActionValidationCompleted,
		SubmissionID: sub.ID,
		Detail:       "incomplete, provider contract lookup unavailable",
	})
	return outcome, nil
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "error", err)
	}
}
