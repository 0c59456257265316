// Package ports defines the collaborator interfaces the validation engine
// consumes. Interfaces live here because multiple services depend on them;
// implementations are REST clients under internal/clients plus in-memory
// fakes for tests and local runs.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// ClaimsQuery filters the duplicate-candidate search in the claims store.
// Zero-valued fields are not applied.
type ClaimsQuery struct {
	OfficeCode          string
	ExcludeSubmissionID domain.SubmissionID
	SubmissionStatuses  []domain.SubmissionStatus
	FeeCode             string
	UniqueFileNumber    string
	UniqueClientNumber  string
	ClaimStatuses       []domain.ClaimStatus
}

// ClaimsStore reads and patches claims and submissions in the claims store.
type ClaimsStore interface {
	// GetSubmission returns the submission with its claims.
	GetSubmission(ctx context.Context, id domain.SubmissionID) (*domain.Submission, error)

	// GetClaim returns a single claim.
	GetClaim(ctx context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID) (*domain.Claim, error)

	// GetClaims searches claims across submissions for duplicate candidates.
	GetClaims(ctx context.Context, q ClaimsQuery) ([]domain.Claim, error)

	// UpdateClaim applies a validation outcome patch to one claim.
	UpdateClaim(ctx context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID, patch domain.ClaimPatch) error

	// UpdateSubmission applies a status patch to the submission.
	UpdateSubmission(ctx context.Context, submissionID domain.SubmissionID, patch domain.SubmissionPatch) error
}

// FeeSchemeService resolves fee codes and prices claims.
type FeeSchemeService interface {
	// GetFeeDetails returns fee-code metadata including its category of law.
	GetFeeDetails(ctx context.Context, feeCode string) (*domain.FeeDetails, error)

	// CalculateFee prices a claim. A sentinel.ErrBadRequest-wrapped error
	// means the request itself was rejected; anything transient is wrapped
	// with sentinel.ErrUnavailable.
	CalculateFee(ctx context.Context, req domain.FeeCalculationRequest) (*domain.FeeCalculationResult, error)
}

// ProviderService exposes provider contract schedules. A nil effectiveDate
// returns current coverage; otherwise coverage is windowed to that date.
type ProviderService interface {
	GetProviderFirmSchedules(ctx context.Context, officeCode string, area domain.AreaOfLaw, effectiveDate *time.Time) ([]domain.ScheduleLine, error)
}

// AuditPublisher emits audit events for validation outcomes.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
