// Package audit records an append-only trail of validation outcomes so
// caseworkers and support can reconstruct why a submission ended up in a
// given state.
package audit

import (
	"context"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// Action names for validation audit events.
const (
	ActionValidationStarted   = "submission_validation_started"
	ActionValidationCompleted = "submission_validation_completed"
	ActionValidationAborted   = "submission_validation_aborted"
	ActionClaimValidated      = "claim_validated"
	ActionClaimFlaggedRetry   = "claim_flagged_for_retry"
)

// Event is one audit record. SubmissionID is always set; ClaimID only for
// claim-level actions.
type Event struct {
	Action       string
	SubmissionID domain.SubmissionID
	ClaimID      domain.ClaimID
	Detail       string
	Timestamp    time.Time
}

// Store persists audit events. Implementations must be append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubmission(ctx context.Context, submissionID domain.SubmissionID) ([]Event, error)
}
