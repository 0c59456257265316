package models

import (
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// ClaimValidationReport accumulates the ordered errors and warnings raised
// against one claim during a validation run. Validators for a single claim
// run sequentially in priority order, so the report itself needs no locking;
// the context hands out one report per claim.
type ClaimValidationReport struct {
	messages []domain.ValidationMessage
}

// AddError appends an error-severity message from the given source.
func (r *ClaimValidationReport) AddError(source domain.MessageSource, verr ValidationError) {
	r.messages = append(r.messages, domain.ValidationMessage{
		Type:             domain.MessageTypeError,
		Source:           source,
		Code:             verr.Code,
		TechnicalMessage: verr.TechnicalMessage,
		DisplayMessage:   verr.DisplayMessage,
	})
}

// AddWarning appends a warning-severity message from the given source.
// Warnings never affect the claim's final status.
func (r *ClaimValidationReport) AddWarning(source domain.MessageSource, verr ValidationError) {
	r.messages = append(r.messages, domain.ValidationMessage{
		Type:             domain.MessageTypeWarning,
		Source:           source,
		Code:             verr.Code,
		TechnicalMessage: verr.TechnicalMessage,
		DisplayMessage:   verr.DisplayMessage,
	})
}

// HasErrors reports whether any error-severity message has been recorded.
func (r *ClaimValidationReport) HasErrors() bool {
	for _, m := range r.messages {
		if m.Type == domain.MessageTypeError {
			return true
		}
	}
	return false
}

// Messages returns the recorded messages in arrival order.
func (r *ClaimValidationReport) Messages() []domain.ValidationMessage {
	out := make([]domain.ValidationMessage, len(r.messages))
	copy(out, r.messages)
	return out
}
