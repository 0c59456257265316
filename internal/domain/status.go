package domain

// SubmissionStatus tracks a submission through the validation state machine.
type SubmissionStatus string

const (
	SubmissionCreated              SubmissionStatus = "CREATED"
	SubmissionReadyForValidation   SubmissionStatus = "READY_FOR_VALIDATION"
	SubmissionValidationInProgress SubmissionStatus = "VALIDATION_IN_PROGRESS"
	SubmissionValidationSucceeded  SubmissionStatus = "VALIDATION_SUCCEEDED"
	SubmissionValidationFailed     SubmissionStatus = "VALIDATION_FAILED"
)

// IsValid checks if the status is one of the supported enum values.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionCreated, SubmissionReadyForValidation, SubmissionValidationInProgress,
		SubmissionValidationSucceeded, SubmissionValidationFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further validation runs are expected.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionValidationSucceeded || s == SubmissionValidationFailed
}

// String returns the string representation.
func (s SubmissionStatus) String() string { return string(s) }

// NonTerminalSubmissionStatuses is the filter set used when searching prior
// submissions for duplicate claims: submissions that may still pay out.
func NonTerminalSubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		SubmissionCreated,
		SubmissionValidationInProgress,
		SubmissionReadyForValidation,
	}
}

// ClaimStatus tracks one claim line through validation.
type ClaimStatus string

const (
	ClaimReadyToProcess ClaimStatus = "READY_TO_PROCESS"
	ClaimValid          ClaimStatus = "VALID"
	ClaimInvalid        ClaimStatus = "INVALID"
)

// IsValid checks if the status is one of the supported enum values.
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimReadyToProcess, ClaimValid, ClaimInvalid:
		return true
	}
	return false
}

// String returns the string representation.
func (s ClaimStatus) String() string { return string(s) }

// DuplicateSearchClaimStatuses is the claim-status filter used when fetching
// duplicate candidates: claims that are, or may yet become, payable.
func DuplicateSearchClaimStatuses() []ClaimStatus {
	return []ClaimStatus{ClaimReadyToProcess, ClaimValid}
}
