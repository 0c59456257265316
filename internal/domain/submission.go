package domain

// Submission is a batch of claims submitted together for one office,
// period, and area of law.
type Submission struct {
	ID               SubmissionID
	OfficeCode       string
	SubmissionPeriod string
	AreaOfLaw        AreaOfLaw
	Status           SubmissionStatus
	IsNilSubmission  bool
	Claims           []Claim
}

// SubmissionPatch is the write-back payload for a submission status change.
type SubmissionPatch struct {
	Status SubmissionStatus
}

// MessageType classifies a validation message by severity.
type MessageType string

const (
	MessageTypeError   MessageType = "ERROR"
	MessageTypeWarning MessageType = "WARNING"
)

// MessageSource records which system produced a validation message.
type MessageSource string

const (
	SourceClaimsValidation MessageSource = "CLAIMS_VALIDATION"
	SourceFeeScheme        MessageSource = "FEE_SCHEME"
)

// ValidationMessage is one error or warning recorded against a claim and
// carried on the write-back patch.
type ValidationMessage struct {
	Type             MessageType
	Source           MessageSource
	Code             string
	TechnicalMessage string
	DisplayMessage   string
}
