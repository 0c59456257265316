package domain

import "time"

// ClaimDateLayout is the wire format for all claim date fields.
const ClaimDateLayout = "2006-01-02"

// Claim is a read-only snapshot of one submitted claim line. The claims
// store owns the record; the engine receives copies and emits patches.
// Date fields stay strings as submitted, since an unparsable date is a
// validation outcome rather than a decode failure.
type Claim struct {
	ID           ClaimID
	SubmissionID SubmissionID
	Status       ClaimStatus

	OfficeCode       string
	SubmissionPeriod string

	ScheduleReference   string
	LineNumber          int
	CaseReferenceNumber string
	UniqueFileNumber    string
	UniqueClientNumber  string
	ClientForename      string
	ClientSurname       string
	ClientDateOfBirth   string

	FeeCode            string
	FeeCalculationType FeeCalculationType

	CaseStartDate           string
	CaseConcludedDate       string
	RepresentationOrderDate string

	StageReachedCode string
	MatterTypeCode   string
	OutcomeCode      string

	NetProfitCostsAmount   *float64
	DisbursementsAmount    *float64
	DisbursementsVATAmount *float64
}

// IsDisbursementOnly reports whether this claim is paid purely as a
// disbursement, which switches Legal Help claims onto the temporal
// duplicate rule and exempts them from some mandatory fields.
func (c *Claim) IsDisbursementOnly() bool {
	return c.FeeCalculationType == FeeTypeDisbursementOnly
}

// Period parses the claim's submission period.
func (c *Claim) Period() (Period, error) {
	return ParsePeriod(c.SubmissionPeriod)
}

// ConcludedDate parses the claim's case-concluded date. The second return
// is false when the field is blank or unparsable.
func (c *Claim) ConcludedDate() (time.Time, bool) {
	if c.CaseConcludedDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ClaimDateLayout, c.CaseConcludedDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EffectiveDate is the date used to window provider contract coverage:
// the case start date when parseable, otherwise zero.
func (c *Claim) EffectiveDate() (time.Time, bool) {
	if c.CaseStartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ClaimDateLayout, c.CaseStartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClaimPatch is the write-back payload for one validated claim.
type ClaimPatch struct {
	Status             ClaimStatus
	ValidationMessages []ValidationMessage
	FeeCalculation     *FeeCalculation
}
