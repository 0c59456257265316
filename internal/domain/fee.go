package domain

// FeeCalculationType is how the fee scheme prices a claim's fee code.
type FeeCalculationType string

const (
	FeeTypeFixed            FeeCalculationType = "FIXED"
	FeeTypeHourly           FeeCalculationType = "HOURLY"
	FeeTypeDisbursementOnly FeeCalculationType = "DISBURSEMENT_ONLY"
)

// FeeDetails is the fee-scheme view of one fee code.
type FeeDetails struct {
	FeeCode           string
	Description       string
	CategoryOfLawCode string
	FeeType           FeeCalculationType
}

// FeeCalculationRequest carries the claim figures the fee scheme needs to
// price a claim.
type FeeCalculationRequest struct {
	ClaimID                ClaimID
	FeeCode                string
	StartDate              string
	CaseConcludedDate      string
	NetProfitCostsAmount   *float64
	DisbursementsAmount    *float64
	DisbursementsVATAmount *float64
}

// FeeCalculation is the priced outcome merged into the claim patch.
type FeeCalculation struct {
	TotalAmount        float64
	FixedFeeAmount     *float64
	NetProfitCosts     *float64
	DisbursementAmount *float64
	DisbursementVAT    *float64
}

// FeeCalculationMessage is one business-rule message returned alongside a
// fee calculation.
type FeeCalculationMessage struct {
	Type MessageType
	Text string
}

// FeeCalculationResult is the fee scheme's response for one claim.
type FeeCalculationResult struct {
	Calculation *FeeCalculation
	Messages    []FeeCalculationMessage
}
