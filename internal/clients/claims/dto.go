package claims

import (
	"fmt"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

type submissionDTO struct {
	SubmissionID     string     `json:"submissionId"`
	OfficeCode       string     `json:"officeCode"`
	SubmissionPeriod string     `json:"submissionPeriod"`
	AreaOfLaw        string     `json:"areaOfLaw"`
	Status           string     `json:"status"`
	IsNilSubmission  bool       `json:"isNilSubmission"`
	Claims           []claimDTO `json:"claims"`
}

func (d submissionDTO) toDomain() (*domain.Submission, error) {
	id, err := domain.ParseSubmissionID(d.SubmissionID)
	if err != nil {
		return nil, fmt.Errorf("submission id %q: %w", d.SubmissionID, err)
	}
	area, err := domain.ParseAreaOfLaw(d.AreaOfLaw)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:               id,
		OfficeCode:       d.OfficeCode,
		SubmissionPeriod: d.SubmissionPeriod,
		AreaOfLaw:        area,
		Status:           domain.SubmissionStatus(d.Status),
		IsNilSubmission:  d.IsNilSubmission,
	}
	for _, c := range d.Claims {
		claim, err := c.toDomain()
		if err != nil {
			return nil, err
		}
		sub.Claims = append(sub.Claims, claim)
	}
	return sub, nil
}

type claimDTO struct {
	ClaimID                 string   `json:"claimId"`
	SubmissionID            string   `json:"submissionId"`
	Status                  string   `json:"status"`
	OfficeCode              string   `json:"officeCode"`
	SubmissionPeriod        string   `json:"submissionPeriod"`
	ScheduleReference       string   `json:"scheduleReference"`
	LineNumber              int      `json:"lineNumber"`
	CaseReferenceNumber     string   `json:"caseReferenceNumber"`
	UniqueFileNumber        string   `json:"uniqueFileNumber"`
	UniqueClientNumber      string   `json:"uniqueClientNumber"`
	ClientForename          string   `json:"clientForename"`
	ClientSurname           string   `json:"clientSurname"`
	ClientDateOfBirth       string   `json:"clientDateOfBirth"`
	FeeCode                 string   `json:"feeCode"`
	FeeCalculationType      string   `json:"feeCalculationType"`
	CaseStartDate           string   `json:"caseStartDate"`
	CaseConcludedDate       string   `json:"caseConcludedDate"`
	RepresentationOrderDate string   `json:"representationOrderDate"`
	StageReachedCode        string   `json:"stageReachedCode"`
	MatterTypeCode          string   `json:"matterTypeCode"`
	OutcomeCode             string   `json:"outcomeCode"`
	NetProfitCostsAmount    *float64 `json:"netProfitCostsAmount"`
	DisbursementsAmount     *float64 `json:"disbursementsAmount"`
	DisbursementsVATAmount  *float64 `json:"disbursementsVatAmount"`
}

func (d claimDTO) toDomain() (domain.Claim, error) {
	claimID, err := domain.ParseClaimID(d.ClaimID)
	if err != nil {
		return domain.Claim{}, fmt.Errorf("claim id %q: %w", d.ClaimID, err)
	}
	var submissionID domain.SubmissionID
	if d.SubmissionID != "" {
		submissionID, err = domain.ParseSubmissionID(d.SubmissionID)
		if err != nil {
			return domain.Claim{}, fmt.Errorf("claim submission id %q: %w", d.SubmissionID, err)
		}
	}

	return domain.Claim{
		ID:                      claimID,
		SubmissionID:            submissionID,
		Status:                  domain.ClaimStatus(d.Status),
		OfficeCode:              d.OfficeCode,
		SubmissionPeriod:        d.SubmissionPeriod,
		ScheduleReference:       d.ScheduleReference,
		LineNumber:              d.LineNumber,
		CaseReferenceNumber:     d.CaseReferenceNumber,
		UniqueFileNumber:        d.UniqueFileNumber,
		UniqueClientNumber:      d.UniqueClientNumber,
		ClientForename:          d.ClientForename,
		ClientSurname:           d.ClientSurname,
		ClientDateOfBirth:       d.ClientDateOfBirth,
		FeeCode:                 d.FeeCode,
		FeeCalculationType:      domain.FeeCalculationType(d.FeeCalculationType),
		CaseStartDate:           d.CaseStartDate,
		CaseConcludedDate:       d.CaseConcludedDate,
		RepresentationOrderDate: d.RepresentationOrderDate,
		StageReachedCode:        d.StageReachedCode,
		MatterTypeCode:          d.MatterTypeCode,
		OutcomeCode:             d.OutcomeCode,
		NetProfitCostsAmount:    d.NetProfitCostsAmount,
		DisbursementsAmount:     d.DisbursementsAmount,
		DisbursementsVATAmount:  d.DisbursementsVATAmount,
	}, nil
}

type claimsPageDTO struct {
	Claims []claimDTO `json:"claims"`
}

type validationMessageDTO struct {
	Type             string `json:"type"`
	Source           string `json:"source"`
	Code             string `json:"code"`
	TechnicalMessage string `json:"technicalMessage"`
	DisplayMessage   string `json:"displayMessage"`
}

type feeCalculationDTO struct {
	TotalAmount        float64  `json:"totalAmount"`
	FixedFeeAmount     *float64 `json:"fixedFeeAmount,omitempty"`
	NetProfitCosts     *float64 `json:"netProfitCostsAmount,omitempty"`
	DisbursementAmount *float64 `json:"disbursementAmount,omitempty"`
	DisbursementVAT    *float64 `json:"disbursementVatAmount,omitempty"`
}

type claimPatchDTO struct {
	Status             string                 `json:"status"`
	ValidationMessages []validationMessageDTO `json:"validationMessages"`
	FeeCalculation     *feeCalculationDTO     `json:"feeCalculation,omitempty"`
}

func newClaimPatchDTO(patch domain.ClaimPatch) claimPatchDTO {
	dto := claimPatchDTO{Status: patch.Status.String()}
	for _, m := range patch.ValidationMessages {
		dto.ValidationMessages = append(dto.ValidationMessages, validationMessageDTO{
			Type:             string(m.Type),
			Source:           string(m.Source),
			Code:             m.Code,
			TechnicalMessage: m.TechnicalMessage,
			DisplayMessage:   m.DisplayMessage,
		})
	}
	if patch.FeeCalculation != nil {
		dto.FeeCalculation = &feeCalculationDTO{
			TotalAmount:        patch.FeeCalculation.TotalAmount,
			FixedFeeAmount:     patch.FeeCalculation.FixedFeeAmount,
			NetProfitCosts:     patch.FeeCalculation.NetProfitCosts,
			DisbursementAmount: patch.FeeCalculation.DisbursementAmount,
			DisbursementVAT:    patch.FeeCalculation.DisbursementVAT,
		}
	}
	return dto
}

type submissionPatchDTO struct {
	Status string `json:"status"`
}
