// Package feescheme is the REST client for the fee scheme platform:
// fee-code detail lookups and fee calculations.
package feescheme

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

type Client struct {
	baseURL string
	http    *clients.HTTPClient
}

func New(baseURL string, timeout time.Duration, rps float64, burst int) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("fee scheme API base URL is required")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    clients.NewHTTPClient(timeout, rps, burst),
	}, nil
}

func (c *Client) GetFeeDetails(ctx context.Context, feeCode string) (*domain.FeeDetails, error) {
	var dto feeDetailsDTO
	url := fmt.Sprintf("%s/api/v1/fee-details/%s", c.baseURL, feeCode)
	if err := c.http.DoJSON(ctx, http.MethodGet, url, nil, &dto); err != nil {
		return nil, err
	}
	return &domain.FeeDetails{
		FeeCode:           dto.FeeCode,
		Description:       dto.Description,
		CategoryOfLawCode: dto.CategoryOfLawCode,
		FeeType:           domain.FeeCalculationType(dto.FeeType),
	}, nil
}

// CalculateFee prices one claim. A 4xx from the calculator comes back
// wrapped with sentinel.ErrBadRequest so the fee-calculation validator can
// record a fixed non-retryable error.
func (c *Client) CalculateFee(ctx context.Context, req domain.FeeCalculationRequest) (*domain.FeeCalculationResult, error) {
	body := feeCalculationRequestDTO{
		ClaimID:                req.ClaimID.String(),
		FeeCode:                req.FeeCode,
		StartDate:              req.StartDate,
		CaseConcludedDate:      req.CaseConcludedDate,
		NetProfitCostsAmount:   req.NetProfitCostsAmount,
		DisbursementsAmount:    req.DisbursementsAmount,
		DisbursementsVATAmount: req.DisbursementsVATAmount,
	}

	var dto feeCalculationResponseDTO
	url := fmt.Sprintf("%s/api/v1/fee-calculation", c.baseURL)
	if err := c.http.DoJSON(ctx, http.MethodPost, url, body, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

type feeDetailsDTO struct {
	FeeCode           string `json:"feeCode"`
	Description       string `json:"description"`
	CategoryOfLawCode string `json:"categoryOfLawCode"`
	FeeType           string `json:"feeType"`
}

type feeCalculationRequestDTO struct {
	ClaimID                string   `json:"claimId"`
	FeeCode                string   `json:"feeCode"`
	StartDate              string   `json:"startDate"`
	CaseConcludedDate      string   `json:"caseConcludedDate"`
	NetProfitCostsAmount   *float64 `json:"netProfitCostsAmount,omitempty"`
	DisbursementsAmount    *float64 `json:"disbursementsAmount,omitempty"`
	DisbursementsVATAmount *float64 `json:"disbursementsVatAmount,omitempty"`
}

type feeCalculationMessageDTO struct {
	Type string `json:"type"`
	Text string `json:"message"`
}

type feeCalculationDTO struct {
	TotalAmount        float64  `json:"totalAmount"`
	FixedFeeAmount     *float64 `json:"fixedFeeAmount"`
	NetProfitCosts     *float64 `json:"netProfitCostsAmount"`
	DisbursementAmount *float64 `json:"disbursementAmount"`
	DisbursementVAT    *float64 `json:"disbursementVatAmount"`
}

type feeCalculationResponseDTO struct {
	FeeCalculation *feeCalculationDTO         `json:"feeCalculation"`
	Messages       []feeCalculationMessageDTO `json:"validationMessages"`
}

func (d feeCalculationResponseDTO) toDomain() *domain.FeeCalculationResult {
	result := &domain.FeeCalculationResult{}
	if d.FeeCalculation != nil {
		result.Calculation = &domain.FeeCalculation{
			TotalAmount:        d.FeeCalculation.TotalAmount,
			FixedFeeAmount:     d.FeeCalculation.FixedFeeAmount,
			NetProfitCosts:     d.FeeCalculation.NetProfitCosts,
			DisbursementAmount: d.FeeCalculation.DisbursementAmount,
			DisbursementVAT:    d.FeeCalculation.DisbursementVAT,
		}
	}
	for _, m := range d.Messages {
		result.Messages = append(result.Messages, domain.FeeCalculationMessage{
			Type: domain.MessageType(m.Type),
			Text: m.Text,
		})
	}
	return result
}
