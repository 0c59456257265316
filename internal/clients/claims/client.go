// Package claims is the REST client for the claims store: submission and
// claim reads, the duplicate-candidate search, and validation write-backs.
package claims

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports"
)

type Client struct {
	baseURL string
	http    *clients.HTTPClient
}

func New(baseURL string, timeout time.Duration, rps float64, burst int) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("claims API base URL is required")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    clients.NewHTTPClient(timeout, rps, burst),
	}, nil
}

func (c *Client) GetSubmission(ctx context.Context, id domain.SubmissionID) (*domain.Submission, error) {
	var dto submissionDTO
	url := fmt.Sprintf("%s/api/v0/submissions/%s", c.baseURL, id)
	if err := c.http.DoJSON(ctx, http.MethodGet, url, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

func (c *Client) GetClaim(ctx context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID) (*domain.Claim, error) {
	var dto claimDTO
	url := fmt.Sprintf("%s/api/v0/submissions/%s/claims/%s", c.baseURL, submissionID, claimID)
	if err := c.http.DoJSON(ctx, http.MethodGet, url, nil, &dto); err != nil {
		return nil, err
	}
	claim, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (c *Client) GetClaims(ctx context.Context, q ports.ClaimsQuery) ([]domain.Claim, error) {
	params := url.Values{}
	if q.OfficeCode != "" {
		params.Set("officeCode", q.OfficeCode)
	}
	if !q.ExcludeSubmissionID.IsNil() {
		params.Set("excludeSubmissionId", q.ExcludeSubmissionID.String())
	}
	for _, s := range q.SubmissionStatuses {
		params.Add("submissionStatus", s.String())
	}
	if q.FeeCode != "" {
		params.Set("feeCode", q.FeeCode)
	}
	if q.UniqueFileNumber != "" {
		params.Set("uniqueFileNumber", q.UniqueFileNumber)
	}
	if q.UniqueClientNumber != "" {
		params.Set("uniqueClientNumber", q.UniqueClientNumber)
	}
	for _, s := range q.ClaimStatuses {
		params.Add("claimStatus", s.String())
	}

	var dto claimsPageDTO
	url := fmt.Sprintf("%s/api/v0/claims?%s", c.baseURL, params.Encode())
	if err := c.http.DoJSON(ctx, http.MethodGet, url, nil, &dto); err != nil {
		return nil, err
	}

	out := make([]domain.Claim, 0, len(dto.Claims))
	for _, item := range dto.Claims {
		claim, err := item.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, claim)
	}
	return out, nil
}

func (c *Client) UpdateClaim(ctx context.Context, submissionID domain.SubmissionID, claimID domain.ClaimID, patch domain.ClaimPatch) error {
	url := fmt.Sprintf("%s/api/v0/submissions/%s/claims/%s", c.baseURL, submissionID, claimID)
	return c.http.DoJSON(ctx, http.MethodPatch, url, newClaimPatchDTO(patch), nil)
}

func (c *Client) UpdateSubmission(ctx context.Context, submissionID domain.SubmissionID, patch domain.SubmissionPatch) error {
	url := fmt.Sprintf("%s/api/v0/submissions/%s", c.baseURL, submissionID)
	body := submissionPatchDTO{Status: patch.Status.String()}
	return c.http.DoJSON(ctx, http.MethodPatch, url, body, nil)
}
