// Package clients holds shared HTTP plumbing for the collaborator REST
// clients: request-level timeouts, outbound rate limiting, and the mapping
// from HTTP status classes onto sentinel errors.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

const defaultTimeout = 10 * time.Second

// HTTPClient wraps net/http with a per-request rate limiter so one noisy
// submission cannot overwhelm a backing service.
type HTTPClient struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient builds a client with the given request timeout and a
// requests-per-second cap. Zero values fall back to sane defaults; a zero
// rps disables limiting.
func NewHTTPClient(timeout time.Duration, rps float64, burst int) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var limiter *rate.Limiter
	if rps > 0 {
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// DoJSON performs one JSON round-trip. A nil body sends no payload; a nil
// out discards the response body. Status classes map onto sentinel errors:
// 404 is ErrNotFound, 409 is ErrConflict, other 4xx are ErrBadRequest, and
// 5xx or transport failures are ErrUnavailable.
func (c *HTTPClient) DoJSON(ctx context.Context, method, url string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, url, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, url, sentinel.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, url, sentinel.ErrConflict)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%s %s: status %d: %w", method, url, resp.StatusCode, sentinel.ErrBadRequest)
	default:
		return fmt.Errorf("%s %s: status %d: %w", method, url, resp.StatusCode, sentinel.ErrUnavailable)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			// Empty body on a 2xx; callers treat missing payloads as
			// transient.
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
