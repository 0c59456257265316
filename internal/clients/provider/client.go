// Package provider is the REST client for the provider contract registry.
// Schedule lookups are cached with a TTL: contract schedules change on
// business timescales, and every claim in a batch asks for them.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

const (
	defaultCacheTTL      = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

type Client struct {
	baseURL string
	http    *clients.HTTPClient
	cache   *gocache.Cache
}

func New(baseURL string, timeout time.Duration, rps float64, burst int, cacheTTL time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("provider API base URL is required")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    clients.NewHTTPClient(timeout, rps, burst),
		cache:   gocache.New(cacheTTL, cacheCleanupInterval),
	}, nil
}

func (c *Client) GetProviderFirmSchedules(ctx context.Context, officeCode string, area domain.AreaOfLaw, effectiveDate *time.Time) ([]domain.ScheduleLine, error) {
	key := cacheKey(officeCode, area, effectiveDate)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]domain.ScheduleLine), nil
	}

	params := url.Values{}
	params.Set("areaOfLaw", area.String())
	if effectiveDate != nil {
		params.Set("effectiveDate", effectiveDate.Format(domain.ClaimDateLayout))
	}

	var dto schedulesDTO
	url := fmt.Sprintf("%s/api/v1/provider-offices/%s/schedules?%s", c.baseURL, officeCode, params.Encode())
	if err := c.http.DoJSON(ctx, http.MethodGet, url, nil, &dto); err != nil {
		return nil, err
	}

	lines := dto.toDomain()
	c.cache.SetDefault(key, lines)
	return lines, nil
}

func cacheKey(officeCode string, area domain.AreaOfLaw, effectiveDate *time.Time) string {
	date := ""
	if effectiveDate != nil {
		date = effectiveDate.Format(domain.ClaimDateLayout)
	}
	return officeCode + "|" + area.String() + "|" + date
}

type scheduleLineDTO struct {
	ScheduleReference string `json:"scheduleReference"`
	CategoryOfLaw     string `json:"categoryOfLaw"`
	AreaOfLaw         string `json:"areaOfLaw"`
}

type schedulesDTO struct {
	Schedules []scheduleLineDTO `json:"schedules"`
}

func (d schedulesDTO) toDomain() []domain.ScheduleLine {
	out := make([]domain.ScheduleLine, 0, len(d.Schedules))
	for _, line := range d.Schedules {
		out = append(out, domain.ScheduleLine{
			ScheduleReference: line.ScheduleReference,
			CategoryOfLaw:     line.CategoryOfLaw,
			AreaOfLaw:         domain.AreaOfLaw(line.AreaOfLaw),
		})
	}
	return out
}
