// Package upstream implements the HTTP client for the external skip pricing
// provider. It is the only place loosely-typed provider payloads are handled;
// everything past this boundary works with the strongly-typed domain.Skip.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remwaste/skip-catalog/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client fetches skip offerings from the provider's by-location endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the provider at baseURL
// (scheme + host, no trailing slash). A zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// payload mirrors one provider skip object. Optionality is modelled with
// pointers so absent fields are distinguishable from explicit false/zero:
// the defaulting rules below depend on that distinction.
type payload struct {
	ID               int              `json:"id"`
	Size             int              `json:"size"`
	HirePeriodDays   int              `json:"hire_period_days"`
	TransportCost    *decimal.Decimal `json:"transport_cost"`
	PerTonneCost     *decimal.Decimal `json:"per_tonne_cost"`
	PriceBeforeVAT   decimal.Decimal  `json:"price_before_vat"`
	VAT              decimal.Decimal  `json:"vat"`
	Postcode         string           `json:"postcode"`
	Area             *string          `json:"area"`
	Forbidden        *bool            `json:"forbidden"`
	AllowedOnRoad    *bool            `json:"allowed_on_road"`
	AllowsHeavyWaste *bool            `json:"allows_heavy_waste"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// FetchByLocation queries the provider for offerings at the given location.
// A 2xx response is a success even when the normalized list is empty; any
// transport error, timeout, or non-2xx status is an error the caller is
// expected to absorb with its fallback.
func (c *Client) FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	q := url.Values{}
	q.Set("postcode", postcode)
	if area != "" {
		q.Set("area", area)
	}
	u := c.baseURL + "/api/skips/by-location?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchByLocation: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchByLocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream.Client.FetchByLocation: status %d", resp.StatusCode)
	}

	var raw []payload
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchByLocation: decode: %w", err)
	}

	skips := make([]domain.Skip, 0, len(raw))
	for _, p := range raw {
		skips = append(skips, normalize(p))
	}
	return skips, nil
}

// normalize maps a provider object onto domain.Skip, applying the permissive
// defaulting policy: a missing or ambiguous provider field must never
// spuriously restrict the user, so allowed_on_road and allows_heavy_waste
// stay true unless the provider says false explicitly, while forbidden stays
// false unless explicitly true.
func normalize(p payload) domain.Skip {
	s := domain.Skip{
		ID:               p.ID,
		Size:             p.Size,
		HirePeriodDays:   p.HirePeriodDays,
		TransportCost:    p.TransportCost,
		PerTonneCost:     p.PerTonneCost,
		PriceBeforeVAT:   p.PriceBeforeVAT,
		VAT:              p.VAT,
		Postcode:         p.Postcode,
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Area != nil {
		s.Area = *p.Area
	}
	if p.Forbidden != nil {
		s.Forbidden = *p.Forbidden
	}
	if p.AllowedOnRoad != nil && !*p.AllowedOnRoad {
		s.AllowedOnRoad = false
	}
	if p.AllowsHeavyWaste != nil && !*p.AllowsHeavyWaste {
		s.AllowsHeavyWaste = false
	}
	return s
}
