package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
)

// Client fetches the spot rate table from an openexchangerates-compatible
// upstream: GET {base}/api/latest.json?app_id={appID}.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	logger     zerolog.Logger
}

// NewClient creates a new upstream rate client.
func NewClient(baseURL, appID string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		appID:      appID,
		logger:     logger,
	}
}

// ratesResponse is the single field slice of the upstream document we need,
// plus the base currency for sanity logging.
type ratesResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Timestamp int64                      `json:"timestamp"`
}

// FetchRates retrieves the full rate table. Every upstream failure mode
// (transport error, non-2xx status, malformed or empty payload) surfaces as
// domain.ErrRateServiceUnavailable carrying the cause.
func (c *Client) FetchRates(ctx context.Context) (*domain.RateQuote, error) {
	endpoint := fmt.Sprintf("%s/api/latest.json?app_id=%s", c.baseURL, url.QueryEscape(c.appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateServiceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("exchange rate fetch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrRateServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("exchange rate upstream returned non-OK status")
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrRateServiceUnavailable, resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", domain.ErrRateServiceUnavailable, err)
	}

	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", domain.ErrRateServiceUnavailable)
	}

	c.logger.Debug().
		Str("base", payload.Base).
		Int("currencies", len(payload.Rates)).
		Msg("fetched exchange rate table")

	return &domain.RateQuote{
		Base:      payload.Base,
		Rates:     payload.Rates,
		FetchedAt: time.Now().UTC(),
	}, nil
}
