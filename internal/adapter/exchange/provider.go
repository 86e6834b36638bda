package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/chrisw/gowallet/internal/domain"
	"github.com/chrisw/gowallet/internal/infrastructure/metrics"
)

// RateFetcher retrieves the full upstream rate table.
type RateFetcher interface {
	FetchRates(ctx context.Context) (*domain.RateQuote, error)
}

// Provider implements usecase.RateService: single-currency lookups against
// a short-lived in-memory cache of the whole table. Concurrent misses share
// one upstream call through the singleflight group.
type Provider struct {
	fetcher      RateFetcher
	cache        *quoteCache
	group        singleflight.Group
	baseCurrency string
}

// NewProvider creates a new rate provider.
func NewProvider(fetcher RateFetcher, baseCurrency string, ttl time.Duration) *Provider {
	return &Provider{
		fetcher:      fetcher,
		cache:        newQuoteCache(ttl),
		baseCurrency: baseCurrency,
	}
}

var one = decimal.NewFromInt(1)

// Rate returns the quote of 1 unit of currency in the base currency. The
// base currency resolves to exactly 1 without touching the upstream. A
// currency absent from a successfully fetched table is a permanent
// domain.ErrUnsupportedCurrency, distinct from upstream unavailability.
func (p *Provider) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	if currency == p.baseCurrency {
		return one, nil
	}

	quote, ok := p.cache.get(time.Now())
	if ok {
		metrics.RateCacheHits.Inc()
	} else {
		metrics.RateCacheMisses.Inc()

		var err error

		quote, err = p.refresh(ctx)
		if err != nil {
			return decimal.Zero, err
		}
	}

	rate, ok := quote.Rate(currency)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, currency)
	}

	return rate, nil
}

// refresh fetches the table once for all concurrent cache-miss callers.
func (p *Provider) refresh(ctx context.Context) (*domain.RateQuote, error) {
	v, err, _ := p.group.Do("rates", func() (any, error) {
		// Recheck under the flight: a caller that queued behind the
		// winning fetch can use its result.
		if quote, ok := p.cache.get(time.Now()); ok {
			return quote, nil
		}

		quote, err := p.fetcher.FetchRates(ctx)
		if err != nil {
			metrics.RateFetches.WithLabelValues("error").Inc()
			return nil, err
		}

		metrics.RateFetches.WithLabelValues("ok").Inc()
		p.cache.set(quote)

		return quote, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.RateQuote), nil
}
