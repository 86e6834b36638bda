package exchange

import (
	"sync"
	"time"

	"github.com/chrisw/gowallet/internal/domain"
)

// quoteCache holds the last fetched rate table for a TTL window. The quote
// is replaced wholesale on refresh, never mutated.
type quoteCache struct {
	mu    sync.RWMutex
	quote *domain.RateQuote
	ttl   time.Duration
}

func newQuoteCache(ttl time.Duration) *quoteCache {
	return &quoteCache{ttl: ttl}
}

// get returns the cached quote when it is still fresh at now.
func (c *quoteCache) get(now time.Time) (*domain.RateQuote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.quote == nil || !c.quote.FreshAt(now, c.ttl) {
		return nil, false
	}

	return c.quote, true
}

func (c *quoteCache) set(quote *domain.RateQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quote = quote
}
