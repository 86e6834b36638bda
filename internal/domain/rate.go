package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateQuote is a snapshot of the upstream rate table: units of each currency
// per one unit of the base currency. Never mutated in place; a refresh
// replaces the whole quote.
type RateQuote struct {
	Base      string
	Rates     map[string]decimal.Decimal
	FetchedAt time.Time
}

// Rate looks up the quote for a currency code.
func (q *RateQuote) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := q.Rates[currency]
	return rate, ok
}

// FreshAt reports whether the quote is still within its TTL window at now.
func (q *RateQuote) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(q.FetchedAt) < ttl
}
