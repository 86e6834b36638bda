package domain

import "github.com/shopspring/decimal"

// Balance is derived from the full transaction set on every query and is
// never stored.
type Balance struct {
	AccountID string
	Currency  string
	Amount    decimal.Decimal
}
