package domain

import "github.com/shopspring/decimal"

var (
	halfCent = decimal.New(5, -3) // 0.005
	cent     = decimal.New(1, -2) // 0.01
)

// RoundHalfDown rounds d to two decimal places, resolving values exactly
// halfway between two cents toward zero. Balances are reported at this
// scale, one rounding per converted transaction line.
func RoundHalfDown(d decimal.Decimal) decimal.Decimal {
	truncated := d.Truncate(2)

	remainder := d.Sub(truncated).Abs()
	if remainder.GreaterThan(halfCent) {
		if d.IsNegative() {
			return truncated.Sub(cent)
		}

		return truncated.Add(cent)
	}

	return truncated
}
