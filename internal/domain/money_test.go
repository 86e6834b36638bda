package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
)

func TestRoundHalfDown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already two places", "12.34", "12.34"},
		{"below midpoint rounds down", "1.2049", "1.20"},
		{"exact midpoint rounds toward zero", "1.005", "1.00"},
		{"above midpoint rounds up", "1.0051", "1.01"},
		{"negative exact midpoint rounds toward zero", "-1.005", "-1.00"},
		{"negative above midpoint rounds away", "-1.0051", "-1.01"},
		{"euro credit conversion", "12.000048", "12.00"},
		{"euro debit conversion", "-1.200005", "-1.20"},
		{"zero", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)
			want := decimal.RequireFromString(tt.want)

			got := domain.RoundHalfDown(input)
			if !got.Equal(want) {
				t.Errorf("RoundHalfDown(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundHalfDownDivision(t *testing.T) {
	// 10 EUR at 0.833324 EUR/USD is 12.000048... USD and must land on 12.00.
	rate := decimal.RequireFromString("0.833324")

	got := domain.RoundHalfDown(decimal.NewFromInt(10).Div(rate))
	if !got.Equal(decimal.RequireFromString("12.00")) {
		t.Errorf("converted amount = %s, want 12.00", got)
	}
}
