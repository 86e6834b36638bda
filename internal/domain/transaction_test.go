package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
)

func TestTransactionSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("25.00")

	credit := &domain.Transaction{Amount: amount, Direction: domain.DirectionCredit}
	if !credit.SignedAmount().Equal(amount) {
		t.Errorf("credit SignedAmount = %s, want %s", credit.SignedAmount(), amount)
	}

	debit := &domain.Transaction{Amount: amount, Direction: domain.DirectionDebit}
	if !debit.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("debit SignedAmount = %s, want %s", debit.SignedAmount(), amount.Neg())
	}
}

func TestRateQuoteFreshAt(t *testing.T) {
	now := time.Now().UTC()
	quote := &domain.RateQuote{Base: "USD", FetchedAt: now}

	if !quote.FreshAt(now.Add(30*time.Second), time.Minute) {
		t.Error("quote should be fresh inside the TTL window")
	}

	if quote.FreshAt(now.Add(2*time.Minute), time.Minute) {
		t.Error("quote should be stale past the TTL window")
	}
}
