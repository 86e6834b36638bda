package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a wallet movement.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Transaction is a single credit or debit against an account. Immutable once
// stored; the client-supplied ID doubles as the idempotency key.
type Transaction struct {
	ID        string
	AccountID string
	Amount    decimal.Decimal
	Currency  string
	Direction Direction
	CreatedAt time.Time
}

// SignedAmount returns the amount negated for debits.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}

	return t.Amount
}
