package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxIntegerDigits  = 5
	MaxFractionDigits = 2

	MaxAccountNameLength = 255
	MaxUsernameLength    = 255
)

var (
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

	// 10^5, the first amount with too many integer digits.
	maxAmount = decimal.New(1, 5)
)

// ValidateTransactionID checks the client-supplied idempotency key.
func ValidateTransactionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionID, id)
	}

	return nil
}

// ValidateAmount enforces the admission digit budget: positive, at most 5
// integer digits and at most 2 fraction digits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, amount)
	}

	if !amount.Equal(amount.Truncate(MaxFractionDigits)) {
		return fmt.Errorf("%w: %s has more than %d fraction digits", ErrInvalidAmount, amount, MaxFractionDigits)
	}

	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: %s has more than %d integer digits", ErrInvalidAmount, amount, MaxIntegerDigits)
	}

	return nil
}

// ValidateCurrency checks for a 3-letter uppercase ISO 4217 style code.
func ValidateCurrency(currency string) error {
	if !currencyRegex.MatchString(currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateTransaction validates a candidate before admission.
func ValidateTransaction(t *Transaction) error {
	if err := ValidateTransactionID(t.ID); err != nil {
		return err
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if err := ValidateCurrency(t.Currency); err != nil {
		return err
	}

	if !t.Direction.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, t.Direction)
	}

	if t.AccountID == "" {
		return ErrAccountNotFound
	}

	return nil
}

// ValidateAccountName validates a display name part.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateUsername validates the unique account login name.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if username == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidUsername)
	}

	if len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username exceeds %d characters", ErrInvalidUsername, MaxUsernameLength)
	}

	return nil
}
