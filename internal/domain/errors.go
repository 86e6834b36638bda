package domain

import "errors"

// Error is a wallet error with the stable numeric code exposed on the API.
// Sentinels below are matched with errors.Is even when wrapped.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// Wallet errors
	ErrAccountNotFound        = &Error{Code: -1, Message: "account not found"}
	ErrUsernameTaken          = &Error{Code: -2, Message: "username already taken"}
	ErrInsufficientFunds      = &Error{Code: -10, Message: "not enough funds"}
	ErrTransactionExists      = &Error{Code: -20, Message: "transaction already exists"}
	ErrTransactionNotFound    = &Error{Code: -21, Message: "transaction not found"}
	ErrUnsupportedCurrency    = &Error{Code: -1008, Message: "currency invalid or not supported"}
	ErrRateServiceUnavailable = &Error{Code: -6000, Message: "exchange rate service unavailable"}

	// Validation errors
	ErrInvalidAmount        = &Error{Code: -1001, Message: "amount must be positive with at most 5 integer and 2 fraction digits"}
	ErrInvalidCurrency      = &Error{Code: -1002, Message: "currency must be a 3-letter ISO code"}
	ErrInvalidTransactionID = &Error{Code: -1003, Message: "transaction id must be a UUID"}
	ErrInvalidDirection     = &Error{Code: -1004, Message: "direction must be CREDIT or DEBIT"}
	ErrInvalidAccountName   = &Error{Code: -1005, Message: "invalid account name"}
	ErrInvalidUsername      = &Error{Code: -1006, Message: "invalid username"}
)

// Code extracts the numeric code carried by err, or 0 for untyped errors.
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return 0
}
