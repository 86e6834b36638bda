// Package dto holds the request and response shapes of the HTTP API.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
	"github.com/chrisw/gowallet/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:     r.Name,
		Surname:  r.Surname,
		Username: r.Username,
	}
}

// UpdateAccountRequest represents a request to edit an account.
type UpdateAccountRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Name:    r.Name,
		Surname: r.Surname,
	}
}

// CreateTransactionRequest represents a request to add a transaction. The
// id is client-supplied and doubles as the deduplication key.
type CreateTransactionRequest struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Direction string          `json:"direction"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		ID:        r.ID,
		AccountID: r.AccountID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Direction: domain.Direction(r.Direction),
	}
}
