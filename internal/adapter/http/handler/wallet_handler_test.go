package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/adapter/http/dto"
	"github.com/chrisw/gowallet/internal/domain"
	"github.com/chrisw/gowallet/internal/usecase"
)

type walletServiceStub struct {
	addFn     func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
	getFn     func(ctx context.Context, id string) (*domain.Transaction, error)
	balanceFn func(ctx context.Context, accountID string) (*domain.Balance, error)
	historyFn func(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

func (s *walletServiceStub) AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
	return s.addFn(ctx, input)
}

func (s *walletServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *walletServiceStub) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	return s.balanceFn(ctx, accountID)
}

func (s *walletServiceStub) GetHistory(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	return s.historyFn(ctx, accountID)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestWalletHandler_CreateTransaction_Success(t *testing.T) {
	tx := &domain.Transaction{
		ID:        "4d55c4c5-7c6e-4d40-9cba-15ae5253c6ee",
		AccountID: "acc-1",
		Amount:    decimal.RequireFromString("25.00"),
		Currency:  "EUR",
		Direction: domain.DirectionCredit,
	}

	var captured usecase.AddTransactionInput
	handler := NewWalletHandler(&walletServiceStub{
		addFn: func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
			captured = input
			return tx, nil
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		ID:        tx.ID,
		AccountID: "acc-1",
		Amount:    tx.Amount,
		Currency:  "EUR",
		Direction: "CREDIT",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.ID != tx.ID || captured.Direction != domain.DirectionCredit {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != tx.ID || resp.Direction != "CREDIT" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWalletHandler_CreateTransaction_InvalidJSON(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		addFn: func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
			t.Fatal("AddTransaction should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.CreateTransaction(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWalletHandler_CreateTransaction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "duplicate id", err: domain.ErrTransactionExists, wantStatus: http.StatusConflict, wantCode: -20},
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, wantStatus: http.StatusBadRequest, wantCode: -10},
		{name: "unsupported currency", err: domain.ErrUnsupportedCurrency, wantStatus: http.StatusUnprocessableEntity, wantCode: -1008},
		{name: "rate service down", err: domain.ErrRateServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: -6000},
		{name: "unknown account", err: domain.ErrAccountNotFound, wantStatus: http.StatusNotFound, wantCode: -1},
		{name: "invalid amount", err: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest, wantCode: -1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWalletHandler(&walletServiceStub{
				addFn: func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.CreateTransactionRequest{
				ID:        "4d55c4c5-7c6e-4d40-9cba-15ae5253c6ee",
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("5.00"),
				Currency:  "USD",
				Direction: "DEBIT",
			})

			req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CreateTransaction(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Fatalf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestWalletHandler_GetBalance(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		balanceFn: func(ctx context.Context, accountID string) (*domain.Balance, error) {
			return &domain.Balance{
				AccountID: accountID,
				Currency:  "USD",
				Amount:    decimal.RequireFromString("45.80"),
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance.StringFixed(2) != "45.80" || resp.Currency != "USD" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWalletHandler_GetHistory(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		historyFn: func(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
			return []*domain.Transaction{
				{ID: "tx-2", AccountID: accountID, Amount: decimal.RequireFromString("1.00"), Currency: "EUR", Direction: domain.DirectionDebit},
				{ID: "tx-1", AccountID: accountID, Amount: decimal.RequireFromString("10.00"), Currency: "EUR", Direction: domain.DirectionCredit},
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/transactions", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.GetHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || resp.Transactions[0].ID != "tx-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWalletHandler_GetTransaction_NotFound(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.GetTransaction(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
