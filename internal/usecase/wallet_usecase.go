package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
	"github.com/chrisw/gowallet/internal/infrastructure/metrics"
)

// WalletUseCase orchestrates transaction admission, balance derivation and
// history queries over the append-only ledger.
type WalletUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	rates           RateService
	baseCurrency    string
	locks           accountLocks
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(
	transactionRepo TransactionRepository,
	accountRepo AccountRepository,
	rates RateService,
	baseCurrency string,
) *WalletUseCase {
	return &WalletUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		rates:           rates,
		baseCurrency:    baseCurrency,
	}
}

// AddTransactionInput represents a candidate transaction.
type AddTransactionInput struct {
	ID        string
	AccountID string
	Amount    decimal.Decimal
	Currency  string
	Direction domain.Direction
}

// AddTransaction admits a candidate into the ledger. Debits are checked
// against the pre-insertion balance; the check and the append are serialized
// per account so concurrent debits cannot overdraw.
func (uc *WalletUseCase) AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		ID:        input.ID,
		AccountID: input.AccountID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Direction: input.Direction,
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		metrics.TransactionsRejected.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		metrics.TransactionsRejected.WithLabelValues("account_not_found").Inc()
		return nil, err
	}

	unlock := uc.locks.Lock(input.AccountID)
	defer unlock()

	if input.Direction == domain.DirectionDebit {
		transactions, err := uc.transactionRepo.ListByAccount(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}

		balance, err := uc.computeBalance(ctx, transactions)
		if err != nil {
			return nil, err
		}

		if balance.Sub(input.Amount).IsNegative() {
			metrics.TransactionsRejected.WithLabelValues("insufficient_funds").Inc()
			return nil, domain.ErrInsufficientFunds
		}
	}

	tx.CreatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Append(ctx, tx); err != nil {
		if errors.Is(err, domain.ErrTransactionExists) {
			metrics.TransactionsRejected.WithLabelValues("duplicate").Inc()
		}

		return nil, err
	}

	metrics.TransactionsCreated.WithLabelValues(string(input.Direction)).Inc()

	return tx, nil
}

// GetBalance derives the current balance in the base currency from the full
// transaction set. Unknown accounts yield a zero balance, not an error.
func (uc *WalletUseCase) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	transactions, err := uc.transactionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	amount, err := uc.computeBalance(ctx, transactions)
	if err != nil {
		return nil, err
	}

	metrics.BalanceComputeDuration.Observe(time.Since(start).Seconds())

	return &domain.Balance{
		AccountID: accountID,
		Currency:  uc.baseCurrency,
		Amount:    amount,
	}, nil
}

// GetHistory returns an account's transactions ordered most recent first.
func (uc *WalletUseCase) GetHistory(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	transactions, err := uc.transactionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return transactions, nil
}

// GetTransaction retrieves a single transaction by id.
func (uc *WalletUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// computeBalance folds transactions into the base currency: each line is
// signed, converted at its currency's rate and rounded half-down to two
// decimals before summing. The rate is resolved once per distinct currency
// per computation, not once per transaction.
func (uc *WalletUseCase) computeBalance(ctx context.Context, transactions []*domain.Transaction) (decimal.Decimal, error) {
	total := decimal.New(0, -2)
	seen := make(map[string]decimal.Decimal)

	for _, tx := range transactions {
		rate, ok := seen[tx.Currency]
		if !ok {
			var err error

			rate, err = uc.rates.Rate(ctx, tx.Currency)
			if err != nil {
				return decimal.Zero, err
			}

			seen[tx.Currency] = rate
		}

		total = total.Add(domain.RoundHalfDown(tx.SignedAmount().Div(rate)))
	}

	return total, nil
}
