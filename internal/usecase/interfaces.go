package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
)

// TransactionRepository defines data access for the append-only ledger.
type TransactionRepository interface {
	// Append persists a transaction. The duplicate-id check is atomic with
	// the insert; a second write with the same id fails with
	// domain.ErrTransactionExists and never overwrites.
	Append(ctx context.Context, tx *domain.Transaction) error
	// ListByAccount returns all transactions for an account, unordered.
	// Unknown accounts yield an empty slice, not an error.
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// RateService resolves the quote of one unit of a currency in the base
// currency. The base currency itself always resolves to exactly 1.
type RateService interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore records HTTP responses by idempotency key so retried
// requests replay the original result.
type IdempotencyStore interface {
	// CheckAndSet reports whether the key was seen before, returning the
	// recorded response if one exists. An unseen key is claimed.
	CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error)
	// Update stores the final response for a claimed key.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key after a failed request.
	Release(ctx context.Context, key string) error
}
