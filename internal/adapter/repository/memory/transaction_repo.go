// Package memory provides in-memory repository implementations backed by
// maps. They are used by the CLI when no database is configured and by
// concurrency tests that need a real, lock-protected store.
package memory

import (
	"context"
	"sync"

	"github.com/chrisw/gowallet/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository in memory.
type TransactionRepository struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Transaction
	byAccount map[string][]*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byID:      make(map[string]*domain.Transaction),
		byAccount: make(map[string][]*domain.Transaction),
	}
}

// Append stores a transaction. The duplicate check and the insert happen
// under the same write lock, so a replayed id can never slip in between.
func (r *TransactionRepository) Append(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[tx.ID]; ok {
		return domain.ErrTransactionExists
	}

	stored := *tx
	r.byID[tx.ID] = &stored
	r.byAccount[tx.AccountID] = append(r.byAccount[tx.AccountID], &stored)

	return nil
}

// ListByAccount returns copies of all transactions for an account. An
// unknown account yields an empty slice, not an error.
func (r *TransactionRepository) ListByAccount(_ context.Context, accountID string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byAccount[accountID]
	transactions := make([]*domain.Transaction, 0, len(stored))
	for _, tx := range stored {
		clone := *tx
		transactions = append(transactions, &clone)
	}

	return transactions, nil
}

// GetByID returns a copy of a single transaction.
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	clone := *tx
	return &clone, nil
}
