package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chrisw/gowallet/internal/domain"
)

// AccountRepository implements usecase.AccountRepository in memory.
type AccountRepository struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Account
	usernames map[string]string
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:      make(map[string]*domain.Account),
		usernames: make(map[string]string),
	}
}

// Create stores an account, enforcing username uniqueness.
func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usernames[account.Username]; ok {
		return domain.ErrUsernameTaken
	}

	stored := *account
	r.byID[account.ID] = &stored
	r.usernames[account.Username] = account.ID

	return nil
}

// GetByID returns a copy of an account.
func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	clone := *account
	return &clone, nil
}

// Update replaces the stored name, surname and updated_at of an account.
func (r *AccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[account.ID]
	if !ok {
		return domain.ErrAccountNotFound
	}

	stored.Name = account.Name
	stored.Surname = account.Surname
	stored.UpdatedAt = account.UpdatedAt

	return nil
}

// List returns accounts ordered by creation time.
func (r *AccountRepository) List(_ context.Context, limit, offset int) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Account, 0, len(r.byID))
	for _, account := range r.byID {
		clone := *account
		all = append(all, &clone)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*domain.Account{}, nil
	}

	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}
