package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
// With no Func overrides it behaves as a map-backed ledger.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	AppendFunc        func(ctx context.Context, tx *domain.Transaction) error
	ListByAccountFunc func(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[tx.ID]; ok {
		return domain.ErrTransactionExists
	}
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	transactions := make([]*domain.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.AccountID == accountID {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// Count returns the number of stored transactions.
func (m *MockTransactionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions)
}

// MockRateService is a mock implementation of RateService backed by a
// fixed rate table.
type MockRateService struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal

	RateFunc func(ctx context.Context, currency string) (decimal.Decimal, error)
}

func NewMockRateService() *MockRateService {
	return &MockRateService{
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
		},
	}
}

// SetRate fixes the quote for a currency.
func (m *MockRateService) SetRate(currency string, rate decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates[currency] = rate
}

func (m *MockRateService) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, currency)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rate, ok := m.rates[currency]; ok {
		return rate, nil
	}
	return decimal.Decimal{}, domain.ErrUnsupportedCurrency
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
