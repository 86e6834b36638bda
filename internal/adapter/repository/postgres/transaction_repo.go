package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/chrisw/gowallet/internal/domain"
)

const (
	insertTransactionSQL = `INSERT INTO transactions (id, account_id, amount, currency, direction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	selectTransactionsByAccountSQL = `SELECT id, account_id, amount, currency, direction, created_at
		FROM transactions WHERE account_id = $1`

	selectTransactionByIDSQL = `SELECT id, account_id, amount, currency, direction, created_at
		FROM transactions WHERE id = $1`
)

// TransactionRepository implements usecase.TransactionRepository on
// PostgreSQL. The primary key on the client-supplied id makes the
// duplicate check atomic with the insert.
type TransactionRepository struct {
	db      DB
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{
		db:      db,
		retrier: NewRetrier(),
	}
}

// Append persists a transaction. A duplicate id fails with
// domain.ErrTransactionExists and leaves the stored row untouched.
func (r *TransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	err := r.retrier.Retry(ctx, func() error {
		_, execErr := r.db.Exec(ctx, insertTransactionSQL,
			tx.ID,
			tx.AccountID,
			decimalToNumeric(tx.Amount),
			tx.Currency,
			string(tx.Direction),
			timeToPgTimestamptz(tx.CreatedAt),
		)

		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTransactionExists
		}

		return err
	}

	return nil
}

// ListByAccount retrieves all transactions for an account, unordered.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx, selectTransactionsByAccountSQL, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, selectTransactionByIDSQL, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return tx, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx        domain.Transaction
		amount    pgtype.Numeric
		direction string
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&tx.ID, &tx.AccountID, &amount, &tx.Currency, &direction, &createdAt); err != nil {
		return nil, err
	}

	tx.Amount = numericToDecimal(amount)
	tx.Direction = domain.Direction(direction)
	tx.CreatedAt = createdAt.Time

	return &tx, nil
}
