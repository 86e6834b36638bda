package domain

import "time"

// Account is a wallet owner. Transactions reference it by ID only.
type Account struct {
	ID        string
	Name      string
	Surname   string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
