package domain

import (
	"context"
	"time"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single income or expense entry owned by one user.
// Date is a calendar date in YYYY-MM-DD form; it carries no time component.
type Transaction struct {
	ID          int64
	UserID      string
	Type        string
	Amount      float64
	Description string
	Category    string
	Date        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionFilter restricts a listing to an inclusive date range.
// Either bound may be empty, meaning unbounded on that side.
type TransactionFilter struct {
	StartDate string
	EndDate   string
}

// TransactionRepository defines persistence operations for transactions.
// Every operation is scoped to the owning user.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	ListByUser(ctx context.Context, userID string, filter TransactionFilter) ([]Transaction, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]Transaction, error)
	Delete(ctx context.Context, userID string, id int64) error
}
