package domain

import (
	"context"
	"time"
)

// Debt is money owed to a creditor. Description and DueDate are optional;
// nil means the field was never provided.
type Debt struct {
	ID              int64
	UserID          string
	CreditorName    string
	Amount          float64
	RemainingAmount float64
	Description     *string
	DueDate         *string
	IsPaid          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DebtRepository defines persistence operations for debts, all scoped to
// the owning user.
type DebtRepository interface {
	Create(ctx context.Context, debt *Debt) error
	ListByUser(ctx context.Context, userID string) ([]Debt, error)
	// MarkPaid sets is_paid and zeroes the remaining amount in a single
	// ownership-scoped statement, then returns the updated record.
	MarkPaid(ctx context.Context, userID string, id int64) (*Debt, error)
	Delete(ctx context.Context, userID string, id int64) error
}
