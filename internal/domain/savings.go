package domain

import (
	"context"
	"time"
)

// SavingsGoal tracks progress toward a target amount. CurrentAmount may
// exceed TargetAmount; progress above 100% is reported as-is.
type SavingsGoal struct {
	ID            int64
	UserID        string
	GoalName      string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    *string
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SavingsGoalRepository defines persistence operations for savings goals,
// all scoped to the owning user.
type SavingsGoalRepository interface {
	Create(ctx context.Context, goal *SavingsGoal) error
	GetByID(ctx context.Context, userID string, id int64) (*SavingsGoal, error)
	ListByUser(ctx context.Context, userID string) ([]SavingsGoal, error)
	// UpdateCurrentAmount overwrites current_amount with an ownership-scoped
	// statement and returns the updated record.
	UpdateCurrentAmount(ctx context.Context, userID string, id int64, amount float64) (*SavingsGoal, error)
	Delete(ctx context.Context, userID string, id int64) error
}
