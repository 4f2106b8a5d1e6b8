package domain

import (
	"context"
	"time"
)

// MonthlyStats summarizes one calendar month of transactions.
type MonthlyStats struct {
	TotalIncome   float64
	TotalExpenses float64
	IncomeCount   int
	ExpenseCount  int
}

// CategorySpend is one category's summed expense amount within a month.
type CategorySpend struct {
	Category string
	Amount   float64
	Count    int
}

// MonthlyTrend is one calendar month's income/expense/balance totals.
// Month is the "YYYY-MM" grouping key.
type MonthlyTrend struct {
	Month   string
	Income  float64
	Expense float64
	Balance float64
}

// DebtSummary is a single-row rollup over all of a user's debts.
type DebtSummary struct {
	TotalDebts     int
	TotalRemaining float64
	UnpaidDebts    int
}

// SavingsSummary is a single-row rollup over all of a user's goals.
type SavingsSummary struct {
	TotalGoals  int
	TotalTarget float64
	TotalSaved  float64
}

// CategoryTotal is a category paired with its summed expense amount.
type CategoryTotal struct {
	Category string
	Total    float64
}

// StatsRepository exposes the grouped read-only queries behind the
// dashboard and insights. All queries are scoped to one user; month
// parameters name an explicit calendar month so callers control the clock.
type StatsRepository interface {
	MonthlyStats(ctx context.Context, userID string, year int, month time.Month) (*MonthlyStats, error)
	CategoryBreakdown(ctx context.Context, userID string, year int, month time.Month, limit int) ([]CategorySpend, error)
	MonthlyTrend(ctx context.Context, userID string, from time.Time) ([]MonthlyTrend, error)
	DebtSummary(ctx context.Context, userID string) (*DebtSummary, error)
	SavingsSummary(ctx context.Context, userID string) (*SavingsSummary, error)
	BiggestExpenseCategory(ctx context.Context, userID string, year int, month time.Month) (*CategoryTotal, error)
	ExpenseTotal(ctx context.Context, userID string, year int, month time.Month) (float64, error)
	NearestUnmetGoal(ctx context.Context, userID string) (*SavingsGoal, error)
}
