package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

const (
	categoryLimit      = 8
	trendMonths        = 6
	recentTransactions = 5
)

// DashboardService computes the derived statistics shown on the dashboard
// and the single-row insights. Every figure is a read-time aggregate over
// one user's rows; nothing is persisted.
type DashboardService struct {
	stats domain.StatsRepository
	txns  domain.TransactionRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(stats domain.StatsRepository, txns domain.TransactionRepository) *DashboardService {
	return &DashboardService{stats: stats, txns: txns}
}

// TrendPoint is MonthlyTrend with the month key rendered for display.
type TrendPoint struct {
	Month   string
	Income  float64
	Expense float64
	Balance float64
}

// Overview bundles every aggregate the dashboard needs.
type Overview struct {
	Stats        domain.MonthlyStats
	Debts        domain.DebtSummary
	Savings      domain.SavingsSummary
	MonthlyData  []TrendPoint
	CategoryData []domain.CategorySpend
	Recent       []domain.Transaction
}

// SpendingComparison contrasts the current month's expense total with the
// immediately preceding calendar month. Absent months read as zero.
type SpendingComparison struct {
	CurrentMonth float64
	LastMonth    float64
}

// Insights holds the three single-row derived statistics. Nil fields mean
// the underlying data does not exist (no expenses this month, no unmet goal
// with a target date).
type Insights struct {
	BiggestExpense     *domain.CategoryTotal
	SpendingComparison SpendingComparison
	SavingsPace        *domain.SavingsGoal
}

// Overview computes the dashboard aggregates for the month containing now.
func (s *DashboardService) Overview(ctx context.Context, userID string, now time.Time) (*Overview, error) {
	year, month := now.Year(), now.Month()

	stats, err := s.stats.MonthlyStats(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("monthly stats: %w", err)
	}

	debts, err := s.stats.DebtSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("debt summary: %w", err)
	}

	savings, err := s.stats.SavingsSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("savings summary: %w", err)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	trend, err := s.stats.MonthlyTrend(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}

	categories, err := s.stats.CategoryBreakdown(ctx, userID, year, month, categoryLimit)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	recent, err := s.txns.ListRecent(ctx, userID, recentTransactions)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}

	return &Overview{
		Stats:        *stats,
		Debts:        *debts,
		Savings:      *savings,
		MonthlyData:  formatTrend(trend),
		CategoryData: categories,
		Recent:       recent,
	}, nil
}

// Insights computes the derived single-row statistics for the month
// containing now.
func (s *DashboardService) Insights(ctx context.Context, userID string, now time.Time) (*Insights, error) {
	year, month := now.Year(), now.Month()

	biggest, err := s.stats.BiggestExpenseCategory(ctx, userID, year, month)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("biggest expense category: %w", err)
	}

	current, err := s.stats.ExpenseTotal(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("current month expense total: %w", err)
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	last, err := s.stats.ExpenseTotal(ctx, userID, prev.Year(), prev.Month())
	if err != nil {
		return nil, fmt.Errorf("last month expense total: %w", err)
	}

	pace, err := s.stats.NearestUnmetGoal(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("nearest unmet goal: %w", err)
	}

	return &Insights{
		BiggestExpense:     biggest,
		SpendingComparison: SpendingComparison{CurrentMonth: current, LastMonth: last},
		SavingsPace:        pace,
	}, nil
}

// formatTrend renders the "YYYY-MM" grouping keys as "Jan 2006" labels.
func formatTrend(trend []domain.MonthlyTrend) []TrendPoint {
	points := make([]TrendPoint, len(trend))
	for i, m := range trend {
		label := m.Month
		if t, err := time.Parse("2006-01", m.Month); err == nil {
			label = t.Format("Jan 2006")
		}
		points[i] = TrendPoint{
			Month:   label,
			Income:  m.Income,
			Expense: m.Expense,
			Balance: m.Balance,
		}
	}
	return points
}
