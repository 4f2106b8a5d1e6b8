package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// StatsRepository implements domain.StatsRepository using SQLite.
// Transaction dates are stored as YYYY-MM-DD text, so month grouping uses
// strftime('%Y-%m', date) keys.
type StatsRepository struct {
	db *sql.DB
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (r *StatsRepository) MonthlyStats(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlyStats, error) {
	stats := &domain.MonthlyStats{}
	err := r.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
			COUNT(CASE WHEN type = 'income' THEN 1 END),
			COUNT(CASE WHEN type = 'expense' THEN 1 END)
		 FROM transactions
		 WHERE user_id = ? AND strftime('%Y-%m', date) = ?`,
		userID, monthKey(year, month),
	).Scan(&stats.TotalIncome, &stats.TotalExpenses, &stats.IncomeCount, &stats.ExpenseCount)
	if err != nil {
		return nil, fmt.Errorf("query monthly stats: %w", err)
	}
	return stats, nil
}

func (r *StatsRepository) CategoryBreakdown(ctx context.Context, userID string, year int, month time.Month, limit int) ([]domain.CategorySpend, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS cnt
		 FROM transactions
		 WHERE user_id = ? AND type = 'expense' AND strftime('%Y-%m', date) = ?
		 GROUP BY category
		 ORDER BY amount DESC
		 LIMIT ?`,
		userID, monthKey(year, month), limit)
	if err != nil {
		return nil, fmt.Errorf("query category breakdown: %w", err)
	}
	defer rows.Close()

	var categories []domain.CategorySpend
	for rows.Next() {
		var c domain.CategorySpend
		if err := rows.Scan(&c.Category, &c.Amount, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *StatsRepository) MonthlyTrend(ctx context.Context, userID string, from time.Time) ([]domain.MonthlyTrend, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT
			strftime('%Y-%m', date) AS month,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		 FROM transactions
		 WHERE user_id = ? AND strftime('%Y-%m', date) >= ?
		 GROUP BY strftime('%Y-%m', date)
		 ORDER BY month ASC`,
		userID, monthKey(from.Year(), from.Month()))
	if err != nil {
		return nil, fmt.Errorf("query monthly trend: %w", err)
	}
	defer rows.Close()

	var trend []domain.MonthlyTrend
	for rows.Next() {
		var m domain.MonthlyTrend
		if err := rows.Scan(&m.Month, &m.Income, &m.Expense, &m.Balance); err != nil {
			return nil, fmt.Errorf("scan trend row: %w", err)
		}
		trend = append(trend, m)
	}
	return trend, rows.Err()
}

func (r *StatsRepository) DebtSummary(ctx context.Context, userID string) (*domain.DebtSummary, error) {
	summary := &domain.DebtSummary{}
	err := r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(remaining_amount), 0),
			COUNT(CASE WHEN is_paid = 0 THEN 1 END)
		 FROM debts WHERE user_id = ?`, userID,
	).Scan(&summary.TotalDebts, &summary.TotalRemaining, &summary.UnpaidDebts)
	if err != nil {
		return nil, fmt.Errorf("query debt summary: %w", err)
	}
	return summary, nil
}

func (r *StatsRepository) SavingsSummary(ctx context.Context, userID string) (*domain.SavingsSummary, error) {
	summary := &domain.SavingsSummary{}
	err := r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(target_amount), 0),
			COALESCE(SUM(current_amount), 0)
		 FROM savings_goals WHERE user_id = ?`, userID,
	).Scan(&summary.TotalGoals, &summary.TotalTarget, &summary.TotalSaved)
	if err != nil {
		return nil, fmt.Errorf("query savings summary: %w", err)
	}
	return summary, nil
}

func (r *StatsRepository) BiggestExpenseCategory(ctx context.Context, userID string, year int, month time.Month) (*domain.CategoryTotal, error) {
	c := &domain.CategoryTotal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT category, SUM(amount) AS total
		 FROM transactions
		 WHERE user_id = ? AND type = 'expense' AND strftime('%Y-%m', date) = ?
		 GROUP BY category
		 ORDER BY total DESC
		 LIMIT 1`,
		userID, monthKey(year, month),
	).Scan(&c.Category, &c.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query biggest expense category: %w", err)
	}
	return c, nil
}

func (r *StatsRepository) ExpenseTotal(ctx context.Context, userID string, year int, month time.Month) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = ? AND type = 'expense' AND strftime('%Y-%m', date) = ?`,
		userID, monthKey(year, month),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query expense total: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) NearestUnmetGoal(ctx context.Context, userID string) (*domain.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, goal_name, target_amount, current_amount, target_date, description, created_at, updated_at
		 FROM savings_goals
		 WHERE user_id = ? AND current_amount < target_amount AND target_date IS NOT NULL
		 ORDER BY target_date ASC
		 LIMIT 1`, userID)

	g, err := scanSavingsGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}
