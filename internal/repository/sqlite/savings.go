package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// SavingsGoalRepository implements domain.SavingsGoalRepository using SQLite.
type SavingsGoalRepository struct {
	db *sql.DB
}

func (r *SavingsGoalRepository) Create(ctx context.Context, goal *domain.SavingsGoal) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO savings_goals (user_id, goal_name, target_amount, current_amount, target_date, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.UserID, goal.GoalName, goal.TargetAmount, goal.CurrentAmount,
		nullString(goal.TargetDate), nullString(goal.Description), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert savings goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get savings goal id: %w", err)
	}

	goal.ID = id
	goal.CreatedAt = now
	goal.UpdatedAt = now
	return nil
}

func (r *SavingsGoalRepository) GetByID(ctx context.Context, userID string, id int64) (*domain.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, goal_name, target_amount, current_amount, target_date, description, created_at, updated_at
		 FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)

	g, err := scanSavingsGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *SavingsGoalRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, goal_name, target_amount, current_amount, target_date, description, created_at, updated_at
		 FROM savings_goals WHERE user_id = ?
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query savings goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		g, err := scanSavingsGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *SavingsGoalRepository) UpdateCurrentAmount(ctx context.Context, userID string, id int64, amount float64) (*domain.SavingsGoal, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE savings_goals SET current_amount = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`, amount, now, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update savings goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, userID, id)
}

func (r *SavingsGoalRepository) Delete(ctx context.Context, userID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete savings goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSavingsGoal(row rowScanner) (*domain.SavingsGoal, error) {
	g := &domain.SavingsGoal{}
	var targetDate, description sql.NullString
	err := row.Scan(&g.ID, &g.UserID, &g.GoalName, &g.TargetAmount, &g.CurrentAmount,
		&targetDate, &description, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan savings goal: %w", err)
	}
	g.TargetDate = fromNullString(targetDate)
	g.Description = fromNullString(description)
	return g, nil
}
