package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// DebtRepository implements domain.DebtRepository using SQLite.
type DebtRepository struct {
	db *sql.DB
}

func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO debts (user_id, creditor_name, amount, remaining_amount, description, due_date, is_paid, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.UserID, debt.CreditorName, debt.Amount, debt.RemainingAmount,
		nullString(debt.Description), nullString(debt.DueDate), debt.IsPaid, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get debt id: %w", err)
	}

	debt.ID = id
	debt.CreatedAt = now
	debt.UpdatedAt = now
	return nil
}

func (r *DebtRepository) ListByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	// Unpaid first, soonest due date next with dateless debts last, newest last.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, creditor_name, amount, remaining_amount, description, due_date, is_paid, created_at, updated_at
		 FROM debts WHERE user_id = ?
		 ORDER BY is_paid ASC, due_date IS NULL, due_date ASC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, *d)
	}
	return debts, rows.Err()
}

func (r *DebtRepository) MarkPaid(ctx context.Context, userID string, id int64) (*domain.Debt, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE debts SET is_paid = 1, remaining_amount = 0, updated_at = ?
		 WHERE id = ? AND user_id = ?`, now, id, userID)
	if err != nil {
		return nil, fmt.Errorf("mark debt paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.getByID(ctx, userID, id)
}

func (r *DebtRepository) Delete(ctx context.Context, userID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM debts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete debt: %w", err)
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

func (r *DebtRepository) getByID(ctx context.Context, userID string, id int64) (*domain.Debt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, creditor_name, amount, remaining_amount, description, due_date, is_paid, created_at, updated_at
		 FROM debts WHERE id = ? AND user_id = ?`, id, userID)

	d, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDebt(row rowScanner) (*domain.Debt, error) {
	d := &domain.Debt{}
	var description, dueDate sql.NullString
	err := row.Scan(&d.ID, &d.UserID, &d.CreditorName, &d.Amount, &d.RemainingAmount,
		&description, &dueDate, &d.IsPaid, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan debt: %w", err)
	}
	d.Description = fromNullString(description)
	d.DueDate = fromNullString(dueDate)
	return d, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
