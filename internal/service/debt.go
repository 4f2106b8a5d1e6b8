package service

import (
	"context"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// DebtService validates and persists debts.
type DebtService struct {
	debts domain.DebtRepository
}

// NewDebtService creates a new DebtService.
func NewDebtService(debts domain.DebtRepository) *DebtService {
	return &DebtService{debts: debts}
}

// DebtInput carries the caller-supplied fields for a new debt.
// RemainingAmount nil means "same as Amount". Description and DueDate are
// optional; empty strings are treated as absent.
type DebtInput struct {
	CreditorName    string
	Amount          float64
	RemainingAmount *float64
	Description     string
	DueDate         string
}

// Create validates the input and inserts a debt owned by userID.
func (s *DebtService) Create(ctx context.Context, userID string, in DebtInput) (*domain.Debt, error) {
	if in.CreditorName == "" {
		return nil, fmt.Errorf("%w: creditor name is required", domain.ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}

	remaining := in.Amount
	if in.RemainingAmount != nil {
		remaining = *in.RemainingAmount
		if remaining < 0 {
			return nil, fmt.Errorf("%w: remaining amount cannot be negative", domain.ErrInvalidInput)
		}
		if remaining > in.Amount {
			return nil, fmt.Errorf("%w: remaining amount cannot exceed total amount", domain.ErrInvalidInput)
		}
	}

	if in.DueDate != "" {
		if _, err := time.Parse("2006-01-02", in.DueDate); err != nil {
			return nil, fmt.Errorf("%w: due date must be formatted as YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}

	debt := &domain.Debt{
		UserID:          userID,
		CreditorName:    in.CreditorName,
		Amount:          in.Amount,
		RemainingAmount: remaining,
		Description:     optional(in.Description),
		DueDate:         optional(in.DueDate),
		IsPaid:          remaining == 0,
	}

	if err := s.debts.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("create debt: %w", err)
	}

	return debt, nil
}

// List returns the user's debts: unpaid first, then by soonest due date,
// then newest.
func (s *DebtService) List(ctx context.Context, userID string) ([]domain.Debt, error) {
	return s.debts.ListByUser(ctx, userID)
}

// MarkPaid settles a debt: is_paid becomes true and the remaining amount
// drops to zero regardless of its prior value.
func (s *DebtService) MarkPaid(ctx context.Context, userID string, id int64) (*domain.Debt, error) {
	return s.debts.MarkPaid(ctx, userID, id)
}

// Delete removes a debt owned by userID.
func (s *DebtService) Delete(ctx context.Context, userID string, id int64) error {
	return s.debts.Delete(ctx, userID, id)
}

// optional maps an empty string to an absent value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
