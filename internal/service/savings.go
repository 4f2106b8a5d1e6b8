package service

import (
	"context"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// SavingsService validates and persists savings goals.
type SavingsService struct {
	goals domain.SavingsGoalRepository
}

// NewSavingsService creates a new SavingsService.
func NewSavingsService(goals domain.SavingsGoalRepository) *SavingsService {
	return &SavingsService{goals: goals}
}

// SavingsGoalInput carries the caller-supplied fields for a new goal.
type SavingsGoalInput struct {
	GoalName      string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    string
	Description   string
}

// Create validates the input and inserts a goal owned by userID.
func (s *SavingsService) Create(ctx context.Context, userID string, in SavingsGoalInput) (*domain.SavingsGoal, error) {
	if in.GoalName == "" {
		return nil, fmt.Errorf("%w: goal name is required", domain.ErrInvalidInput)
	}
	if in.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be greater than zero", domain.ErrInvalidInput)
	}
	if in.CurrentAmount < 0 {
		return nil, fmt.Errorf("%w: current amount cannot be negative", domain.ErrInvalidInput)
	}
	if in.TargetDate != "" {
		if _, err := time.Parse("2006-01-02", in.TargetDate); err != nil {
			return nil, fmt.Errorf("%w: target date must be formatted as YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}

	goal := &domain.SavingsGoal{
		UserID:        userID,
		GoalName:      in.GoalName,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    optional(in.TargetDate),
		Description:   optional(in.Description),
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create savings goal: %w", err)
	}

	return goal, nil
}

// List returns the user's goals, newest first.
func (s *SavingsService) List(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	return s.goals.ListByUser(ctx, userID)
}

// UpdateProgress adds or subtracts amount from the goal's current amount.
// Subtraction floors at zero; addition may overshoot the target, which is
// reported as progress above 100%.
func (s *SavingsService) UpdateProgress(ctx context.Context, userID string, id int64, amount float64, isAdd bool) (*domain.SavingsGoal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}

	goal, err := s.goals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	newAmount := goal.CurrentAmount + amount
	if !isAdd {
		newAmount = goal.CurrentAmount - amount
		if newAmount < 0 {
			newAmount = 0
		}
	}

	return s.goals.UpdateCurrentAmount(ctx, userID, id, newAmount)
}

// Delete removes a goal owned by userID.
func (s *SavingsService) Delete(ctx context.Context, userID string, id int64) error {
	return s.goals.Delete(ctx, userID, id)
}
