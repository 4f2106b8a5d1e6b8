package service

import (
	"context"
	"fmt"
	"time"

	"dompetku/internal/domain"
)

// TransactionService validates and persists income/expense entries.
type TransactionService struct {
	txns domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txns domain.TransactionRepository) *TransactionService {
	return &TransactionService{txns: txns}
}

// TransactionInput carries the caller-supplied fields for a new transaction.
type TransactionInput struct {
	Type        string
	Amount      float64
	Description string
	Category    string
	Date        string
}

// Create validates the input and inserts a transaction owned by userID.
func (s *TransactionService) Create(ctx context.Context, userID string, in TransactionInput) (*domain.Transaction, error) {
	if in.Type == "" || in.Description == "" || in.Category == "" || in.Date == "" {
		return nil, fmt.Errorf("%w: type, amount, description, category, and date are required", domain.ErrInvalidInput)
	}

	if in.Type != domain.TransactionIncome && in.Type != domain.TransactionExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", domain.ErrInvalidInput)
	}

	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", domain.ErrInvalidInput)
	}

	txn := &domain.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
	}

	if err := s.txns.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return txn, nil
}

// List returns all of the user's transactions, newest date first.
func (s *TransactionService) List(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.txns.ListByUser(ctx, userID, domain.TransactionFilter{})
}

// Delete removes a transaction owned by userID. A transaction that does not
// exist or belongs to another user reports domain.ErrNotFound.
func (s *TransactionService) Delete(ctx context.Context, userID string, id int64) error {
	return s.txns.Delete(ctx, userID, id)
}
