package service_test

import (
	"context"
	"errors"
	"testing"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

func newTestTransactionService(t *testing.T) (*service.TransactionService, *service.AuthService) {
	t.Helper()
	auth, db := newTestAuthService(t)
	return service.NewTransactionService(db.Transactions()), auth
}

func TestTransactionService_Create_Success(t *testing.T) {
	txns, auth := newTestTransactionService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "txn@example.com")

	txn, err := txns.Create(ctx, user.ID, service.TransactionInput{
		Type:        "expense",
		Amount:      150000,
		Description: "Groceries",
		Category:    "Food",
		Date:        "2024-03-10",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if txn.ID == 0 {
		t.Fatal("expected transaction ID to be set")
	}
	if txn.UserID != user.ID {
		t.Fatalf("expected owner %s, got %s", user.ID, txn.UserID)
	}
}

func TestTransactionService_Create_Validation(t *testing.T) {
	txns, auth := newTestTransactionService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "txnval@example.com")

	valid := service.TransactionInput{
		Type:        "income",
		Amount:      1000,
		Description: "Salary",
		Category:    "Work",
		Date:        "2024-03-01",
	}

	tests := []struct {
		name   string
		mutate func(in *service.TransactionInput)
	}{
		{"invalid type", func(in *service.TransactionInput) { in.Type = "transfer" }},
		{"zero amount", func(in *service.TransactionInput) { in.Amount = 0 }},
		{"negative amount", func(in *service.TransactionInput) { in.Amount = -5 }},
		{"missing description", func(in *service.TransactionInput) { in.Description = "" }},
		{"missing category", func(in *service.TransactionInput) { in.Category = "" }},
		{"missing date", func(in *service.TransactionInput) { in.Date = "" }},
		{"malformed date", func(in *service.TransactionInput) { in.Date = "03/01/2024" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := txns.Create(ctx, user.ID, in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTransactionService_List_Ordering(t *testing.T) {
	txns, auth := newTestTransactionService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "txnorder@example.com")

	dates := []string{"2024-01-05", "2024-03-20", "2024-02-12"}
	for _, d := range dates {
		_, err := txns.Create(ctx, user.ID, service.TransactionInput{
			Type:        "expense",
			Amount:      100,
			Description: "entry " + d,
			Category:    "Misc",
			Date:        d,
		})
		if err != nil {
			t.Fatalf("Create %s: %v", d, err)
		}
	}

	list, err := txns.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(list))
	}

	want := []string{"2024-03-20", "2024-02-12", "2024-01-05"}
	for i, d := range want {
		if list[i].Date != d {
			t.Fatalf("position %d: expected date %s, got %s", i, d, list[i].Date)
		}
	}
}

func TestTransactionService_OwnershipIsolation(t *testing.T) {
	txns, auth := newTestTransactionService(t)
	ctx := context.Background()

	alice := registerTestUser(t, auth, "alice@example.com")
	bob := registerTestUser(t, auth, "bob@example.com")

	txn, err := txns.Create(ctx, alice.ID, service.TransactionInput{
		Type:        "income",
		Amount:      500,
		Description: "Freelance",
		Category:    "Work",
		Date:        "2024-03-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Bob never sees Alice's rows.
	bobList, err := txns.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("List for bob: %v", err)
	}
	if len(bobList) != 0 {
		t.Fatalf("expected empty list for bob, got %d rows", len(bobList))
	}

	// Deleting someone else's transaction reports not-found, not success.
	if err := txns.Delete(ctx, bob.ID, txn.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user delete, got %v", err)
	}

	// Alice's row survived.
	aliceList, err := txns.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List for alice: %v", err)
	}
	if len(aliceList) != 1 {
		t.Fatalf("expected alice to keep her transaction, got %d rows", len(aliceList))
	}
}

func TestTransactionService_Delete_Idempotence(t *testing.T) {
	txns, auth := newTestTransactionService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "txndel@example.com")

	txn, err := txns.Create(ctx, user.ID, service.TransactionInput{
		Type:        "expense",
		Amount:      75,
		Description: "Coffee",
		Category:    "Food",
		Date:        "2024-03-02",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := txns.Delete(ctx, user.ID, txn.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := txns.Delete(ctx, user.ID, txn.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
