package service_test

import (
	"context"
	"errors"
	"testing"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

func newTestDebtService(t *testing.T) (*service.DebtService, *service.AuthService) {
	t.Helper()
	auth, db := newTestAuthService(t)
	return service.NewDebtService(db.Debts()), auth
}

func TestDebtService_Create_RemainingDefaultsToAmount(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "debt@example.com")

	debt, err := debts.Create(ctx, user.ID, service.DebtInput{
		CreditorName: "Bank Mandiri",
		Amount:       500000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if debt.RemainingAmount != 500000 {
		t.Fatalf("expected remaining 500000, got %v", debt.RemainingAmount)
	}
	if debt.IsPaid {
		t.Fatal("expected new debt to be unpaid")
	}
	if debt.Description != nil || debt.DueDate != nil {
		t.Fatal("expected absent optional fields to stay nil")
	}
}

func TestDebtService_Create_Validation(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "debtval@example.com")

	remaining := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		in   service.DebtInput
	}{
		{"missing creditor", service.DebtInput{Amount: 1000}},
		{"zero amount", service.DebtInput{CreditorName: "X", Amount: 0}},
		{"negative remaining", service.DebtInput{CreditorName: "X", Amount: 1000, RemainingAmount: remaining(-1)}},
		{"remaining above amount", service.DebtInput{CreditorName: "X", Amount: 1000, RemainingAmount: remaining(1500)}},
		{"malformed due date", service.DebtInput{CreditorName: "X", Amount: 1000, DueDate: "next week"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := debts.Create(ctx, user.ID, tc.in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDebtService_MarkPaid(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "debtpaid@example.com")

	remaining := 200000.0
	debt, err := debts.Create(ctx, user.ID, service.DebtInput{
		CreditorName:    "Cousin",
		Amount:          500000,
		RemainingAmount: &remaining,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := debts.MarkPaid(ctx, user.ID, debt.ID)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	if !updated.IsPaid {
		t.Fatal("expected debt to be paid")
	}
	if updated.RemainingAmount != 0 {
		t.Fatalf("expected remaining 0, got %v", updated.RemainingAmount)
	}
}

func TestDebtService_MarkPaid_CrossUser(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()

	alice := registerTestUser(t, auth, "alice-debt@example.com")
	bob := registerTestUser(t, auth, "bob-debt@example.com")

	debt, err := debts.Create(ctx, alice.ID, service.DebtInput{CreditorName: "Bank", Amount: 1000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := debts.MarkPaid(ctx, bob.ID, debt.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user mark-paid, got %v", err)
	}
}

func TestDebtService_List_UnpaidFirst(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "debtorder@example.com")

	first, err := debts.Create(ctx, user.ID, service.DebtInput{CreditorName: "Paid off", Amount: 100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := debts.MarkPaid(ctx, user.ID, first.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	_, err = debts.Create(ctx, user.ID, service.DebtInput{CreditorName: "Due later", Amount: 200, DueDate: "2030-06-01"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = debts.Create(ctx, user.ID, service.DebtInput{CreditorName: "Due soon", Amount: 300, DueDate: "2029-01-01"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = debts.Create(ctx, user.ID, service.DebtInput{CreditorName: "No due date", Amount: 400})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := debts.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Due soon", "Due later", "No due date", "Paid off"}
	if len(list) != len(want) {
		t.Fatalf("expected %d debts, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].CreditorName != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, list[i].CreditorName)
		}
	}
}

func TestDebtService_Delete_Idempotence(t *testing.T) {
	debts, auth := newTestDebtService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "debtdel@example.com")

	debt, err := debts.Create(ctx, user.ID, service.DebtInput{CreditorName: "Bank", Amount: 100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := debts.Delete(ctx, user.ID, debt.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := debts.Delete(ctx, user.ID, debt.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
