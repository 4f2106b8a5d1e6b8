package service_test

import (
	"context"
	"errors"
	"testing"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

func newTestSavingsService(t *testing.T) (*service.SavingsService, *service.AuthService) {
	t.Helper()
	auth, db := newTestAuthService(t)
	return service.NewSavingsService(db.SavingsGoals()), auth
}

func TestSavingsService_Create(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "savings@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{
		GoalName:      "Dana Darurat",
		TargetAmount:  10000000,
		CurrentAmount: 2500000,
		TargetDate:    "2027-12-31",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if goal.CurrentAmount != 2500000 {
		t.Fatalf("expected current 2500000, got %v", goal.CurrentAmount)
	}
	if goal.TargetDate == nil || *goal.TargetDate != "2027-12-31" {
		t.Fatalf("expected target date 2027-12-31, got %v", goal.TargetDate)
	}
	if goal.Description != nil {
		t.Fatal("expected empty description to stay nil")
	}
}

func TestSavingsService_Create_Validation(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "savingsval@example.com")

	tests := []struct {
		name string
		in   service.SavingsGoalInput
	}{
		{"missing name", service.SavingsGoalInput{TargetAmount: 1000}},
		{"zero target", service.SavingsGoalInput{GoalName: "X", TargetAmount: 0}},
		{"negative current", service.SavingsGoalInput{GoalName: "X", TargetAmount: 1000, CurrentAmount: -1}},
		{"malformed target date", service.SavingsGoalInput{GoalName: "X", TargetAmount: 1000, TargetDate: "soon"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := goals.Create(ctx, user.ID, tc.in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSavingsService_UpdateProgress(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "progress@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{
		GoalName:      "Laptop",
		TargetAmount:  15000000,
		CurrentAmount: 1000000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := goals.UpdateProgress(ctx, user.ID, goal.ID, 500000, true)
	if err != nil {
		t.Fatalf("add progress: %v", err)
	}
	if updated.CurrentAmount != 1500000 {
		t.Fatalf("expected 1500000 after add, got %v", updated.CurrentAmount)
	}

	updated, err = goals.UpdateProgress(ctx, user.ID, goal.ID, 300000, false)
	if err != nil {
		t.Fatalf("subtract progress: %v", err)
	}
	if updated.CurrentAmount != 1200000 {
		t.Fatalf("expected 1200000 after subtract, got %v", updated.CurrentAmount)
	}
}

func TestSavingsService_UpdateProgress_FloorsAtZero(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "floor@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{
		GoalName:      "Liburan",
		TargetAmount:  5000000,
		CurrentAmount: 100000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := goals.UpdateProgress(ctx, user.ID, goal.ID, 999999, false)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.CurrentAmount != 0 {
		t.Fatalf("expected balance floored at 0, got %v", updated.CurrentAmount)
	}
}

func TestSavingsService_UpdateProgress_AllowsOvershoot(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "overshoot@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{
		GoalName:      "Motor",
		TargetAmount:  1000000,
		CurrentAmount: 900000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := goals.UpdateProgress(ctx, user.ID, goal.ID, 500000, true)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.CurrentAmount != 1400000 {
		t.Fatalf("expected 1400000 past target, got %v", updated.CurrentAmount)
	}
}

func TestSavingsService_UpdateProgress_Validation(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "progval@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{GoalName: "X", TargetAmount: 1000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := goals.UpdateProgress(ctx, user.ID, goal.ID, 0, true); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero amount, got %v", err)
	}
	if _, err := goals.UpdateProgress(ctx, user.ID, goal.ID, -50, true); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}
}

func TestSavingsService_OwnershipIsolation(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()

	alice := registerTestUser(t, auth, "alice-savings@example.com")
	bob := registerTestUser(t, auth, "bob-savings@example.com")

	goal, err := goals.Create(ctx, alice.ID, service.SavingsGoalInput{GoalName: "Rumah", TargetAmount: 1000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := goals.UpdateProgress(ctx, bob.ID, goal.ID, 100, true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user update, got %v", err)
	}
	if err := goals.Delete(ctx, bob.ID, goal.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user delete, got %v", err)
	}

	list, err := goals.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected alice's goal to survive, got %d goals", len(list))
	}
}

func TestSavingsService_Delete(t *testing.T) {
	goals, auth := newTestSavingsService(t)
	ctx := context.Background()
	user := registerTestUser(t, auth, "savingsdel@example.com")

	goal, err := goals.Create(ctx, user.ID, service.SavingsGoalInput{GoalName: "X", TargetAmount: 1000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := goals.Delete(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := goals.Delete(ctx, user.ID, goal.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
