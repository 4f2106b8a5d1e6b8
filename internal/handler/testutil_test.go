package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"dompetku/internal/handler"
	"dompetku/internal/repository/sqlite"
	"dompetku/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

type testServices struct {
	auth   *service.AuthService
	txns   *service.TransactionService
	debts  *service.DebtService
	goals  *service.SavingsService
	dash   *service.DashboardService
	export *service.ExportService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &testServices{
		auth:   service.NewAuthService(db.Users(), testJWTSecret, 4),
		txns:   service.NewTransactionService(db.Transactions()),
		debts:  service.NewDebtService(db.Debts()),
		goals:  service.NewSavingsService(db.SavingsGoals()),
		dash:   service.NewDashboardService(db.Stats(), db.Transactions()),
		export: service.NewExportService(db.Transactions(), db.Debts(), db.SavingsGoals()),
	}
}

func newTestMux(t *testing.T) (*http.ServeMux, *testServices) {
	t.Helper()
	svcs := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svcs.auth, svcs.txns, svcs.debts, svcs.goals, svcs.dash, svcs.export, false)
	return mux, svcs
}

// jsonRequest builds a request with a JSON-encoded body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

// loginTestUser registers a user and returns a session token for it.
func loginTestUser(t *testing.T, auth *service.AuthService, email string) (string, string) {
	t.Helper()
	ctx := context.Background()
	user, err := auth.Register(ctx, "Test User", email, "password123")
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	token, err := auth.IssueToken(user.ID)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return user.ID, token
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "session", Value: token}
}
