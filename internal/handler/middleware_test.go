package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dompetku/internal/handler"
)

func TestRequireSession_ValidToken(t *testing.T) {
	svcs := newTestServices(t)
	userID, token := loginTestUser(t, svcs.auth, "valid@example.com")

	var gotUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = handler.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(token))
	w := httptest.NewRecorder()

	handler.RequireSession(svcs.auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != userID {
		t.Fatalf("expected user ID %q in context, got %q", userID, gotUserID)
	}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	svcs := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireSession(svcs.auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireSession_InvalidToken(t *testing.T) {
	svcs := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie("invalid.jwt.token"))
	w := httptest.NewRecorder()

	handler.RequireSession(svcs.auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUserIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := handler.UserIDFromContext(req.Context()); id != "" {
		t.Fatalf("expected empty user ID, got %q", id)
	}
}
