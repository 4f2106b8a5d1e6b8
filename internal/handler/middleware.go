package handler

import (
	"context"
	"net/http"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// sessionCookie is the name of the HTTP-only cookie that carries the
// session token.
const sessionCookie = "session"

// UserIDFromContext extracts the authenticated user ID from the request
// context. Returns an empty string if no session was verified.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDContextKey).(string)
	return id
}

// RequireSession is middleware that protects routes requiring a session.
// It reads the session cookie and verifies the token's signature and
// expiration; the user record itself is not loaded here. Every failure
// mode (missing cookie, malformed, expired, tampered) produces the same
// 401 response.
func RequireSession(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := auth.VerifyToken(cookie.Value)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser resolves the acting user's profile from the verified session
// in the request context. Returns nil when there is no session or the
// referenced user no longer exists; handlers must treat nil as
// unauthenticated.
func currentUser(r *http.Request, auth *service.AuthService) *domain.User {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		return nil
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}
