package middleware

import (
	"context"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "session_token"

type contextKey int

const userContextKey contextKey = iota

// Authenticator resolves the session cookie into the current user and
// carries it in the request context, so handlers never reach for globals.
type Authenticator struct {
	auth *services.AuthService
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(auth *services.AuthService) *Authenticator {
	return &Authenticator{auth: auth}
}

// Attach looks up the session cookie and, when it resolves to a user,
// stores that user in the request context. Requests without a valid
// session pass through untouched.
func (a *Authenticator) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			if user, err := a.auth.UserFromToken(cookie.Value); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects to the login page when no user is attached to the
// request. Protected pages are marked uncacheable.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		if CurrentUser(r) == nil {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user attached to the request, or
// nil for anonymous visitors.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}
