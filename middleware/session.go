package middleware

import (
	"context"
	"net/http"

	"ecommerce-server/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const userContextKey contextKey = "user"

const sessionName = "ecommerce_session"

// SessionManager owns the cookie session store. It is constructed once in
// main and shared between the session middleware and the session handlers.
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager creates a cookie-backed session store
func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	return &SessionManager{store: store}
}

// Middleware loads the session principal, if any, into the request context.
// Handlers downstream read it with UserFromContext.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := m.store.Get(r, sessionName)

		firstName, _ := session.Values["first_name"].(string)
		email, _ := session.Values["email"].(string)
		rol, _ := session.Values["rol"].(string)

		if firstName != "" {
			user := models.SessionUser{FirstName: firstName, Email: email, Rol: rol}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// SaveUser writes the principal into the session cookie
func (m *SessionManager) SaveUser(w http.ResponseWriter, r *http.Request, user models.SessionUser) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["first_name"] = user.FirstName
	session.Values["email"] = user.Email
	session.Values["rol"] = user.Rol
	return session.Save(r, w)
}

// Clear destroys the session cookie
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserFromContext returns the authenticated principal, if present
func UserFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(userContextKey).(models.SessionUser)
	return user, ok
}
