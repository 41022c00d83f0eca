package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RequireUser gates view routes on an authenticated session; anonymous
// requests are redirected to the login page.
func RequireUser() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates routes on the ADMIN role. Anonymous requests go to the
// login page; authenticated non-admin requests are handed to denied, which
// lets each route keep its own rejection behavior (redirect or 403).
func RequireAdmin(denied http.Handler) mux.MiddlewareFunc {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Unauthorized access", http.StatusForbidden)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if !user.IsAdmin() {
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectTo is a denied handler that redirects to the given path
func RedirectTo(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusFound)
	})
}
