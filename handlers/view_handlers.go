package handlers

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"ecommerce-server/middleware"
	"ecommerce-server/models"
)

// Index renders the landing page with the full catalog
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.products().Find(r.Context(), bson.M{})
	if err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var products []models.Product
	if err := cursor.All(r.Context(), &products); err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, "index", map[string]interface{}{"Products": products})
}

// ProductsView renders the paginated catalog for the logged-in user. The
// route is gated by the session middleware; the principal is present here.
func (h *Handler) ProductsView(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 25)

	data, err := h.GetProductsPaginated(r.Context(), page, limit)
	if err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, "products", map[string]interface{}{
		"Title":    "Product list",
		"Products": data.Docs,
		"UserName": fmt.Sprintf("Welcome: %s", user.FirstName),
		"UserRol":  fmt.Sprintf("Rol: %s", user.Rol),
		"Page":     data,
	})
}

// UsersView renders the paginated user listing for admins, expanding the
// page-number list for the navigation links.
func (h *Handler) UsersView(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 50)

	data, err := h.GetUsersPaginated(r.Context(), page, limit)
	if err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, "users", map[string]interface{}{
		"Title": "User list",
		"Users": data.Docs,
		"Pages": data.PageNumbers(),
	})
}

// CookiesView renders the cookie demo page
func (h *Handler) CookiesView(w http.ResponseWriter, r *http.Request) {
	h.render(w, "cookies", nil)
}

// LoginView renders the login form; an active session goes to the profile
func (h *Handler) LoginView(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/profile", http.StatusFound)
		return
	}
	h.render(w, "login", nil)
}

// RegisterView renders the registration form
func (h *Handler) RegisterView(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register", nil)
}

// ProfileView renders the logged-in user's profile
func (h *Handler) ProfileView(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	h.render(w, "profile", map[string]interface{}{
		"UserName": fmt.Sprintf("User: %s", user.FirstName),
		"UserRol":  fmt.Sprintf("Rol: %s", user.Rol),
	})
}

// ChatView renders the chat page preloaded with the full message history
func (h *Handler) ChatView(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("chat page requested")

	cursor, err := h.messages().Find(r.Context(), bson.M{})
	if err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var messages []models.ChatMessage
	if err := cursor.All(r.Context(), &messages); err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, "chat", map[string]interface{}{"Messages": messages})
}

// RealTimeProductsView renders the live catalog page for admins
func (h *Handler) RealTimeProductsView(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.products().Find(r.Context(), bson.M{})
	if err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var products []models.Product
	if err := cursor.All(r.Context(), &products); err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, "realTimeProducts", map[string]interface{}{"Products": products})
}
