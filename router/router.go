package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecommerce-server/handlers"
	"ecommerce-server/middleware"
	"ecommerce-server/realtime"
	"ecommerce-server/utils"
)

// Product ids must be 24 hex characters; anything else falls through to the
// 404 catch-all before a handler ever runs.
const productIDPattern = "{id:[a-fA-F0-9]{24}}"

// SetupRoutes builds the complete route table
func SetupRoutes(h *handlers.Handler, hub *realtime.Hub) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(h.Log))
	router.Use(h.Sessions.Middleware)

	// REST product routes
	products := router.PathPrefix("/api/products").Subrouter()
	products.HandleFunc("", h.GetProducts).Methods("GET")
	products.HandleFunc("/"+productIDPattern, h.GetProduct).Methods("GET")
	products.HandleFunc("", h.CreateProduct).Methods("POST")
	products.HandleFunc("/"+productIDPattern, h.UpdateProduct).Methods("PUT")
	products.HandleFunc("/"+productIDPattern, h.DeleteProduct).Methods("DELETE")

	// REST user routes
	router.HandleFunc("/api/users", h.GetUsers).Methods("GET")

	// Session routes
	sessions := router.PathPrefix("/api/sessions").Subrouter()
	sessions.HandleFunc("/register", h.Register).Methods("POST")
	sessions.HandleFunc("/login", h.Login).Methods("POST")
	sessions.HandleFunc("/logout", h.Logout).Methods("POST")
	sessions.HandleFunc("/current", h.Current).Methods("GET")

	// View routes
	router.HandleFunc("/", h.Index).Methods("GET")
	router.Handle("/products",
		middleware.RequireUser()(http.HandlerFunc(h.ProductsView))).Methods("GET")
	router.Handle("/users",
		middleware.RequireAdmin(middleware.RedirectTo("/profile"))(
			http.HandlerFunc(h.UsersView))).Methods("GET")
	router.HandleFunc("/cookies", h.CookiesView).Methods("GET")
	router.HandleFunc("/login", h.LoginView).Methods("GET")
	router.HandleFunc("/register", h.RegisterView).Methods("GET")
	router.Handle("/profile",
		middleware.RequireUser()(http.HandlerFunc(h.ProfileView))).Methods("GET")
	router.Handle("/chat",
		middleware.RequireUser()(http.HandlerFunc(h.ChatView))).Methods("GET")
	router.Handle("/realTimeProducts",
		middleware.RequireAdmin(nil)(http.HandlerFunc(h.RealTimeProductsView))).Methods("GET")

	// Realtime channel
	router.HandleFunc("/ws", hub.ServeWS)

	// Catch-all for unmatched routes, including malformed product ids
	router.NotFoundHandler = middleware.RequestLogger(h.Log)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ErrorHdlr.HandleKnownError(w, utils.CodePageNotFound)
		}))

	return router
}
