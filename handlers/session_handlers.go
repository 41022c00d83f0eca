package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"ecommerce-server/middleware"
	"ecommerce-server/models"
	"ecommerce-server/utils"
)

// Register creates an account. New accounts get the USER role.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.ValidationDetails(err))
		return
	}

	// Reject duplicate emails
	count, err := h.users().CountDocuments(r.Context(), bson.M{"email": req.Email})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}
	if count > 0 {
		h.ErrorHdlr.HandleBadRequest(w, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Rol:       models.RolUser,
	}

	if _, err := h.users().InsertOne(r.Context(), user); err != nil {
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}

	respondOK(w, models.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Rol:       user.Rol,
	})
}

// Login verifies credentials and establishes the session cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.ValidationDetails(err))
		return
	}

	var user models.User
	err := h.users().FindOne(r.Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleUnauthorized(w, "Invalid email or password")
			return
		}
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.ErrorHdlr.HandleUnauthorized(w, "Invalid email or password")
		return
	}

	principal := models.SessionUser{FirstName: user.FirstName, Email: user.Email, Rol: user.Rol}
	if err := h.Sessions.SaveUser(w, r, principal); err != nil {
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}

	h.Log.WithField("email", user.Email).Info("user logged in")
	respondOK(w, principal)
}

// Logout destroys the session
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.ErrorHdlr.HandleInternalError(w, err.Error())
		return
	}
	respondOK(w, "Logged out")
}

// Current returns the authenticated principal, if any
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.ErrorHdlr.HandleUnauthorized(w, "No active session")
		return
	}
	respondOK(w, user)
}
