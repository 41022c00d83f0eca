package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles
const (
	RolAdmin = "ADMIN"
	RolUser  = "USER"
)

// User represents an account stored in the users collection
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	FirstName string             `json:"first_name" bson:"first_name"`
	LastName  string             `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Rol       string             `json:"rol" bson:"rol"`
}

// SessionUser is the authenticated principal carried in the session cookie
// and placed in the request context. It is what handlers read as "the user".
type SessionUser struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
}

// IsAdmin reports whether the principal carries the ADMIN role
func (u SessionUser) IsAdmin() bool {
	return u.Rol == RolAdmin
}

// RegisterRequest is used for account registration
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest is used for login requests
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is used for sending user data in responses (without password)
type UserResponse struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	FirstName string             `json:"first_name" bson:"first_name"`
	LastName  string             `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Rol       string             `json:"rol" bson:"rol"`
}
