package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves
// the server; the JSON schema is explicit rather than a struct dump.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RegisterRequest is the payload for POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload for POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the self-service profile update payload.
// An empty password leaves the stored hash untouched.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UpdateUserRequest is the admin-only account update payload.
type UpdateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse is returned by register and login: the profile plus a
// signed access token and its refresh counterpart.
type AuthResponse struct {
	User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
