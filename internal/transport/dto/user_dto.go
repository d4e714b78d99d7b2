package dto

import (
	"strings"
	"time"
)

// RegisterUserRequest defines the structure for creating a new account.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,password"`
}

// Normalize trims the identifiers and lowercases the email so that lookups and
// uniqueness checks are case-insensitive on email.
func (r *RegisterUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginRequest defines the structure for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token for rotation or revocation.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserLookupRequest finds a user by username, email, or either.
type UserLookupRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
}

// UserDTO is the public representation of a user.
type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	ExpiresIn    int64   `json:"expiresIn"` // seconds
}
