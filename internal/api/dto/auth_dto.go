package dto

import "github.com/spec-kit/translate-service/internal/domain"

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse body for successful logins. The token itself travels in the
// access_token cookie, not here.
type LoginResponse struct {
	Message string         `json:"message"`
	User    domain.Summary `json:"user"`
}
