package dto

import "time"

// LoginRequest accepts either a JSON body or an urlencoded form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=30"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest payload for new staff accounts.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Position string `json:"position" validate:"required,max=45"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserResponse never carries the password verifier.
type UserResponse struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type VerifyTokenResponse struct {
	Message string `json:"message"`
	Login   string `json:"login"`
}
