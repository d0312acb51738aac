package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials covers both an unknown login and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken means the token was forged, altered or could not be decoded.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the signature checked out but the token is past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrTooManyAttempts is returned while a login is locked out after repeated failures.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrLoginTaken is returned when registering a login that already exists.
	ErrLoginTaken = errors.New("login already registered")
)

// Identity is the authenticated principal.
type Identity struct {
	Login    string
	Position string
}

// IssuedToken is a signed access token together with its validity window.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
