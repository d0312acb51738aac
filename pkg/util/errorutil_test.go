package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/repository"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		status  int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, CodeInvalidCredentials, http.StatusUnauthorized, "incorrect login or password"},
		{"expired token", fmt.Errorf("verify: %w", domain.ErrExpiredToken), CodeTokenExpired, http.StatusUnauthorized, "token expired"},
		{"invalid token", domain.ErrInvalidToken, CodeUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"locked", domain.ErrTooManyAttempts, CodeTooManyAttempts, http.StatusTooManyRequests, ""},
		{"login taken", domain.ErrLoginTaken, CodeConflict, http.StatusConflict, "login already registered"},
		{"not found", repository.ErrNotFound, CodeNotFound, http.StatusNotFound, "resource not found"},
		{"duplicate", repository.ErrDuplicate, CodeConflict, http.StatusConflict, ""},
		{"fiber", fiber.NewError(http.StatusBadRequest, "invalid payload"), CodeBadRequest, http.StatusBadRequest, "invalid payload"},
		{"fiber 405", fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, ""},
		{"domain", NewNotFound("client", nil), CodeNotFound, http.StatusNotFound, "client not found"},
		{"unknown", errors.New("db down"), CodeInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			if got.Code != tt.code || got.HTTPStatus != tt.status {
				t.Fatalf("got %s/%d, want %s/%d", got.Code, got.HTTPStatus, tt.code, tt.status)
			}
			if tt.message != "" && got.Message != tt.message {
				t.Fatalf("message = %q, want %q", got.Message, tt.message)
			}
		})
	}
}

func TestToDomainError_InternalKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	got := ToDomainError(cause)
	if !errors.Is(got, cause) {
		t.Fatalf("internal error must wrap its cause")
	}
	if got.Message == cause.Error() {
		t.Fatalf("cause must not be exposed as the message")
	}
}

func TestToDomainError_Nil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatalf("ToDomainError(nil) must be nil")
	}
}
