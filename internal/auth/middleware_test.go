package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/domain"
	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

type stubResolver struct {
	tokens *TokenManager
	users  map[string]*domain.User
}

func (r *stubResolver) VerifyToken(token string) (string, error) {
	return r.tokens.Verify(token)
}

func (r *stubResolver) CurrentUser(_ context.Context, login string) (*domain.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return u, nil
}

func newMiddlewareApp(t *testing.T) (*fiber.App, *stubResolver, *fakeClock) {
	t.Helper()
	tm, clock := newTestManager(t, 30*time.Minute)
	resolver := &stubResolver{
		tokens: tm,
		users:  map[string]*domain.User{"alice": {ID: 1, Login: "alice", Position: "barber"}},
	}

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		de := apperrors.ToDomainError(err)
		return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code})
	}})
	mw := NewAuthMiddleware(resolver)
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return errors.New("user missing")
		}
		login, _ := LoginFromContext(c.UserContext())
		return c.JSON(fiber.Map{"login": user.Login, "ctx_login": login, "position": user.Position})
	})
	return app, resolver, clock
}

func doRequest(t *testing.T, app *fiber.App, header string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body := map[string]string{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, resolver, _ := newMiddlewareApp(t)
	issued, err := resolver.tokens.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	status, body := doRequest(t, app, "Bearer "+issued.Token)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["login"] != "alice" || body["ctx_login"] != "alice" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthMiddleware_ReResolvesPosition(t *testing.T) {
	app, resolver, _ := newMiddlewareApp(t)
	issued, _ := resolver.tokens.Issue(domain.Identity{Login: "alice", Position: "barber"})

	resolver.users["alice"].Position = "manager"
	_, body := doRequest(t, app, "bearer "+issued.Token)
	if body["position"] != "manager" {
		t.Fatalf("position = %q, want the stored value", body["position"])
	}

	delete(resolver.users, "alice")
	status, body := doRequest(t, app, "Bearer "+issued.Token)
	if status != http.StatusUnauthorized || body["code"] != apperrors.CodeUnauthenticated {
		t.Fatalf("removed user: status = %d, body = %v", status, body)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	app, resolver, clock := newMiddlewareApp(t)
	issued, _ := resolver.tokens.Issue(domain.Identity{Login: "alice"})

	tests := []struct {
		name   string
		header string
		code   string
		before func()
	}{
		{name: "missing header", header: "", code: apperrors.CodeUnauthorized},
		{name: "wrong scheme", header: "Basic abc", code: apperrors.CodeUnauthorized},
		{name: "empty token", header: "Bearer   ", code: apperrors.CodeUnauthorized},
		{name: "garbage", header: "Bearer nope", code: apperrors.CodeUnauthenticated},
		{name: "expired", header: "Bearer " + issued.Token, code: apperrors.CodeTokenExpired, before: func() { clock.Advance(time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.before != nil {
				tt.before()
			}
			status, body := doRequest(t, app, tt.header)
			if status != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", status)
			}
			if body["code"] != tt.code {
				t.Fatalf("code = %q, want %q", body["code"], tt.code)
			}
		})
	}
}

func TestLoginFromContext_Missing(t *testing.T) {
	if _, ok := LoginFromContext(context.Background()); ok {
		t.Fatalf("expected no login")
	}
	ctx := WithLogin(context.Background(), "alice")
	if login, ok := LoginFromContext(ctx); !ok || login != "alice" {
		t.Fatalf("LoginFromContext = (%q, %v)", login, ok)
	}
}
