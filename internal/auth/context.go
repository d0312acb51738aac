package auth

import "context"

type contextKey string

const contextKeyLogin = contextKey("login")

// WithLogin returns a context carrying the authenticated login.
func WithLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, contextKeyLogin, login)
}

// LoginFromContext extracts the authenticated login, if any.
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(contextKeyLogin).(string)
	return login, ok
}
