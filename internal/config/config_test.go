package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.JWTAlgorithm != "HS256" {
		t.Fatalf("unexpected algorithm: %s", cfg.Auth.JWTAlgorithm)
	}
	if cfg.Auth.AccessTokenTTL() != 30*time.Minute {
		t.Fatalf("unexpected ttl: %s", cfg.Auth.AccessTokenTTL())
	}
	if cfg.App.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr: %s", cfg.App.Addr())
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		t.Fatalf("expected default cors origins")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_JWT_ALGORITHM", "hs512")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "45")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.JWTSecret != "s3cret" || cfg.Auth.JWTAlgorithm != "HS512" {
		t.Fatalf("unexpected auth config: %+v", cfg.Auth)
	}
	if cfg.Auth.AccessTokenTTL() != 45*time.Minute {
		t.Fatalf("unexpected ttl: %s", cfg.Auth.AccessTokenTTL())
	}
	if got := strings.Join(cfg.CORS.AllowOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Fatalf("unexpected origins: %s", got)
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Fatalf("expected disabled timeout")
	}
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid REDIS_DB")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Auth: AuthConfig{
			JWTSecret:             "secret",
			JWTAlgorithm:          "HS256",
			AccessTokenTTLMinutes: 30,
			BcryptCost:            10,
		}}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty secret", mutate: func(c *Config) { c.Auth.JWTSecret = "  " }, want: "AUTH_JWT_SECRET"},
		{name: "bad algorithm", mutate: func(c *Config) { c.Auth.JWTAlgorithm = "RS256" }, want: "AUTH_JWT_ALGORITHM"},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.AccessTokenTTLMinutes = 0 }, want: "TTL"},
		{name: "low cost", mutate: func(c *Config) { c.Auth.BcryptCost = 2 }, want: "AUTH_BCRYPT_COST"},
		{name: "half bootstrap", mutate: func(c *Config) { c.Auth.BootstrapLogin = "admin" }, want: "AUTH_BOOTSTRAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
