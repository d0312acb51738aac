package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestManager(t *testing.T, ttl time.Duration) (*TokenManager, *fakeClock) {
	t.Helper()
	tm, err := NewTokenManager(TokenConfig{Secret: []byte("test-secret"), TTL: ttl, Algorithm: "HS256"})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	return tm.WithClock(clock.Now), clock
}

func TestTokenManager_IssueVerify(t *testing.T) {
	tm, _ := newTestManager(t, 30*time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice", Position: "barber"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got := issued.ExpiresAt.Sub(issued.IssuedAt); got != 30*time.Minute {
		t.Fatalf("validity window = %s, want 30m", got)
	}

	login, err := tm.Verify(issued.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if login != "alice" {
		t.Fatalf("login = %q, want alice", login)
	}
}

func TestTokenManager_Claims(t *testing.T) {
	tm, clock := newTestManager(t, 30*time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice", Position: "barber"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(issued.Token, claims); err != nil {
		t.Fatalf("ParseUnverified: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("sub = %q", claims.Subject)
	}
	if !claims.IssuedAt.Time.Equal(clock.now) {
		t.Fatalf("iat = %s, want %s", claims.IssuedAt.Time, clock.now)
	}
	if !claims.ExpiresAt.Time.Equal(clock.now.Add(30 * time.Minute)) {
		t.Fatalf("exp = %s", claims.ExpiresAt.Time)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti")
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(issued.Token, ".")[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if strings.Contains(string(payload), "barber") {
		t.Fatalf("token must not carry the position")
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	tm, clock := newTestManager(t, 30*time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	clock.Advance(time.Minute)
	if login, err := tm.Verify(issued.Token); err != nil || login != "alice" {
		t.Fatalf("Verify after 1m = (%q, %v)", login, err)
	}

	clock.Advance(29*time.Minute - time.Second)
	if _, err := tm.Verify(issued.Token); err != nil {
		t.Fatalf("Verify one second before expiry: %v", err)
	}

	clock.Advance(time.Second)
	if _, err := tm.Verify(issued.Token); err != nil {
		t.Fatalf("Verify at expiry: %v", err)
	}

	clock.Advance(time.Nanosecond)
	if _, err := tm.Verify(issued.Token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("Verify just past expiry err = %v, want ErrExpiredToken", err)
	}

	clock.Advance(time.Hour)
	if _, err := tm.Verify(issued.Token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("Verify after expiry err = %v, want ErrExpiredToken", err)
	}
}

func TestTokenManager_ZeroTTLIsExpired(t *testing.T) {
	tm, clock := newTestManager(t, 0)
	// Claims carry whole seconds, so a mid-second issuance is already past exp.
	clock.Advance(250 * time.Millisecond)

	issued, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tm.Verify(issued.Token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}

	clock.Advance(time.Minute)
	if _, err := tm.Verify(issued.Token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("err after elapsed ttl = %v, want ErrExpiredToken", err)
	}
}

func TestTokenManager_FlippedSignatureByte(t *testing.T) {
	tm, _ := newTestManager(t, 30*time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	parts := strings.Split(issued.Token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}

	for i := range sig {
		tampered := append([]byte(nil), sig...)
		tampered[i] ^= 0x01
		token := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(tampered)
		if _, err := tm.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("byte %d flipped: err = %v, want ErrInvalidToken", i, err)
		}
	}
}

func TestTokenManager_ReplacedLastCharacter(t *testing.T) {
	tm, _ := newTestManager(t, 30*time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := issued.Token[len(issued.Token)-1]
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == last {
			continue
		}
		token := issued.Token[:len(issued.Token)-1] + string(alphabet[i])
		if login, err := tm.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("last char %q -> %q: (%q, %v), want ErrInvalidToken", last, alphabet[i], login, err)
		}
	}
}

func TestTokenManager_ExpiredAndTamperedIsInvalid(t *testing.T) {
	tm, clock := newTestManager(t, time.Minute)

	issued, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	clock.Advance(time.Hour)

	parts := strings.Split(issued.Token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	sig[0] ^= 0xff
	tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(sig)
	if _, err := tm.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	tm, clock := newTestManager(t, 30*time.Minute)

	other, err := NewTokenManager(TokenConfig{Secret: []byte("other-secret"), TTL: 30 * time.Minute})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	forged, err := other.WithClock(clock.Now).Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	hs512, err := NewTokenManager(TokenConfig{Secret: []byte("test-secret"), TTL: 30 * time.Minute, Algorithm: "HS512"})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	wrongAlg, err := hs512.WithClock(clock.Now).Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := map[string]string{
		"other secret":     forged.Token,
		"other alg":        wrongAlg.Token,
		"alg none":         noneToken,
		"missing exp":      noExp,
		"missing sub":      noSubject,
		"empty":            "",
		"garbage":          "not-a-token",
		"bad base64":       "a.b.c",
		"two segments":     "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhbGljZSJ9",
		"payload not json": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.bm90LWpzb24.c2ln",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tm.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenManager_IndependentTokens(t *testing.T) {
	tm, _ := newTestManager(t, 30*time.Minute)

	first, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	second, err := tm.Issue(domain.Identity{Login: "alice"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("concurrent issuance must yield distinct tokens")
	}
	for _, tok := range []string{first.Token, second.Token} {
		if _, err := tm.Verify(tok); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	}
}

func TestNewTokenManager_Validation(t *testing.T) {
	if _, err := NewTokenManager(TokenConfig{TTL: time.Minute}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenManager(TokenConfig{Secret: []byte("s"), TTL: -time.Minute}); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
	if _, err := NewTokenManager(TokenConfig{Secret: []byte("s"), Algorithm: "RS256"}); err == nil {
		t.Fatalf("expected error for non-HMAC algorithm")
	}
	if _, err := NewTokenManager(TokenConfig{Secret: []byte("s"), Algorithm: "XX999"}); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}

func TestTokenManager_IssueRequiresLogin(t *testing.T) {
	tm, _ := newTestManager(t, time.Minute)
	if _, err := tm.Issue(domain.Identity{}); err == nil {
		t.Fatalf("expected error for empty login")
	}
}
