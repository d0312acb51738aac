package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// TokenConfig is the immutable signing configuration of a TokenManager.
type TokenConfig struct {
	Secret    []byte
	TTL       time.Duration
	Algorithm string
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenManager builds a new manager. The algorithm must be one of HS256, HS384 or HS512.
func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if cfg.TTL < 0 {
		return nil, errors.New("token ttl must not be negative")
	}
	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", alg)
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	return &TokenManager{secret: secret, ttl: cfg.TTL, method: method, now: time.Now}, nil
}

// WithClock returns a copy of the manager reading time from now.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	clone := *tm
	clone.now = now
	return &clone
}

// TTL returns the lifetime of issued tokens.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims describes JWT payload.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue builds and signs a token asserting the identity's login.
func (tm *TokenManager) Issue(identity domain.Identity) (domain.IssuedToken, error) {
	if identity.Login == "" {
		return domain.IssuedToken{}, errors.New("identity without login")
	}
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.Login,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(tm.method, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return domain.IssuedToken{}, err
	}
	return domain.IssuedToken{
		Token:     tokenString,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify checks the signature and expiry of tokenStr and returns the login it asserts.
// A token is accepted up to and including its expiry second. It fails with
// domain.ErrExpiredToken for a genuine token past its expiry and with
// domain.ErrInvalidToken for anything else.
func (tm *TokenManager) Verify(tokenStr string) (string, error) {
	// Claims are checked below so that expiry is only judged on a verified signature.
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{tm.method.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == nil {
		return "", domain.ErrInvalidToken
	}
	if tm.now().After(claims.ExpiresAt.Time) {
		return "", domain.ErrExpiredToken
	}
	return claims.Subject, nil
}
