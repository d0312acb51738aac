package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher turns plaintext passwords into salted bcrypt verifiers.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a verifier for password. Each call embeds a fresh random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches verifier. A malformed verifier never matches.
func (h *PasswordHasher) Verify(password, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), []byte(password)) == nil
}
