package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, pw := range []string{"secret123", "", "ção-ünïcode", "with spaces and 123!"} {
		verifier, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("Hash(%q) error: %v", pw, err)
		}
		if verifier == pw {
			t.Fatalf("verifier must not equal plaintext")
		}
		if !h.Verify(pw, verifier) {
			t.Fatalf("Verify(%q) = false, want true", pw)
		}
	}
}

func TestPasswordHasher_RejectsOtherPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	verifier, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	for _, pw := range []string{"secret124", "Secret123", "secret12", ""} {
		if h.Verify(pw, verifier) {
			t.Fatalf("Verify(%q) = true against another password", pw)
		}
	}
}

func TestPasswordHasher_SaltIsUnique(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if len(first) != len(second) {
		t.Fatalf("verifier length differs: %d vs %d", len(first), len(second))
	}
	if !h.Verify("secret123", first) || !h.Verify("secret123", second) {
		t.Fatalf("both verifiers must match the password")
	}
}

func TestPasswordHasher_MalformedVerifier(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, verifier := range []string{"", "not-a-hash", "$2a$04$short", "secret123"} {
		if h.Verify("secret123", verifier) {
			t.Fatalf("Verify against %q must be false", verifier)
		}
	}
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	if got := NewPasswordHasher(1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default", got)
	}
	if got := NewPasswordHasher(bcrypt.MinCost).cost; got != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MinCost)
	}
}
