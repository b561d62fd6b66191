package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/minanasr00/sraha-app/hashing"
)

// Tests use bcrypt.MinCost so the suite stays fast; the cost factor does not
// change any of the properties under test.

func newTestHasher(t *testing.T) *hashing.BcryptHasher {
	t.Helper()
	h, err := hashing.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNewBcryptHasher_ValidatesCost(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{"minimum cost", bcrypt.MinCost, false},
		{"typical production cost", 12, false},
		{"maximum cost", bcrypt.MaxCost, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"below minimum", bcrypt.MinCost - 1, true},
		{"above maximum", bcrypt.MaxCost + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hashing.NewBcryptHasher(tt.cost)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, hashing.ErrInvalidCost) {
					t.Fatalf("errors.Is(%v, ErrInvalidCost) = false", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.Cost() != tt.cost {
				t.Fatalf("Cost() = %d, want %d", h.Cost(), tt.cost)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hash / Verify properties
// ──────────────────────────────────────────────────────────────────────────────

func TestHash_SaltedOutputsDiffer(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical (missing per-call salt)")
	}

	for _, hash := range []string{first, second} {
		ok, err := h.Verify("secret", hash)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !ok {
			t.Fatalf("Verify(\"secret\", %q) = false", hash)
		}
	}
}

func TestVerify_WrongPasswordIsFalseNotError(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatal("Verify accepted the wrong password")
	}
}

func TestVerify_MalformedHashIsDistinctError(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "hunter2"},
		{"wrong scheme", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$10$abc"},
		{"bad cost field", "$2a$xx$" + strings.Repeat("a", 53)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify("secret", tt.hash)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, hashing.ErrInvalidHashFormat) {
				t.Fatalf("errors.Is(%v, ErrInvalidHashFormat) = false", err)
			}
		})
	}
}

func TestVerify_AcceptsHashesAtOtherCosts(t *testing.T) {
	// The cost embedded in the stored hash governs verification, not the
	// hasher's configured cost.
	low, _ := hashing.NewBcryptHasher(bcrypt.MinCost)
	hash, err := low.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}

	high, _ := hashing.NewBcryptHasher(12)
	ok, err := high.Verify("secret", hash)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("hash produced at a different cost failed to verify")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	// An empty password is the caller's validation problem, not a crypto
	// failure; the hasher must still round-trip it correctly.
	h := newTestHasher(t)
	hash, err := h.Hash("")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := h.Verify("", hash)
	if err != nil || !ok {
		t.Fatalf("Verify(\"\", hash) = (%v, %v), want (true, nil)", ok, err)
	}
	ok, _ = h.Verify("nonempty", hash)
	if ok {
		t.Fatal("non-empty password verified against empty-password hash")
	}
}
