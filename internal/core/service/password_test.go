package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "pw1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw1" || hash == "" {
		t.Fatalf("expected salted hash, got %q", hash)
	}

	if !h.Verify(ctx, "pw1", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify(ctx, "pw2", hash) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	ctx := context.Background()

	a, err := h.Hash(ctx, "same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash(ctx, "same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ by salt")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify(context.Background(), "pw", bad) {
			t.Fatalf("Verify accepted malformed hash %q", bad)
		}
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(999)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}
