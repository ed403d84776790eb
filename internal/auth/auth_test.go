package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestBcrypt(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt: %v", err)
	}
	hash, err := h.Hash("lozinka")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "lozinka" {
		t.Fatal("hash equals the password")
	}
	if !h.Compare(hash, "lozinka") {
		t.Error("Compare rejected the right password")
	}
	if h.Compare(hash, "pogresna") {
		t.Error("Compare accepted a wrong password")
	}
	if h.Compare("not-a-hash", "lozinka") {
		t.Error("Compare accepted a malformed hash")
	}
}

func TestNewBcrypt_Cost(t *testing.T) {
	if _, err := NewBcrypt(bcrypt.MaxCost + 1); err == nil {
		t.Error("expected error for cost above max")
	}
	h, err := NewBcrypt(0)
	if err != nil || h.cost != bcrypt.DefaultCost {
		t.Errorf("NewBcrypt(0) = %+v, %v", h, err)
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	id := uuid.New()
	raw, err := tokens.Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != id {
		t.Errorf("Verify = %s, want %s", got, id)
	}
}

func TestTokens_Rejects(t *testing.T) {
	tokens, _ := NewTokens(testSecret, time.Hour)
	id := uuid.New()
	valid, _ := tokens.Issue(id)

	expired, _ := NewTokens(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue(id)

	other, _ := NewTokens(strings.Repeat("x", MinSecretLength), time.Hour)
	foreign, _ := other.Issue(id)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"tampered", valid + "x"},
		{"expired", old},
		{"wrong secret", foreign},
		{"unsigned", none},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tokens.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestNewTokens_Validation(t *testing.T) {
	if _, err := NewTokens("short", time.Hour); err == nil {
		t.Error("expected error for short secret")
	}
	if _, err := NewTokens(testSecret, 0); err == nil {
		t.Error("expected error for zero ttl")
	}
}
