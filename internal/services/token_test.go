package services

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	username, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestVerifyMissingToken(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	if _, err := svc.Verify(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", 0).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenService("secret-b", 0).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	for _, raw := range []string{"not-a-token", "a.b.c", "Bearer abc"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -1*time.Second)
	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTTLTokenStaysValid(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
