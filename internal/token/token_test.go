package token

import (
	"testing"
	"time"
)

func TestAccessRoundTrip(t *testing.T) {
	m := NewManager("test_secret", time.Minute, time.Hour)

	tok, err := m.Access("user@example.com")
	if err != nil {
		t.Fatalf("Access: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q; want user@example.com", claims.Email)
	}
}

func TestTokensAreUnique(t *testing.T) {
	m := NewManager("test_secret", time.Minute, time.Hour)

	a, err := m.Refresh("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Refresh("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two refresh tokens issued back to back are identical")
	}
}

func TestParseExpired(t *testing.T) {
	m := NewManager("test_secret", -time.Minute, time.Hour)

	tok, err := m.Access("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(tok); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewManager("secret_one", time.Minute, time.Hour)
	verifier := NewManager("secret_two", time.Minute, time.Hour)

	tok, err := issuer.Access("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(tok); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseGarbage(t *testing.T) {
	m := NewManager("test_secret", time.Minute, time.Hour)

	if _, err := m.Parse("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}
