package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(42, "cashier", "cashier", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "cashier" || claims.Role != "cashier" {
		t.Errorf("claims = %+v, want userId 42, cashier/cashier", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "admin", "admin", "secret-a", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Error("token signed with another secret must not parse")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(1, "admin", "admin", "secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, "secret"); err == nil {
		t.Error("expired token must not parse")
	}
}
