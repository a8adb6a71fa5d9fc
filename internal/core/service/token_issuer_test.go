package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

func TestTokenIssuer_Claims(t *testing.T) {
	ti := NewTokenIssuer("secret", "gateway", "clients", 3*time.Hour)
	frozen := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	ti.now = func() time.Time { return frozen }

	account := &domain.Account{Email: "alice@example.com"}
	token, err := ti.Issue(account, []string{domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}

	if claims["unique_name"] != "alice@example.com" || claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if claims["iss"] != "gateway" || claims["aud"] != "clients" {
		t.Fatalf("unexpected issuer/audience: %+v", claims)
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}

	exp, _ := claims["exp"].(float64)
	if int64(exp) != frozen.Add(3*time.Hour).Unix() {
		t.Fatalf("expected 3h expiry, got %v", exp)
	}
}

func TestTokenIssuer_MultipleRoles(t *testing.T) {
	ti := NewTokenIssuer("secret", "gateway", "clients", time.Hour)

	token, err := ti.Issue(&domain.Account{Email: "bob@example.com"}, []string{domain.RoleAdmin, domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	roles, ok := claims["role"].([]any)
	if !ok || len(roles) != 2 {
		t.Fatalf("expected role array with two entries, got %v", claims["role"])
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	ti := NewTokenIssuer("secret", "gateway", "clients", 0)
	if ti.ttl != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, ti.ttl)
	}
}

func TestTokenIssuer_WrongKeyRejected(t *testing.T) {
	ti := NewTokenIssuer("secret", "gateway", "clients", time.Hour)

	token, err := ti.Issue(&domain.Account{Email: "carol@example.com"}, nil)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatalf("expected signature verification to fail")
	}
}
