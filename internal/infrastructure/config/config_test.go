package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.JWT.TTL != 3*time.Hour {
		t.Fatalf("expected 3h token TTL, got %v", cfg.JWT.TTL)
	}
	if cfg.JWT.Issuer == "" || cfg.JWT.Audience == "" {
		t.Fatalf("expected default issuer/audience, got %+v", cfg.JWT)
	}
	if cfg.Mongo.Database != "authentication_gateway" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.Admin.Username != "AuthenticationAdmin" {
		t.Fatalf("unexpected default admin username: %s", cfg.Admin.Username)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TTL", "45m")
	t.Setenv("GOOGLE_TOKEN_AUDIENCE", "google-client-id")
	t.Setenv("FACEBOOK_CLIENT_ID", "fb-id")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("port override not applied: %s", cfg.Port)
	}
	if cfg.JWT.Secret != "super-secret" || cfg.JWT.TTL != 45*time.Minute {
		t.Fatalf("jwt overrides not applied: %+v", cfg.JWT)
	}
	if cfg.Google.TokenAudience != "google-client-id" || cfg.Facebook.ClientID != "fb-id" {
		t.Fatalf("provider overrides not applied")
	}
}
