package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/api/idtoken"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

func TestGoogleValidator_Valid(t *testing.T) {
	v := NewGoogleValidator("client-audience", zerolog.Nop())
	v.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "id-token" {
			t.Fatalf("unexpected token %q", token)
		}
		if audience != "client-audience" {
			t.Fatalf("unexpected audience %q", audience)
		}
		return &idtoken.Payload{Subject: "42"}, nil
	}

	if err := v.Validate(context.Background(), "id-token"); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
}

func TestGoogleValidator_Invalid(t *testing.T) {
	v := NewGoogleValidator("client-audience", zerolog.Nop())
	v.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	}

	err := v.Validate(context.Background(), "expired-token")
	if !errors.Is(err, domain.ErrInvalidProviderToken) {
		t.Fatalf("expected ErrInvalidProviderToken, got %v", err)
	}
}
