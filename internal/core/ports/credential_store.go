package ports

import (
	"context"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

// CredentialStore defines the interface for account persistence and
// secret verification. Implementations own password hashing and must
// enforce username/email uniqueness at the storage layer; the engine's
// pre-checks are only a fast path for better error messages.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Create persists a new account, hashing password before storage.
	// It rejects passwords that fail policy and racing duplicates.
	Create(ctx context.Context, account *domain.Account, password string) (*domain.Account, error)

	// VerifyPassword reports whether password matches the account's
	// stored secret using a timing-safe comparison.
	VerifyPassword(ctx context.Context, account *domain.Account, password string) bool

	Roles(ctx context.Context, account *domain.Account) ([]string, error)
	AddRole(ctx context.Context, account *domain.Account, role string) error
}
