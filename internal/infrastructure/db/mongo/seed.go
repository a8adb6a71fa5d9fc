package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

// SeedAdmin ensures the bootstrap admin account exists. Idempotent: it
// does nothing when an account with the given username is already
// present.
func SeedAdmin(ctx context.Context, repo *AccountRepository, username, email, password string, log zerolog.Logger) error {
	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	account := &domain.Account{
		Username:      username,
		Email:         email,
		Provider:      domain.ProviderPassword,
		SecurityStamp: uuid.NewString(),
		Roles:         []string{domain.RoleAdmin},
	}

	if _, err := repo.Create(ctx, account, password); err != nil {
		// A racing replica may have seeded first.
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Str("username", username).Msg("admin account seeded")
	return nil
}
