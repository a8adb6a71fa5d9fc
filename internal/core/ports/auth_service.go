package ports

import "context"

// AuthService is the public surface of the authentication engine. Every
// operation returns a signed token string on success.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
	SocialLogin(ctx context.Context, email, provider, accessToken string) (string, error)
}
