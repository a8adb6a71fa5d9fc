package ports

import "context"

// ProviderValidator verifies an externally issued access token against
// one identity provider's verification protocol. Validation is pure: no
// local state is read or mutated.
type ProviderValidator interface {
	Validate(ctx context.Context, accessToken string) error
}
