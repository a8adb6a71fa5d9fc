package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Login providers an account can be bound to. The provider is fixed at
// creation time and never changes for the lifetime of the account.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// Account models one local identity known to the gateway.
type Account struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Provider      string    `json:"provider"`
	SecurityStamp string    `json:"-"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasRole reports whether the account holds the given role.
func (a *Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// KnownProvider reports whether p is one of the supported login providers.
func KnownProvider(p string) bool {
	switch p {
	case ProviderPassword, ProviderGoogle, ProviderFacebook:
		return true
	}
	return false
}
