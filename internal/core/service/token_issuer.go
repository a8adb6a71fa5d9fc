package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

const defaultTokenTTL = 3 * time.Hour

// TokenIssuer builds a claims set and signs session tokens. Signing is
// pure and fast; issuers are safe for concurrent use.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue signs an HS256 token for the account. The claim layout is fixed
// for interoperability with existing verifiers: unique_name and email
// carry the subject email, jti is fresh per token, and role holds one
// entry per role (a scalar when the account has exactly one).
func (ti *TokenIssuer) Issue(account *domain.Account, roles []string) (string, error) {
	claims := jwt.MapClaims{
		"unique_name": account.Email,
		"email":       account.Email,
		"jti":         uuid.NewString(),
		"iss":         ti.issuer,
		"aud":         ti.audience,
		"exp":         ti.now().Add(ti.ttl).Unix(),
	}
	switch len(roles) {
	case 0:
	case 1:
		claims["role"] = roles[0]
	default:
		claims["role"] = roles
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(ti.secret)
}
