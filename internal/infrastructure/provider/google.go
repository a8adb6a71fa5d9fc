package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/idtoken"

	"github.com/authgate/authentication-gateway/internal/api/metrics"
	"github.com/authgate/authentication-gateway/internal/core/domain"
)

// GoogleValidator verifies Google-issued ID tokens (signature, expiry
// and audience) through Google's official verification routine.
type GoogleValidator struct {
	audience string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
	log      zerolog.Logger
}

func NewGoogleValidator(audience string, log zerolog.Logger) *GoogleValidator {
	return &GoogleValidator{
		audience: audience,
		validate: idtoken.Validate,
		log:      log,
	}
}

// Validate checks the token against the configured audience. Every
// verification failure, including transport errors, is reported as an
// invalid provider token.
func (v *GoogleValidator) Validate(ctx context.Context, accessToken string) error {
	start := time.Now()
	_, err := v.validate(ctx, accessToken, v.audience)
	metrics.ProviderValidationDuration.WithLabelValues(domain.ProviderGoogle).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderValidationErrorsTotal.WithLabelValues(domain.ProviderGoogle).Inc()
		v.log.Debug().Err(err).Msg("google token rejected")
		return fmt.Errorf("%s access token is not valid: %w", domain.ProviderGoogle, domain.ErrInvalidProviderToken)
	}
	return nil
}
