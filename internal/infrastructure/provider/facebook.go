package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/authgate/authentication-gateway/internal/api/metrics"
	"github.com/authgate/authentication-gateway/internal/core/domain"
)

const defaultGraphBaseURL = "https://graph.facebook.com"

// AppTokenCache stores the app access token between logins. A nil cache
// disables caching and every validation performs the exchange.
type AppTokenCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}

// FacebookValidator verifies user access tokens through Facebook's
// two-step protocol: exchange the service's own client credentials for
// an app access token, then introspect the caller's token against the
// debug endpoint.
type FacebookValidator struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	cache        AppTokenCache
	log          zerolog.Logger
}

func NewFacebookValidator(clientID, clientSecret string, httpClient *http.Client, cache AppTokenCache, log zerolog.Logger) *FacebookValidator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FacebookValidator{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultGraphBaseURL,
		httpClient:   httpClient,
		cache:        cache,
		log:          log,
	}
}

type appAccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type debugTokenResponse struct {
	Data *debugTokenData `json:"data"`
}

type debugTokenData struct {
	AppID               string   `json:"app_id"`
	Type                string   `json:"type"`
	Application         string   `json:"application"`
	DataAccessExpiresAt int64    `json:"data_access_expires_at"`
	ExpiresAt           int64    `json:"expires_at"`
	IsValid             bool     `json:"is_valid"`
	Scopes              []string `json:"scopes"`
	UserID              string   `json:"user_id"`
}

// Validate introspects accessToken against the debug endpoint. Transport
// failures and malformed responses are reported as an invalid provider
// token rather than propagated raw.
func (v *FacebookValidator) Validate(ctx context.Context, accessToken string) error {
	start := time.Now()
	err := v.validate(ctx, accessToken)
	metrics.ProviderValidationDuration.WithLabelValues(domain.ProviderFacebook).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderValidationErrorsTotal.WithLabelValues(domain.ProviderFacebook).Inc()
		v.log.Debug().Err(err).Msg("facebook token rejected")
		return fmt.Errorf("%s access token is not valid: %w", domain.ProviderFacebook, domain.ErrInvalidProviderToken)
	}
	return nil
}

func (v *FacebookValidator) validate(ctx context.Context, accessToken string) error {
	appToken, err := v.appAccessToken(ctx)
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("input_token", accessToken)
	q.Set("access_token", appToken)

	var resp debugTokenResponse
	if err := v.getJSON(ctx, v.baseURL+"/debug_token?"+q.Encode(), &resp); err != nil {
		return err
	}
	if resp.Data == nil || !resp.Data.IsValid {
		return fmt.Errorf("debug_token reported invalid token")
	}
	return nil
}

// appAccessToken returns the cached app token when available, falling
// back to the client-credentials exchange. Cache failures are logged and
// ignored; the exchange is the source of truth.
func (v *FacebookValidator) appAccessToken(ctx context.Context) (string, error) {
	if v.cache != nil {
		token, err := v.cache.Get(ctx)
		if err != nil {
			v.log.Warn().Err(err).Msg("app token cache read failed")
		} else if token != "" {
			return token, nil
		}
	}

	q := url.Values{}
	q.Set("client_id", v.clientID)
	q.Set("client_secret", v.clientSecret)
	q.Set("grant_type", "client_credentials")

	var resp appAccessTokenResponse
	if err := v.getJSON(ctx, v.baseURL+"/oauth/access_token?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("empty app access token")
	}

	if v.cache != nil {
		if err := v.cache.Set(ctx, resp.AccessToken); err != nil {
			v.log.Warn().Err(err).Msg("app token cache write failed")
		}
	}
	return resp.AccessToken, nil
}

func (v *FacebookValidator) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("facebook graph responded %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
