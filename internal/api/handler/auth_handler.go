package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authgate/authentication-gateway/internal/api/metrics"
	"github.com/authgate/authentication-gateway/internal/core/domain"
	"github.com/authgate/authentication-gateway/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a local account and returns its first session token.
//
// @Summary      Register a new account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  resultDto
// @Failure      400   {object}  resultDto
// @Failure      409   {object}  resultDto
// @Router       /user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult(validationMessages(err)...))
	}

	token, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return c.JSON(statusForAuthError(err), failureResult(err.Error()))
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.ProviderPassword).Inc()
	return c.JSON(http.StatusOK, successResult(token))
}

// Login authenticates a local credential and returns a session token.
//
// @Summary      Login with username/email and password
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  resultDto
// @Failure      400   {object}  resultDto
// @Failure      401   {object}  resultDto
// @Failure      403   {object}  resultDto
// @Router       /user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult(validationMessages(err)...))
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
		return c.JSON(statusForAuthError(err), failureResult(err.Error()))
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	return c.JSON(http.StatusOK, successResult(token))
}

// SocialLogin verifies a provider-issued token and returns a session token.
//
// @Summary      Login through a federated identity provider
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      socialLoginRequest  true  "Provider token details"
// @Success      200   {object}  resultDto
// @Failure      400   {object}  resultDto
// @Failure      401   {object}  resultDto
// @Failure      403   {object}  resultDto
// @Router       /user/social-login [post]
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	var req socialLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResult(validationMessages(err)...))
	}

	token, err := h.authService.SocialLogin(c.Request().Context(), req.Email, req.Provider, req.AccessToken)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("social", "failure").Inc()
		return c.JSON(statusForAuthError(err), failureResult(err.Error()))
	}

	metrics.LoginsTotal.WithLabelValues("social", "success").Inc()
	return c.JSON(http.StatusOK, successResult(token))
}

// Me echoes the identity claims of the presented token.
//
// @Summary      Current identity
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /user/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, roles, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Email: email, Roles: roles})
}

// statusForAuthError maps engine failures to deterministic HTTP codes.
func statusForAuthError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRegistrationFailed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrProviderMismatch):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidProviderToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnsupportedProvider):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// validationMessages splits the joined validator output back into one
// message per failed field for the errors list.
func validationMessages(err error) []string {
	return strings.Split(err.Error(), "; ")
}
