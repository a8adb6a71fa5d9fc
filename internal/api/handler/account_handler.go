package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authgate/authentication-gateway/internal/core/domain"
	"github.com/authgate/authentication-gateway/internal/core/ports"
)

// AccountHandler exposes administrative account lookups.
type AccountHandler struct {
	store ports.CredentialStore
}

func NewAccountHandler(store ports.CredentialStore) *AccountHandler {
	return &AccountHandler{store: store}
}

// ByEmail returns the account registered under the given email.
//
// @Summary      Look up an account by email (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  domain.Account
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /user/accounts/{email} [get]
func (h *AccountHandler) ByEmail(c echo.Context) error {
	account, err := h.store.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "account not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, account)
}
