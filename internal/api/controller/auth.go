package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/domain/dto"
	"github.com/ougirez/lwc/internal/pkg/constants"
)

func (c *Controller) LoginAdmin(ctx echo.Context) error {
	var request dto.LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}

	resp, err := c.auth.LoginAdmin(ctx.Request().Context(), &request)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    resp.AuthToken,
		Path:     "/",
		Expires:  time.Unix(resp.ExpiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) LogoutAdmin(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}
