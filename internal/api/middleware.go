package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/logger"
)

// AdminMiddleware lets the request through when it carries a valid admin
// token, either in the session cookie or as a bearer token.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var raw string
		if cookie, err := ctx.Cookie(constants.CookieKeySecretToken); err == nil {
			raw = cookie.Value
		}
		if bearer := bearerToken(ctx); bearer != "" {
			raw = bearer
		}
		if raw == "" {
			return constants.ErrMissingAuth
		}

		token, err := svc.authService.VerifyToken(raw)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyAdmin, token.Username)

		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// requestContext attaches the request id to the context logger.
func requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		req := c.Request()
		c.SetRequest(req.WithContext(logger.With(req.Context(), "request_id", id)))
		return next(c)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	})
}
