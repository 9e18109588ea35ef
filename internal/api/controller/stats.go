package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (c *Controller) GetStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.stats.Snapshot())
}

func (c *Controller) GetDashboard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	summary := c.dashboard.Summary(c.places.List(reqCtx, ""), c.desserts.List(reqCtx, ""))
	return ctx.JSON(http.StatusOK, summary)
}
