package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/pkg/constants"
)

type askRequest struct {
	Query string `json:"query" validate:"notblank"`
}

type askResponse struct {
	domain.Recommendation
	Stale bool `json:"stale"`
}

// AskRecommendation always answers 200. Generator failures come back as a fixed text.
func (c *Controller) AskRecommendation(ctx echo.Context) error {
	var request askRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	answer, fresh := c.recommend.Ask(reqCtx, c.places.List(reqCtx, ""), request.Query)

	return ctx.JSON(http.StatusOK, askResponse{Recommendation: answer, Stale: !fresh})
}

func (c *Controller) LatestRecommendation(ctx echo.Context) error {
	latest, ok := c.recommend.Latest()
	if !ok {
		return fmt.Errorf("recommendation: %w", constants.ErrDBNotFound)
	}

	return ctx.JSON(http.StatusOK, latest)
}
