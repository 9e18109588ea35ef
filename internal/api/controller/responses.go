package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/service/catalog"
)

// mutationResponse reports the outcome of a catalog write together with the
// record it produced, if any.
type mutationResponse struct {
	Outcome catalog.Outcome `json:"outcome"`
	Record  any             `json:"record,omitempty"`
}

type summaryResponse struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func created(ctx echo.Context, outcome catalog.Outcome, record any) error {
	return ctx.JSON(http.StatusCreated, mutationResponse{Outcome: outcome, Record: record})
}

// replaced answers an update or a review. A missing target is a 404 that still
// carries the outcome, so clients can tell it apart from a bad route.
func replaced(ctx echo.Context, status int, outcome catalog.Outcome, record any) error {
	if outcome == catalog.OutcomeNotFound {
		return ctx.JSON(http.StatusNotFound, mutationResponse{Outcome: outcome})
	}
	return ctx.JSON(status, mutationResponse{Outcome: outcome, Record: record})
}

func deleted(ctx echo.Context, outcome catalog.Outcome) error {
	return ctx.JSON(http.StatusOK, mutationResponse{Outcome: outcome})
}
