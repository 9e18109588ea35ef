package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/domain/dto"
)

func (c *Controller) ListPlaces(ctx echo.Context) error {
	places := c.places.List(ctx.Request().Context(), ctx.QueryParam("q"))
	return ctx.JSON(http.StatusOK, places)
}

func (c *Controller) ListPlaceMarkers(ctx echo.Context) error {
	markers := c.places.Markers(ctx.Request().Context(), ctx.QueryParam("q"))
	return ctx.JSON(http.StatusOK, markers)
}

func (c *Controller) GetPlace(ctx echo.Context) error {
	place, err := c.places.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, place)
}

func (c *Controller) CreatePlace(ctx echo.Context) error {
	var draft dto.PlaceDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	place, outcome, err := c.places.Create(ctx.Request().Context(), &draft)
	if err != nil {
		return err
	}

	return created(ctx, outcome, place)
}

func (c *Controller) UpdatePlace(ctx echo.Context) error {
	var draft dto.PlaceDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	place, outcome, err := c.places.Update(ctx.Request().Context(), ctx.Param("id"), &draft)
	if err != nil {
		return err
	}

	return replaced(ctx, http.StatusOK, outcome, place)
}

func (c *Controller) DeletePlace(ctx echo.Context) error {
	outcome, err := c.places.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return deleted(ctx, outcome)
}

func (c *Controller) AddPlaceReview(ctx echo.Context) error {
	var draft dto.ReviewDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	review, outcome, err := c.places.AddReview(ctx.Request().Context(), ctx.Param("id"), &draft)
	if err != nil {
		return err
	}

	return replaced(ctx, http.StatusCreated, outcome, review)
}

func (c *Controller) SummarizePlaceReviews(ctx echo.Context) error {
	place, err := c.places.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	summary := c.recommend.SummarizeReviews(ctx.Request().Context(), place.Name, domain.ReviewComments(place.Reviews))

	return ctx.JSON(http.StatusOK, summaryResponse{Name: place.Name, Summary: summary})
}
