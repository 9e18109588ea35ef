package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/domain/dto"
)

func (c *Controller) ListDesserts(ctx echo.Context) error {
	desserts := c.desserts.List(ctx.Request().Context(), ctx.QueryParam("q"))
	return ctx.JSON(http.StatusOK, desserts)
}

func (c *Controller) GetDessert(ctx echo.Context) error {
	dessert, err := c.desserts.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dessert)
}

func (c *Controller) CreateDessert(ctx echo.Context) error {
	var draft dto.DessertDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	dessert, outcome, err := c.desserts.Create(ctx.Request().Context(), &draft)
	if err != nil {
		return err
	}

	return created(ctx, outcome, dessert)
}

func (c *Controller) UpdateDessert(ctx echo.Context) error {
	var draft dto.DessertDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	dessert, outcome, err := c.desserts.Update(ctx.Request().Context(), ctx.Param("id"), &draft)
	if err != nil {
		return err
	}

	return replaced(ctx, http.StatusOK, outcome, dessert)
}

func (c *Controller) DeleteDessert(ctx echo.Context) error {
	outcome, err := c.desserts.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return deleted(ctx, outcome)
}

func (c *Controller) AddDessertReview(ctx echo.Context) error {
	var draft dto.ReviewDraft
	if err := ctx.Bind(&draft); err != nil {
		return err
	}

	review, outcome, err := c.desserts.AddReview(ctx.Request().Context(), ctx.Param("id"), &draft)
	if err != nil {
		return err
	}

	return replaced(ctx, http.StatusCreated, outcome, review)
}

func (c *Controller) SummarizeDessertReviews(ctx echo.Context) error {
	dessert, err := c.desserts.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	summary := c.recommend.SummarizeReviews(ctx.Request().Context(), dessert.Name, domain.ReviewComments(dessert.Reviews))

	return ctx.JSON(http.StatusOK, summaryResponse{Name: dessert.Name, Summary: summary})
}
