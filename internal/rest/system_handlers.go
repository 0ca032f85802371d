package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Seed handles POST /api/system/seed
// @Summary Seed demo data
// @Description Fills an empty database with demo accounts, categories, tags and news articles
// @Tags system
// @Produce json
// @Success 201 {object} rest.SeedResponse
// @Failure 409,500 {object} map[string]string
// @Router /api/system/seed [post]
func (h *Handler) Seed(c echo.Context) error {
	res, err := h.m.Seed(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewSeedResponse(*res))
}
