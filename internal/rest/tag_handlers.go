package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Tags handles GET /api/tags
// @Summary List tags
// @Description Searches name and note, sorts by tagName or newsCount
// @Tags tags
// @Produce json
// @Param search query string false "Search term"
// @Param sortBy query string false "tagName | newsCount"
// @Param isDescending query bool false "Sort descending"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Page[rest.Tag]
// @Failure 400,500 {object} map[string]string
// @Router /api/tags [get]
func (h *Handler) Tags(c echo.Context) error {
	var req TagListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.m.Tags(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPage(page, NewTag))
}

// TagByID handles GET /api/tags/:id
// @Summary Get tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} rest.Tag
// @Failure 400,404,500 {object} map[string]string
// @Router /api/tags/{id} [get]
func (h *Handler) TagByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	tag, err := h.m.Tag(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// CreateTag handles POST /api/tags
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body rest.TagRequest true "Tag"
// @Success 201 {object} rest.Tag
// @Failure 400,409,500 {object} map[string]string
// @Router /api/tags [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	tag, err := h.m.CreateTag(c.Request().Context(), req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewTag(*tag))
}

// UpdateTag handles PUT /api/tags/:id
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body rest.TagRequest true "Tag"
// @Success 200 {object} rest.Tag
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/tags/{id} [put]
func (h *Handler) UpdateTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	tag, err := h.m.UpdateTag(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// DeleteTag handles DELETE /api/tags/:id
// @Summary Delete tag
// @Description Fails while the tag is attached to a news article
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/tags/{id} [delete]
func (h *Handler) DeleteTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	if err := h.m.DeleteTag(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
