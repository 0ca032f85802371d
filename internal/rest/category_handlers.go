package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/categories
// @Summary List categories
// @Description Searches name and description. includeSubCategories=false without parentCategoryId lists root categories only
// @Tags categories
// @Produce json
// @Param search query string false "Search term"
// @Param isActive query bool false "Filter by active flag"
// @Param parentCategoryId query int false "Filter by parent category"
// @Param includeSubCategories query bool false "Include subcategories (default: true)"
// @Param sortBy query string false "categoryName | isActive | parentCategoryId"
// @Param isDescending query bool false "Sort descending"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Page[rest.Category]
// @Failure 400,500 {object} map[string]string
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	var req CategoryListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.m.Categories(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPage(page, NewCategory))
}

// CategoryByID handles GET /api/categories/:id
// @Summary Get category by ID
// @Description Returns the category with its parent name, subcategory count and article count
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	category, err := h.m.Category(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// Subcategories handles GET /api/categories/:id/subcategories
// @Summary Get subcategories
// @Description Returns direct children, or all descendants breadth-first when recursive=true
// @Tags categories
// @Produce json
// @Param id path int true "Parent category ID"
// @Param recursive query bool false "Include every descendant"
// @Success 200 {array} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/categories/{id}/subcategories [get]
func (h *Handler) Subcategories(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var recursive bool
	if v := c.QueryParam("recursive"); v != "" {
		var err error
		if recursive, err = strconv.ParseBool(v); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid recursive flag")
		}
	}

	list, err := h.m.Subcategories(c.Request().Context(), id, recursive)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewCategory))
}

// CreateCategory handles POST /api/categories
// @Summary Create category
// @Description Name must be unique (case-insensitive); the parent must exist
// @Tags categories
// @Accept json
// @Produce json
// @Param request body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.CreateCategory(c.Request().Context(), req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Update category
// @Description Rejects a self parent or a parent that would create a cycle
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body rest.CategoryRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.UpdateCategory(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete category
// @Description Fails when the category has subcategories or news articles
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	if err := h.m.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
