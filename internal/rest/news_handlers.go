package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewsArticles handles GET /api/news-articles
// @Summary List news articles
// @Description Searches title, headline, content and source. Filters by status, category, author and created date range
// @Tags news
// @Produce json
// @Param search query string false "Search term"
// @Param newsStatus query bool false "Filter by status"
// @Param categoryId query int false "Filter by category ID"
// @Param createdById query int false "Filter by author ID"
// @Param createdFrom query string false "Created at or after (RFC 3339)"
// @Param createdTo query string false "Created at or before (RFC 3339)"
// @Param sortBy query string false "newsTitle | createdDate | modifiedDate | newsStatus | categoryId"
// @Param isDescending query bool false "Sort descending"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Page[rest.NewsArticle]
// @Failure 400,500 {object} map[string]string
// @Router /api/news-articles [get]
func (h *Handler) NewsArticles(c echo.Context) error {
	var req NewsArticleListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.m.NewsArticles(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPage(page, NewNewsArticle))
}

// NewsArticleByID handles GET /api/news-articles/:id
// @Summary Get news article by ID
// @Description Returns the article with category name, author names and tags
// @Tags news
// @Produce json
// @Param id path int true "News article ID"
// @Success 200 {object} rest.NewsArticle
// @Failure 400,404,500 {object} map[string]string
// @Router /api/news-articles/{id} [get]
func (h *Handler) NewsArticleByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	article, err := h.m.NewsArticle(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsArticle(*article))
}

// NewsArticlesByCategory handles GET /api/news-articles/category/:categoryId
// @Summary Get news articles by category
// @Description Newest first
// @Tags news
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} rest.NewsArticle
// @Failure 400,500 {object} map[string]string
// @Router /api/news-articles/category/{categoryId} [get]
func (h *Handler) NewsArticlesByCategory(c echo.Context) error {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return h.invalidID(c, "categoryId")
	}

	list, err := h.m.NewsArticlesByCategory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewNewsArticle))
}

// NewsArticlesByAuthor handles GET /api/news-articles/author/:authorId
// @Summary Get news articles by author
// @Description Newest first
// @Tags news
// @Produce json
// @Param authorId path int true "Account ID"
// @Success 200 {array} rest.NewsArticle
// @Failure 400,500 {object} map[string]string
// @Router /api/news-articles/author/{authorId} [get]
func (h *Handler) NewsArticlesByAuthor(c echo.Context) error {
	id, ok := pathID(c, "authorId")
	if !ok {
		return h.invalidID(c, "authorId")
	}

	list, err := h.m.NewsArticlesByAuthor(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewNewsArticle))
}

// CreateNewsArticle handles POST /api/news-articles
// @Summary Create news article
// @Description The authenticated account becomes the author. The category must exist and be active
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.NewsArticleRequest true "News article"
// @Success 201 {object} rest.NewsArticle
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/news-articles [post]
func (h *Handler) CreateNewsArticle(c echo.Context) error {
	authorID, _ := currentAccount(c)

	var req NewsArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.CreateNewsArticle(c.Request().Context(), authorID, req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewNewsArticle(*article))
}

// UpdateNewsArticle handles PUT /api/news-articles/:id
// @Summary Update news article
// @Description The authenticated account is recorded as the last editor. Omitted tagIds leave tags unchanged
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News article ID"
// @Param request body rest.NewsArticleRequest true "News article"
// @Success 200 {object} rest.NewsArticle
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/news-articles/{id} [put]
func (h *Handler) UpdateNewsArticle(c echo.Context) error {
	editorID, _ := currentAccount(c)

	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var req NewsArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.UpdateNewsArticle(c.Request().Context(), id, editorID, req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsArticle(*article))
}

// DeleteNewsArticle handles DELETE /api/news-articles/:id
// @Summary Delete news article
// @Tags news
// @Param id path int true "News article ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/news-articles/{id} [delete]
func (h *Handler) DeleteNewsArticle(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	if err := h.m.DeleteNewsArticle(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetNewsArticleTags handles PUT /api/news-articles/:id/tags
// @Summary Replace news article tags
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News article ID"
// @Param request body rest.NewsArticleTagsRequest true "Tag IDs"
// @Success 200 {object} rest.NewsArticle
// @Failure 400,404,500 {object} map[string]string
// @Router /api/news-articles/{id}/tags [put]
func (h *Handler) SetNewsArticleTags(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var req NewsArticleTagsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.SetNewsArticleTags(c.Request().Context(), id, req.TagIDs)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsArticle(*article))
}

// RemoveNewsArticleTag handles DELETE /api/news-articles/:id/tags/:tagId
// @Summary Detach a tag from a news article
// @Tags news
// @Param id path int true "News article ID"
// @Param tagId path int true "Tag ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/news-articles/{id}/tags/{tagId} [delete]
func (h *Handler) RemoveNewsArticleTag(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return h.invalidID(c, "tagId")
	}

	if err := h.m.RemoveNewsArticleTag(c.Request().Context(), id, tagID); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
