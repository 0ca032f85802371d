package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Accounts handles GET /api/accounts
// @Summary List accounts
// @Description Searches name and email, filters by role, sorts by name, email or role
// @Tags accounts
// @Produce json
// @Param search query string false "Search term"
// @Param role query int false "Filter by role (0 User, 1 Admin, 2 Staff, 3 Lecturer)"
// @Param sortBy query string false "name | email | role"
// @Param isDescending query bool false "Sort descending"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Page[rest.Account]
// @Failure 400,500 {object} map[string]string
// @Router /api/accounts [get]
func (h *Handler) Accounts(c echo.Context) error {
	var req AccountListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.m.Accounts(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPage(page, NewAccount))
}

// AccountByID handles GET /api/accounts/:id
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} rest.Account
// @Failure 400,404,500 {object} map[string]string
// @Router /api/accounts/{id} [get]
func (h *Handler) AccountByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	account, err := h.m.Account(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewAccount(*account))
}

// CreateAccount handles POST /api/accounts
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body rest.AccountRequest true "Account"
// @Success 201 {object} rest.Account
// @Failure 400,409,500 {object} map[string]string
// @Router /api/accounts [post]
func (h *Handler) CreateAccount(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	account, err := h.m.CreateAccount(c.Request().Context(), req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewAccount(*account))
}

// UpdateAccount handles PUT /api/accounts/:id
// @Summary Update account
// @Description Replaces name, email and role. The password is left unchanged
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body rest.AccountRequest true "Account"
// @Success 200 {object} rest.Account
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/accounts/{id} [put]
func (h *Handler) UpdateAccount(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	account, err := h.m.UpdateAccount(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewAccount(*account))
}

// DeleteAccount handles DELETE /api/accounts/:id
// @Summary Delete account
// @Description Fails when the account has created news articles
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/accounts/{id} [delete]
func (h *Handler) DeleteAccount(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.invalidID(c, "id")
	}

	if err := h.m.DeleteAccount(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
