package rest

import (
	"net/http"

	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/labstack/echo/v4"
)

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Creates an account with a hashed password. Role defaults to User (0)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.RegisterRequest true "Registration"
// @Success 201 {object} rest.Account
// @Failure 400,409,500 {object} map[string]string
// @Router /api/auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	account, err := h.m.Register(c.Request().Context(), req.ToRegistration())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewAccount(*account))
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Checks credentials and returns a bearer access token and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res, err := h.m.Login(c.Request().Context(), newsportal.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewLoginResponse(*res))
}
