package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	m   *newsportal.Manager
	log *slog.Logger
}

func NewHandler(m *newsportal.Manager, log *slog.Logger) *Handler {
	return &Handler{
		m:   m,
		log: log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}
	return c.JSON(statusCode, map[string]string{"error": message})
}

// fail maps a manager error to its HTTP status.
func (h *Handler) fail(c echo.Context, err error) error {
	var ge *guard.Error
	switch {
	case errors.As(err, &ge):
		return h.handleError(c, err, statusOf(ge.Kind), ge.Error())
	case errors.Is(err, newsportal.ErrInvalidCredentials), errors.Is(err, newsportal.ErrInvalidToken):
		return h.handleError(c, err, http.StatusUnauthorized, err.Error())
	}
	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func statusOf(k guard.Kind) int {
	switch k {
	case guard.KindNotFound:
		return http.StatusNotFound
	case guard.KindConflict:
		return http.StatusConflict
	case guard.KindInvalidOperation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) invalidID(c echo.Context, name string) error {
	return h.handleError(c, nil, http.StatusBadRequest, "invalid "+name)
}
