package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/daniilsolovey/news-management/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiPrefix = "/api"

	authPath        = apiPrefix + "/auth"
	accountsPath    = apiPrefix + "/accounts"
	categoriesPath  = apiPrefix + "/categories"
	tagsPath        = apiPrefix + "/tags"
	newsArticlePath = apiPrefix + "/news-articles"
	systemPath      = apiPrefix + "/system"

	// Service paths
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"

	accountIDKey = "accountId"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)
	e.Use(h.authMiddleware)

	h.registerAPIRoutes(e)

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.SwaggerDoc)

	return e
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	auth := e.Group(authPath)
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	accounts := e.Group(accountsPath)
	accounts.GET("", h.Accounts)
	accounts.POST("", h.CreateAccount)
	accounts.GET("/:id", h.AccountByID)
	accounts.PUT("/:id", h.UpdateAccount)
	accounts.DELETE("/:id", h.DeleteAccount)

	categories := e.Group(categoriesPath)
	categories.GET("", h.Categories)
	categories.POST("", h.CreateCategory)
	categories.GET("/:id", h.CategoryByID)
	categories.PUT("/:id", h.UpdateCategory)
	categories.DELETE("/:id", h.DeleteCategory)
	categories.GET("/:id/subcategories", h.Subcategories)

	tags := e.Group(tagsPath)
	tags.GET("", h.Tags)
	tags.POST("", h.CreateTag)
	tags.GET("/:id", h.TagByID)
	tags.PUT("/:id", h.UpdateTag)
	tags.DELETE("/:id", h.DeleteTag)

	news := e.Group(newsArticlePath)
	news.GET("", h.NewsArticles)
	news.POST("", h.CreateNewsArticle, h.requireAccount)
	news.GET("/category/:categoryId", h.NewsArticlesByCategory)
	news.GET("/author/:authorId", h.NewsArticlesByAuthor)
	news.GET("/:id", h.NewsArticleByID)
	news.PUT("/:id", h.UpdateNewsArticle, h.requireAccount)
	news.DELETE("/:id", h.DeleteNewsArticle)
	news.PUT("/:id/tags", h.SetNewsArticleTags)
	news.DELETE("/:id/tags/:tagId", h.RemoveNewsArticleTag)

	system := e.Group(systemPath)
	system.POST("/seed", h.Seed)
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerDoc serves the registered OpenAPI document.
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		metrics.RecordHTTPRequest(req.Method, route, status)
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}

// authMiddleware resolves a bearer token into the acting account id. Requests
// without a token pass through anonymously; an invalid token is rejected.
func (h *Handler) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return h.handleError(c, nil, http.StatusUnauthorized, "invalid authorization header")
		}

		id, err := h.m.ParseToken(strings.TrimSpace(token))
		if err != nil {
			return h.handleError(c, err, http.StatusUnauthorized, err.Error())
		}

		c.Set(accountIDKey, id)
		return next(c)
	}
}

func (h *Handler) requireAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := currentAccount(c); !ok {
			return h.handleError(c, nil, http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

func currentAccount(c echo.Context) (int, bool) {
	id, ok := c.Get(accountIDKey).(int)
	return id, ok
}
