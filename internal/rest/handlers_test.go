package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	_ "github.com/daniilsolovey/news-management/docs"
	"github.com/daniilsolovey/news-management/internal/db/dbtest"
	"github.com/daniilsolovey/news-management/internal/metrics"
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := newsportal.NewManager(dbtest.New(), logger, newsportal.AuthConfig{
		Secret:   "test-secret",
		TokenTTL: time.Hour,
	})

	return NewHandler(m, logger).RegisterRoutes()
}

func do(t *testing.T, e *echo.Echo, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createCategory(t *testing.T, e *echo.Echo, req CategoryRequest) Category {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/categories", req, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[Category](t, rec)
}

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}

// login registers an account and returns its id and access token.
func login(t *testing.T, e *echo.Echo, email string) (int, string) {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/auth/register", RegisterRequest{
		Name: "Staff", Email: email, Password: "Staff123!", Role: intPtr(2),
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	account := decode[Account](t, rec)
	assert.Equal(t, "Staff", account.RoleName)

	rec = do(t, e, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: "Staff123!"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[LoginResponse](t, rec)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)

	return account.AccountID, res.AccessToken
}

func TestHandler_Health(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])

	rec = do(t, e, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "news_management_http_requests_total")

	rec = do(t, e, http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/categories")
}

func TestHandler_UnmatchedRoutesShareOneSeries(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/random/abc123", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	series := testutil.CollectAndCount(metrics.HTTPRequestsTotal)
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	hits := testutil.ToFloat64(unmatched)

	rec = do(t, e, http.MethodGet, "/random/def456", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, series, testutil.CollectAndCount(metrics.HTTPRequestsTotal))
	assert.Equal(t, hits+1, testutil.ToFloat64(unmatched))
}

func TestHandler_Categories(t *testing.T) {
	e := newTestServer(t)

	academic := createCategory(t, e, CategoryRequest{Name: "Academic"})
	assert.True(t, academic.IsActive)
	faculty := createCategory(t, e, CategoryRequest{Name: "Faculty News", ParentCategoryID: intPtr(academic.CategoryID)})
	createCategory(t, e, CategoryRequest{Name: "Sports", IsActive: boolPtr(false)})

	t.Run("ParentName", func(t *testing.T) {
		require.NotNil(t, faculty.ParentCategoryName)
		assert.Equal(t, "Academic", *faculty.ParentCategoryName)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/categories", CategoryRequest{Name: "ACADEMIC"}, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])
	})

	t.Run("MissingParent", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/categories", CategoryRequest{Name: "Orphan", ParentCategoryID: intPtr(99)}, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("EmptyName", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/categories", CategoryRequest{Name: "  "}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/categories", map[string]any{"categoryName": 5}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ListDefaults", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[Page[Category]](t, rec)
		assert.Equal(t, 3, page.TotalCount)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, 1, page.TotalPages)
		require.Len(t, page.Items, 3)
		assert.Equal(t, 1, page.Items[0].SubCategoriesCount)
	})

	t.Run("ListFiltered", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories?isActive=false", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[Page[Category]](t, rec)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Sports", page.Items[0].Name)

		rec = do(t, e, http.MethodGet, "/api/categories?includeSubCategories=false&sortBy=categoryName&isDescending=true", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page = decode[Page[Category]](t, rec)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Sports", page.Items[0].Name)
		assert.Equal(t, "Academic", page.Items[1].Name)
	})

	t.Run("Paging", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories?page=2&pageSize=2", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[Page[Category]](t, rec)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Sports", page.Items[0].Name)
	})

	t.Run("InvalidQuery", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories?page=abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ByID", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories/"+strconv.Itoa(academic.CategoryID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Academic", decode[Category](t, rec).Name)

		rec = do(t, e, http.MethodGet, "/api/categories/404", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, e, http.MethodGet, "/api/categories/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Subcategories", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/categories/"+strconv.Itoa(academic.CategoryID)+"/subcategories?recursive=true", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]Category](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, faculty.CategoryID, list[0].CategoryID)

		rec = do(t, e, http.MethodGet, "/api/categories/99/subcategories", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("HierarchyRejected", func(t *testing.T) {
		target := "/api/categories/" + strconv.Itoa(academic.CategoryID)

		rec := do(t, e, http.MethodPut, target, CategoryRequest{Name: "Academic", ParentCategoryID: intPtr(academic.CategoryID)}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, e, http.MethodPut, target, CategoryRequest{Name: "Academic", ParentCategoryID: intPtr(faculty.CategoryID)}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, e, http.MethodDelete, target, nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		target := "/api/categories/" + strconv.Itoa(faculty.CategoryID)

		rec := do(t, e, http.MethodPut, target, CategoryRequest{Name: "Faculty", Description: strPtr("staff news")}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[Category](t, rec)
		assert.Nil(t, updated.ParentCategoryID)
		assert.Equal(t, "Faculty", updated.Name)

		rec = do(t, e, http.MethodDelete, target, nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodDelete, target, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func strPtr(v string) *string {
	return &v
}

func TestHandler_NewsArticles(t *testing.T) {
	e := newTestServer(t)

	authorID, token := login(t, e, "staff@fu.edu.vn")
	academic := createCategory(t, e, CategoryRequest{Name: "Academic"})
	sports := createCategory(t, e, CategoryRequest{Name: "Sports", IsActive: boolPtr(false)})

	rec := do(t, e, http.MethodPost, "/api/tags", TagRequest{Name: "exam"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	exam := decode[Tag](t, rec)

	article := NewsArticleRequest{
		Title:      "Exam schedule",
		Content:    "Final exams start next week",
		CategoryID: academic.CategoryID,
		Status:     true,
		TagIDs:     []int{exam.TagID},
	}

	t.Run("Unauthorized", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/news-articles", article, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, e, http.MethodPost, "/api/news-articles", article, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InactiveCategory", func(t *testing.T) {
		inactive := article
		inactive.CategoryID = sports.CategoryID
		rec := do(t, e, http.MethodPost, "/api/news-articles", inactive, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	rec = do(t, e, http.MethodPost, "/api/news-articles", article, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[NewsArticle](t, rec)
	assert.Equal(t, authorID, created.CreatedByID)
	assert.Equal(t, "Staff", created.CreatedByName)
	assert.Equal(t, "Academic", created.CategoryName)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "exam", created.Tags[0].Name)

	target := "/api/news-articles/" + strconv.Itoa(created.NewsArticleID)

	t.Run("Update", func(t *testing.T) {
		update := article
		update.Title = "Exam schedule (updated)"
		update.TagIDs = nil

		rec := do(t, e, http.MethodPut, target, update, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[NewsArticle](t, rec)
		assert.Equal(t, "Exam schedule (updated)", updated.Title)
		require.NotNil(t, updated.UpdatedByID)
		assert.Equal(t, authorID, *updated.UpdatedByID)
		require.NotNil(t, updated.ModifiedDate)
		assert.Len(t, updated.Tags, 1)
	})

	t.Run("ListAndLookups", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/news-articles?search=EXAM&newsStatus=true", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decode[Page[NewsArticle]](t, rec).TotalCount)

		rec = do(t, e, http.MethodGet, "/api/news-articles?createdFrom=2000-01-01T00:00:00Z&createdTo=2001-01-01T00:00:00Z", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, decode[Page[NewsArticle]](t, rec).TotalCount)

		rec = do(t, e, http.MethodGet, "/api/news-articles/category/"+strconv.Itoa(academic.CategoryID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]NewsArticle](t, rec), 1)

		rec = do(t, e, http.MethodGet, "/api/news-articles/author/"+strconv.Itoa(authorID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]NewsArticle](t, rec), 1)

		rec = do(t, e, http.MethodGet, "/api/news-articles/404", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GuardsOnReferences", func(t *testing.T) {
		rec := do(t, e, http.MethodDelete, "/api/tags/"+strconv.Itoa(exam.TagID), nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, e, http.MethodDelete, "/api/categories/"+strconv.Itoa(academic.CategoryID), nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, e, http.MethodDelete, "/api/accounts/"+strconv.Itoa(authorID), nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Tags", func(t *testing.T) {
		rec := do(t, e, http.MethodDelete, target+"/tags/"+strconv.Itoa(exam.TagID), nil, "")
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = do(t, e, http.MethodDelete, target+"/tags/"+strconv.Itoa(exam.TagID), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, e, http.MethodPut, target+"/tags", NewsArticleTagsRequest{TagIDs: []int{99}}, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, e, http.MethodPut, target+"/tags", NewsArticleTagsRequest{TagIDs: []int{exam.TagID}}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, decode[NewsArticle](t, rec).Tags, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := do(t, e, http.MethodDelete, target, nil, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodDelete, "/api/tags/"+strconv.Itoa(exam.TagID), nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandler_Accounts(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/accounts", AccountRequest{
		Name: "Admin", Email: "admin@fu.edu.vn", Role: 1, Password: "Admin123!",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	admin := decode[Account](t, rec)
	assert.Equal(t, "Admin", admin.RoleName)

	t.Run("DuplicateEmail", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/auth/register", RegisterRequest{
			Name: "Other", Email: "ADMIN@fu.edu.vn", Password: "x",
		}, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/accounts", AccountRequest{
			Name: "Ghost", Email: "ghost@fu.edu.vn", Role: 9, Password: "x",
		}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/auth/login", LoginRequest{Email: "admin@fu.edu.vn", Password: "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, e, http.MethodPost, "/api/auth/login", LoginRequest{Email: "nobody@fu.edu.vn", Password: "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ListByRole", func(t *testing.T) {
		login(t, e, "staff@fu.edu.vn")

		rec := do(t, e, http.MethodGet, "/api/accounts?role=2", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[Page[Account]](t, rec)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "staff@fu.edu.vn", page.Items[0].Email)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		target := "/api/accounts/" + strconv.Itoa(admin.AccountID)

		rec := do(t, e, http.MethodPut, target, AccountRequest{Name: "Root", Email: "root@fu.edu.vn", Role: 1}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Root", decode[Account](t, rec).Name)

		rec = do(t, e, http.MethodPost, "/api/auth/login", LoginRequest{Email: "root@fu.edu.vn", Password: "Admin123!"}, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, e, http.MethodDelete, target, nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, e, http.MethodGet, target, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Tags(t *testing.T) {
	e := newTestServer(t)

	for _, name := range []string{"exam", "event", "deadline"} {
		rec := do(t, e, http.MethodPost, "/api/tags", TagRequest{Name: name}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, e, http.MethodPost, "/api/tags", TagRequest{Name: "Exam"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/tags?sortBy=tagName", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[Page[Tag]](t, rec)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []string{"deadline", "event", "exam"}, Map(page.Items, func(t Tag) string { return t.Name }))

	rec = do(t, e, http.MethodPut, "/api/tags/2", TagRequest{Name: "events", Note: strPtr("campus events")}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[Tag](t, rec)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "campus events", *updated.Note)

	rec = do(t, e, http.MethodGet, "/api/tags/2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "events", decode[Tag](t, rec).Name)
}

func TestHandler_Seed(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/system/seed", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, SeedResponse{Accounts: 5, Categories: 9, Tags: 10, NewsArticles: 5}, decode[SeedResponse](t, rec))

	rec = do(t, e, http.MethodPost, "/api/system/seed", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/auth/login", LoginRequest{Email: "admin@funews.edu.vn", Password: "Admin123!"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
