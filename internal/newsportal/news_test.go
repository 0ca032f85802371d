package newsportal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/db/dbtest"
	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *dbtest.Store) {
	t.Helper()

	store := dbtest.New()
	m := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)), AuthConfig{
		Secret:   "test-secret",
		TokenTTL: 30 * time.Minute,
	})
	m.now = func() time.Time { return baseTime }

	return m, store
}

// fixture seeds: account 1 (admin), categories Academic(1) and
// Curriculum(2, parent 1), Sports(3, inactive), tags exam(1) and event(2).
func fixture(t *testing.T) (*Manager, *dbtest.Store) {
	t.Helper()
	ctx := context.Background()
	m, store := newTestManager(t)

	_, err := m.CreateAccount(ctx, AccountInput{Name: "Admin", Email: "admin@fu.edu.vn", Role: RoleAdmin, Password: "secret"})
	require.NoError(t, err)

	_, err = m.CreateCategory(ctx, CategoryInput{Name: "Academic", IsActive: true})
	require.NoError(t, err)
	_, err = m.CreateCategory(ctx, CategoryInput{Name: "Curriculum", ParentID: intPtr(1), IsActive: true})
	require.NoError(t, err)
	_, err = m.CreateCategory(ctx, CategoryInput{Name: "Sports", IsActive: false})
	require.NoError(t, err)

	_, err = m.CreateTag(ctx, TagInput{Name: "exam"})
	require.NoError(t, err)
	_, err = m.CreateTag(ctx, TagInput{Name: "event"})
	require.NoError(t, err)

	return m, store
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func requireGuard(t *testing.T, err error, sentinel error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, reason, guard.ReasonOf(err))
}

func TestManager_CategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	academic, err := m.CreateCategory(ctx, CategoryInput{Name: "Academic", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, 1, academic.ID)

	curriculum, err := m.CreateCategory(ctx, CategoryInput{Name: "Curriculum", ParentID: intPtr(1), IsActive: true})
	require.NoError(t, err)
	require.Equal(t, 2, curriculum.ID)
	require.NotNil(t, curriculum.ParentName)
	assert.Equal(t, "Academic", *curriculum.ParentName)

	_, err = m.UpdateCategory(ctx, 1, CategoryInput{Name: "Academic", ParentID: intPtr(2), IsActive: true})
	requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonCycle)

	err = m.DeleteCategory(ctx, 1)
	requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonHasChildren)

	require.NoError(t, m.DeleteCategory(ctx, 2))
	require.NoError(t, m.DeleteCategory(ctx, 1))

	page, err := m.Categories(ctx, CategoryQuery{Paging: Paging{Page: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestManager_CreateCategory(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	t.Run("DuplicateNameIgnoresCase", func(t *testing.T) {
		_, err := m.CreateCategory(ctx, CategoryInput{Name: "sports", IsActive: true})
		requireGuard(t, err, guard.ErrConflict, guard.ReasonDuplicate)
	})

	t.Run("MissingParent", func(t *testing.T) {
		_, err := m.CreateCategory(ctx, CategoryInput{Name: "Orphan", ParentID: intPtr(42)})
		requireGuard(t, err, guard.ErrNotFound, guard.ReasonParent)
	})

	t.Run("BlankName", func(t *testing.T) {
		_, err := m.CreateCategory(ctx, CategoryInput{Name: "  "})
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonInvalid)
	})
}

func TestManager_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	t.Run("SelfParent", func(t *testing.T) {
		_, err := m.UpdateCategory(ctx, 1, CategoryInput{Name: "Academic", ParentID: intPtr(1)})
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonSelfParent)
	})

	t.Run("KeepsOwnNameUnderDifferentCase", func(t *testing.T) {
		c, err := m.UpdateCategory(ctx, 3, CategoryInput{Name: "SPORTS", IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, "SPORTS", c.Name)
		assert.True(t, c.IsActive)
	})

	t.Run("TakesNameOfAnother", func(t *testing.T) {
		_, err := m.UpdateCategory(ctx, 3, CategoryInput{Name: "academic"})
		requireGuard(t, err, guard.ErrConflict, guard.ReasonDuplicate)
	})

	t.Run("MoveToRoot", func(t *testing.T) {
		c, err := m.UpdateCategory(ctx, 2, CategoryInput{Name: "Curriculum", IsActive: true})
		require.NoError(t, err)
		assert.Nil(t, c.ParentID)
		assert.Nil(t, c.ParentName)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := m.UpdateCategory(ctx, 99, CategoryInput{Name: "Ghost"})
		requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	})
}

func TestManager_DeleteCategory_WithArticles(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	_, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{Title: "Midterms", Content: "Schedule", CategoryID: 2})
	require.NoError(t, err)

	err = m.DeleteCategory(ctx, 2)
	requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonHasArticles)

	c, err := m.Category(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, c.NewsArticlesCount)
}

func TestManager_Categories_Filters(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	tests := []struct {
		name  string
		query CategoryQuery
		want  []int
	}{
		{name: "All", query: CategoryQuery{}, want: []int{1, 2, 3}},
		{name: "RootsOnly", query: CategoryQuery{IncludeSubCategories: boolPtr(false)}, want: []int{1, 3}},
		{name: "ByParent", query: CategoryQuery{ParentID: intPtr(1), IncludeSubCategories: boolPtr(false)}, want: []int{2}},
		{name: "Active", query: CategoryQuery{IsActive: boolPtr(true)}, want: []int{1, 2}},
		{name: "Search", query: CategoryQuery{Paging: Paging{Search: "ACAD"}}, want: []int{1}},
		{name: "SortByNameDesc", query: CategoryQuery{Paging: Paging{SortBy: "CategoryName", Descending: true}}, want: []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Page, tt.query.PageSize = 1, 10
			page, err := m.Categories(ctx, tt.query)
			require.NoError(t, err)

			got := make([]int, len(page.Items))
			for i, c := range page.Items {
				got[i] = c.ID
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestManager_Subcategories(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	_, err := m.CreateCategory(ctx, CategoryInput{Name: "Syllabus", ParentID: intPtr(2), IsActive: true})
	require.NoError(t, err)

	direct, err := m.Subcategories(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, direct, 1)
	assert.Equal(t, 2, direct[0].ID)
	assert.Equal(t, 1, direct[0].SubCategoriesCount)

	all, err := m.Subcategories(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int{2, 4}, []int{all[0].ID, all[1].ID})

	_, err = m.Subcategories(ctx, 99, false)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
}

func TestManager_Tags(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := m.CreateTag(ctx, TagInput{Name: " EXAM "})
		requireGuard(t, err, guard.ErrConflict, guard.ReasonDuplicate)
	})

	t.Run("UpdateKeepsOwnName", func(t *testing.T) {
		tag, err := m.UpdateTag(ctx, 1, TagInput{Name: "Exam", Note: strPtr("Examination related")})
		require.NoError(t, err)
		assert.Equal(t, "Exam", tag.Name)
		require.NotNil(t, tag.Note)
	})

	t.Run("DeleteInUse", func(t *testing.T) {
		_, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{Title: "Finals", Content: "Soon", CategoryID: 1, TagIDs: []int{2}})
		require.NoError(t, err)

		err = m.DeleteTag(ctx, 2)
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonInUse)
	})

	t.Run("SortByNewsCount", func(t *testing.T) {
		page, err := m.Tags(ctx, TagQuery{Paging: Paging{SortBy: "newscount", Descending: true, Page: 1, PageSize: 10}})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, 2, page.Items[0].ID)
		assert.Equal(t, 1, page.Items[0].NewsArticlesCount)
	})

	t.Run("DeleteUnused", func(t *testing.T) {
		require.NoError(t, m.DeleteTag(ctx, 1))
		_, err := m.Tag(ctx, 1)
		requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	})
}

func TestManager_CreateNewsArticle(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	t.Run("Success", func(t *testing.T) {
		n, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{
			Title:      "Registration opens",
			Headline:   strPtr("Register now"),
			Content:    "The portal is open.",
			CategoryID: 2,
			Status:     true,
			TagIDs:     []int{2, 1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, "Curriculum", n.CategoryName)
		assert.Equal(t, "Admin", n.CreatedByName)
		assert.Equal(t, baseTime, n.CreatedDate)
		assert.Nil(t, n.ModifiedDate)
		assert.Equal(t, []int{1, 2}, n.TagIDs())
	})

	tests := []struct {
		name     string
		author   int
		in       NewsArticleInput
		sentinel error
		reason   string
	}{
		{"InactiveCategory", 1, NewsArticleInput{Title: "Match", Content: "Won", CategoryID: 3}, guard.ErrInvalidOperation, guard.ReasonInactive},
		{"MissingCategory", 1, NewsArticleInput{Title: "Match", Content: "Won", CategoryID: 9}, guard.ErrNotFound, guard.ReasonMissing},
		{"MissingAuthor", 7, NewsArticleInput{Title: "Match", Content: "Won", CategoryID: 1}, guard.ErrNotFound, guard.ReasonMissing},
		{"MissingTag", 1, NewsArticleInput{Title: "Match", Content: "Won", CategoryID: 1, TagIDs: []int{5}}, guard.ErrNotFound, guard.ReasonMissing},
		{"BlankTitle", 1, NewsArticleInput{Content: "Won", CategoryID: 1}, guard.ErrInvalidOperation, guard.ReasonInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.CreateNewsArticle(ctx, tt.author, tt.in)
			requireGuard(t, err, tt.sentinel, tt.reason)
		})
	}
}

func TestManager_UpdateNewsArticle(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	editor, err := m.CreateAccount(ctx, AccountInput{Name: "Editor", Email: "editor@fu.edu.vn", Role: RoleStaff, Password: "pw"})
	require.NoError(t, err)

	n, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{Title: "Draft", Content: "Body", CategoryID: 1, TagIDs: []int{1}})
	require.NoError(t, err)

	m.now = func() time.Time { return baseTime.Add(time.Hour) }

	t.Run("KeepsTagsWhenNil", func(t *testing.T) {
		updated, err := m.UpdateNewsArticle(ctx, n.ID, editor.ID, NewsArticleInput{Title: "Final", Content: "Body", CategoryID: 2, Status: true})
		require.NoError(t, err)
		assert.Equal(t, "Final", updated.Title)
		assert.Equal(t, "Curriculum", updated.CategoryName)
		require.NotNil(t, updated.UpdatedByName)
		assert.Equal(t, "Editor", *updated.UpdatedByName)
		require.NotNil(t, updated.ModifiedDate)
		assert.Equal(t, baseTime.Add(time.Hour), *updated.ModifiedDate)
		assert.Equal(t, baseTime, updated.CreatedDate)
		assert.Equal(t, []int{1}, updated.TagIDs())
	})

	t.Run("ReplacesTags", func(t *testing.T) {
		updated, err := m.UpdateNewsArticle(ctx, n.ID, editor.ID, NewsArticleInput{Title: "Final", Content: "Body", CategoryID: 2, TagIDs: []int{}})
		require.NoError(t, err)
		assert.Empty(t, updated.Tags)
	})

	t.Run("InactiveCategory", func(t *testing.T) {
		_, err := m.UpdateNewsArticle(ctx, n.ID, editor.ID, NewsArticleInput{Title: "Final", Content: "Body", CategoryID: 3})
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonInactive)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := m.UpdateNewsArticle(ctx, 99, editor.ID, NewsArticleInput{Title: "Final", Content: "Body", CategoryID: 1})
		requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	})
}

func TestManager_NewsArticleTags(t *testing.T) {
	ctx := context.Background()
	m, store := fixture(t)

	n, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{Title: "Exam week", Content: "Body", CategoryID: 1})
	require.NoError(t, err)
	assert.Empty(t, n.Tags)

	n, err = m.SetNewsArticleTags(ctx, n.ID, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, n.TagIDs())

	_, err = m.SetNewsArticleTags(ctx, n.ID, []int{1, 8})
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)

	require.NoError(t, m.RemoveNewsArticleTag(ctx, n.ID, 1))
	err = m.RemoveNewsArticleTag(ctx, n.ID, 1)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)

	require.NoError(t, m.DeleteNewsArticle(ctx, n.ID))
	joins, err := store.NewsTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, joins)

	err = m.DeleteNewsArticle(ctx, n.ID)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
}

func TestManager_NewsArticles_Query(t *testing.T) {
	ctx := context.Background()
	m, _ := fixture(t)

	for i, in := range []NewsArticleInput{
		{Title: "Alpha exam", Content: "first", CategoryID: 1, Status: true},
		{Title: "Beta", Content: "second exam", CategoryID: 2, Status: false},
		{Title: "Gamma", Content: "third", Source: strPtr("Exam office"), CategoryID: 2, Status: true},
	} {
		created := baseTime.Add(time.Duration(i) * time.Hour)
		m.now = func() time.Time { return created }
		_, err := m.CreateNewsArticle(ctx, 1, in)
		require.NoError(t, err)
	}

	t.Run("SearchAcrossFields", func(t *testing.T) {
		page, err := m.NewsArticles(ctx, NewsArticleQuery{Paging: Paging{Search: "exam", Page: 1, PageSize: 10}})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("StatusAndCategory", func(t *testing.T) {
		page, err := m.NewsArticles(ctx, NewsArticleQuery{
			Paging:     Paging{Page: 1, PageSize: 10},
			Status:     boolPtr(true),
			CategoryID: intPtr(2),
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Gamma", page.Items[0].Title)
	})

	t.Run("CreatedRangeInclusive", func(t *testing.T) {
		from, to := baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)
		page, err := m.NewsArticles(ctx, NewsArticleQuery{
			Paging:      Paging{SortBy: "createdDate", Descending: true, Page: 1, PageSize: 10},
			CreatedFrom: &from,
			CreatedTo:   &to,
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, []string{"Gamma", "Beta"}, []string{page.Items[0].Title, page.Items[1].Title})
	})

	t.Run("Paging", func(t *testing.T) {
		page, err := m.NewsArticles(ctx, NewsArticleQuery{Paging: Paging{Page: 2, PageSize: 2}})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.Items[0].ID)
	})

	t.Run("ByCategoryNewestFirst", func(t *testing.T) {
		list, err := m.NewsArticlesByCategory(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, list.IDs())
	})

	t.Run("ByAuthor", func(t *testing.T) {
		list, err := m.NewsArticlesByAuthor(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, list.IDs())

		list, err = m.NewsArticlesByAuthor(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestManager_Accounts(t *testing.T) {
	ctx := context.Background()
	m, store := fixture(t)

	t.Run("PasswordIsHashed", func(t *testing.T) {
		row, err := store.AccountByID(ctx, 1)
		require.NoError(t, err)
		assert.NotEqual(t, "secret", row.Password)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := m.CreateAccount(ctx, AccountInput{Name: "Other", Email: "ADMIN@fu.edu.vn", Password: "x"})
		requireGuard(t, err, guard.ErrConflict, guard.ReasonDuplicate)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := m.CreateAccount(ctx, AccountInput{Name: "Other", Email: "other@fu.edu.vn", Role: Role(7), Password: "x"})
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonInvalid)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, err := m.CreateAccount(ctx, AccountInput{Name: "Other", Email: "not-an-email", Password: "x"})
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonInvalid)
	})

	t.Run("UpdateKeepsPassword", func(t *testing.T) {
		before, err := store.AccountByID(ctx, 1)
		require.NoError(t, err)

		a, err := m.UpdateAccount(ctx, 1, AccountInput{Name: "Root", Email: "admin@fu.edu.vn", Role: RoleStaff})
		require.NoError(t, err)
		assert.Equal(t, RoleStaff, a.AccountRole())

		after, err := store.AccountByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, before.Password, after.Password)
	})

	t.Run("FilterByRole", func(t *testing.T) {
		_, err := m.CreateAccount(ctx, AccountInput{Name: "Lecturer", Email: "lecturer@fu.edu.vn", Role: RoleLecturer, Password: "x"})
		require.NoError(t, err)

		role := RoleLecturer
		page, err := m.Accounts(ctx, AccountQuery{Paging: Paging{Page: 1, PageSize: 10}, Role: &role})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Lecturer", page.Items[0].Name)
	})

	t.Run("DeleteAuthorRejected", func(t *testing.T) {
		_, err := m.CreateNewsArticle(ctx, 1, NewsArticleInput{Title: "Note", Content: "Body", CategoryID: 1})
		require.NoError(t, err)

		err = m.DeleteAccount(ctx, 1)
		requireGuard(t, err, guard.ErrInvalidOperation, guard.ReasonHasArticles)
	})

	t.Run("DeleteClearsEditor", func(t *testing.T) {
		editor, err := m.CreateAccount(ctx, AccountInput{Name: "Editor", Email: "editor@fu.edu.vn", Role: RoleStaff, Password: "x"})
		require.NoError(t, err)

		_, err = m.UpdateNewsArticle(ctx, 1, editor.ID, NewsArticleInput{Title: "Note", Content: "Edited", CategoryID: 1})
		require.NoError(t, err)

		require.NoError(t, m.DeleteAccount(ctx, editor.ID))

		n, err := m.NewsArticle(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, n.UpdatedByID)
		assert.Nil(t, n.UpdatedByName)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := m.Account(ctx, 99)
		requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	})
}

func TestManager_Auth(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	registered, err := m.Register(ctx, Registration{Name: "Student", Email: "student@fu.edu.vn", Password: "P@ssw0rd"})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, registered.AccountRole())

	t.Run("LoginIssuesTokens", func(t *testing.T) {
		res, err := m.Login(ctx, Credentials{Email: "STUDENT@fu.edu.vn", Password: "P@ssw0rd"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Len(t, res.RefreshToken, 36)
		assert.Equal(t, baseTime.Add(30*time.Minute), res.ExpiresAt)

		id, err := m.ParseToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, id)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := m.Login(ctx, Credentials{Email: "student@fu.edu.vn", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := m.Login(ctx, Credentials{Email: "ghost@fu.edu.vn", Password: "P@ssw0rd"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		res, err := m.Login(ctx, Credentials{Email: "student@fu.edu.vn", Password: "P@ssw0rd"})
		require.NoError(t, err)

		m.now = func() time.Time { return baseTime.Add(time.Hour) }
		t.Cleanup(func() { m.now = func() time.Time { return baseTime } })

		_, err = m.ParseToken(res.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ForeignToken", func(t *testing.T) {
		_, err := m.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_Seed(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	res, err := m.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Accounts: 5, Categories: 9, Tags: 10, NewsArticles: 5}, res)

	subs, err := m.Subcategories(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Curriculum Updates", subs[0].Name)

	page, err := m.NewsArticles(ctx, NewsArticleQuery{Paging: Paging{Page: 1, PageSize: 10}})
	require.NoError(t, err)
	require.Equal(t, 5, page.Total)
	assert.Len(t, page.Items[0].Tags, 2)

	_, err = m.Login(ctx, Credentials{Email: "admin@funews.edu.vn", Password: "Admin123!"})
	require.NoError(t, err)

	_, err = m.Seed(ctx)
	assert.ErrorIs(t, err, guard.ErrConflict)
}

func TestManager_StoreFailure(t *testing.T) {
	ctx := context.Background()
	m, store := fixture(t)

	errBoom := errors.New("connection refused")
	store.Err = errBoom

	_, err := m.Categories(ctx, CategoryQuery{})
	assert.ErrorIs(t, err, errBoom)

	err = m.DeleteTag(ctx, 1)
	assert.ErrorIs(t, err, errBoom)

	store.Err = nil
	_, err = m.Tag(ctx, 1)
	require.NoError(t, err)
}

func TestManager_MutationRollsBack(t *testing.T) {
	ctx := context.Background()
	m, store := fixture(t)

	// A failing write inside the transaction must leave no trace.
	err := store.RunInTransaction(ctx, func(s db.Store) error {
		if err := s.CreateTag(ctx, &db.Tag{Name: "transient"}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	page, err := m.Tags(ctx, TagQuery{Paging: Paging{Search: "transient", Page: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

// txCountingStore counts transactions opened on the wrapped store.
type txCountingStore struct {
	*dbtest.Store
	txs int
}

func (s *txCountingStore) RunInTransaction(ctx context.Context, fn func(db.Store) error) error {
	s.txs++
	return s.Store.RunInTransaction(ctx, fn)
}

func TestManager_ListingsReadInOneTransaction(t *testing.T) {
	ctx := context.Background()
	_, mem := fixture(t)

	store := &txCountingStore{Store: mem}
	m := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)), AuthConfig{Secret: "test-secret", TokenTTL: time.Minute})

	_, err := m.Categories(ctx, CategoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, store.txs)

	c, err := m.Category(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, c.ParentName)
	assert.Equal(t, "Academic", *c.ParentName)
	assert.Equal(t, 2, store.txs)
}

func TestManager_LookupMissingSkipsSnapshot(t *testing.T) {
	ctx := context.Background()
	_, mem := fixture(t)

	store := &txCountingStore{Store: mem}
	m := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)), AuthConfig{Secret: "test-secret", TokenTTL: time.Minute})

	_, err := m.Category(ctx, 999)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	_, err = m.Tag(ctx, 999)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)
	_, err = m.NewsArticle(ctx, 999)
	requireGuard(t, err, guard.ErrNotFound, guard.ReasonMissing)

	assert.Zero(t, store.txs)
}
