package newsportal

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/metrics"
	"github.com/daniilsolovey/news-management/internal/query"
)

const (
	entityAccount     = "account"
	entityCategory    = "category"
	entityTag         = "tag"
	entityNewsArticle = "news article"
)

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type Manager struct {
	store  db.Store
	logger *slog.Logger
	auth   AuthConfig
	now    func() time.Time

	accounts   *query.Engine[Account]
	categories *query.Engine[Category]
	tags       *query.Engine[Tag]
	articles   *query.Engine[NewsArticle]
}

func NewManager(store db.Store, logger *slog.Logger, auth AuthConfig) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		auth:   auth,
		now:    time.Now,

		accounts: query.New(query.Config[Account]{
			ID: func(a Account) int { return a.ID },
			Search: []func(Account) string{
				func(a Account) string { return a.Name },
				func(a Account) string { return a.Email },
			},
			Sort: map[string]query.Compare[Account]{
				"name":  query.ByFold(func(a Account) string { return a.Name }),
				"email": query.ByFold(func(a Account) string { return a.Email }),
				"role":  query.By(func(a Account) int { return a.Role }),
			},
		}),

		categories: query.New(query.Config[Category]{
			ID: func(c Category) int { return c.ID },
			Search: []func(Category) string{
				func(c Category) string { return c.Name },
				func(c Category) string { return query.Deref(c.Description) },
			},
			Sort: map[string]query.Compare[Category]{
				"categoryName":     query.ByFold(func(c Category) string { return c.Name }),
				"isActive":         query.ByBool(func(c Category) bool { return c.IsActive }),
				"parentCategoryId": query.ByPtr(func(c Category) *int { return c.ParentID }),
			},
		}),

		tags: query.New(query.Config[Tag]{
			ID: func(t Tag) int { return t.ID },
			Search: []func(Tag) string{
				func(t Tag) string { return t.Name },
				func(t Tag) string { return query.Deref(t.Note) },
			},
			Sort: map[string]query.Compare[Tag]{
				"tagName":   query.ByFold(func(t Tag) string { return t.Name }),
				"newsCount": query.By(func(t Tag) int { return t.NewsArticlesCount }),
			},
		}),

		articles: query.New(query.Config[NewsArticle]{
			ID: func(n NewsArticle) int { return n.ID },
			Search: []func(NewsArticle) string{
				func(n NewsArticle) string { return n.Title },
				func(n NewsArticle) string { return query.Deref(n.Headline) },
				func(n NewsArticle) string { return n.Content },
				func(n NewsArticle) string { return query.Deref(n.Source) },
			},
			Sort: map[string]query.Compare[NewsArticle]{
				"newsTitle":    query.ByFold(func(n NewsArticle) string { return n.Title }),
				"createdDate":  query.ByTime(func(n NewsArticle) time.Time { return n.CreatedDate }),
				"modifiedDate": query.ByTimePtr(func(n NewsArticle) *time.Time { return n.ModifiedDate }),
				"newsStatus":   query.ByBool(func(n NewsArticle) bool { return n.Status }),
				"categoryId":   query.By(func(n NewsArticle) int { return n.CategoryID }),
			},
		}),
	}
}

// snapshot reads every table inside one transaction so that listings and
// their enrichment agree with each other.
func (m *Manager) snapshot(ctx context.Context) (*snapshot, error) {
	var snap *snapshot
	err := m.store.RunInTransaction(ctx, func(s db.Store) error {
		var err error
		snap, err = loadSnapshot(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// mutate runs fn inside one serializable transaction over a fresh snapshot.
// fn may run more than once.
func (m *Manager) mutate(ctx context.Context, fn func(s db.Store, snap *snapshot) error) error {
	return m.store.RunInTransaction(ctx, func(s db.Store) error {
		snap, err := loadSnapshot(ctx, s)
		if err != nil {
			return err
		}
		return fn(s, snap)
	})
}

// done logs and records the outcome of a mutation.
func (m *Manager) done(entity, operation string, id int, err error) {
	metrics.RecordOperation(entity, operation, err)

	var ge *guard.Error
	switch {
	case err == nil:
		m.logger.Info(entity+" "+operation+" succeeded", "id", id)
	case errors.As(err, &ge):
		m.logger.Warn(entity+" "+operation+" rejected", "id", id, "reason", ge.Reason, "error", err)
	default:
		m.logger.Error(entity+" "+operation+" failed", "id", id, "error", err)
	}
}

func (m *Manager) observe(entity string, start time.Time) {
	metrics.RecordQueryDuration(entity, time.Since(start).Seconds())
}

func listing[T any](p Paging, filters ...query.Filter[T]) query.Request[T] {
	return query.Request[T]{
		Search:     p.Search,
		Filters:    filters,
		SortBy:     p.SortBy,
		Descending: p.Descending,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

func notFound(entity string, id int) error {
	return guard.NotFound(entity, guard.ReasonMissing, "%s with ID %d not found", capitalize(entity), id)
}

func required(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return guard.InvalidOperation(entity, guard.ReasonInvalid, "%s is required", field)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func uniqueInts(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
