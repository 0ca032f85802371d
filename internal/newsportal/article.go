package newsportal

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/query"
)

// NewsArticles lists articles with search, filters, sorting and paging.
func (m *Manager) NewsArticles(ctx context.Context, q NewsArticleQuery) (query.Page[NewsArticle], error) {
	defer m.observe(entityNewsArticle, time.Now())

	snap, err := m.snapshot(ctx)
	if err != nil {
		return query.Page[NewsArticle]{}, fmt.Errorf("failed to query news articles: %w", err)
	}

	var filters []query.Filter[NewsArticle]
	if q.Status != nil {
		filters = append(filters, query.Eq(func(n NewsArticle) bool { return n.Status }, *q.Status))
	}
	if q.CategoryID != nil {
		filters = append(filters, query.Eq(func(n NewsArticle) int { return n.CategoryID }, *q.CategoryID))
	}
	if q.CreatedByID != nil {
		filters = append(filters, query.Eq(func(n NewsArticle) int { return n.CreatedByID }, *q.CreatedByID))
	}
	if q.CreatedFrom != nil || q.CreatedTo != nil {
		filters = append(filters, query.Between(func(n NewsArticle) time.Time { return n.CreatedDate }, q.CreatedFrom, q.CreatedTo))
	}

	page := m.articles.Query(slices.Values(snap.NewsArticles()), listing(q.Paging, filters...))
	m.logger.Debug("news articles queried", "search", q.Search, "total", page.Total, "page", page.Page)

	return page, nil
}

func (m *Manager) NewsArticle(ctx context.Context, id int) (*NewsArticle, error) {
	row, err := m.store.NewsArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get news article: %w", err)
	} else if row == nil {
		return nil, notFound(entityNewsArticle, id)
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get news article: %w", err)
	}

	for _, n := range snap.NewsArticles() {
		if n.ID == id {
			return &n, nil
		}
	}

	return nil, notFound(entityNewsArticle, id)
}

// NewsArticlesByCategory returns the articles of a category, newest first.
func (m *Manager) NewsArticlesByCategory(ctx context.Context, categoryID int) (NewsArticles, error) {
	return m.newsArticlesWhere(ctx, func(n NewsArticle) bool { return n.CategoryID == categoryID })
}

// NewsArticlesByAuthor returns the articles created by an account, newest first.
func (m *Manager) NewsArticlesByAuthor(ctx context.Context, accountID int) (NewsArticles, error) {
	return m.newsArticlesWhere(ctx, func(n NewsArticle) bool { return n.CreatedByID == accountID })
}

func (m *Manager) newsArticlesWhere(ctx context.Context, match func(NewsArticle) bool) (NewsArticles, error) {
	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get news articles: %w", err)
	}

	list := NewsArticles{}
	for _, n := range snap.NewsArticles() {
		if match(n) {
			list = append(list, n)
		}
	}

	slices.SortStableFunc(list, func(a, b NewsArticle) int {
		if c := b.CreatedDate.Compare(a.CreatedDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return list, nil
}

// CreateNewsArticle stores a new article written by authorID.
func (m *Manager) CreateNewsArticle(ctx context.Context, authorID int, in NewsArticleInput) (n *NewsArticle, err error) {
	m.logger.Info("creating news article", "title", in.Title, "categoryId", in.CategoryID, "authorId", authorID)
	defer func() { m.done(entityNewsArticle, "create", articleID(n), err) }()

	if err = validateArticle(in); err != nil {
		return nil, err
	}

	var row db.NewsArticle
	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if err := checkArticleRefs(snap, authorID, in); err != nil {
			return err
		}

		row = db.NewsArticle{
			Title:       strings.TrimSpace(in.Title),
			Headline:    in.Headline,
			CreatedDate: m.now().UTC(),
			Content:     in.Content,
			Source:      in.Source,
			CategoryID:  in.CategoryID,
			Status:      in.Status,
			CreatedByID: authorID,
		}
		if err := s.CreateNewsArticle(ctx, &row); err != nil {
			return err
		}

		if len(in.TagIDs) == 0 {
			return nil
		}
		return s.SetNewsTags(ctx, row.ID, uniqueInts(in.TagIDs))
	})
	if err != nil {
		return nil, err
	}

	return m.NewsArticle(ctx, row.ID)
}

// UpdateNewsArticle replaces the article content and records editorID as
// its last editor.
func (m *Manager) UpdateNewsArticle(ctx context.Context, id, editorID int, in NewsArticleInput) (n *NewsArticle, err error) {
	m.logger.Info("updating news article", "id", id, "categoryId", in.CategoryID, "editorId", editorID)
	defer func() { m.done(entityNewsArticle, "update", id, err) }()

	if err = validateArticle(in); err != nil {
		return nil, err
	}

	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		current := snap.article(id)
		if current == nil {
			return notFound(entityNewsArticle, id)
		}
		if err := checkArticleRefs(snap, editorID, in); err != nil {
			return err
		}

		modified := m.now().UTC()
		row := *current
		row.Title = strings.TrimSpace(in.Title)
		row.Headline = in.Headline
		row.Content = in.Content
		row.Source = in.Source
		row.CategoryID = in.CategoryID
		row.Status = in.Status
		row.UpdatedByID = &editorID
		row.ModifiedDate = &modified
		if err := s.UpdateNewsArticle(ctx, &row); err != nil {
			return err
		}

		if in.TagIDs == nil {
			return nil
		}
		return s.SetNewsTags(ctx, id, uniqueInts(in.TagIDs))
	})
	if err != nil {
		return nil, err
	}

	return m.NewsArticle(ctx, id)
}

// DeleteNewsArticle removes an article together with its tag associations.
func (m *Manager) DeleteNewsArticle(ctx context.Context, id int) (err error) {
	m.logger.Info("deleting news article", "id", id)
	defer func() { m.done(entityNewsArticle, "delete", id, err) }()

	return m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.article(id) == nil {
			return notFound(entityNewsArticle, id)
		}
		return s.DeleteNewsArticle(ctx, id)
	})
}

// SetNewsArticleTags replaces the tags of an article.
func (m *Manager) SetNewsArticleTags(ctx context.Context, id int, tagIDs []int) (n *NewsArticle, err error) {
	m.logger.Info("setting news article tags", "id", id, "tagIds", tagIDs)
	defer func() { m.done(entityNewsArticle, "set_tags", id, err) }()

	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.article(id) == nil {
			return notFound(entityNewsArticle, id)
		}
		if err := checkTags(snap, tagIDs); err != nil {
			return err
		}
		return s.SetNewsTags(ctx, id, uniqueInts(tagIDs))
	})
	if err != nil {
		return nil, err
	}

	return m.NewsArticle(ctx, id)
}

// RemoveNewsArticleTag detaches one tag from an article.
func (m *Manager) RemoveNewsArticleTag(ctx context.Context, id, tagID int) (err error) {
	m.logger.Info("removing news article tag", "id", id, "tagId", tagID)
	defer func() { m.done(entityNewsArticle, "remove_tag", id, err) }()

	return m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.article(id) == nil {
			return notFound(entityNewsArticle, id)
		}
		for _, j := range snap.newsTags {
			if j.NewsArticleID == id && j.TagID == tagID {
				return s.DeleteNewsTag(ctx, id, tagID)
			}
		}
		return guard.NotFound(entityTag, guard.ReasonMissing, "Tag with ID %d is not attached to news article %d", tagID, id)
	})
}

func validateArticle(in NewsArticleInput) error {
	if err := required(entityNewsArticle, "news title", in.Title); err != nil {
		return err
	}
	return required(entityNewsArticle, "news content", in.Content)
}

// checkArticleRefs verifies the category is present and active, the acting
// account exists and every tag exists.
func checkArticleRefs(snap *snapshot, accountID int, in NewsArticleInput) error {
	category := snap.category(in.CategoryID)
	if category == nil {
		return notFound(entityCategory, in.CategoryID)
	}
	if !category.IsActive {
		return guard.InvalidOperation(entityNewsArticle, guard.ReasonInactive,
			"cannot use inactive category %q for a news article", category.Name)
	}
	if snap.account(accountID) == nil {
		return notFound(entityAccount, accountID)
	}
	return checkTags(snap, in.TagIDs)
}

func checkTags(snap *snapshot, tagIDs []int) error {
	for _, id := range tagIDs {
		if snap.tag(id) == nil {
			return notFound(entityTag, id)
		}
	}
	return nil
}

func articleID(n *NewsArticle) int {
	if n == nil {
		return 0
	}
	return n.ID
}
