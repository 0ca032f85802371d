package newsportal

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/query"
)

// Categories lists categories with search, filters, sorting and paging.
func (m *Manager) Categories(ctx context.Context, q CategoryQuery) (query.Page[Category], error) {
	defer m.observe(entityCategory, time.Now())

	snap, err := m.snapshot(ctx)
	if err != nil {
		return query.Page[Category]{}, fmt.Errorf("failed to query categories: %w", err)
	}

	var filters []query.Filter[Category]
	if q.IsActive != nil {
		filters = append(filters, query.Eq(func(c Category) bool { return c.IsActive }, *q.IsActive))
	}
	switch {
	case q.ParentID != nil:
		filters = append(filters, query.EqPtr(func(c Category) *int { return c.ParentID }, *q.ParentID))
	case q.IncludeSubCategories != nil && !*q.IncludeSubCategories:
		filters = append(filters, query.IsNil(func(c Category) *int { return c.ParentID }))
	}

	page := m.categories.Query(slices.Values(snap.Categories()), listing(q.Paging, filters...))
	m.logger.Debug("categories queried", "search", q.Search, "total", page.Total, "page", page.Page)

	return page, nil
}

func (m *Manager) Category(ctx context.Context, id int) (*Category, error) {
	row, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	} else if row == nil {
		return nil, notFound(entityCategory, id)
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	for _, c := range snap.Categories() {
		if c.ID == id {
			return &c, nil
		}
	}

	return nil, notFound(entityCategory, id)
}

// Subcategories returns the direct children of parentID, or every descendant
// in breadth-first order when recursive is set.
func (m *Manager) Subcategories(ctx context.Context, parentID int, recursive bool) (Categories, error) {
	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get subcategories: %w", err)
	}

	forest := snap.forest()
	if !forest.Exists(parentID) {
		return nil, notFound(entityCategory, parentID)
	}

	ids := forest.Children(parentID)
	if recursive {
		ids = forest.Descendants(parentID)
	}

	index := snap.Categories().IndexByID()
	list := make(Categories, 0, len(ids))
	for _, id := range ids {
		list = append(list, index[id])
	}

	return list, nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (c *Category, err error) {
	m.logger.Info("creating category", "name", in.Name, "parentId", in.ParentID)
	defer func() { m.done(entityCategory, "create", categoryID(c), err) }()

	if err = validateCategory(in); err != nil {
		return nil, err
	}

	var row db.Category
	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if err := guard.Unique(entityCategory, "name", in.Name, 0, snap.categories,
			func(c db.Category) int { return c.ID }, func(c db.Category) string { return c.Name }); err != nil {
			return err
		}
		if err := snap.forest().ValidateCreate(in.ParentID); err != nil {
			return err
		}

		row = newCategoryRow(0, in)
		return s.CreateCategory(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	return m.Category(ctx, row.ID)
}

func (m *Manager) UpdateCategory(ctx context.Context, id int, in CategoryInput) (c *Category, err error) {
	m.logger.Info("updating category", "id", id, "name", in.Name, "parentId", in.ParentID)
	defer func() { m.done(entityCategory, "update", id, err) }()

	if err = validateCategory(in); err != nil {
		return nil, err
	}

	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.category(id) == nil {
			return notFound(entityCategory, id)
		}
		if err := guard.Unique(entityCategory, "name", in.Name, id, snap.categories,
			func(c db.Category) int { return c.ID }, func(c db.Category) string { return c.Name }); err != nil {
			return err
		}
		if err := snap.forest().ValidateUpdate(id, in.ParentID); err != nil {
			return err
		}

		row := newCategoryRow(id, in)
		return s.UpdateCategory(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	return m.Category(ctx, id)
}

func (m *Manager) DeleteCategory(ctx context.Context, id int) (err error) {
	m.logger.Info("deleting category", "id", id)
	defer func() { m.done(entityCategory, "delete", id, err) }()

	return m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.category(id) == nil {
			return notFound(entityCategory, id)
		}
		if err := guard.CategoryDelete(id, snap.parentIDs(), snap.articleCategoryIDs()); err != nil {
			return err
		}
		return s.DeleteCategory(ctx, id)
	})
}

func validateCategory(in CategoryInput) error {
	return required(entityCategory, "category name", in.Name)
}

func newCategoryRow(id int, in CategoryInput) db.Category {
	return db.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ParentID:    in.ParentID,
		IsActive:    in.IsActive,
	}
}

func categoryID(c *Category) int {
	if c == nil {
		return 0
	}
	return c.ID
}
