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

func (m *Manager) Tags(ctx context.Context, q TagQuery) (query.Page[Tag], error) {
	defer m.observe(entityTag, time.Now())

	snap, err := m.snapshot(ctx)
	if err != nil {
		return query.Page[Tag]{}, fmt.Errorf("failed to query tags: %w", err)
	}

	page := m.tags.Query(slices.Values(snap.Tags()), listing[Tag](q.Paging))
	m.logger.Debug("tags queried", "search", q.Search, "total", page.Total, "page", page.Page)

	return page, nil
}

func (m *Manager) Tag(ctx context.Context, id int) (*Tag, error) {
	row, err := m.store.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	} else if row == nil {
		return nil, notFound(entityTag, id)
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	if t, ok := snap.Tags().IndexByID()[id]; ok {
		return &t, nil
	}

	return nil, notFound(entityTag, id)
}

func (m *Manager) CreateTag(ctx context.Context, in TagInput) (t *Tag, err error) {
	m.logger.Info("creating tag", "name", in.Name)
	defer func() { m.done(entityTag, "create", tagID(t), err) }()

	if err = required(entityTag, "tag name", in.Name); err != nil {
		return nil, err
	}

	var row db.Tag
	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if err := uniqueTagName(in.Name, 0, snap); err != nil {
			return err
		}

		row = db.Tag{Name: strings.TrimSpace(in.Name), Note: in.Note}
		return s.CreateTag(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	return &Tag{Tag: row}, nil
}

func (m *Manager) UpdateTag(ctx context.Context, id int, in TagInput) (t *Tag, err error) {
	m.logger.Info("updating tag", "id", id, "name", in.Name)
	defer func() { m.done(entityTag, "update", id, err) }()

	if err = required(entityTag, "tag name", in.Name); err != nil {
		return nil, err
	}

	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.tag(id) == nil {
			return notFound(entityTag, id)
		}
		if err := uniqueTagName(in.Name, id, snap); err != nil {
			return err
		}

		row := db.Tag{ID: id, Name: strings.TrimSpace(in.Name), Note: in.Note}
		return s.UpdateTag(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	return m.Tag(ctx, id)
}

func (m *Manager) DeleteTag(ctx context.Context, id int) (err error) {
	m.logger.Info("deleting tag", "id", id)
	defer func() { m.done(entityTag, "delete", id, err) }()

	return m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.tag(id) == nil {
			return notFound(entityTag, id)
		}
		if err := guard.TagDelete(id, snap.taggedIDs()); err != nil {
			return err
		}
		return s.DeleteTag(ctx, id)
	})
}

func uniqueTagName(name string, selfID int, snap *snapshot) error {
	return guard.Unique(entityTag, "name", name, selfID, snap.tags,
		func(t db.Tag) int { return t.ID }, func(t db.Tag) string { return t.Name })
}

func tagID(t *Tag) int {
	if t == nil {
		return 0
	}
	return t.ID
}
