package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/metrics"
	"github.com/go-pg/pg/v10"
)

const (
	maxTxAttempts = 3

	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction opens a SERIALIZABLE transaction and retries fn when
// Postgres reports a serialization failure. Inside an existing transaction fn
// runs directly against it.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(Store) error) error {
	db, ok := r.db.(*pg.DB)
	if !ok {
		return fn(r)
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			if _, err := tx.ExecContext(ctx, `SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`); err != nil {
				return fmt.Errorf("set isolation level: %w", err)
			}
			return fn(New(tx))
		})
		if !IsSerializationFailure(err) {
			return err
		}
		metrics.TransactionRetriesTotal.Inc()
	}

	return fmt.Errorf("transaction aborted after %d attempts: %w", maxTxAttempts, err)
}

func (r *Repository) Accounts(ctx context.Context) ([]Account, error) {
	var list []Account
	err := r.db.ModelContext(ctx, &list).
		Order(Columns.Account.ID).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	return list, nil
}

func (r *Repository) AccountByID(ctx context.Context, id int) (*Account, error) {
	account := &Account{ID: id}
	err := r.db.ModelContext(ctx, account).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *Repository) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	account := &Account{}
	err := r.db.ModelContext(ctx, account).
		Where(`lower(?) = lower(?)`, pg.Ident(Columns.Account.Email), email).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *Repository) CreateAccount(ctx context.Context, a *Account) error {
	_, err := r.db.ModelContext(ctx, a).Insert()
	return writeErr("account", "insert", err)
}

func (r *Repository) UpdateAccount(ctx context.Context, a *Account) error {
	_, err := r.db.ModelContext(ctx, a).WherePK().Update()
	return writeErr("account", "update", err)
}

func (r *Repository) DeleteAccount(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, &Account{ID: id}).WherePK().Delete()
	return writeErr("account", "delete", err)
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var list []Category
	err := r.db.ModelContext(ctx, &list).
		Order(Columns.Category.ID).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return list, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category := &Category{ID: id}
	err := r.db.ModelContext(ctx, category).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ModelContext(ctx, c).Insert()
	return writeErr("category", "insert", err)
}

func (r *Repository) UpdateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ModelContext(ctx, c).WherePK().Update()
	return writeErr("category", "update", err)
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, &Category{ID: id}).WherePK().Delete()
	return writeErr("category", "delete", err)
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var list []Tag
	err := r.db.ModelContext(ctx, &list).
		Order(Columns.Tag.ID).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return list, nil
}

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	tag := &Tag{ID: id}
	err := r.db.ModelContext(ctx, tag).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *Repository) CreateTag(ctx context.Context, t *Tag) error {
	_, err := r.db.ModelContext(ctx, t).Insert()
	return writeErr("tag", "insert", err)
}

func (r *Repository) UpdateTag(ctx context.Context, t *Tag) error {
	_, err := r.db.ModelContext(ctx, t).WherePK().Update()
	return writeErr("tag", "update", err)
}

func (r *Repository) DeleteTag(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, &Tag{ID: id}).WherePK().Delete()
	return writeErr("tag", "delete", err)
}

func (r *Repository) NewsArticles(ctx context.Context) ([]NewsArticle, error) {
	var list []NewsArticle
	err := r.db.ModelContext(ctx, &list).
		Order(Columns.NewsArticle.ID).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news articles: %w", err)
	}

	return list, nil
}

func (r *Repository) NewsArticleByID(ctx context.Context, id int) (*NewsArticle, error) {
	article := &NewsArticle{ID: id}
	err := r.db.ModelContext(ctx, article).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) CreateNewsArticle(ctx context.Context, n *NewsArticle) error {
	_, err := r.db.ModelContext(ctx, n).Insert()
	return writeErr("news article", "insert", err)
}

func (r *Repository) UpdateNewsArticle(ctx context.Context, n *NewsArticle) error {
	_, err := r.db.ModelContext(ctx, n).WherePK().Update()
	return writeErr("news article", "update", err)
}

func (r *Repository) DeleteNewsArticle(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*NewsTag)(nil)).
		Where(`? = ?`, pg.Ident(Columns.NewsTag.NewsArticleID), id).
		Delete()
	if err != nil {
		return writeErr("news tag", "delete", err)
	}

	_, err = r.db.ModelContext(ctx, &NewsArticle{ID: id}).WherePK().Delete()
	return writeErr("news article", "delete", err)
}

func (r *Repository) NewsTags(ctx context.Context) ([]NewsTag, error) {
	var list []NewsTag
	err := r.db.ModelContext(ctx, &list).
		Order(Columns.NewsTag.NewsArticleID, Columns.NewsTag.TagID).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news tags: %w", err)
	}

	return list, nil
}

func (r *Repository) SetNewsTags(ctx context.Context, articleID int, tagIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*NewsTag)(nil)).
		Where(`? = ?`, pg.Ident(Columns.NewsTag.NewsArticleID), articleID).
		Delete()
	if err != nil {
		return writeErr("news tag", "delete", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	joins := make([]NewsTag, len(tagIDs))
	for i, tagID := range tagIDs {
		joins[i] = NewsTag{NewsArticleID: articleID, TagID: tagID}
	}

	_, err = r.db.ModelContext(ctx, &joins).Insert()
	return writeErr("news tag", "insert", err)
}

func (r *Repository) DeleteNewsTag(ctx context.Context, articleID, tagID int) error {
	_, err := r.db.ModelContext(ctx, &NewsTag{NewsArticleID: articleID, TagID: tagID}).
		WherePK().
		Delete()
	return writeErr("news tag", "delete", err)
}

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == codeUniqueViolation
}

// IsSerializationFailure reports whether err is a Postgres serialization_failure.
func IsSerializationFailure(err error) bool {
	return sqlState(err) == codeSerializationFailure
}

func sqlState(err error) string {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// writeErr maps a unique violation to a guard conflict so that the index
// backstop surfaces the same way as the pre-write uniqueness check.
func writeErr(entity, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err):
		return guard.Conflict(entity, guard.ReasonDuplicate, "%s already exists: %v", entity, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}
