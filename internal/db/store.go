package db

import "context"

// Store is the persistence boundary of the news management service.
// Lookups by id return nil, nil when the record is absent.
type Store interface {
	Accounts(ctx context.Context) ([]Account, error)
	AccountByID(ctx context.Context, id int) (*Account, error)
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, a *Account) error
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, id int) error

	Categories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id int) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int) error

	Tags(ctx context.Context) ([]Tag, error)
	TagByID(ctx context.Context, id int) (*Tag, error)
	CreateTag(ctx context.Context, t *Tag) error
	UpdateTag(ctx context.Context, t *Tag) error
	DeleteTag(ctx context.Context, id int) error

	NewsArticles(ctx context.Context) ([]NewsArticle, error)
	NewsArticleByID(ctx context.Context, id int) (*NewsArticle, error)
	CreateNewsArticle(ctx context.Context, n *NewsArticle) error
	UpdateNewsArticle(ctx context.Context, n *NewsArticle) error
	// DeleteNewsArticle removes the article and its tag associations.
	DeleteNewsArticle(ctx context.Context, id int) error

	NewsTags(ctx context.Context) ([]NewsTag, error)
	// SetNewsTags replaces the tag associations of an article.
	SetNewsTags(ctx context.Context, articleID int, tagIDs []int) error
	DeleteNewsTag(ctx context.Context, articleID, tagID int) error

	// RunInTransaction runs fn against a Store bound to one serializable
	// transaction. fn may be invoked more than once on serialization failure
	// and must redo its reads and checks on every call.
	RunInTransaction(ctx context.Context, fn func(Store) error) error
}

var _ Store = (*Repository)(nil)
