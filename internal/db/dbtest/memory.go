// Package dbtest provides an in-memory db.Store for unit tests.
package dbtest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/daniilsolovey/news-management/internal/db"
)

type state struct {
	accounts   []db.Account
	categories []db.Category
	tags       []db.Tag
	articles   []db.NewsArticle
	newsTags   []db.NewsTag
	nextID     map[string]int
}

func (s *state) clone() *state {
	return &state{
		accounts:   slices.Clone(s.accounts),
		categories: slices.Clone(s.categories),
		tags:       slices.Clone(s.tags),
		articles:   slices.Clone(s.articles),
		newsTags:   slices.Clone(s.newsTags),
		nextID: map[string]int{
			"account":  s.nextID["account"],
			"category": s.nextID["category"],
			"tag":      s.nextID["tag"],
			"article":  s.nextID["article"],
		},
	}
}

func (s *state) id(kind string) int {
	s.nextID[kind]++
	return s.nextID[kind]
}

// Store keeps every table in memory. Transactions work on a copy that
// replaces the committed state when fn succeeds. Err, when set, is returned
// by every read.
type Store struct {
	mu  *sync.Mutex
	st  *state
	tx  bool
	Err error
}

func New() *Store {
	return &Store{
		mu: &sync.Mutex{},
		st: &state{nextID: map[string]int{}},
	}
}

var _ db.Store = (*Store)(nil)

func (s *Store) lock() func() {
	if s.tx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) RunInTransaction(ctx context.Context, fn func(db.Store) error) error {
	if s.tx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{mu: s.mu, st: s.st.clone(), tx: true, Err: s.Err}
	if err := fn(tx); err != nil {
		return err
	}
	s.st = tx.st

	return nil
}

func (s *Store) Accounts(ctx context.Context) ([]db.Account, error) {
	defer s.lock()()
	return slices.Clone(s.st.accounts), s.Err
}

func (s *Store) AccountByID(ctx context.Context, id int) (*db.Account, error) {
	defer s.lock()()
	return find(s.st.accounts, func(a db.Account) bool { return a.ID == id }), s.Err
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*db.Account, error) {
	defer s.lock()()
	return find(s.st.accounts, func(a db.Account) bool { return strings.EqualFold(a.Email, email) }), s.Err
}

func (s *Store) CreateAccount(ctx context.Context, a *db.Account) error {
	defer s.lock()()
	a.ID = s.st.id("account")
	s.st.accounts = append(s.st.accounts, *a)
	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *db.Account) error {
	defer s.lock()()
	replace(s.st.accounts, *a, func(r db.Account) bool { return r.ID == a.ID })
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id int) error {
	defer s.lock()()
	s.st.accounts = slices.DeleteFunc(s.st.accounts, func(a db.Account) bool { return a.ID == id })
	for i := range s.st.articles {
		if u := s.st.articles[i].UpdatedByID; u != nil && *u == id {
			s.st.articles[i].UpdatedByID = nil
		}
	}
	return nil
}

func (s *Store) Categories(ctx context.Context) ([]db.Category, error) {
	defer s.lock()()
	return slices.Clone(s.st.categories), s.Err
}

func (s *Store) CategoryByID(ctx context.Context, id int) (*db.Category, error) {
	defer s.lock()()
	return find(s.st.categories, func(c db.Category) bool { return c.ID == id }), s.Err
}

func (s *Store) CreateCategory(ctx context.Context, c *db.Category) error {
	defer s.lock()()
	c.ID = s.st.id("category")
	s.st.categories = append(s.st.categories, *c)
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *db.Category) error {
	defer s.lock()()
	replace(s.st.categories, *c, func(r db.Category) bool { return r.ID == c.ID })
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	defer s.lock()()
	s.st.categories = slices.DeleteFunc(s.st.categories, func(c db.Category) bool { return c.ID == id })
	return nil
}

func (s *Store) Tags(ctx context.Context) ([]db.Tag, error) {
	defer s.lock()()
	return slices.Clone(s.st.tags), s.Err
}

func (s *Store) TagByID(ctx context.Context, id int) (*db.Tag, error) {
	defer s.lock()()
	return find(s.st.tags, func(t db.Tag) bool { return t.ID == id }), s.Err
}

func (s *Store) CreateTag(ctx context.Context, t *db.Tag) error {
	defer s.lock()()
	t.ID = s.st.id("tag")
	s.st.tags = append(s.st.tags, *t)
	return nil
}

func (s *Store) UpdateTag(ctx context.Context, t *db.Tag) error {
	defer s.lock()()
	replace(s.st.tags, *t, func(r db.Tag) bool { return r.ID == t.ID })
	return nil
}

func (s *Store) DeleteTag(ctx context.Context, id int) error {
	defer s.lock()()
	s.st.tags = slices.DeleteFunc(s.st.tags, func(t db.Tag) bool { return t.ID == id })
	return nil
}

func (s *Store) NewsArticles(ctx context.Context) ([]db.NewsArticle, error) {
	defer s.lock()()
	return slices.Clone(s.st.articles), s.Err
}

func (s *Store) NewsArticleByID(ctx context.Context, id int) (*db.NewsArticle, error) {
	defer s.lock()()
	return find(s.st.articles, func(n db.NewsArticle) bool { return n.ID == id }), s.Err
}

func (s *Store) CreateNewsArticle(ctx context.Context, n *db.NewsArticle) error {
	defer s.lock()()
	n.ID = s.st.id("article")
	s.st.articles = append(s.st.articles, *n)
	return nil
}

func (s *Store) UpdateNewsArticle(ctx context.Context, n *db.NewsArticle) error {
	defer s.lock()()
	replace(s.st.articles, *n, func(r db.NewsArticle) bool { return r.ID == n.ID })
	return nil
}

func (s *Store) DeleteNewsArticle(ctx context.Context, id int) error {
	defer s.lock()()
	s.st.newsTags = slices.DeleteFunc(s.st.newsTags, func(j db.NewsTag) bool { return j.NewsArticleID == id })
	s.st.articles = slices.DeleteFunc(s.st.articles, func(n db.NewsArticle) bool { return n.ID == id })
	return nil
}

func (s *Store) NewsTags(ctx context.Context) ([]db.NewsTag, error) {
	defer s.lock()()
	return slices.Clone(s.st.newsTags), s.Err
}

func (s *Store) SetNewsTags(ctx context.Context, articleID int, tagIDs []int) error {
	defer s.lock()()
	s.st.newsTags = slices.DeleteFunc(s.st.newsTags, func(j db.NewsTag) bool { return j.NewsArticleID == articleID })
	for _, id := range tagIDs {
		s.st.newsTags = append(s.st.newsTags, db.NewsTag{NewsArticleID: articleID, TagID: id})
	}
	return nil
}

func (s *Store) DeleteNewsTag(ctx context.Context, articleID, tagID int) error {
	defer s.lock()()
	s.st.newsTags = slices.DeleteFunc(s.st.newsTags, func(j db.NewsTag) bool {
		return j.NewsArticleID == articleID && j.TagID == tagID
	})
	return nil
}

func find[T any](list []T, match func(T) bool) *T {
	for i := range list {
		if match(list[i]) {
			v := list[i]
			return &v
		}
	}
	return nil
}

func replace[T any](list []T, v T, match func(T) bool) {
	for i := range list {
		if match(list[i]) {
			list[i] = v
			return
		}
	}
}
