package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// CatalogService provides read-only RPC methods over the news catalog.
type CatalogService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewCatalogService(manager *newsportal.Manager) *CatalogService {
	return &CatalogService{manager: manager}
}

// Categories lists categories with search, filters, sorting and paging.
//
//zenrpc:filter category filter and paging
//zenrpc:return page of categories
//zenrpc:500 internal server error
func (s *CatalogService) Categories(ctx context.Context, filter CategoryFilter) (*CategoryPage, error) {
	page, err := s.manager.Categories(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewCategoryPage(page), nil
}

// Subcategories returns the direct children of a category, or every
// descendant breadth-first when recursive is set.
//
//zenrpc:id parent category ID
//zenrpc:recursive=false include every descendant
//zenrpc:return list of categories
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CatalogService) Subcategories(ctx context.Context, id int, recursive *bool) ([]Category, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "id must be positive")
	}

	list, err := s.manager.Subcategories(ctx, id, recursive != nil && *recursive)
	if err != nil {
		return nil, newError(err)
	}

	return newsportal.Map(list, NewCategory), nil
}

// Tags lists tags with search, sorting and paging.
//
//zenrpc:filter tag filter and paging
//zenrpc:return page of tags
//zenrpc:500 internal server error
func (s *CatalogService) Tags(ctx context.Context, filter TagFilter) (*TagPage, error) {
	page, err := s.manager.Tags(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewTagPage(page), nil
}

// Articles lists news articles with search, filters, sorting and paging.
//
//zenrpc:filter news article filter and paging
//zenrpc:return page of news articles
//zenrpc:500 internal server error
func (s *CatalogService) Articles(ctx context.Context, filter NewsArticleFilter) (*NewsArticlePage, error) {
	page, err := s.manager.NewsArticles(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewNewsArticlePage(page), nil
}

// Article retrieves a single news article with its category, authors and tags.
//
//zenrpc:id news article ID
//zenrpc:return news article
//zenrpc:400 id must be positive
//zenrpc:404 news article not found
//zenrpc:500 internal server error
func (s *CatalogService) Article(ctx context.Context, id int) (*NewsArticle, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "id must be positive")
	}

	article, err := s.manager.NewsArticle(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	n := NewNewsArticle(*article)
	return &n, nil
}

// newError maps guard errors to RPC errors with HTTP-like codes. err must not be nil.
func newError(err error) error {
	var ge *guard.Error
	if !errors.As(err, &ge) {
		return err
	}

	switch ge.Kind {
	case guard.KindNotFound:
		return zenrpc.NewStringError(http.StatusNotFound, ge.Message)
	case guard.KindConflict:
		return zenrpc.NewStringError(http.StatusConflict, ge.Message)
	}
	return zenrpc.NewStringError(http.StatusBadRequest, ge.Message)
}
