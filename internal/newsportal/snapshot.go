package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
)

// snapshot holds every table as read within one transaction. Guards and
// query engines run over it; for mutations it is the read set that makes the
// following write safe.
type snapshot struct {
	accounts   []db.Account
	categories []db.Category
	tags       []db.Tag
	articles   []db.NewsArticle
	newsTags   []db.NewsTag
}

func loadSnapshot(ctx context.Context, s db.Store) (*snapshot, error) {
	var (
		snap snapshot
		err  error
	)

	if snap.accounts, err = s.Accounts(ctx); err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if snap.categories, err = s.Categories(ctx); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if snap.tags, err = s.Tags(ctx); err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	if snap.articles, err = s.NewsArticles(ctx); err != nil {
		return nil, fmt.Errorf("load news articles: %w", err)
	}
	if snap.newsTags, err = s.NewsTags(ctx); err != nil {
		return nil, fmt.Errorf("load news tags: %w", err)
	}

	return &snap, nil
}

func (s *snapshot) forest() *guard.Forest {
	nodes := make([]guard.Node, len(s.categories))
	for i, c := range s.categories {
		nodes[i] = guard.Node{ID: c.ID, ParentID: c.ParentID}
	}
	return guard.NewForest(nodes)
}

func (s *snapshot) parentIDs() []*int {
	r := make([]*int, len(s.categories))
	for i := range s.categories {
		r[i] = s.categories[i].ParentID
	}
	return r
}

func (s *snapshot) articleCategoryIDs() []int {
	r := make([]int, len(s.articles))
	for i := range s.articles {
		r[i] = s.articles[i].CategoryID
	}
	return r
}

func (s *snapshot) articleAuthorIDs() []int {
	r := make([]int, len(s.articles))
	for i := range s.articles {
		r[i] = s.articles[i].CreatedByID
	}
	return r
}

func (s *snapshot) taggedIDs() []int {
	r := make([]int, len(s.newsTags))
	for i := range s.newsTags {
		r[i] = s.newsTags[i].TagID
	}
	return r
}

func (s *snapshot) account(id int) *db.Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *snapshot) category(id int) *db.Category {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}

func (s *snapshot) tag(id int) *db.Tag {
	for i := range s.tags {
		if s.tags[i].ID == id {
			return &s.tags[i]
		}
	}
	return nil
}

func (s *snapshot) article(id int) *db.NewsArticle {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return &s.articles[i]
		}
	}
	return nil
}

func (s *snapshot) Accounts() Accounts {
	return NewAccounts(s.accounts)
}

// Categories returns categories with parent names and dependent counts.
func (s *snapshot) Categories() Categories {
	names := make(map[int]string, len(s.categories))
	children := make(map[int]int)
	for _, c := range s.categories {
		names[c.ID] = c.Name
		if c.ParentID != nil {
			children[*c.ParentID]++
		}
	}

	articles := make(map[int]int)
	for _, a := range s.articles {
		articles[a.CategoryID]++
	}

	list := make(Categories, len(s.categories))
	for i, c := range s.categories {
		list[i] = Category{
			Category:           c,
			SubCategoriesCount: children[c.ID],
			NewsArticlesCount:  articles[c.ID],
		}
		if c.ParentID != nil {
			if name, ok := names[*c.ParentID]; ok {
				list[i].ParentName = &name
			}
		}
	}

	return list
}

// Tags returns tags with the number of articles using them.
func (s *snapshot) Tags() Tags {
	counts := make(map[int]int)
	for _, j := range s.newsTags {
		counts[j.TagID]++
	}

	list := make(Tags, len(s.tags))
	for i, t := range s.tags {
		list[i] = Tag{Tag: t, NewsArticlesCount: counts[t.ID]}
	}

	return list
}

// NewsArticles returns articles with category, author names and tags.
func (s *snapshot) NewsArticles() NewsArticles {
	categories := make(map[int]string, len(s.categories))
	for _, c := range s.categories {
		categories[c.ID] = c.Name
	}
	accounts := make(map[int]string, len(s.accounts))
	for _, a := range s.accounts {
		accounts[a.ID] = a.Name
	}

	list := make(NewsArticles, len(s.articles))
	for i, a := range s.articles {
		list[i] = NewsArticle{
			NewsArticle:   a,
			CategoryName:  categories[a.CategoryID],
			CreatedByName: accounts[a.CreatedByID],
		}
		if a.UpdatedByID != nil {
			if name, ok := accounts[*a.UpdatedByID]; ok {
				list[i].UpdatedByName = &name
			}
		}
	}
	list.setTags(s.newsTags, s.Tags())

	return list
}
