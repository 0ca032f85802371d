package newsportal

import (
	"slices"

	"github.com/daniilsolovey/news-management/internal/db"
)

func NewAccount(a db.Account) Account {
	return Account{Account: a}
}

// setTags attaches tag views to the articles using the join rows.
func (ll NewsArticles) setTags(joins []db.NewsTag, tags Tags) {
	index := tags.IndexByID()
	byArticle := make(map[int][]int)
	for _, j := range joins {
		byArticle[j.NewsArticleID] = append(byArticle[j.NewsArticleID], j.TagID)
	}

	for i := range ll {
		tagIDs := byArticle[ll[i].ID]
		slices.Sort(tagIDs)
		ll[i].Tags = make([]Tag, 0, len(tagIDs))
		for _, id := range tagIDs {
			if tag, ok := index[id]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}
