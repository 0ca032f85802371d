package newsportal

import "github.com/daniilsolovey/news-management/internal/db"

type Accounts []Account

type Categories []Category

type Tags []Tag

type NewsArticles []NewsArticle

func NewAccounts(in []db.Account) Accounts {
	return Map(in, NewAccount)
}

func (ll Categories) IndexByID() map[int]Category {
	r := make(map[int]Category, len(ll))
	for i := range ll {
		r[ll[i].ID] = ll[i]
	}
	return r
}

func (ll Tags) IndexByID() map[int]Tag {
	r := make(map[int]Tag, len(ll))
	for i := range ll {
		r[ll[i].ID] = ll[i]
	}
	return r
}

func (ll NewsArticles) IDs() []int {
	r := make([]int, len(ll))
	for i := range ll {
		r[i] = ll[i].ID
	}
	return r
}

// Map converts a slice with the given function.
func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}
