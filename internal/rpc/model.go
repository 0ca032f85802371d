package rpc

import (
	"time"

	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/daniilsolovey/news-management/internal/query"
)

type Paging struct {
	// search term, case-insensitive
	Search string `json:"search,omitempty"`
	// sortBy allow-listed sort field
	SortBy string `json:"sortBy,omitempty"`
	// isDescending reverses the sort
	IsDescending bool `json:"isDescending,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

func (p Paging) ToModel() newsportal.Paging {
	r := newsportal.Paging{
		Search:     p.Search,
		SortBy:     p.SortBy,
		Descending: p.IsDescending,
		Page:       1,
		PageSize:   query.DefaultPageSize,
	}
	if p.Page != nil {
		r.Page = *p.Page
	}
	if p.PageSize != nil {
		r.PageSize = *p.PageSize
	}

	return r
}

type CategoryFilter struct {
	Paging
	//isActive optional active flag filter
	IsActive *bool `json:"isActive,omitempty"`
	//parentCategoryId optional parent filter
	ParentCategoryID *int `json:"parentCategoryId,omitempty"`
	//includeSubCategories=true when false lists root categories only
	IncludeSubCategories *bool `json:"includeSubCategories,omitempty"`
}

func (f CategoryFilter) ToModel() newsportal.CategoryQuery {
	return newsportal.CategoryQuery{
		Paging:               f.Paging.ToModel(),
		IsActive:             f.IsActive,
		ParentID:             f.ParentCategoryID,
		IncludeSubCategories: f.IncludeSubCategories,
	}
}

type TagFilter struct {
	Paging
}

func (f TagFilter) ToModel() newsportal.TagQuery {
	return newsportal.TagQuery{Paging: f.Paging.ToModel()}
}

type NewsArticleFilter struct {
	Paging
	//newsStatus optional status filter
	Status *bool `json:"newsStatus,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//createdById optional author filter
	CreatedByID *int `json:"createdById,omitempty"`
	//createdFrom optional lower bound of the created date
	CreatedFrom *time.Time `json:"createdFrom,omitempty"`
	//createdTo optional upper bound of the created date
	CreatedTo *time.Time `json:"createdTo,omitempty"`
}

func (f NewsArticleFilter) ToModel() newsportal.NewsArticleQuery {
	return newsportal.NewsArticleQuery{
		Paging:      f.Paging.ToModel(),
		Status:      f.Status,
		CategoryID:  f.CategoryID,
		CreatedByID: f.CreatedByID,
		CreatedFrom: f.CreatedFrom,
		CreatedTo:   f.CreatedTo,
	}
}

type Category struct {
	CategoryID         int     `json:"categoryId"`
	Name               string  `json:"categoryName"`
	Description        *string `json:"categoryDescription"`
	ParentCategoryID   *int    `json:"parentCategoryId"`
	ParentCategoryName *string `json:"parentCategoryName"`
	IsActive           bool    `json:"isActive"`
	SubCategoriesCount int     `json:"subCategoriesCount"`
	NewsArticlesCount  int     `json:"newsArticlesCount"`
}

type Tag struct {
	TagID             int     `json:"tagId"`
	Name              string  `json:"tagName"`
	Note              *string `json:"note"`
	NewsArticlesCount int     `json:"newsArticlesCount"`
}

type NewsArticle struct {
	NewsArticleID int        `json:"newsArticleId"`
	Title         string     `json:"newsTitle"`
	Headline      *string    `json:"headline"`
	CreatedDate   time.Time  `json:"createdDate"`
	Content       string     `json:"newsContent"`
	Source        *string    `json:"newsSource"`
	CategoryID    int        `json:"categoryId"`
	CategoryName  string     `json:"categoryName"`
	Status        bool       `json:"newsStatus"`
	CreatedByID   int        `json:"createdById"`
	CreatedByName string     `json:"createdByName"`
	UpdatedByID   *int       `json:"updatedById"`
	UpdatedByName *string    `json:"updatedByName"`
	ModifiedDate  *time.Time `json:"modifiedDate"`
	Tags          []Tag      `json:"tags"`
}

type PageInfo struct {
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type CategoryPage struct {
	Items []Category `json:"items"`
	PageInfo
}

type TagPage struct {
	Items []Tag `json:"items"`
	PageInfo
}

type NewsArticlePage struct {
	Items []NewsArticle `json:"items"`
	PageInfo
}
