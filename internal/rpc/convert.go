package rpc

import (
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/daniilsolovey/news-management/internal/query"
)

func NewPageInfo[T any](p query.Page[T]) PageInfo {
	return PageInfo{
		TotalCount: p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:         c.ID,
		Name:               c.Name,
		Description:        c.Description,
		ParentCategoryID:   c.ParentID,
		ParentCategoryName: c.ParentName,
		IsActive:           c.IsActive,
		SubCategoriesCount: c.SubCategoriesCount,
		NewsArticlesCount:  c.NewsArticlesCount,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID:             t.ID,
		Name:              t.Name,
		Note:              t.Note,
		NewsArticlesCount: t.NewsArticlesCount,
	}
}

func NewNewsArticle(n newsportal.NewsArticle) NewsArticle {
	return NewsArticle{
		NewsArticleID: n.ID,
		Title:         n.Title,
		Headline:      n.Headline,
		CreatedDate:   n.CreatedDate,
		Content:       n.Content,
		Source:        n.Source,
		CategoryID:    n.CategoryID,
		CategoryName:  n.CategoryName,
		Status:        n.Status,
		CreatedByID:   n.CreatedByID,
		CreatedByName: n.CreatedByName,
		UpdatedByID:   n.UpdatedByID,
		UpdatedByName: n.UpdatedByName,
		ModifiedDate:  n.ModifiedDate,
		Tags:          newsportal.Map(n.Tags, NewTag),
	}
}

func NewCategoryPage(p query.Page[newsportal.Category]) *CategoryPage {
	return &CategoryPage{Items: newsportal.Map(p.Items, NewCategory), PageInfo: NewPageInfo(p)}
}

func NewTagPage(p query.Page[newsportal.Tag]) *TagPage {
	return &TagPage{Items: newsportal.Map(p.Items, NewTag), PageInfo: NewPageInfo(p)}
}

func NewNewsArticlePage(p query.Page[newsportal.NewsArticle]) *NewsArticlePage {
	return &NewsArticlePage{Items: newsportal.Map(p.Items, NewNewsArticle), PageInfo: NewPageInfo(p)}
}
