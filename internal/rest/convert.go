package rest

import (
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/daniilsolovey/news-management/internal/query"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPage[From, To any](p query.Page[From], converter func(From) To) Page[To] {
	return Page[To]{
		Items:      Map(p.Items, converter),
		TotalCount: p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func NewAccount(a newsportal.Account) Account {
	return Account{
		AccountID: a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		RoleName:  a.AccountRole().String(),
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
		Tags:          Map(n.Tags, NewTag),
	}
}

func NewLoginResponse(r newsportal.AuthResult) LoginResponse {
	return LoginResponse{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		Account:      NewAccount(r.Account),
	}
}

func NewSeedResponse(r newsportal.SeedResult) SeedResponse {
	return SeedResponse{
		Accounts:     r.Accounts,
		Categories:   r.Categories,
		Tags:         r.Tags,
		NewsArticles: r.NewsArticles,
	}
}

func newPaging(search, sortBy string, desc bool, page, pageSize *int) newsportal.Paging {
	p := newsportal.Paging{
		Search:     search,
		SortBy:     sortBy,
		Descending: desc,
		Page:       1,
		PageSize:   query.DefaultPageSize,
	}
	if page != nil {
		p.Page = *page
	}
	if pageSize != nil {
		p.PageSize = *pageSize
	}

	return p
}

func (r AccountListRequest) ToQuery() newsportal.AccountQuery {
	q := newsportal.AccountQuery{Paging: newPaging(r.Search, r.SortBy, r.IsDescending, r.Page, r.PageSize)}
	if r.Role != nil {
		role := newsportal.Role(*r.Role)
		q.Role = &role
	}
	return q
}

func (r CategoryListRequest) ToQuery() newsportal.CategoryQuery {
	return newsportal.CategoryQuery{
		Paging:               newPaging(r.Search, r.SortBy, r.IsDescending, r.Page, r.PageSize),
		IsActive:             r.IsActive,
		ParentID:             r.ParentCategoryID,
		IncludeSubCategories: r.IncludeSubCategories,
	}
}

func (r TagListRequest) ToQuery() newsportal.TagQuery {
	return newsportal.TagQuery{Paging: newPaging(r.Search, r.SortBy, r.IsDescending, r.Page, r.PageSize)}
}

func (r NewsArticleListRequest) ToQuery() newsportal.NewsArticleQuery {
	return newsportal.NewsArticleQuery{
		Paging:      newPaging(r.Search, r.SortBy, r.IsDescending, r.Page, r.PageSize),
		Status:      r.Status,
		CategoryID:  r.CategoryID,
		CreatedByID: r.CreatedByID,
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   r.CreatedTo,
	}
}

func (r AccountRequest) ToInput() newsportal.AccountInput {
	return newsportal.AccountInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     newsportal.Role(r.Role),
		Password: r.Password,
	}
}

// ToInput treats a missing isActive as true.
func (r CategoryRequest) ToInput() newsportal.CategoryInput {
	in := newsportal.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		ParentID:    r.ParentCategoryID,
		IsActive:    true,
	}
	if r.IsActive != nil {
		in.IsActive = *r.IsActive
	}
	return in
}

func (r TagRequest) ToInput() newsportal.TagInput {
	return newsportal.TagInput{Name: r.Name, Note: r.Note}
}

func (r NewsArticleRequest) ToInput() newsportal.NewsArticleInput {
	return newsportal.NewsArticleInput{
		Title:      r.Title,
		Headline:   r.Headline,
		Content:    r.Content,
		Source:     r.Source,
		CategoryID: r.CategoryID,
		Status:     r.Status,
		TagIDs:     r.TagIDs,
	}
}

func (r RegisterRequest) ToRegistration() newsportal.Registration {
	reg := newsportal.Registration{Name: r.Name, Email: r.Email, Password: r.Password}
	if r.Role != nil {
		reg.Role = newsportal.Role(*r.Role)
	}
	return reg
}
