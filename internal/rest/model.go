package rest

import "time"

type Account struct {
	AccountID int    `json:"accountId"`
	Name      string `json:"accountName"`
	Email     string `json:"accountEmail"`
	Role      int    `json:"accountRole"`
	RoleName  string `json:"roleName"`
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

// Page is a paginated listing response.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type LoginResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Account      Account   `json:"account"`
}

type SeedResponse struct {
	Accounts     int `json:"accounts"`
	Categories   int `json:"categories"`
	Tags         int `json:"tags"`
	NewsArticles int `json:"newsArticles"`
}

type AccountListRequest struct {
	Search       string `query:"search"`
	SortBy       string `query:"sortBy"`
	IsDescending bool   `query:"isDescending"`
	Page         *int   `query:"page"`
	PageSize     *int   `query:"pageSize"`
	Role         *int   `query:"role"`
}

type CategoryListRequest struct {
	Search               string `query:"search"`
	SortBy               string `query:"sortBy"`
	IsDescending         bool   `query:"isDescending"`
	Page                 *int   `query:"page"`
	PageSize             *int   `query:"pageSize"`
	IsActive             *bool  `query:"isActive"`
	ParentCategoryID     *int   `query:"parentCategoryId"`
	IncludeSubCategories *bool  `query:"includeSubCategories"`
}

type TagListRequest struct {
	Search       string `query:"search"`
	SortBy       string `query:"sortBy"`
	IsDescending bool   `query:"isDescending"`
	Page         *int   `query:"page"`
	PageSize     *int   `query:"pageSize"`
}

type NewsArticleListRequest struct {
	Search       string     `query:"search"`
	SortBy       string     `query:"sortBy"`
	IsDescending bool       `query:"isDescending"`
	Page         *int       `query:"page"`
	PageSize     *int       `query:"pageSize"`
	Status       *bool      `query:"newsStatus"`
	CategoryID   *int       `query:"categoryId"`
	CreatedByID  *int       `query:"createdById"`
	CreatedFrom  *time.Time `query:"createdFrom"`
	CreatedTo    *time.Time `query:"createdTo"`
}

type AccountRequest struct {
	Name     string `json:"accountName"`
	Email    string `json:"accountEmail"`
	Role     int    `json:"accountRole"`
	Password string `json:"accountPassword"`
}

type CategoryRequest struct {
	Name             string  `json:"categoryName"`
	Description      *string `json:"categoryDescription"`
	ParentCategoryID *int    `json:"parentCategoryId"`
	IsActive         *bool   `json:"isActive"`
}

type TagRequest struct {
	Name string  `json:"tagName"`
	Note *string `json:"note"`
}

type NewsArticleRequest struct {
	Title      string  `json:"newsTitle"`
	Headline   *string `json:"headline"`
	Content    string  `json:"newsContent"`
	Source     *string `json:"newsSource"`
	CategoryID int     `json:"categoryId"`
	Status     bool    `json:"newsStatus"`
	TagIDs     []int   `json:"tagIds"`
}

type NewsArticleTagsRequest struct {
	TagIDs []int `json:"tagIds"`
}

type RegisterRequest struct {
	Name     string `json:"accountName"`
	Email    string `json:"accountEmail"`
	Password string `json:"password"`
	Role     *int   `json:"accountRole"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
