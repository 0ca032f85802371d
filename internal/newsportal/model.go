package newsportal

import (
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
)

// Role is the canonical account role.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
	RoleStaff
	RoleLecturer
)

var roleNames = map[Role]string{
	RoleUser:     "User",
	RoleAdmin:    "Admin",
	RoleStaff:    "Staff",
	RoleLecturer: "Lecturer",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

type Account struct {
	db.Account
}

func (a Account) AccountRole() Role {
	return Role(a.Role)
}

type Category struct {
	db.Category
	ParentName         *string
	SubCategoriesCount int
	NewsArticlesCount  int
}

type Tag struct {
	db.Tag
	NewsArticlesCount int
}

type NewsArticle struct {
	db.NewsArticle
	CategoryName  string
	CreatedByName string
	UpdatedByName *string
	Tags          []Tag
}

// TagIDs returns the ids of the attached tags.
func (n NewsArticle) TagIDs() []int {
	ids := make([]int, len(n.Tags))
	for i := range n.Tags {
		ids[i] = n.Tags[i].ID
	}
	return ids
}

type AccountInput struct {
	Name  string
	Email string
	Role  Role
	// Password is the plain text password. Only used on create.
	Password string
}

type CategoryInput struct {
	Name        string
	Description *string
	ParentID    *int
	IsActive    bool
}

type TagInput struct {
	Name string
	Note *string
}

type NewsArticleInput struct {
	Title      string
	Headline   *string
	Content    string
	Source     *string
	CategoryID int
	Status     bool
	// TagIDs replaces the article tags. Nil leaves them unchanged on update.
	TagIDs []int
}

// Paging holds the listing parameters shared by every entity query.
type Paging struct {
	Search     string
	SortBy     string
	Descending bool
	Page       int
	PageSize   int
}

type AccountQuery struct {
	Paging
	Role *Role
}

type CategoryQuery struct {
	Paging
	IsActive *bool
	ParentID *int
	// IncludeSubCategories defaults to true. When false and ParentID is not
	// set only root categories are listed.
	IncludeSubCategories *bool
}

type TagQuery struct {
	Paging
}

type NewsArticleQuery struct {
	Paging
	Status      *bool
	CategoryID  *int
	CreatedByID *int
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Account      Account
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
