// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Account struct {
		ID, Name, Email, Role, Password string
	}
	Category struct {
		ID, Name, Description, ParentID, IsActive string
	}
	Tag struct {
		ID, Name, Note string
	}
	NewsArticle struct {
		ID, Title, Headline, CreatedDate, Content, Source, CategoryID, Status, CreatedByID, UpdatedByID, ModifiedDate string
	}
	NewsTag struct {
		NewsArticleID, TagID string
	}
}{
	Account: struct {
		ID, Name, Email, Role, Password string
	}{
		ID:       "accountId",
		Name:     "accountName",
		Email:    "accountEmail",
		Role:     "accountRole",
		Password: "accountPassword",
	},
	Category: struct {
		ID, Name, Description, ParentID, IsActive string
	}{
		ID:          "categoryId",
		Name:        "categoryName",
		Description: "categoryDescription",
		ParentID:    "parentCategoryId",
		IsActive:    "isActive",
	},
	Tag: struct {
		ID, Name, Note string
	}{
		ID:   "tagId",
		Name: "tagName",
		Note: "note",
	},
	NewsArticle: struct {
		ID, Title, Headline, CreatedDate, Content, Source, CategoryID, Status, CreatedByID, UpdatedByID, ModifiedDate string
	}{
		ID:           "newsArticleId",
		Title:        "newsTitle",
		Headline:     "headline",
		CreatedDate:  "createdDate",
		Content:      "newsContent",
		Source:       "newsSource",
		CategoryID:   "categoryId",
		Status:       "newsStatus",
		CreatedByID:  "createdById",
		UpdatedByID:  "updatedById",
		ModifiedDate: "modifiedDate",
	},
	NewsTag: struct {
		NewsArticleID, TagID string
	}{
		NewsArticleID: "newsArticleId",
		TagID:         "tagId",
	},
}

var Tables = struct {
	Account struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	NewsArticle struct {
		Name, Alias string
	}
	NewsTag struct {
		Name, Alias string
	}
}{
	Account: struct {
		Name, Alias string
	}{
		Name:  "accounts",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	NewsArticle: struct {
		Name, Alias string
	}{
		Name:  "news_articles",
		Alias: "t",
	},
	NewsTag: struct {
		Name, Alias string
	}{
		Name:  "news_tags",
		Alias: "t",
	},
}

type Account struct {
	tableName struct{} `pg:"accounts,alias:t,discard_unknown_columns"`

	ID       int    `pg:"accountId,pk"`
	Name     string `pg:"accountName,use_zero"`
	Email    string `pg:"accountEmail,use_zero"`
	Role     int    `pg:"accountRole,use_zero"`
	Password string `pg:"accountPassword,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"categoryId,pk"`
	Name        string  `pg:"categoryName,use_zero"`
	Description *string `pg:"categoryDescription"`
	ParentID    *int    `pg:"parentCategoryId"`
	IsActive    bool    `pg:"isActive,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int     `pg:"tagId,pk"`
	Name string  `pg:"tagName,use_zero"`
	Note *string `pg:"note"`
}

type NewsArticle struct {
	tableName struct{} `pg:"news_articles,alias:t,discard_unknown_columns"`

	ID           int        `pg:"newsArticleId,pk"`
	Title        string     `pg:"newsTitle,use_zero"`
	Headline     *string    `pg:"headline"`
	CreatedDate  time.Time  `pg:"createdDate,use_zero"`
	Content      string     `pg:"newsContent,use_zero"`
	Source       *string    `pg:"newsSource"`
	CategoryID   int        `pg:"categoryId,use_zero"`
	Status       bool       `pg:"newsStatus,use_zero"`
	CreatedByID  int        `pg:"createdById,use_zero"`
	UpdatedByID  *int       `pg:"updatedById"`
	ModifiedDate *time.Time `pg:"modifiedDate"`
}

type NewsTag struct {
	tableName struct{} `pg:"news_tags,alias:t,discard_unknown_columns"`

	NewsArticleID int `pg:"newsArticleId,pk"`
	TagID         int `pg:"tagId,pk"`
}
