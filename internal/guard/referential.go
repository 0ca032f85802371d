package guard

import "strings"

// CategoryDelete rejects deleting a category that still has subcategories or
// articles. parents holds the parent id of every category, articleCategories
// the category id of every article.
func CategoryDelete(id int, parents []*int, articleCategories []int) error {
	for _, p := range parents {
		if p != nil && *p == id {
			return InvalidOperation(entityCategory, ReasonHasChildren,
				"cannot delete category that has subcategories, delete or reassign them first")
		}
	}
	for _, c := range articleCategories {
		if c == id {
			return InvalidOperation(entityCategory, ReasonHasArticles,
				"cannot delete category that has news articles, move or delete them first")
		}
	}
	return nil
}

// TagDelete rejects deleting a tag referenced by any article-tag association.
// taggedIDs holds the tag id of every association.
func TagDelete(id int, taggedIDs []int) error {
	for _, t := range taggedIDs {
		if t == id {
			return InvalidOperation("tag", ReasonInUse,
				"cannot delete tag that has associated news articles, remove it from them first")
		}
	}
	return nil
}

// AccountDelete rejects deleting an account that authored articles.
// authorIDs holds the creator id of every article.
func AccountDelete(id int, authorIDs []int) error {
	for _, a := range authorIDs {
		if a == id {
			return InvalidOperation("account", ReasonHasArticles,
				"cannot delete account that created news articles")
		}
	}
	return nil
}

// Unique rejects value if another record (by identity, excluding selfID)
// already holds it under a case-insensitive comparison. Use selfID 0 on create.
func Unique[T any](entity, field, value string, selfID int, records []T, id func(T) int, key func(T) string) error {
	want := strings.TrimSpace(value)
	for _, r := range records {
		if id(r) == selfID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key(r)), want) {
			return Conflict(entity, ReasonDuplicate, "%s %s already exists", entity, field)
		}
	}
	return nil
}
