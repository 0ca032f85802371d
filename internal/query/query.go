// Package query implements search, filter, sort and pagination over an
// in-memory snapshot of records. One Engine is built per entity type from a
// Config table and reused for every listing request.
package query

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Compare orders two records like cmp.Compare.
type Compare[T any] func(a, b T) int

// Filter reports whether a record matches a predicate.
type Filter[T any] func(T) bool

// Config describes how an entity type is searched and sorted.
type Config[T any] struct {
	// ID returns the identity of a record. It is the fallback sort key and
	// the tie-breaker for every other sort.
	ID func(T) int
	// Search lists the text fields matched by the search term.
	Search []func(T) string
	// Sort maps an allow-listed field name to its comparator. Names are
	// matched case-insensitively.
	Sort map[string]Compare[T]
}

// Request is a single listing request.
type Request[T any] struct {
	Search     string
	Filters    []Filter[T]
	SortBy     string
	Descending bool
	Page       int
	PageSize   int
}

// Page is the result of Engine.Query.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type Engine[T any] struct {
	id     func(T) int
	search []func(T) string
	sort   map[string]Compare[T]
}

func New[T any](cfg Config[T]) *Engine[T] {
	sortable := make(map[string]Compare[T], len(cfg.Sort))
	for name, cmp := range cfg.Sort {
		sortable[strings.ToLower(name)] = cmp
	}

	return &Engine[T]{
		id:     cfg.ID,
		search: cfg.Search,
		sort:   sortable,
	}
}

// Normalize clamps paging input: page to at least 1, pageSize to [1, MaxPageSize].
func Normalize(page, pageSize int) (int, int) {
	return max(1, page), min(MaxPageSize, max(1, pageSize))
}

// Sortable reports whether name is an allow-listed sort field.
func (e *Engine[T]) Sortable(name string) bool {
	_, ok := e.sort[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Query searches, filters, sorts and slices records. It never fails: an
// unknown sort field falls back to identity ascending and a page past the end
// yields no items.
func (e *Engine[T]) Query(records iter.Seq[T], req Request[T]) Page[T] {
	page, pageSize := Normalize(req.Page, req.PageSize)
	term := strings.ToLower(strings.TrimSpace(req.Search))

	var matched []T
	for r := range records {
		if term != "" && !e.matches(r, term) {
			continue
		}
		if !all(r, req.Filters) {
			continue
		}
		matched = append(matched, r)
	}

	slices.SortStableFunc(matched, e.comparator(req.SortBy, req.Descending))

	total := len(matched)
	result := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	offset := (page - 1) * pageSize
	if offset >= total {
		return result
	}
	end := min(total, offset+pageSize)
	result.Items = matched[offset:end]

	return result
}

func (e *Engine[T]) matches(r T, term string) bool {
	for _, field := range e.search {
		if strings.Contains(strings.ToLower(field(r)), term) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) comparator(sortBy string, desc bool) func(a, b T) int {
	byID := func(a, b T) int {
		return cmp.Compare(e.id(a), e.id(b))
	}

	cmp, ok := e.sort[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return byID
	}

	return func(a, b T) int {
		c := cmp(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return byID(a, b)
	}
}

func all[T any](r T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f != nil && !f(r) {
			return false
		}
	}
	return true
}
