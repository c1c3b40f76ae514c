package pagination

import "fmt"

// DefaultLimit and MaxLimit bound the page size accepted from clients.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Meta describes a page of results.
type Meta struct {
	TotalItems   int `json:"total_items"`
	ItemCount    int `json:"item_count"`
	ItemsPerPage int `json:"items_per_page"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
}

// Links carries navigation URLs for a page.
type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

// Page wraps a slice of items with count and navigation metadata.
type Page[T any] struct {
	Items []T   `json:"items"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// Params are sanitized page/limit values.
type Params struct {
	Page  int
	Limit int
}

// Clamp normalizes raw page/limit input.
func Clamp(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the SQL offset for the params.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// New builds a Page from a fetched slice and a total-count query
// result. route, when non-empty, is used to render navigation links.
func New[T any](items []T, total int, p Params, route string) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	page := Page[T]{
		Items: items,
		Meta: Meta{
			TotalItems:   total,
			ItemCount:    len(items),
			ItemsPerPage: p.Limit,
			TotalPages:   totalPages,
			CurrentPage:  p.Page,
		},
	}
	if route == "" {
		return page
	}

	link := func(n int) string {
		return fmt.Sprintf("%s?page=%d&limit=%d", route, n, p.Limit)
	}
	page.Links.First = link(1)
	if totalPages > 0 {
		page.Links.Last = link(totalPages)
	}
	if p.Page > 1 {
		page.Links.Previous = link(p.Page - 1)
	}
	if p.Page < totalPages {
		page.Links.Next = link(p.Page + 1)
	}
	return page
}
