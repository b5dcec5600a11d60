package queries

import (
	"strconv"
	"strings"
)

// PageSize is fixed for every listing context.
const PageSize = 10

// Page is one slice of an ordered result set plus the navigation metadata
// renderers need for page links. All of it is computed from the already
// materialized sequence, no extra queries.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Paginate slices items into the 1-indexed page requested. Out-of-range
// page numbers clamp to the first or last valid page; a malformed page
// parameter must never turn into an error response.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = PageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      pageNumber,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
	}
}

// PageNumber parses the raw "page" query parameter. Non-numeric, zero and
// negative values fall back to the first page; Paginate clamps the rest.
func PageNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
