package repository

import "github.com/clubrail/content-service/internal/pagination"

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; page-parameter normalization and pager
// display belong to the pagination package above this layer.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}

// PageFrom converts a resolved pagination result into a query window.
func PageFrom(r pagination.Result) Page {
	return Page{Limit: r.Limit, Offset: r.Offset}
}
