// Package pagination turns a total item count, a page size, and a raw page
// parameter into a safe window over an ordered collection, plus a compressed
// pager display for navigation controls. It is pure computation: no I/O, no
// shared state, safe for concurrent use.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration marks a caller contract violation: a non-positive
// page size, a current page outside [1, totalPages], or a pager window too
// narrow for its boundary count. These are programming or site-settings
// errors, never user input, so they fail fast instead of being clamped.
var ErrInvalidConfiguration = errors.New("invalid pagination configuration")

// Result describes one resolved page over an ordered collection.
// Offset and Limit are ready to feed a repository Page or a slice expression.
type Result struct {
	PageNumber int `json:"page_number"`
	Offset     int `json:"-"`
	Limit      int `json:"-"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Paginate resolves a raw page parameter against a collection size.
//
// The page parameter is user input and degrades instead of erroring: absent or
// unparseable values resolve to page 1, values above the last page clamp to
// it. A page size below 1 is a configuration bug and returns
// ErrInvalidConfiguration; an empty collection still has exactly one page.
func Paginate(totalItems, pageSize int, requestedPage string) (Result, error) {
	if pageSize < 1 {
		return Result{}, invalidConfig("page size must be >= 1")
	}
	if totalItems < 0 {
		return Result{}, invalidConfig("total items must be >= 0")
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := 1
	if n, err := strconv.Atoi(strings.TrimSpace(requestedPage)); err == nil {
		page = n
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Result{
		PageNumber: page,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}, nil
}

// Slice applies a resolved page to an already-materialized collection.
// Useful when the caller holds all items in memory rather than delegating
// the window to a repository query.
func Slice[T any](items []T, r Result) []T {
	if r.Offset >= len(items) {
		return nil
	}
	end := r.Offset + r.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[r.Offset:end]
}

func invalidConfig(msg string) error {
	return &configError{msg: msg}
}

// configError carries a human-readable detail while unwrapping to the
// ErrInvalidConfiguration marker, mirroring how service-level validation
// errors aggregate under a single sentinel.
type configError struct {
	msg string
}

func (e *configError) Error() string { return ErrInvalidConfiguration.Error() + ": " + e.msg }
func (e *configError) Unwrap() error { return ErrInvalidConfiguration }
