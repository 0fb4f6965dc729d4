// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PaginationSettings is the site-wide pager configuration, passed explicitly
// into services at wiring time so nothing reads ambient global state.
type PaginationSettings struct {
	PageSize        int
	MaxVisiblePages int
	BoundaryCount   int
}

// DefaultPaginationSettings matches the observed site defaults: six items per
// listing page, a seven-token pager window with three boundary pages.
func DefaultPaginationSettings() PaginationSettings {
	return PaginationSettings{
		PageSize:        6,
		MaxVisiblePages: pagination.DefaultMaxVisiblePages,
		BoundaryCount:   pagination.DefaultBoundaryCount,
	}
}

// PostService defines post-oriented use cases. The requestedPage arguments are
// raw query-string values; they normalize and clamp rather than error.
type PostService interface {
	CreatePost(ctx context.Context, p model.Post) (model.Post, error)
	GetPost(ctx context.Context, slug string) (model.Post, error)
	Archive(ctx context.Context, requestedPage string) (model.PostArchive, error)
	ArchiveByTag(ctx context.Context, tag, requestedPage string) (model.PostArchive, error)
}

// SectionService defines section-oriented use cases.
type SectionService interface {
	CreateSection(ctx context.Context, s model.Section) (model.Section, error)
	ListSections(ctx context.Context) ([]model.Section, error)
	Landing(ctx context.Context, slug string) (model.SectionLanding, error)
}

// LocationService defines location-oriented use cases.
type LocationService interface {
	CreateLocation(ctx context.Context, l model.Location, hours []model.OperatingHours) (model.Location, error)
	ListLocations(ctx context.Context, requestedPage string) (model.LocationListing, error)
	GetLocation(ctx context.Context, slug string, at time.Time) (model.LocationDetail, error)
}

// EventService defines event-oriented use cases.
type EventService interface {
	CreateEvent(ctx context.Context, e model.Event) (model.Event, error)
	GetEvent(ctx context.Context, slug string) (model.Event, error)
	Upcoming(ctx context.Context, now time.Time, requestedPage string) (model.EventListing, error)
}
