package repository

import (
	"context"
	"time"

	"github.com/clubrail/content-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PostRepository declares persistence operations for posts.
// List* methods return only published posts, newest first, and surface the
// matching total so the caller can paginate without a second query.
type PostRepository interface {
	Create(ctx context.Context, p model.Post) (model.Post, error)
	GetBySlug(ctx context.Context, slug string) (model.Post, error)
	List(ctx context.Context, page Page) (PageResult[model.Post], error)
	ListByTag(ctx context.Context, tag string, page Page) (PageResult[model.Post], error)
	ListBySection(ctx context.Context, sectionID int64, page Page) (PageResult[model.Post], error)
	CountPublished(ctx context.Context) (int, error)
	CountByTag(ctx context.Context, tag string) (int, error)
}

// SectionRepository declares persistence operations for sections.
type SectionRepository interface {
	Create(ctx context.Context, s model.Section) (model.Section, error)
	GetBySlug(ctx context.Context, slug string) (model.Section, error)
	List(ctx context.Context, page Page) (PageResult[model.Section], error)
}

// LocationRepository declares persistence operations for locations and their
// weekly operating hours.
type LocationRepository interface {
	Create(ctx context.Context, l model.Location) (model.Location, error)
	GetBySlug(ctx context.Context, slug string) (model.Location, error)
	List(ctx context.Context, page Page) (PageResult[model.Location], error)
	Count(ctx context.Context) (int, error)
	ListHours(ctx context.Context, locationID int64) ([]model.OperatingHours, error)
	ReplaceHours(ctx context.Context, locationID int64, hours []model.OperatingHours) error
}

// EventRepository declares persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	GetBySlug(ctx context.Context, slug string) (model.Event, error)
	ListUpcoming(ctx context.Context, now time.Time, page Page) (PageResult[model.Event], error)
	CountUpcoming(ctx context.Context, now time.Time) (int, error)
}
