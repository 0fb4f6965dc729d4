package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

type eventRepository struct{ pool *pgxpool.Pool }

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Event{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO events (slug, title, intro, starts_at, ends_at, location_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, slug, title, intro, starts_at, ends_at, location_id, created_at, updated_at`,
		e.Slug, e.Title, e.Intro, e.StartsAt, e.EndsAt, e.LocationID,
	)
	var out model.Event
	if err := row.Scan(&out.ID, &out.Slug, &out.Title, &out.Intro, &out.StartsAt, &out.EndsAt, &out.LocationID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Event{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (model.Event, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Event{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, slug, title, intro, starts_at, ends_at, location_id, created_at, updated_at
		 FROM events WHERE slug = $1`, slug,
	)
	var out model.Event
	if err := row.Scan(&out.ID, &out.Slug, &out.Title, &out.Intro, &out.StartsAt, &out.EndsAt, &out.LocationID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, repository.ErrNotFound
		}
		return model.Event{}, repository.MapPgError(err)
	}
	return out, nil
}

// ListUpcoming returns events that have not finished yet, soonest first.
func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time, p repository.Page) (repository.PageResult[model.Event], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Event]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, slug, title, intro, starts_at, ends_at, location_id, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM events
		 WHERE ends_at >= $1
		 ORDER BY starts_at, id
		 LIMIT $2 OFFSET $3`,
		now, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Event]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Event]{Items: make([]model.Event, 0, limit)}
	for rows.Next() {
		var e model.Event
		var total int
		if err := rows.Scan(&e.ID, &e.Slug, &e.Title, &e.Intro, &e.StartsAt, &e.EndsAt, &e.LocationID, &e.CreatedAt, &e.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Event]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, e)
		res.Total = total
	}
	return res, nil
}

func (r *eventRepository) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE ends_at >= $1`, now).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}
