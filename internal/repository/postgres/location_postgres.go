package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

type locationRepository struct{ pool *pgxpool.Pool }

func NewLocationRepository(pool *pgxpool.Pool) repository.LocationRepository {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) Create(ctx context.Context, l model.Location) (model.Location, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Location{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO locations (slug, name, intro, address, lat, long)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, slug, name, intro, address, lat, long, created_at, updated_at`,
		l.Slug, l.Name, l.Intro, l.Address, l.Lat, l.Long,
	)
	var out model.Location
	if err := row.Scan(&out.ID, &out.Slug, &out.Name, &out.Intro, &out.Address, &out.Lat, &out.Long, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Location{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *locationRepository) GetBySlug(ctx context.Context, slug string) (model.Location, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Location{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, slug, name, intro, address, lat, long, created_at, updated_at
		 FROM locations WHERE slug = $1`, slug,
	)
	var out model.Location
	if err := row.Scan(&out.ID, &out.Slug, &out.Name, &out.Intro, &out.Address, &out.Lat, &out.Long, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Location{}, repository.ErrNotFound
		}
		return model.Location{}, repository.MapPgError(err)
	}
	return out, nil
}

// List orders locations by name, matching the site's alphabetical index view.
func (r *locationRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Location], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Location]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, slug, name, intro, address, lat, long, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM locations
		 ORDER BY name
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Location]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Location]{Items: make([]model.Location, 0, limit)}
	for rows.Next() {
		var l model.Location
		var total int
		if err := rows.Scan(&l.ID, &l.Slug, &l.Name, &l.Intro, &l.Address, &l.Lat, &l.Long, &l.CreatedAt, &l.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Location]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, l)
		res.Total = total
	}
	return res, nil
}

func (r *locationRepository) ListHours(ctx context.Context, locationID int64) ([]model.OperatingHours, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, location_id, day_of_week, COALESCE(time_open, ''), COALESCE(time_close, ''), is_closed, COALESCE(holiday_text, '')
		 FROM operating_hours
		 WHERE location_id = $1
		 ORDER BY sort_order, id`,
		locationID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	var out []model.OperatingHours
	for rows.Next() {
		var h model.OperatingHours
		if err := rows.Scan(&h.ID, &h.LocationID, &h.DayOfWeek, &h.TimeOpen, &h.TimeClose, &h.IsClosed, &h.HolidayText); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, h)
	}
	return out, nil
}

// ReplaceHours swaps the full weekly schedule. Callers run it inside
// TxManager.WithinTx so readers never observe a half-written week.
func (r *locationRepository) ReplaceHours(ctx context.Context, locationID int64, hours []model.OperatingHours) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM operating_hours WHERE location_id = $1`, locationID); err != nil {
		return repository.MapPgError(err)
	}
	for i, h := range hours {
		_, err := exec.Exec(ctx,
			`INSERT INTO operating_hours (location_id, day_of_week, time_open, time_close, is_closed, holiday_text, sort_order)
			 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7)`,
			locationID, h.DayOfWeek, h.TimeOpen, h.TimeClose, h.IsClosed, h.HolidayText, i,
		)
		if err != nil {
			return repository.MapPgError(err)
		}
	}
	return nil
}

func (r *locationRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}
