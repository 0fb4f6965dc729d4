package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

type sectionRepository struct{ pool *pgxpool.Pool }

func NewSectionRepository(pool *pgxpool.Pool) repository.SectionRepository {
	return &sectionRepository{pool: pool}
}

func (r *sectionRepository) Create(ctx context.Context, s model.Section) (model.Section, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Section{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO sections (slug, title, intro, max_recent)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, slug, title, intro, max_recent, created_at, updated_at`,
		s.Slug, s.Title, s.Intro, s.MaxRecent,
	)
	var out model.Section
	if err := row.Scan(&out.ID, &out.Slug, &out.Title, &out.Intro, &out.MaxRecent, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Section{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *sectionRepository) GetBySlug(ctx context.Context, slug string) (model.Section, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Section{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, slug, title, intro, max_recent, created_at, updated_at
		 FROM sections WHERE slug = $1`, slug,
	)
	var out model.Section
	if err := row.Scan(&out.ID, &out.Slug, &out.Title, &out.Intro, &out.MaxRecent, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Section{}, repository.ErrNotFound
		}
		return model.Section{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *sectionRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Section], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Section]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, slug, title, intro, max_recent, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM sections
		 ORDER BY title
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Section]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Section]{Items: make([]model.Section, 0, limit)}
	for rows.Next() {
		var s model.Section
		var total int
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Intro, &s.MaxRecent, &s.CreatedAt, &s.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Section]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, s)
		res.Total = total
	}
	return res, nil
}
