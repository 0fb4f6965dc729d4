package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

type postRepository struct{ pool *pgxpool.Pool }

func NewPostRepository(pool *pgxpool.Pool) repository.PostRepository {
	return &postRepository{pool: pool}
}

const postColumns = `id, slug, title, intro, body, date, authors, tags, section_id,
	published, first_published_at, created_at, updated_at`

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Intro, &p.Body, &p.Date,
		&p.Authors, &p.Tags, &p.SectionID, &p.Published, &p.FirstPublishedAt,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *postRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO posts (slug, title, intro, body, date, authors, tags, section_id, published, first_published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CASE WHEN $9 THEN now() END)
		 RETURNING `+postColumns,
		p.Slug, p.Title, p.Intro, p.Body, p.Date, p.Authors, p.Tags, p.SectionID, p.Published,
	)
	out, err := scanPost(row)
	if err != nil {
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanPost(exec.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, repository.ErrNotFound
		}
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

// listPosts runs a published-posts window query with an extra WHERE fragment.
// Every listing orders newest first by first_published_at so page windows stay
// stable for the duration of one pagination computation.
func (r *postRepository) listPosts(ctx context.Context, where string, p repository.Page, args ...any) (repository.PageResult[model.Post], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Post]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	args = append(args, limit, offset)

	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+postColumns+`, COUNT(*) OVER() AS total
		 FROM posts
		 WHERE published `+where+`
		 ORDER BY first_published_at DESC, id DESC
		 LIMIT $`+strconv.Itoa(len(args)-1)+` OFFSET $`+strconv.Itoa(len(args)),
		args...,
	)
	if err != nil {
		return repository.PageResult[model.Post]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Post]{Items: make([]model.Post, 0, limit)}
	for rows.Next() {
		var p model.Post
		var total int
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Intro, &p.Body, &p.Date,
			&p.Authors, &p.Tags, &p.SectionID, &p.Published, &p.FirstPublishedAt,
			&p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Post]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, p)
		res.Total = total
	}
	return res, nil
}

func (r *postRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Post], error) {
	return r.listPosts(ctx, "", p)
}

func (r *postRepository) ListByTag(ctx context.Context, tag string, p repository.Page) (repository.PageResult[model.Post], error) {
	return r.listPosts(ctx, "AND $1 = ANY(tags)", p, tag)
}

func (r *postRepository) ListBySection(ctx context.Context, sectionID int64, p repository.Page) (repository.PageResult[model.Post], error) {
	return r.listPosts(ctx, "AND section_id = $1", p, sectionID)
}

func (r *postRepository) CountPublished(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE published`).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *postRepository) CountByTag(ctx context.Context, tag string) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE published AND $1 = ANY(tags)`, tag).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}
