package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/pagination"
	"github.com/clubrail/content-service/internal/repository"
)

// postService holds post use-case logic: validation + orchestration, no transport / SQL details.
type postService struct {
	repo  repository.PostRepository
	pager PaginationSettings
	log   zerolog.Logger
}

func NewPostService(repo repository.PostRepository, pager PaginationSettings, logger zerolog.Logger) PostService {
	l := logger.With().Str("module", "service").Str("component", "post").Logger()
	return &postService{repo: repo, pager: pager, log: l}
}

func (s *postService) CreatePost(ctx context.Context, p model.Post) (model.Post, error) {
	start := time.Now()
	p.Slug = strings.TrimSpace(p.Slug)
	p.Title = strings.TrimSpace(p.Title)

	var ferrs []FieldError
	if !isValidSlug(p.Slug) {
		ferrs = append(ferrs, FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	ferrs = validateTitleIntro(p.Title, p.Intro, ferrs)
	if p.Date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be set"})
	}
	for _, tag := range p.Tags {
		if strings.TrimSpace(tag) == "" {
			ferrs = append(ferrs, FieldError{Field: "tags", Message: "must not contain empty tags"})
			break
		}
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("slug_raw", p.Slug).Interface("field_errors", ferrs).Msg("post validation failed")
		return model.Post{}, err
	}

	out, err := s.repo.Create(ctx, p)
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("slug", p.Slug).Msg("create post failed")
		return model.Post{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("post_id", out.ID).Msg("post created")
	return out, nil
}

func (s *postService) GetPost(ctx context.Context, slug string) (model.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return model.Post{}, newInvalidInput([]FieldError{{Field: "slug", Message: "must not be empty"}})
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Archive resolves one page of the reverse-chronological post listing.
// The raw page parameter degrades to a valid page; a broken site pagination
// configuration surfaces as pagination.ErrInvalidConfiguration.
func (s *postService) Archive(ctx context.Context, requestedPage string) (model.PostArchive, error) {
	total, err := s.repo.CountPublished(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count published posts failed")
		return model.PostArchive{}, err
	}
	return s.archivePage(ctx, total, requestedPage, s.repo.List)
}

// ArchiveByTag is the tag-archive variant of Archive.
func (s *postService) ArchiveByTag(ctx context.Context, tag, requestedPage string) (model.PostArchive, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return model.PostArchive{}, newInvalidInput([]FieldError{{Field: "tag", Message: "must not be empty"}})
	}
	total, err := s.repo.CountByTag(ctx, tag)
	if err != nil {
		s.log.Error().Err(err).Str("tag", tag).Msg("count posts by tag failed")
		return model.PostArchive{}, err
	}
	return s.archivePage(ctx, total, requestedPage, func(ctx context.Context, p repository.Page) (repository.PageResult[model.Post], error) {
		return s.repo.ListByTag(ctx, tag, p)
	})
}

func (s *postService) archivePage(ctx context.Context, total int, requestedPage string,
	fetch func(context.Context, repository.Page) (repository.PageResult[model.Post], error)) (model.PostArchive, error) {

	res, err := pagination.Paginate(total, s.pager.PageSize, requestedPage)
	if err != nil {
		s.log.Error().Err(err).Int("page_size", s.pager.PageSize).Msg("pagination misconfigured")
		return model.PostArchive{}, err
	}
	tokens, err := pagination.BuildPagerDisplay(res.TotalPages, res.PageNumber, s.pager.MaxVisiblePages, s.pager.BoundaryCount)
	if err != nil {
		s.log.Error().Err(err).Msg("pager display misconfigured")
		return model.PostArchive{}, err
	}

	window, err := fetch(ctx, repository.PageFrom(res))
	if err != nil {
		s.log.Error().Err(err).Int("page", res.PageNumber).Msg("list posts failed")
		return model.PostArchive{}, err
	}
	return model.PostArchive{
		Items:      window.Items,
		PageNumber: res.PageNumber,
		TotalPages: res.TotalPages,
		TotalItems: total,
		Pager:      tokens,
	}, nil
}
