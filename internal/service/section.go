package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

// Bounds on how many recent posts a section landing may show, matching the
// editor-facing constraint on the original landing pages.
const (
	minSectionRecent     = 1
	maxSectionRecent     = 12
	defaultSectionRecent = 6
)

type sectionService struct {
	sections repository.SectionRepository
	posts    repository.PostRepository
	log      zerolog.Logger
}

func NewSectionService(sections repository.SectionRepository, posts repository.PostRepository, logger zerolog.Logger) SectionService {
	l := logger.With().Str("module", "service").Str("component", "section").Logger()
	return &sectionService{sections: sections, posts: posts, log: l}
}

func (s *sectionService) CreateSection(ctx context.Context, sec model.Section) (model.Section, error) {
	start := time.Now()
	sec.Slug = strings.TrimSpace(sec.Slug)
	sec.Title = strings.TrimSpace(sec.Title)
	if sec.MaxRecent == 0 {
		sec.MaxRecent = defaultSectionRecent
	}

	var ferrs []FieldError
	if !isValidSlug(sec.Slug) {
		ferrs = append(ferrs, FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	ferrs = validateTitleIntro(sec.Title, sec.Intro, ferrs)
	if sec.MaxRecent < minSectionRecent || sec.MaxRecent > maxSectionRecent {
		ferrs = append(ferrs, FieldError{Field: "max_recent", Message: "must be between 1 and 12"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("slug_raw", sec.Slug).Interface("field_errors", ferrs).Msg("section validation failed")
		return model.Section{}, err
	}

	out, err := s.sections.Create(ctx, sec)
	if err != nil {
		s.log.Error().Err(err).Str("slug", sec.Slug).Msg("create section failed")
		return model.Section{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("section_id", out.ID).Msg("section created")
	return out, nil
}

func (s *sectionService) ListSections(ctx context.Context) ([]model.Section, error) {
	res, err := s.sections.List(ctx, repository.Page{})
	if err != nil {
		s.log.Error().Err(err).Msg("list sections failed")
		return nil, err
	}
	return res.Items, nil
}

// Landing assembles a section landing page: the newest post becomes the promo
// slot, the following MaxRecent posts fill the recent strip.
func (s *sectionService) Landing(ctx context.Context, slug string) (model.SectionLanding, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return model.SectionLanding{}, newInvalidInput([]FieldError{{Field: "slug", Message: "must not be empty"}})
	}

	sec, err := s.sections.GetBySlug(ctx, slug)
	if err != nil {
		return model.SectionLanding{}, err
	}

	// One extra item beyond MaxRecent covers the promo slot.
	window, err := s.posts.ListBySection(ctx, sec.ID, repository.Page{Limit: sec.MaxRecent + 1})
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("list section posts failed")
		return model.SectionLanding{}, err
	}

	landing := model.SectionLanding{Section: sec, Recent: []model.Post{}}
	if len(window.Items) > 0 {
		promo := window.Items[0]
		landing.Promo = &promo
		landing.Recent = window.Items[1:]
	}
	return landing, nil
}
