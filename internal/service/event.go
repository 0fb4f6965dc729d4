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

type eventService struct {
	repo  repository.EventRepository
	pager PaginationSettings
	log   zerolog.Logger
}

func NewEventService(repo repository.EventRepository, pager PaginationSettings, logger zerolog.Logger) EventService {
	l := logger.With().Str("module", "service").Str("component", "event").Logger()
	return &eventService{repo: repo, pager: pager, log: l}
}

func (s *eventService) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	start := time.Now()
	e.Slug = strings.TrimSpace(e.Slug)
	e.Title = strings.TrimSpace(e.Title)

	var ferrs []FieldError
	if !isValidSlug(e.Slug) {
		ferrs = append(ferrs, FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	ferrs = validateTitleIntro(e.Title, e.Intro, ferrs)
	if e.StartsAt.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "starts_at", Message: "must be set"})
	}
	if e.EndsAt.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "ends_at", Message: "must be set"})
	} else if !e.StartsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
		ferrs = append(ferrs, FieldError{Field: "ends_at", Message: "must not be before starts_at"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("slug_raw", e.Slug).Interface("field_errors", ferrs).Msg("event validation failed")
		return model.Event{}, err
	}

	out, err := s.repo.Create(ctx, e)
	if err != nil {
		s.log.Error().Err(err).Str("slug", e.Slug).Msg("create event failed")
		return model.Event{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("event_id", out.ID).Msg("event created")
	return out, nil
}

func (s *eventService) GetEvent(ctx context.Context, slug string) (model.Event, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return model.Event{}, newInvalidInput([]FieldError{{Field: "slug", Message: "must not be empty"}})
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Upcoming resolves one page of not-yet-finished events, soonest first.
func (s *eventService) Upcoming(ctx context.Context, now time.Time, requestedPage string) (model.EventListing, error) {
	total, err := s.repo.CountUpcoming(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("count upcoming events failed")
		return model.EventListing{}, err
	}

	res, err := pagination.Paginate(total, s.pager.PageSize, requestedPage)
	if err != nil {
		s.log.Error().Err(err).Int("page_size", s.pager.PageSize).Msg("pagination misconfigured")
		return model.EventListing{}, err
	}
	tokens, err := pagination.BuildPagerDisplay(res.TotalPages, res.PageNumber, s.pager.MaxVisiblePages, s.pager.BoundaryCount)
	if err != nil {
		s.log.Error().Err(err).Msg("pager display misconfigured")
		return model.EventListing{}, err
	}

	window, err := s.repo.ListUpcoming(ctx, now, repository.PageFrom(res))
	if err != nil {
		s.log.Error().Err(err).Int("page", res.PageNumber).Msg("list upcoming events failed")
		return model.EventListing{}, err
	}
	return model.EventListing{
		Items:      window.Items,
		PageNumber: res.PageNumber,
		TotalPages: res.TotalPages,
		TotalItems: total,
		Pager:      tokens,
	}, nil
}
