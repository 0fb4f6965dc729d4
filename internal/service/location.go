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

type locationService struct {
	repo  repository.LocationRepository
	tx    repository.TxManager
	pager PaginationSettings
	log   zerolog.Logger
}

func NewLocationService(repo repository.LocationRepository, tx repository.TxManager, pager PaginationSettings, logger zerolog.Logger) LocationService {
	l := logger.With().Str("module", "service").Str("component", "location").Logger()
	return &locationService{repo: repo, tx: tx, pager: pager, log: l}
}

// CreateLocation stores a location and, when hours are supplied, its weekly
// schedule in one transaction.
func (s *locationService) CreateLocation(ctx context.Context, l model.Location, hours []model.OperatingHours) (model.Location, error) {
	start := time.Now()
	l.Slug = strings.TrimSpace(l.Slug)
	l.Name = strings.TrimSpace(l.Name)

	var ferrs []FieldError
	if !isValidSlug(l.Slug) {
		ferrs = append(ferrs, FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if l.Name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if strings.TrimSpace(l.Address) == "" {
		ferrs = append(ferrs, FieldError{Field: "address", Message: "must not be empty"})
	}
	if l.Lat < -90 || l.Lat > 90 {
		ferrs = append(ferrs, FieldError{Field: "lat", Message: "must be between -90 and 90"})
	}
	if l.Long < -180 || l.Long > 180 {
		ferrs = append(ferrs, FieldError{Field: "long", Message: "must be between -180 and 180"})
	}
	ferrs = append(ferrs, validateHours(hours)...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("slug_raw", l.Slug).Interface("field_errors", ferrs).Msg("location validation failed")
		return model.Location{}, err
	}
	hours = normalizeHours(hours)

	var out model.Location
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.Create(ctx, l)
		if err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return s.repo.ReplaceHours(ctx, out.ID, hours)
	})
	if err != nil {
		s.log.Error().Err(err).Str("slug", l.Slug).Msg("create location failed")
		return model.Location{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("location_id", out.ID).Msg("location created")
	return out, nil
}

// normalizeHours canonicalizes day codes to the stored MON..SUN form. The
// schema and isOpenAt both expect upper case, so lowercase input that passed
// validation must never reach the insert as-is.
func normalizeHours(hours []model.OperatingHours) []model.OperatingHours {
	out := make([]model.OperatingHours, len(hours))
	for i, h := range hours {
		h.DayOfWeek = strings.ToUpper(strings.TrimSpace(h.DayOfWeek))
		out[i] = h
	}
	return out
}

func validateHours(hours []model.OperatingHours) []FieldError {
	var ferrs []FieldError
	for _, h := range hours {
		if !isValidDayOfWeek(h.DayOfWeek) {
			ferrs = append(ferrs, FieldError{Field: "hours.day_of_week", Message: "must be one of MON..SUN"})
			break
		}
	}
	for _, h := range hours {
		if h.IsClosed {
			continue
		}
		if _, ok := parseClock(h.TimeOpen); h.TimeOpen != "" && !ok {
			ferrs = append(ferrs, FieldError{Field: "hours.time_open", Message: "must be HH:MM"})
			break
		}
		if _, ok := parseClock(h.TimeClose); h.TimeClose != "" && !ok {
			ferrs = append(ferrs, FieldError{Field: "hours.time_close", Message: "must be HH:MM"})
			break
		}
	}
	return ferrs
}

// ListLocations resolves one page of the alphabetical locations index.
func (s *locationService) ListLocations(ctx context.Context, requestedPage string) (model.LocationListing, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count locations failed")
		return model.LocationListing{}, err
	}

	res, err := pagination.Paginate(total, s.pager.PageSize, requestedPage)
	if err != nil {
		s.log.Error().Err(err).Int("page_size", s.pager.PageSize).Msg("pagination misconfigured")
		return model.LocationListing{}, err
	}
	tokens, err := pagination.BuildPagerDisplay(res.TotalPages, res.PageNumber, s.pager.MaxVisiblePages, s.pager.BoundaryCount)
	if err != nil {
		s.log.Error().Err(err).Msg("pager display misconfigured")
		return model.LocationListing{}, err
	}

	window, err := s.repo.List(ctx, repository.PageFrom(res))
	if err != nil {
		s.log.Error().Err(err).Int("page", res.PageNumber).Msg("list locations failed")
		return model.LocationListing{}, err
	}
	return model.LocationListing{
		Items:      window.Items,
		PageNumber: res.PageNumber,
		TotalPages: res.TotalPages,
		TotalItems: total,
		Pager:      tokens,
	}, nil
}

// GetLocation returns a location with its weekly hours and whether it is open
// at the given instant. Open-now is a day-of-week lookup: the slot for the
// instant's weekday must exist, not be marked closed, and the clock must fall
// within [open, close). Unset open or close times never count as open.
func (s *locationService) GetLocation(ctx context.Context, slug string, at time.Time) (model.LocationDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return model.LocationDetail{}, newInvalidInput([]FieldError{{Field: "slug", Message: "must not be empty"}})
	}

	loc, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return model.LocationDetail{}, err
	}
	hours, err := s.repo.ListHours(ctx, loc.ID)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("list operating hours failed")
		return model.LocationDetail{}, err
	}
	if hours == nil {
		hours = []model.OperatingHours{}
	}
	return model.LocationDetail{
		Location: loc,
		Hours:    hours,
		Open:     isOpenAt(hours, at),
	}, nil
}

func isOpenAt(hours []model.OperatingHours, at time.Time) bool {
	day := strings.ToUpper(at.Format("Mon"))
	minutes := at.Hour()*60 + at.Minute()

	for _, h := range hours {
		if h.DayOfWeek != day || h.IsClosed {
			continue
		}
		open, okOpen := parseClock(h.TimeOpen)
		closeAt, okClose := parseClock(h.TimeClose)
		if !okOpen || !okClose {
			continue
		}
		if minutes >= open && minutes < closeAt {
			return true
		}
	}
	return false
}
