package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

// Stub services record the arguments they were called with and replay canned
// results, one struct per service interface.

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubPostService struct {
	post    model.Post
	archive model.PostArchive
	err     error

	gotSlug string
	gotTag  string
	gotPage string
}

func (s *stubPostService) CreatePost(_ context.Context, p model.Post) (model.Post, error) {
	if s.err != nil {
		return model.Post{}, s.err
	}
	return p, nil
}

func (s *stubPostService) GetPost(_ context.Context, slug string) (model.Post, error) {
	s.gotSlug = slug
	return s.post, s.err
}

func (s *stubPostService) Archive(_ context.Context, page string) (model.PostArchive, error) {
	s.gotPage = page
	return s.archive, s.err
}

func (s *stubPostService) ArchiveByTag(_ context.Context, tag, page string) (model.PostArchive, error) {
	s.gotTag, s.gotPage = tag, page
	return s.archive, s.err
}

type stubSectionService struct {
	section  model.Section
	sections []model.Section
	landing  model.SectionLanding
	err      error
	gotSlug  string
}

func (s *stubSectionService) CreateSection(_ context.Context, sec model.Section) (model.Section, error) {
	if s.err != nil {
		return model.Section{}, s.err
	}
	return sec, nil
}

func (s *stubSectionService) ListSections(context.Context) ([]model.Section, error) {
	return s.sections, s.err
}

func (s *stubSectionService) Landing(_ context.Context, slug string) (model.SectionLanding, error) {
	s.gotSlug = slug
	return s.landing, s.err
}

type stubLocationService struct {
	location model.Location
	listing  model.LocationListing
	detail   model.LocationDetail
	err      error

	gotSlug  string
	gotAt    time.Time
	gotPage  string
	gotHours []model.OperatingHours
}

func (s *stubLocationService) CreateLocation(_ context.Context, l model.Location, hours []model.OperatingHours) (model.Location, error) {
	s.gotHours = hours
	if s.err != nil {
		return model.Location{}, s.err
	}
	return l, nil
}

func (s *stubLocationService) ListLocations(_ context.Context, page string) (model.LocationListing, error) {
	s.gotPage = page
	return s.listing, s.err
}

func (s *stubLocationService) GetLocation(_ context.Context, slug string, at time.Time) (model.LocationDetail, error) {
	s.gotSlug, s.gotAt = slug, at
	return s.detail, s.err
}

type stubEventService struct {
	event   model.Event
	listing model.EventListing
	err     error
	gotNow  time.Time
	gotPage string
	gotSlug string
}

func (s *stubEventService) CreateEvent(_ context.Context, e model.Event) (model.Event, error) {
	if s.err != nil {
		return model.Event{}, s.err
	}
	return e, nil
}

func (s *stubEventService) GetEvent(_ context.Context, slug string) (model.Event, error) {
	s.gotSlug = slug
	return s.event, s.err
}

func (s *stubEventService) Upcoming(_ context.Context, now time.Time, page string) (model.EventListing, error) {
	s.gotNow, s.gotPage = now, page
	return s.listing, s.err
}

var (
	_ service.PostService     = (*stubPostService)(nil)
	_ service.SectionService  = (*stubSectionService)(nil)
	_ service.LocationService = (*stubLocationService)(nil)
	_ service.EventService    = (*stubEventService)(nil)
)

type testDeps struct {
	ping     stubPinger
	posts    *stubPostService
	sections *stubSectionService
	location *stubLocationService
	events   *stubEventService
}

func newTestRouter(d *testDeps) *gin.Engine {
	if d.posts == nil {
		d.posts = &stubPostService{}
	}
	if d.sections == nil {
		d.sections = &stubSectionService{}
	}
	if d.location == nil {
		d.location = &stubLocationService{}
	}
	if d.events == nil {
		d.events = &stubEventService{}
	}
	r := gin.New()
	Register(r, d.ping, d.posts, d.sections, d.location, d.events)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(&testDeps{})

	if w := doRequest(t, r, http.MethodGet, "/live", ""); w.Code != http.StatusOK {
		t.Fatalf("liveness: %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/ready", ""); w.Code != http.StatusOK {
		t.Fatalf("readiness: %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, APIV1Prefix+"/health/ready", ""); w.Code != http.StatusOK {
		t.Fatalf("versioned readiness: %d", w.Code)
	}
}

func TestReadiness_DatabaseDown(t *testing.T) {
	r := newTestRouter(&testDeps{ping: stubPinger{err: context.DeadlineExceeded}})
	if w := doRequest(t, r, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
}
