// Package contract holds reusable repository conformance suites. Any storage
// implementation (Postgres today, something else tomorrow) must pass them;
// factories let the caller supply a live repository plus its cleanup.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/repository"
)

type PostFactory func(t *testing.T) (repository.PostRepository, func())

type SectionFactory func(t *testing.T) (repository.SectionRepository, func())

type LocationFactory func(t *testing.T) (repository.LocationRepository, func())

type EventFactory func(t *testing.T) (repository.EventRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, locations repository.LocationRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func seedPost(slug string, published bool, tags ...string) model.Post {
	return model.Post{
		Slug:      slug,
		Title:     "Post " + slug,
		Intro:     "intro",
		Body:      "body",
		Date:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Tags:      tags,
		Published: published,
	}
}

func RunPostRepositoryContract(t *testing.T, makeRepo PostFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedPost("first-run", true, "steam"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetBySlug(ctx, created.Slug)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Title != created.Title {
			t.Fatalf("mismatch: %+v", got)
		}
		if created.FirstPublishedAt == nil {
			t.Fatalf("published post must get a first_published_at timestamp")
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetBySlug(context.Background(), "missing-slug")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_excludes_drafts_and_reports_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, seedPost("pub-"+string(rune('a'+i)), true)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		if _, err := repo.Create(ctx, seedPost("draft-x", false)); err != nil {
			t.Fatalf("seed draft: %v", err)
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(res2.Items), res2.Total)
		}
		total, err := repo.CountPublished(ctx)
		if err != nil || total != 7 {
			t.Fatalf("count published: total=%d err=%v", total, err)
		}
	})

	t.Run("list_by_tag", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedPost("tagged-1", true, "gala", "steam")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Create(ctx, seedPost("tagged-2", true, "diesel")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.ListByTag(ctx, "gala", repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("list by tag: %v", err)
		}
		if len(res.Items) != 1 || res.Items[0].Slug != "tagged-1" {
			t.Fatalf("unexpected tag page: %+v", res.Items)
		}
		n, err := repo.CountByTag(ctx, "gala")
		if err != nil || n != 1 {
			t.Fatalf("count by tag: n=%d err=%v", n, err)
		}
	})

	t.Run("create_duplicate_slug_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedPost("dup", true)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, seedPost("dup", true))
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func RunSectionRepositoryContract(t *testing.T, makeRepo SectionFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Section{Slug: "heritage", Title: "Heritage", MaxRecent: 6})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetBySlug(ctx, "heritage")
		if err != nil || got.ID != created.ID {
			t.Fatalf("get failed: %+v err=%v", got, err)
		}
	})

	t.Run("list_alphabetical", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, s := range []string{"zulu", "alpha"} {
			if _, err := repo.Create(ctx, model.Section{Slug: s, Title: s, MaxRecent: 6}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Items[0].Slug != "alpha" {
			t.Fatalf("expected alphabetical order, got %+v", res.Items)
		}
	})
}

func seedLocation(slug string) model.Location {
	return model.Location{Slug: slug, Name: "Loc " + slug, Address: "1 Main St", Lat: 43.6, Long: -79.3}
}

func RunLocationRepositoryContract(t *testing.T, makeRepo LocationFactory) {
	t.Helper()

	t.Run("create_get_and_count", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedLocation("roundhouse"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetBySlug(ctx, "roundhouse")
		if err != nil || got.ID != created.ID {
			t.Fatalf("get failed: %+v err=%v", got, err)
		}
		n, err := repo.Count(ctx)
		if err != nil || n != 1 {
			t.Fatalf("count: n=%d err=%v", n, err)
		}
	})

	t.Run("replace_and_list_hours", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		loc, err := repo.Create(ctx, seedLocation("depot"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		week := []model.OperatingHours{
			{DayOfWeek: "MON", TimeOpen: "09:00", TimeClose: "17:00"},
			{DayOfWeek: "SUN", IsClosed: true, HolidayText: "Closed Sundays"},
		}
		if err := repo.ReplaceHours(ctx, loc.ID, week); err != nil {
			t.Fatalf("replace hours: %v", err)
		}
		hours, err := repo.ListHours(ctx, loc.ID)
		if err != nil {
			t.Fatalf("list hours: %v", err)
		}
		if len(hours) != 2 || hours[0].DayOfWeek != "MON" || !hours[1].IsClosed {
			t.Fatalf("unexpected hours: %+v", hours)
		}
		// Replacing again swaps the whole week, never appends.
		if err := repo.ReplaceHours(ctx, loc.ID, week[:1]); err != nil {
			t.Fatalf("replace hours again: %v", err)
		}
		hours, err = repo.ListHours(ctx, loc.ID)
		if err != nil || len(hours) != 1 {
			t.Fatalf("expected one slot after replace, got %+v err=%v", hours, err)
		}
	})
}

func RunEventRepositoryContract(t *testing.T, makeRepo EventFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		start := time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)
		created, err := repo.Create(ctx, model.Event{Slug: "open-day", Title: "Open Day", StartsAt: start, EndsAt: start.Add(6 * time.Hour)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetBySlug(ctx, "open-day")
		if err != nil {
			t.Fatalf("get by slug: %v", err)
		}
		if got.ID != created.ID || !got.StartsAt.Equal(start) {
			t.Fatalf("roundtrip mismatch: %+v vs %+v", got, created)
		}
		if _, err := repo.GetBySlug(ctx, "absent"); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("upcoming_window_and_order", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mk := func(slug string, daysFromNow int) model.Event {
			start := now.AddDate(0, 0, daysFromNow)
			return model.Event{Slug: slug, Title: slug, StartsAt: start, EndsAt: start.Add(4 * time.Hour)}
		}
		for _, e := range []model.Event{mk("past-show", -10), mk("soon-gala", 2), mk("later-run", 30)} {
			if _, err := repo.Create(ctx, e); err != nil {
				t.Fatalf("seed %s: %v", e.Slug, err)
			}
		}
		res, err := repo.ListUpcoming(ctx, now, repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("list upcoming: %v", err)
		}
		if len(res.Items) != 2 || res.Items[0].Slug != "soon-gala" {
			t.Fatalf("unexpected upcoming page: %+v", res.Items)
		}
		n, err := repo.CountUpcoming(ctx, now)
		if err != nil || n != 2 {
			t.Fatalf("count upcoming: n=%d err=%v", n, err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, locations, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := locations.Create(ctx, seedLocation("tx-commit"))
			if err != nil {
				return err
			}
			return locations.ReplaceHours(ctx, out.ID, []model.OperatingHours{{DayOfWeek: "SAT", TimeOpen: "10:00", TimeClose: "16:00"}})
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := locations.GetBySlug(ctx, "tx-commit"); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, locations, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		errMarker := assertErr("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := locations.Create(ctx, seedLocation("tx-rollback")); err != nil {
				return err
			}
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := locations.GetBySlug(ctx, "tx-rollback"); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

// assertErr builds a sentinel error without importing errors to keep helpers local.
func assertErr(msg string) error { return &sentinel{msg} }

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
