package service_test

import (
	"context"
	"io"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/pagination"
	"github.com/clubrail/content-service/internal/repository"
	"github.com/clubrail/content-service/internal/service"
)

// fakePostRepo serves windows over an in-memory slice, newest-first order
// assumed to be the slice order.
type fakePostRepo struct {
	posts     []model.Post
	createErr error
	lastPage  repository.Page // capture window for pagination tests
}

func newFakePostRepo(published int, tagged map[int][]string) *fakePostRepo {
	f := &fakePostRepo{}
	for i := 0; i < published; i++ {
		ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Hour)
		p := model.Post{
			ID:               int64(i + 1),
			Slug:             "post-" + strconv.Itoa(i+1),
			Title:            "Post " + strconv.Itoa(i+1),
			Date:             ts,
			Published:        true,
			FirstPublishedAt: &ts,
			Tags:             tagged[i],
		}
		f.posts = append(f.posts, p)
	}
	return f
}

func (f *fakePostRepo) window(items []model.Post, p repository.Page) repository.PageResult[model.Post] {
	f.lastPage = p
	res := repository.PageResult[model.Post]{Total: len(items)}
	if p.Offset >= len(items) {
		return res
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	res.Items = items[p.Offset:end]
	return res
}

func (f *fakePostRepo) Create(_ context.Context, p model.Post) (model.Post, error) {
	if f.createErr != nil {
		return model.Post{}, f.createErr
	}
	p.ID = int64(len(f.posts) + 1)
	f.posts = append(f.posts, p)
	return p, nil
}

func (f *fakePostRepo) GetBySlug(_ context.Context, slug string) (model.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Post{}, repository.ErrNotFound
}

func (f *fakePostRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Post], error) {
	return f.window(f.posts, p), nil
}

func (f *fakePostRepo) ListByTag(_ context.Context, tag string, p repository.Page) (repository.PageResult[model.Post], error) {
	var tagged []model.Post
	for _, post := range f.posts {
		for _, tg := range post.Tags {
			if tg == tag {
				tagged = append(tagged, post)
				break
			}
		}
	}
	return f.window(tagged, p), nil
}

func (f *fakePostRepo) ListBySection(_ context.Context, sectionID int64, p repository.Page) (repository.PageResult[model.Post], error) {
	var in []model.Post
	for _, post := range f.posts {
		if post.SectionID != nil && *post.SectionID == sectionID {
			in = append(in, post)
		}
	}
	return f.window(in, p), nil
}

func (f *fakePostRepo) CountPublished(_ context.Context) (int, error) { return len(f.posts), nil }

func (f *fakePostRepo) CountByTag(_ context.Context, tag string) (int, error) {
	n := 0
	for _, post := range f.posts {
		for _, tg := range post.Tags {
			if tg == tag {
				n++
				break
			}
		}
	}
	return n, nil
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func newPostService(repo repository.PostRepository, pager service.PaginationSettings) service.PostService {
	return service.NewPostService(repo, pager, zerolog.New(io.Discard))
}

func TestPostService_Archive_WindowAndPager(t *testing.T) {
	repo := newFakePostRepo(13, nil)
	svc := newPostService(repo, service.DefaultPaginationSettings())

	cases := []struct {
		name       string
		page       string
		wantPage   int
		wantItems  int
		wantOffset int
	}{
		{"absent resolves to first", "", 1, 6, 0},
		{"garbage resolves to first", "abc", 1, 6, 0},
		{"negative resolves to first", "-2", 1, 6, 0},
		{"middle page", "2", 2, 6, 6},
		{"last page is partial", "3", 3, 1, 12},
		{"overlarge clamps to last", "99", 3, 1, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Archive(context.Background(), tc.page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.PageNumber != tc.wantPage || res.TotalPages != 3 || res.TotalItems != 13 {
				t.Fatalf("unexpected page coords: %+v", res)
			}
			if len(res.Items) != tc.wantItems {
				t.Fatalf("want %d items, got %d", tc.wantItems, len(res.Items))
			}
			if repo.lastPage.Offset != tc.wantOffset || repo.lastPage.Limit != 6 {
				t.Fatalf("unexpected repo window: %+v", repo.lastPage)
			}
			want := []int{1, 2, 3}
			if !reflect.DeepEqual(res.Pager, want) {
				t.Fatalf("pager: want %v, got %v", want, res.Pager)
			}
		})
	}
}

func TestPostService_Archive_EmptyCollection(t *testing.T) {
	svc := newPostService(newFakePostRepo(0, nil), service.DefaultPaginationSettings())
	res, err := svc.Archive(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PageNumber != 1 || res.TotalPages != 1 || len(res.Items) != 0 {
		t.Fatalf("empty archive should be a single empty page: %+v", res)
	}
	if !reflect.DeepEqual(res.Pager, []int{1}) {
		t.Fatalf("pager for empty archive: %v", res.Pager)
	}
}

func TestPostService_Archive_CompressedPager(t *testing.T) {
	// 120 posts at 6 per page -> 20 pages; the middle page shows both ellipses.
	svc := newPostService(newFakePostRepo(120, nil), service.DefaultPaginationSettings())
	res, err := svc.Archive(context.Background(), "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, pagination.Ellipsis, 9, 10, 11, pagination.Ellipsis, 18, 19, 20}
	if !reflect.DeepEqual(res.Pager, want) {
		t.Fatalf("pager: want %v, got %v", want, res.Pager)
	}
}

func TestPostService_Archive_MisconfiguredPageSize(t *testing.T) {
	svc := newPostService(newFakePostRepo(5, nil), service.PaginationSettings{PageSize: 0, MaxVisiblePages: 7, BoundaryCount: 3})
	_, err := svc.Archive(context.Background(), "1")
	if err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestPostService_ArchiveByTag(t *testing.T) {
	repo := newFakePostRepo(10, map[int][]string{0: {"gala"}, 4: {"gala"}, 7: {"diesel"}})
	svc := newPostService(repo, service.DefaultPaginationSettings())

	res, err := svc.ArchiveByTag(context.Background(), "gala", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalItems != 2 || len(res.Items) != 2 {
		t.Fatalf("unexpected tag archive: %+v", res)
	}

	if _, err := svc.ArchiveByTag(context.Background(), "  ", ""); err == nil {
		t.Fatalf("blank tag should be a validation error")
	}
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc := newPostService(newFakePostRepo(0, nil), service.DefaultPaginationSettings())

	valid := model.Post{
		Slug:  "spring-gala-2025",
		Title: "Spring Gala",
		Date:  time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name    string
		mutate  func(p *model.Post)
		wantErr bool
	}{
		{"ok", func(p *model.Post) {}, false},
		{"empty slug", func(p *model.Post) { p.Slug = "" }, true},
		{"uppercase slug", func(p *model.Post) { p.Slug = "Spring-Gala" }, true},
		{"slug with spaces", func(p *model.Post) { p.Slug = "spring gala" }, true},
		{"empty title", func(p *model.Post) { p.Title = "   " }, true},
		{"missing date", func(p *model.Post) { p.Date = time.Time{} }, true},
		{"empty tag", func(p *model.Post) { p.Tags = []string{"ok", " "} }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			_, err := svc.CreatePost(context.Background(), p)
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && len(service.FieldErrors(err)) == 0 {
				t.Fatalf("expected field errors, got %v", err)
			}
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	repo := newFakePostRepo(1, nil)
	svc := newPostService(repo, service.DefaultPaginationSettings())

	if _, err := svc.GetPost(context.Background(), "post-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPost(context.Background(), "nope"); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetPost(context.Background(), " "); err == nil {
		t.Fatalf("blank slug should be a validation error")
	}
}
