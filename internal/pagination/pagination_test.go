package pagination_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/clubrail/content-service/internal/pagination"
)

func TestPaginate_EmptyCollection(t *testing.T) {
	res, err := pagination.Paginate(0, 6, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PageNumber != 1 || res.TotalPages != 1 || res.Offset != 0 {
		t.Fatalf("empty collection should resolve to a single empty page, got %+v", res)
	}
}

func TestPaginate_PageParameterNormalization(t *testing.T) {
	cases := []struct {
		name       string
		total      int
		size       int
		requested  string
		wantPage   int
		wantOffset int
		wantTotal  int
	}{
		{"absent", 13, 6, "", 1, 0, 3},
		{"garbage", 13, 6, "abc", 1, 0, 3},
		{"zero", 13, 6, "0", 1, 0, 3},
		{"negative", 13, 6, "-4", 1, 0, 3},
		{"in range", 13, 6, "2", 2, 6, 3},
		{"last page", 13, 6, "3", 3, 12, 3},
		{"beyond last clamps", 13, 6, "99", 3, 12, 3},
		{"whitespace tolerated", 13, 6, " 2 ", 2, 6, 3},
		{"exact multiple", 12, 6, "2", 2, 6, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pagination.Paginate(tc.total, tc.size, tc.requested)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.PageNumber != tc.wantPage {
				t.Fatalf("page: want %d, got %d", tc.wantPage, res.PageNumber)
			}
			if res.Offset != tc.wantOffset {
				t.Fatalf("offset: want %d, got %d", tc.wantOffset, res.Offset)
			}
			if res.TotalPages != tc.wantTotal {
				t.Fatalf("total pages: want %d, got %d", tc.wantTotal, res.TotalPages)
			}
		})
	}
}

func TestPaginate_InvalidConfiguration(t *testing.T) {
	if _, err := pagination.Paginate(10, 0, "1"); !errors.Is(err, pagination.ErrInvalidConfiguration) {
		t.Fatalf("page size 0 should fail with ErrInvalidConfiguration, got %v", err)
	}
	if _, err := pagination.Paginate(10, -3, "1"); !errors.Is(err, pagination.ErrInvalidConfiguration) {
		t.Fatalf("negative page size should fail with ErrInvalidConfiguration, got %v", err)
	}
	if _, err := pagination.Paginate(-1, 6, "1"); !errors.Is(err, pagination.ErrInvalidConfiguration) {
		t.Fatalf("negative total should fail with ErrInvalidConfiguration, got %v", err)
	}
}

func TestSlice_WindowsCoverEveryItemExactlyOnce(t *testing.T) {
	items := make([]int, 13)
	for i := range items {
		items[i] = i
	}

	first, err := pagination.Paginate(len(items), 6, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := 0
	for p := 1; p <= first.TotalPages; p++ {
		res, err := pagination.Paginate(len(items), 6, strconv.Itoa(p))
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", p, err)
		}
		window := pagination.Slice(items, res)
		if len(window) > 6 {
			t.Fatalf("page %d: window longer than page size: %d", p, len(window))
		}
		for _, v := range window {
			if v != seen {
				t.Fatalf("page %d: items out of order, want %d got %d", p, seen, v)
			}
			seen++
		}
	}
	if seen != len(items) {
		t.Fatalf("pages should cover all items exactly once, covered %d of %d", seen, len(items))
	}
}

func TestSlice_LastPartialPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}
	res, err := pagination.Paginate(len(items), 6, "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	window := pagination.Slice(items, res)
	if len(window) != 1 || window[0] != "m" {
		t.Fatalf("last page of 13/6 should hold only the 13th item, got %v", window)
	}
}

func TestSlice_OffsetPastEnd(t *testing.T) {
	if got := pagination.Slice([]int{1, 2}, pagination.Result{Offset: 10, Limit: 5}); got != nil {
		t.Fatalf("offset past end should yield nil, got %v", got)
	}
}
