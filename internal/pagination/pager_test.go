package pagination_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/clubrail/content-service/internal/pagination"
)

func TestBuildPagerDisplay_NoEllipsisWhenEverythingFits(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		current int
		want    []int
	}{
		{"well under the window", 5, 3, []int{1, 2, 3, 4, 5}},
		{"single page", 1, 1, []int{1}},
		{"exactly at the window", 7, 4, []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pagination.BuildPagerDisplay(tc.total, tc.current, 7, 3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBuildPagerDisplay_MiddlePageCompressesBothSides(t *testing.T) {
	got, err := pagination.BuildPagerDisplay(20, 10, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, pagination.Ellipsis, 9, 10, 11, pagination.Ellipsis, 18, 19, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBuildPagerDisplay_CurrentInsideLowerBoundary(t *testing.T) {
	got, err := pagination.BuildPagerDisplay(20, 1, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, pagination.Ellipsis, 18, 19, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBuildPagerDisplay_CurrentJustPastBoundaryMergesRun(t *testing.T) {
	// Page 4 sits right after the lower boundary; its neighborhood must fuse
	// with the boundary run instead of introducing a misplaced ellipsis.
	got, err := pagination.BuildPagerDisplay(20, 4, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, pagination.Ellipsis, 18, 19, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBuildPagerDisplay_CurrentJustBeforeUpperBoundary(t *testing.T) {
	got, err := pagination.BuildPagerDisplay(20, 17, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, pagination.Ellipsis, 16, 17, 18, 19, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBuildPagerDisplay_Idempotent(t *testing.T) {
	a, err := pagination.BuildPagerDisplay(50, 25, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := pagination.BuildPagerDisplay(50, 25, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs must produce identical output: %v vs %v", a, b)
	}
}

func TestBuildPagerDisplay_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name                             string
		total, current, maxVis, boundary int
	}{
		{"current below range", 10, 0, 7, 3},
		{"current above range", 10, 11, 7, 3},
		{"window too narrow", 10, 5, 6, 3},
		{"zero boundary", 10, 5, 7, 0},
		{"zero total", 0, 1, 7, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagination.BuildPagerDisplay(tc.total, tc.current, tc.maxVis, tc.boundary)
			if !errors.Is(err, pagination.ErrInvalidConfiguration) {
				t.Fatalf("want ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

// The structural contract: boundaries and the current page always literal,
// never two adjacent ellipsis tokens, tokens strictly increasing between
// ellipsis markers. Checked over randomized inputs.
func TestBuildPagerDisplay_StructuralProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		boundary := 1 + rng.Intn(4)
		maxVis := 2*boundary + 1 + rng.Intn(6)
		total := 1 + rng.Intn(60)
		current := 1 + rng.Intn(total)

		tokens, err := pagination.BuildPagerDisplay(total, current, maxVis, boundary)
		if err != nil {
			t.Fatalf("valid inputs (total=%d current=%d maxVis=%d boundary=%d) errored: %v",
				total, current, maxVis, boundary, err)
		}

		literal := map[int]bool{}
		prevEllipsis := false
		prevPage := 0
		for _, tok := range tokens {
			if tok == pagination.Ellipsis {
				if prevEllipsis {
					t.Fatalf("adjacent ellipsis tokens in %v (total=%d current=%d maxVis=%d boundary=%d)",
						tokens, total, current, maxVis, boundary)
				}
				prevEllipsis = true
				continue
			}
			if tok <= prevPage {
				t.Fatalf("tokens not strictly increasing in %v", tokens)
			}
			prevPage = tok
			prevEllipsis = false
			literal[tok] = true
		}

		if tokens[0] == pagination.Ellipsis || tokens[len(tokens)-1] == pagination.Ellipsis {
			t.Fatalf("display must start and end with literal pages: %v", tokens)
		}
		if !literal[current] {
			t.Fatalf("current page %d missing from %v", current, tokens)
		}
		for b := 1; b <= boundary && b <= total; b++ {
			if !literal[b] {
				t.Fatalf("lower boundary page %d missing from %v", b, tokens)
			}
		}
		for b := total - boundary + 1; b <= total; b++ {
			if b >= 1 && !literal[b] {
				t.Fatalf("upper boundary page %d missing from %v", b, tokens)
			}
		}
		if total <= maxVis && len(tokens) != total {
			t.Fatalf("no compression expected for total=%d maxVis=%d, got %v", total, maxVis, tokens)
		}
	}
}
