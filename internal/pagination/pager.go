package pagination

// Ellipsis is the sentinel token standing in for an elided run of page
// numbers in a pager display. Rendering layers substitute it with "…".
const Ellipsis = 0

// Pager display defaults observed in site configuration. MinVisiblePages is
// the floor enforced on max_visible_pages so boundary runs and the current
// page's neighborhood never collide.
const (
	DefaultMaxVisiblePages = 7
	DefaultBoundaryCount   = 3
	MinVisiblePages        = 7
)

// BuildPagerDisplay compresses 1..totalPages into a token sequence for a
// pager control: literal page numbers plus Ellipsis markers for skipped runs.
//
// The contract: boundary pages (boundaryCount at each extreme) and the
// current page are always literal; when totalPages fits within
// maxVisiblePages every page is literal and no ellipsis appears; any run of
// skipped pages collapses into exactly one Ellipsis token, so two Ellipsis
// tokens are never adjacent.
//
// currentPage must already be clamped into [1, totalPages]; Paginate does
// that. An out-of-range value here is a caller bug and returns
// ErrInvalidConfiguration rather than being silently fixed.
func BuildPagerDisplay(totalPages, currentPage, maxVisiblePages, boundaryCount int) ([]int, error) {
	if totalPages < 1 {
		return nil, invalidConfig("total pages must be >= 1")
	}
	if boundaryCount < 1 {
		return nil, invalidConfig("boundary count must be >= 1")
	}
	if maxVisiblePages < 2*boundaryCount+1 {
		return nil, invalidConfig("max visible pages must be >= 2*boundary count + 1")
	}
	if currentPage < 1 || currentPage > totalPages {
		return nil, invalidConfig("current page out of range")
	}

	if totalPages <= maxVisiblePages {
		tokens := make([]int, totalPages)
		for i := range tokens {
			tokens[i] = i + 1
		}
		return tokens, nil
	}

	lowerBoundary := boundaryCount
	upperBoundary := totalPages - boundaryCount + 1

	tokens := make([]int, 0, maxVisiblePages+2)
	for i := 1; i <= totalPages; i++ {
		switch {
		case i <= lowerBoundary || i >= upperBoundary:
			tokens = append(tokens, i)
		case i >= currentPage-1 && i <= currentPage+1:
			// Current page and its immediate neighbors stay literal so the
			// user can always step one page in either direction.
			tokens = append(tokens, i)
		default:
			if tokens[len(tokens)-1] != Ellipsis {
				tokens = append(tokens, Ellipsis)
			}
		}
	}
	return tokens, nil
}
