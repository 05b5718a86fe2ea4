package match

import (
	"math"
	"sort"

	"github.com/AJ-Ball/lib-api/index"
)

// locationSentinel stands in for an absent row/shelf/locker number so that
// ranges with missing location data sort after fully-specified ones.
const locationSentinel = math.MaxInt32

// Rank orders candidate ranges from most to least specific. The primary key
// is the numeric span: a narrower span is a tighter classification bucket
// and wins when several overlapping ranges contain the same query. Row,
// shelf level and locker follow purely to keep output deterministic across
// otherwise-tied candidates. The sort is stable, so ties beyond that keep
// index order.
func Rank(candidates []index.ShelfRange) []index.ShelfRange {
	ranked := make([]index.ShelfRange, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Span() != b.Span() {
			return a.Span() < b.Span()
		}
		if x, y := orSentinel(a.Location.Row), orSentinel(b.Location.Row); x != y {
			return x < y
		}
		if x, y := orSentinel(a.Location.ShelfLevel), orSentinel(b.Location.ShelfLevel); x != y {
			return x < y
		}
		return orSentinel(a.Location.Locker) < orSentinel(b.Location.Locker)
	})

	return ranked
}

// Truncate caps a ranked slice at limit, tolerating out-of-range limits.
func Truncate(ranked []index.ShelfRange, limit int) []index.ShelfRange {
	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

func orSentinel(n *int) int {
	if n == nil {
		return locationSentinel
	}
	return *n
}
