package match

import (
	"github.com/AJ-Ball/lib-api/index"
)

// Matches reports whether a query call number falls inside a shelf range.
//
// strict is true when the query itself carried a suffix. Without one the
// suffix is ignored entirely and any key within the numeric bounds matches.
// In strict mode a key strictly inside the span still matches
// unconditionally; suffix order is only consulted when the key lands exactly
// on a boundary, and only when that boundary's own suffix is non-empty.
// Human-labeled boundaries like "370.1ก-370.1ถ" are the case this exists for.
func Matches(r index.ShelfRange, key int64, suffix string, strict bool) bool {
	if key < r.Start.Key || key > r.End.Key {
		return false
	}
	if !strict {
		return true
	}
	if key > r.Start.Key && key < r.End.Key {
		return true
	}

	if key == r.Start.Key && r.Start.Suffix != "" && suffix < r.Start.Suffix {
		return false
	}
	if key == r.End.Key && r.End.Suffix != "" && suffix > r.End.Suffix {
		return false
	}
	return true
}

// Filter returns the ranges containing the query, in index order.
func Filter(ranges []index.ShelfRange, key int64, suffix string, strict bool) []index.ShelfRange {
	var hits []index.ShelfRange
	for _, r := range ranges {
		if Matches(r, key, suffix, strict) {
			hits = append(hits, r)
		}
	}
	return hits
}
