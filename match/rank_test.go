package match

import (
	"testing"

	"github.com/AJ-Ball/lib-api/index"
)

func intp(n int) *int { return &n }

func withLocation(r index.ShelfRange, row, level, locker *int) index.ShelfRange {
	r.Location.Row = row
	r.Location.ShelfLevel = level
	r.Location.Locker = locker
	return r
}

func TestRank_NarrowerSpanFirst(t *testing.T) {
	wide := makeRange(370000, 371000, "", "")   // span 1000
	narrow := makeRange(370000, 370500, "", "") // span 500

	ranked := Rank([]index.ShelfRange{wide, narrow})

	if ranked[0].Span() != 500 {
		t.Errorf("first result span = %d, want 500", ranked[0].Span())
	}
	if ranked[1].Span() != 1000 {
		t.Errorf("second result span = %d, want 1000", ranked[1].Span())
	}
}

func TestRank_TiesBrokenByLocation(t *testing.T) {
	a := withLocation(makeRange(100000, 101000, "", ""), intp(5), intp(1), nil)
	b := withLocation(makeRange(200000, 201000, "", ""), intp(2), intp(3), nil)
	c := withLocation(makeRange(300000, 301000, "", ""), intp(2), intp(1), intp(9))

	ranked := Rank([]index.ShelfRange{a, b, c})

	wantRows := []int64{300000, 200000, 100000}
	for i, want := range wantRows {
		if ranked[i].Start.Key != want {
			t.Errorf("ranked[%d].Start.Key = %d, want %d", i, ranked[i].Start.Key, want)
		}
	}
}

func TestRank_AbsentLocationSortsLast(t *testing.T) {
	located := withLocation(makeRange(100000, 101000, "", ""), intp(99), nil, nil)
	unlocated := makeRange(200000, 201000, "", "")

	ranked := Rank([]index.ShelfRange{unlocated, located})

	if ranked[0].Start.Key != 100000 {
		t.Errorf("range with a row number should outrank one without")
	}
}

func TestRank_StableAndNonMutating(t *testing.T) {
	a := makeRange(100000, 101000, "", "")
	b := makeRange(200000, 201000, "", "")
	in := []index.ShelfRange{a, b}

	ranked := Rank(in)

	// Full tie: index order preserved.
	if ranked[0].Start.Key != 100000 || ranked[1].Start.Key != 200000 {
		t.Error("full tie should keep input order")
	}
	// Input slice untouched.
	if in[0].Start.Key != 100000 {
		t.Error("Rank mutated its input")
	}
}

func TestTruncate(t *testing.T) {
	in := []index.ShelfRange{
		makeRange(1, 2, "", ""),
		makeRange(3, 4, "", ""),
		makeRange(5, 6, "", ""),
	}

	if got := Truncate(in, 2); len(got) != 2 {
		t.Errorf("Truncate(2) len = %d, want 2", len(got))
	}
	if got := Truncate(in, 10); len(got) != 3 {
		t.Errorf("Truncate(10) len = %d, want 3", len(got))
	}
	if got := Truncate(in, -1); len(got) != 0 {
		t.Errorf("Truncate(-1) len = %d, want 0", len(got))
	}
}
