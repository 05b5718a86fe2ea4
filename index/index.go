package index

import (
	"strings"

	"github.com/AJ-Ball/lib-api/callnum"
)

// Row is one validated record from the row store. String fields are
// already trimmed; location numbers are nil when the source cell was empty.
// Boundaries may arrive as separate decimal columns (StartNum/EndNum plus
// StartSuffix/EndSuffix), as raw call-number text (StartRaw/EndRaw), or only
// as a combined "start-end" CallRange label. Build supports all three shapes.
type Row struct {
	ID        string
	CallRange string
	Category  string
	MapURL    string

	Side          string
	Row           *int
	ShelfLevel    *int
	Locker        *int
	BuildingFloor *int

	StartRaw    string
	EndRaw      string
	StartNum    string // decimal text, e.g. "370.113"
	EndNum      string
	StartSuffix string
	EndSuffix   string
}

// Location is the physical position metadata of a shelf range.
type Location struct {
	Row           *int   `json:"row"`
	ShelfLevel    *int   `json:"shelf_level"`
	Locker        *int   `json:"locker"`
	BuildingFloor *int   `json:"building_floor"`
	Side          string `json:"side"`
}

// ShelfRange is one catalog row: the span of call numbers stored at one
// physical location. Constructed once at build time and immutable after.
type ShelfRange struct {
	Start callnum.CallNumber
	End   callnum.CallNumber

	StartRaw string
	EndRaw   string

	ID        string
	CallRange string
	Category  string
	MapURL    string
	Location  Location
}

// Span is the width of the numeric interval covered by the range. A narrower
// span is a more specific classification bucket.
func (r ShelfRange) Span() int64 {
	d := r.End.Key - r.Start.Key
	if d < 0 {
		return -d
	}
	return d
}

// Index is an ordered, read-only collection of shelf ranges. It is built
// once from loaded rows and never mutated, so any number of concurrent
// readers may query it without locking.
type Index struct {
	ranges      []ShelfRange
	dropped     int
	fingerprint string
}

// Build constructs an Index from loaded rows. Rows whose start or end key
// cannot be resolved are silently excluded; bad catalog data must not abort
// the rest of the index. The number of excluded rows is reported by Dropped
// so the loader can log a data-quality note.
func Build(rows []Row) *Index {
	idx := &Index{
		ranges:      make([]ShelfRange, 0, len(rows)),
		fingerprint: Fingerprint(rows),
	}

	for _, row := range rows {
		r, ok := buildRange(row)
		if !ok {
			idx.dropped++
			continue
		}
		idx.ranges = append(idx.ranges, r)
	}

	return idx
}

// Ranges returns the indexed shelf ranges in original row order.
// The returned slice must not be modified.
func (x *Index) Ranges() []ShelfRange {
	return x.ranges
}

// Size returns the number of indexed ranges.
func (x *Index) Size() int {
	return len(x.ranges)
}

// Dropped returns the number of rows excluded for unparseable boundaries.
func (x *Index) Dropped() int {
	return x.dropped
}

// Fingerprint returns the stable content hash of the rows the index was
// built from.
func (x *Index) Fingerprint() string {
	return x.fingerprint
}

func buildRange(row Row) (ShelfRange, bool) {
	startRaw, endRaw := row.StartRaw, row.EndRaw

	// A combined "start-end" label stands in for missing boundary text.
	if startRaw == "" && endRaw == "" && row.StartNum == "" && row.EndNum == "" {
		startRaw, endRaw = SplitRangeText(row.CallRange)
	}

	start, ok := boundary(row.StartNum, startRaw, row.StartSuffix)
	if !ok {
		return ShelfRange{}, false
	}
	end, ok := boundary(row.EndNum, endRaw, row.EndSuffix)
	if !ok {
		return ShelfRange{}, false
	}

	if startRaw == "" {
		startRaw = row.StartNum
	}
	if endRaw == "" {
		endRaw = row.EndNum
	}

	return ShelfRange{
		Start:     start,
		End:       end,
		StartRaw:  startRaw,
		EndRaw:    endRaw,
		ID:        row.ID,
		CallRange: row.CallRange,
		Category:  row.Category,
		MapURL:    row.MapURL,
		Location: Location{
			Row:           row.Row,
			ShelfLevel:    row.ShelfLevel,
			Locker:        row.Locker,
			BuildingFloor: row.BuildingFloor,
			Side:          row.Side,
		},
	}, true
}

// boundary resolves one side of a range. A decimal column wins over raw
// text; the suffix column, when present, overrides whatever suffix the raw
// text carried.
func boundary(num, raw, suffix string) (callnum.CallNumber, bool) {
	suffix = callnum.CleanSuffix(suffix)

	if num != "" {
		key, ok := callnum.KeyFromDecimal(num)
		if !ok {
			return callnum.CallNumber{}, false
		}
		return callnum.CallNumber{Key: key, Suffix: suffix}, true
	}

	cn, ok := callnum.Parse(raw)
	if !ok {
		return callnum.CallNumber{}, false
	}
	if suffix != "" {
		cn.Suffix = suffix
	}
	return cn, true
}

// SplitRangeText splits a combined "<start>-<end>" range label on its
// separator, tolerating en/em dashes. A label with no separator is a
// degenerate range: both halves are the whole label.
func SplitRangeText(s string) (string, string) {
	s = callnum.NormalizeDashes(strings.TrimSpace(s))
	i := strings.IndexByte(s, '-')
	if i < 0 {
		return s, s
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
}
