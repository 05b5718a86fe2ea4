package locate

import (
	"context"
	"errors"
	"strings"

	"github.com/AJ-Ball/lib-api/callnum"
	"github.com/AJ-Ball/lib-api/describe"
	"github.com/AJ-Ball/lib-api/index"
	"github.com/AJ-Ball/lib-api/match"
	"github.com/AJ-Ball/lib-api/suggest"
)

// Limit bounds for a single query.
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// Error values for locator construction.
var (
	ErrNilIndex = errors.New("locate: nil index")
)

// Options configures a Locator.
type Options struct {
	// Index is the built shelf-range index. Required.
	Index *index.Index

	// Suggester attaches category suggestions to misses. If nil, results
	// simply carry no suggestions.
	Suggester *suggest.Engine

	// SuggestCount is the number of suggestions attached to a miss.
	// Default: suggest.DefaultMax.
	SuggestCount int
}

// Locator is the query facade: call-number matching first, text fallback
// second. It is purely functional over the built index and safe for any
// number of concurrent readers.
type Locator struct {
	idx          *index.Index
	suggester    *suggest.Engine
	suggestCount int
}

// New creates a Locator over a built index. When a suggester is supplied it
// is (re)built from the index content; the fingerprint gate makes that free
// if nothing changed.
func New(opts Options) (*Locator, error) {
	if opts.Index == nil {
		return nil, ErrNilIndex
	}

	l := &Locator{
		idx:          opts.Index,
		suggester:    opts.Suggester,
		suggestCount: opts.SuggestCount,
	}
	if l.suggestCount <= 0 {
		l.suggestCount = suggest.DefaultMax
	}

	if l.suggester != nil {
		if err := l.suggester.Rebuild(opts.Index.Ranges(), opts.Index.Fingerprint()); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Size returns the number of indexed shelf ranges, for the health surface.
func (l *Locator) Size() int {
	return l.idx.Size()
}

// Index returns the underlying index for diagnostic surfaces.
func (l *Locator) Index() *index.Index {
	return l.idx
}

// Search resolves a query to ranked shelf locations.
//
// The query is first run through the call-number parser. If it yields a key,
// matching is by range containment with suffix tie-breaking at boundaries
// (strict only when the query itself supplied a suffix), and hits are ranked
// narrowest-span first. Otherwise the query is matched as a case-folded
// substring of each range's category, call-range label and id, in index
// order. Either way at most limit hits are returned; limit is clamped to
// [1, MaxLimit] with DefaultLimit for zero.
func (l *Locator) Search(ctx context.Context, query string, limit int) Result {
	query = strings.TrimSpace(query)
	limit = clampLimit(limit)

	if cn, ok := callnum.Parse(query); ok {
		return l.searchCallNumber(query, cn, limit)
	}
	return l.searchText(query, limit)
}

func (l *Locator) searchCallNumber(query string, cn callnum.CallNumber, limit int) Result {
	res := Result{
		Mode:       ModeCallNumber,
		Query:      query,
		Normalized: &Normalized{Key: cn.Key, Suffix: cn.Suffix},
		Results:    []Hit{},
	}

	strict := cn.Suffix != ""
	hits := match.Filter(l.idx.Ranges(), cn.Key, cn.Suffix, strict)
	if len(hits) == 0 {
		res.Message = "No shelf range covers " + cn.String() + "."
		res.Suggest = l.suggestions(query)
		return res
	}

	ranked := match.Truncate(match.Rank(hits), limit)
	for _, r := range ranked {
		res.Results = append(res.Results, hitFromRange(r, true))
	}
	res.Found = true
	res.Count = len(res.Results)
	res.Message = describe.Summary(ranked[0])
	return res
}

func (l *Locator) searchText(query string, limit int) Result {
	res := Result{
		Mode:    ModeText,
		Query:   query,
		Results: []Hit{},
	}

	if query == "" {
		res.Message = "Empty query."
		return res
	}

	needle := strings.ToLower(query)
	var top *index.ShelfRange
	for _, r := range l.idx.Ranges() {
		if !textMatches(r, needle) {
			continue
		}
		if top == nil {
			first := r
			top = &first
		}
		res.Results = append(res.Results, hitFromRange(r, false))
		if len(res.Results) == limit {
			break
		}
	}

	if len(res.Results) == 0 {
		res.Message = "Nothing matches \"" + query + "\"."
		res.Suggest = l.suggestions(query)
		return res
	}

	res.Found = true
	res.Count = len(res.Results)
	res.Message = describe.Summary(*top)
	return res
}

func textMatches(r index.ShelfRange, needle string) bool {
	return strings.Contains(strings.ToLower(r.Category), needle) ||
		strings.Contains(strings.ToLower(r.CallRange), needle) ||
		strings.Contains(strings.ToLower(r.ID), needle)
}

func (l *Locator) suggestions(query string) []string {
	if l.suggester == nil {
		return nil
	}
	return l.suggester.Suggest(query, l.suggestCount)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
