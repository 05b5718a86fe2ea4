package loader

import (
	"log/slog"
	"sync"

	"github.com/AJ-Ball/lib-api/index"
	"github.com/AJ-Ball/lib-api/locate"
	"github.com/AJ-Ball/lib-api/suggest"
)

// Store supplies catalog rows to the index builder.
type Store interface {
	Rows() ([]index.Row, error)
}

// CachedStore wraps a Store with a build-once barrier. The first caller
// loads the rows, builds the index and the locator; concurrent first
// requests wait on the same build instead of racing it. A failed load is
// cached as well; retrying requires a new process.
type CachedStore struct {
	src      Store
	suggestN int

	once sync.Once
	loc  *locate.Locator
	err  error
}

// NewCachedStore wraps src. suggestCount controls how many suggestions a
// miss carries; zero keeps the default.
func NewCachedStore(src Store, suggestCount int) *CachedStore {
	return &CachedStore{src: src, suggestN: suggestCount}
}

// Locator returns the process-lifetime locator, building it on first use.
func (c *CachedStore) Locator() (*locate.Locator, error) {
	c.once.Do(c.build)
	return c.loc, c.err
}

func (c *CachedStore) build() {
	rows, err := c.src.Rows()
	if err != nil {
		c.err = err
		return
	}

	idx := index.Build(rows)
	if idx.Dropped() > 0 {
		// Data-quality note, never fatal: the rest of the index works.
		slog.Warn("rows dropped for unparseable boundaries",
			"dropped", idx.Dropped(), "kept", idx.Size())
	}

	c.loc, c.err = locate.New(locate.Options{
		Index:        idx,
		Suggester:    suggest.New(),
		SuggestCount: c.suggestN,
	})
}
