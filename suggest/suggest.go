package suggest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/AJ-Ball/lib-api/index"
)

// DefaultMax is the suggestion count used when the caller passes 0.
const DefaultMax = 3

// Engine offers category suggestions for queries that matched nothing.
// It maintains a small in-memory full-text index over the catalog's category
// labels, display call ranges and ids, rebuilt only when the underlying row
// fingerprint changes.
type Engine struct {
	mu          sync.RWMutex
	idx         bleve.Index
	fingerprint string
}

// New creates an empty suggestion engine. Suggest returns nothing until the
// first Rebuild.
func New() *Engine {
	return &Engine{}
}

type suggestDoc struct {
	Category  string `json:"category"`
	CallRange string `json:"call_range"`
	RowID     string `json:"row_id"`
}

// Rebuild replaces the suggestion index with one built from the given
// ranges. It is a no-op when fingerprint matches the previous build, so
// callers can invoke it on every index (re)build without paying for
// re-indexing.
func (e *Engine) Rebuild(ranges []index.ShelfRange, fingerprint string) error {
	e.mu.RLock()
	current := e.fingerprint
	e.mu.RUnlock()
	if current == fingerprint && fingerprint != "" {
		return nil
	}

	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return fmt.Errorf("create suggestion index: %w", err)
	}

	batch := idx.NewBatch()
	for i, r := range ranges {
		doc := suggestDoc{
			Category:  r.Category,
			CallRange: r.CallRange,
			RowID:     r.ID,
		}
		if err := batch.Index(fmt.Sprintf("%d", i), doc); err != nil {
			return fmt.Errorf("index suggestion doc: %w", err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return fmt.Errorf("apply suggestion batch: %w", err)
	}

	e.mu.Lock()
	if e.idx != nil {
		_ = e.idx.Close()
	}
	e.idx = idx
	e.fingerprint = fingerprint
	e.mu.Unlock()

	return nil
}

// Suggest returns up to max distinct category labels related to the query,
// best match first. Match, fuzzy and prefix queries are combined so both
// typos and partial words surface something useful. An empty result is
// normal; suggestions are advisory only.
func (e *Engine) Suggest(query string, max int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if max <= 0 {
		max = DefaultMax
	}

	e.mu.RLock()
	idx := e.idx
	e.mu.RUnlock()
	if idx == nil {
		return nil
	}

	match := bleve.NewMatchQuery(query)
	fuzzy := bleve.NewFuzzyQuery(strings.ToLower(query))
	fuzzy.SetFuzziness(1)
	prefix := bleve.NewPrefixQuery(strings.ToLower(query))
	q := bleve.NewDisjunctionQuery(match, fuzzy, prefix)

	// Over-fetch so deduplication by category still fills max slots.
	req := bleve.NewSearchRequestOptions(q, max*4, 0, false)
	req.Fields = []string{"category"}

	res, err := idx.Search(req)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, hit := range res.Hits {
		category, _ := hit.Fields["category"].(string)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		out = append(out, category)
		if len(out) == max {
			break
		}
	}
	return out
}

// Fingerprint returns the fingerprint of the last successful Rebuild.
func (e *Engine) Fingerprint() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fingerprint
}
