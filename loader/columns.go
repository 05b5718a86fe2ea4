package loader

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Canonical column names the loader understands. Spreadsheets in the wild
// drift from these ("Shelf Level", "shelf_lvl"), so header binding is fuzzy.
const (
	colID            = "id"
	colCallRange     = "call_range"
	colCategory      = "category"
	colMapURL        = "map_url"
	colSide          = "side"
	colRow           = "row"
	colShelfLevel    = "shelf_level"
	colLocker        = "locker"
	colBuildingFloor = "building_floor"
	colStartRaw      = "range_start_raw"
	colEndRaw        = "range_end_raw"
	colStartNum      = "range_start_num"
	colEndNum        = "range_end_num"
	colStartSuffix   = "range_start_suffix"
	colEndSuffix     = "range_end_suffix"
)

var canonicalColumns = []string{
	colID, colCallRange, colCategory, colMapURL, colSide,
	colRow, colShelfLevel, colLocker, colBuildingFloor,
	colStartRaw, colEndRaw, colStartNum, colEndNum,
	colStartSuffix, colEndSuffix,
}

// resolveColumns maps each canonical column to its position in the header
// row. Exact matches (after normalization) win; otherwise the header is
// bound by fuzzy match so near-miss spellings still load. Unresolvable
// columns are simply absent from the map — missing data, not an error.
func resolveColumns(headers []string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	cols := make(map[string]int, len(canonicalColumns))
	taken := make(map[int]bool, len(headers))

	// Pass 1: exact matches.
	for _, name := range canonicalColumns {
		for i, h := range normalized {
			if h == name && !taken[i] {
				cols[name] = i
				taken[i] = true
				break
			}
		}
	}

	// Pass 2: fuzzy-bind leftover headers to leftover columns.
	for i, h := range normalized {
		if taken[i] || h == "" {
			continue
		}
		matches := fuzzy.Find(h, canonicalColumns)
		for _, m := range matches {
			name := canonicalColumns[m.Index]
			if _, bound := cols[name]; bound {
				continue
			}
			cols[name] = i
			taken[i] = true
			break
		}
	}

	return cols
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
