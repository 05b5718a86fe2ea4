package locate

import (
	"github.com/AJ-Ball/lib-api/index"
)

// Mode tags how a query was interpreted.
type Mode string

const (
	// ModeCallNumber means the query parsed as a classification call number
	// and was matched against range boundaries.
	ModeCallNumber Mode = "call_number"

	// ModeText means the query carried no numeric body and was matched as a
	// case-folded substring of category, call-range label and id fields.
	ModeText Mode = "text"
)

// Normalized is the canonical form of a call-number query, echoed back so
// clients can see what was actually matched.
type Normalized struct {
	Key    int64  `json:"key"`
	Suffix string `json:"suffix"`
}

// Boundary is the numeric boundary detail of a hit. It is present only in
// call-number mode; in text mode the boundary carries no meaning for the
// match and is omitted.
type Boundary struct {
	StartRaw    string `json:"start_raw"`
	EndRaw      string `json:"end_raw"`
	StartKey    int64  `json:"start_key"`
	EndKey      int64  `json:"end_key"`
	StartSuffix string `json:"start_suffix"`
	EndSuffix   string `json:"end_suffix"`
}

// Hit is one located shelf range.
type Hit struct {
	ID        string         `json:"id"`
	CallRange string         `json:"call_range"`
	Category  string         `json:"category"`
	Location  index.Location `json:"location"`
	Range     *Boundary      `json:"range,omitempty"`
	MapURL    string         `json:"map_url"`
}

// Result is the full answer to one search query.
type Result struct {
	Found      bool        `json:"found"`
	Mode       Mode        `json:"mode"`
	Query      string      `json:"query"`
	Normalized *Normalized `json:"normalized,omitempty"`
	Count      int         `json:"count"`
	Message    string      `json:"message,omitempty"`
	Results    []Hit       `json:"results"`
	Suggest    []string    `json:"suggest,omitempty"`
}

func hitFromRange(r index.ShelfRange, withBoundary bool) Hit {
	h := Hit{
		ID:        r.ID,
		CallRange: r.CallRange,
		Category:  r.Category,
		Location:  r.Location,
		MapURL:    r.MapURL,
	}
	if withBoundary {
		h.Range = &Boundary{
			StartRaw:    r.StartRaw,
			EndRaw:      r.EndRaw,
			StartKey:    r.Start.Key,
			EndKey:      r.End.Key,
			StartSuffix: r.Start.Suffix,
			EndSuffix:   r.End.Suffix,
		}
	}
	return h
}
