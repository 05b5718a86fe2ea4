package describe

import (
	"fmt"
	"strings"

	"github.com/AJ-Ball/lib-api/index"
)

// Detail selects how much of a shelf range's location is rendered.
type Detail int

const (
	// DetailBrief renders a single summary sentence.
	DetailBrief Detail = iota
	// DetailFull renders the summary plus the boundary detail.
	DetailFull
)

// Range renders a human-readable description of a shelf range at the given
// detail level. DetailBrief yields the one-line summary attached to search
// results; DetailFull appends the raw boundary text and map link when present.
func Range(r index.ShelfRange, level Detail) string {
	var b strings.Builder

	b.WriteString(Summary(r))

	if level == DetailFull {
		if r.StartRaw != "" || r.EndRaw != "" {
			fmt.Fprintf(&b, "\nCall numbers %s to %s.", r.StartRaw, r.EndRaw)
		}
		if r.MapURL != "" {
			fmt.Fprintf(&b, "\nMap: %s", r.MapURL)
		}
	}

	return b.String()
}

// Summary renders the one-line location sentence for a shelf range,
// e.g. `Social sciences (370-379.9): floor 2, row 12, shelf level 3, left side.`
// Fields absent from the catalog row are simply omitted.
func Summary(r index.ShelfRange) string {
	var b strings.Builder

	switch {
	case r.Category != "" && r.CallRange != "":
		fmt.Fprintf(&b, "%s (%s)", r.Category, r.CallRange)
	case r.Category != "":
		b.WriteString(r.Category)
	case r.CallRange != "":
		b.WriteString(r.CallRange)
	default:
		b.WriteString("Shelf range")
	}

	parts := locationParts(r.Location)
	if len(parts) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(parts, ", "))
	}
	b.WriteString(".")

	return b.String()
}

func locationParts(loc index.Location) []string {
	var parts []string
	if loc.BuildingFloor != nil {
		parts = append(parts, fmt.Sprintf("floor %d", *loc.BuildingFloor))
	}
	if loc.Row != nil {
		parts = append(parts, fmt.Sprintf("row %d", *loc.Row))
	}
	if loc.ShelfLevel != nil {
		parts = append(parts, fmt.Sprintf("shelf level %d", *loc.ShelfLevel))
	}
	if loc.Locker != nil {
		parts = append(parts, fmt.Sprintf("locker %d", *loc.Locker))
	}
	if loc.Side != "" {
		parts = append(parts, loc.Side+" side")
	}
	return parts
}
