package locate

import (
	"context"
	"testing"

	"github.com/AJ-Ball/lib-api/index"
	"github.com/AJ-Ball/lib-api/suggest"
)

func intp(n int) *int { return &n }

func testRows() []index.Row {
	return []index.Row{
		{
			ID: "A1", CallRange: "370-371", Category: "Education",
			StartNum: "370", EndNum: "371",
			Row: intp(1), ShelfLevel: intp(2), BuildingFloor: intp(4), Side: "left",
			MapURL: "https://maps.example/a1",
		},
		{
			ID: "A2", CallRange: "370-370.5", Category: "Education theory",
			StartNum: "370", EndNum: "370.5",
			Row: intp(2), ShelfLevel: intp(1),
		},
		{
			ID: "B1", CallRange: "900-999", Category: "History",
			StartNum: "900", EndNum: "999",
		},
		{
			ID: "C1", CallRange: "370.1ก-370.1ด", Category: "Education boundary case",
			StartNum: "370.1", EndNum: "370.1",
			StartSuffix: "ก", EndSuffix: "ด",
		},
		// Data-quality row: silently excluded from the index.
		{ID: "BAD", CallRange: "abc-def", Category: "Broken"},
	}
}

func newLocator(t *testing.T) *Locator {
	t.Helper()
	loc, err := New(Options{Index: index.Build(testRows())})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return loc
}

// ============================================================
// Tests for call-number mode
// ============================================================

func TestSearch_CallNumberMode(t *testing.T) {
	loc := newLocator(t)

	res := loc.Search(context.Background(), "370.25", 5)

	if !res.Found || res.Mode != ModeCallNumber {
		t.Fatalf("found=%v mode=%q, want found call_number", res.Found, res.Mode)
	}
	if res.Normalized == nil || res.Normalized.Key != 370250 {
		t.Fatalf("normalized = %+v, want key 370250", res.Normalized)
	}
	if res.Count != 2 {
		t.Fatalf("count = %d, want 2 (A1 and A2 overlap)", res.Count)
	}
	// Narrower span (A2, 500) outranks the wider A1 (1000).
	if res.Results[0].ID != "A2" || res.Results[1].ID != "A1" {
		t.Errorf("ranking = [%s, %s], want [A2, A1]", res.Results[0].ID, res.Results[1].ID)
	}
	// Call-number hits carry boundary detail.
	if res.Results[0].Range == nil || res.Results[0].Range.StartKey != 370000 {
		t.Errorf("missing or wrong boundary detail: %+v", res.Results[0].Range)
	}
	if res.Message == "" {
		t.Error("found result should carry a summary message")
	}
}

func TestSearch_EquivalentQueryFormsAgree(t *testing.T) {
	loc := newLocator(t)
	ctx := context.Background()

	a := loc.Search(ctx, "370.25", 5)
	b := loc.Search(ctx, "37025", 5) // undotted form of the same code

	if a.Normalized.Key != b.Normalized.Key {
		t.Fatalf("keys differ: %d vs %d", a.Normalized.Key, b.Normalized.Key)
	}
	if a.Count != b.Count {
		t.Errorf("counts differ: %d vs %d", a.Count, b.Count)
	}
}

func TestSearch_SuffixStrictness(t *testing.T) {
	loc := newLocator(t)
	ctx := context.Background()

	// Suffix inside the boundary suffix interval [ก, ด] matches C1.
	res := loc.Search(ctx, "370.1ข", 20)
	if !containsID(res, "C1") {
		t.Errorf("query 370.1ข should match C1, got %v", ids(res))
	}

	// Suffix above the end suffix does not.
	res = loc.Search(ctx, "370.1ฮ", 20)
	if containsID(res, "C1") {
		t.Errorf("query 370.1ฮ should not match C1, got %v", ids(res))
	}

	// No suffix: strict mode off, boundary suffixes ignored.
	res = loc.Search(ctx, "370.1", 20)
	if !containsID(res, "C1") {
		t.Errorf("suffix-free query should match C1, got %v", ids(res))
	}
}

func TestSearch_CallNumberNotFound(t *testing.T) {
	loc := newLocator(t)

	res := loc.Search(context.Background(), "999.999", 5)

	// 999.999 is above every range; still call-number mode, just no hits.
	if res.Found {
		t.Error("found = true, want false")
	}
	if res.Mode != ModeCallNumber {
		t.Errorf("mode = %q, want call_number", res.Mode)
	}
	if len(res.Results) != 0 {
		t.Errorf("results = %v, want empty", res.Results)
	}
}

func TestSearch_LimitClamping(t *testing.T) {
	loc := newLocator(t)
	ctx := context.Background()

	if res := loc.Search(ctx, "370.25", 1); res.Count != 1 {
		t.Errorf("limit 1: count = %d, want 1", res.Count)
	}
	// Zero falls back to the default limit rather than returning nothing.
	if res := loc.Search(ctx, "370.25", 0); res.Count != 2 {
		t.Errorf("limit 0: count = %d, want 2", res.Count)
	}
}

// ============================================================
// Tests for text mode
// ============================================================

func TestSearch_TextMode(t *testing.T) {
	loc := newLocator(t)

	res := loc.Search(context.Background(), "history", 5)

	if !res.Found || res.Mode != ModeText {
		t.Fatalf("found=%v mode=%q, want found text", res.Found, res.Mode)
	}
	if res.Count != 1 || res.Results[0].ID != "B1" {
		t.Fatalf("results = %v, want [B1]", ids(res))
	}
	// Text hits omit numeric boundary detail.
	if res.Results[0].Range != nil {
		t.Error("text-mode hit should not carry boundary detail")
	}
	if res.Normalized != nil {
		t.Error("text-mode result should not carry a normalized call number")
	}
}

func TestSearch_TextModeIndexOrder(t *testing.T) {
	loc := newLocator(t)

	res := loc.Search(context.Background(), "education", 5)

	// Text mode keeps original index order, no ranking.
	want := []string{"A1", "A2", "C1"}
	got := ids(res)
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestSearch_TextModeNotFound(t *testing.T) {
	loc := newLocator(t)

	res := loc.Search(context.Background(), "astrophysics", 5)

	if res.Found || res.Mode != ModeText {
		t.Errorf("found=%v mode=%q, want miss in text mode", res.Found, res.Mode)
	}
}

func TestSearch_DroppedRowNeverMatches(t *testing.T) {
	loc := newLocator(t)
	ctx := context.Background()

	// The BAD row is excluded at build time; neither mode can surface it.
	for _, q := range []string{"broken", "500"} {
		if res := loc.Search(ctx, q, 20); containsID(res, "BAD") {
			t.Errorf("query %q surfaced the dropped row", q)
		}
	}
	if loc.Size() != 4 {
		t.Errorf("Size = %d, want 4 (one row dropped)", loc.Size())
	}
}

// ============================================================
// Tests for suggestions
// ============================================================

func TestSearch_SuggestionsOnMiss(t *testing.T) {
	loc, err := New(Options{
		Index:     index.Build(testRows()),
		Suggester: suggest.New(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := loc.Search(context.Background(), "educaton", 5) // typo, no substring hit
	if res.Found {
		t.Fatal("typo query should miss")
	}
	if len(res.Suggest) == 0 {
		t.Error("miss with a suggester should carry suggestions")
	}

	// Hits never carry suggestions.
	res = loc.Search(context.Background(), "history", 5)
	if len(res.Suggest) != 0 {
		t.Errorf("hit carried suggestions: %v", res.Suggest)
	}
}

// ============================================================
// Construction
// ============================================================

func TestNew_RequiresIndex(t *testing.T) {
	if _, err := New(Options{}); err != ErrNilIndex {
		t.Errorf("err = %v, want ErrNilIndex", err)
	}
}

func ids(res Result) []string {
	out := make([]string, len(res.Results))
	for i, h := range res.Results {
		out[i] = h.ID
	}
	return out
}

func containsID(res Result, id string) bool {
	for _, h := range res.Results {
		if h.ID == id {
			return true
		}
	}
	return false
}
