package loader

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AJ-Ball/lib-api/index"
)

func TestResolveColumns_Exact(t *testing.T) {
	headers := []string{"id", "call_range", "category", "row", "shelf_level"}

	cols := resolveColumns(headers)

	assert.Equal(t, 0, cols[colID])
	assert.Equal(t, 1, cols[colCallRange])
	assert.Equal(t, 4, cols[colShelfLevel])
}

func TestResolveColumns_NormalizedAndFuzzy(t *testing.T) {
	headers := []string{"ID", "Call Range", "Shelf-Level", "shelf_lvl", "bldg_floor"}

	cols := resolveColumns(headers)

	// Case/separator drift resolves exactly after normalization.
	assert.Equal(t, 0, cols[colID])
	assert.Equal(t, 1, cols[colCallRange])
	assert.Equal(t, 2, cols[colShelfLevel])
	// Abbreviations bind fuzzily.
	assert.Equal(t, 4, cols[colBuildingFloor])
}

func TestResolveColumns_UnknownHeadersIgnored(t *testing.T) {
	cols := resolveColumns([]string{"id", "totally unrelated ###", ""})

	assert.Equal(t, 0, cols[colID])
	assert.Len(t, cols, 1)
}

func TestIntCell(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"3", intp(3)},
		{"3.0", intp(3)}, // Excel float rendering of a whole number
		{"", nil},
		{"n/a", nil},
	}

	for _, tt := range tests {
		got := intCell(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "intCell(%q)", tt.in)
		} else {
			require.NotNil(t, got, "intCell(%q)", tt.in)
			assert.Equal(t, *tt.want, *got, "intCell(%q)", tt.in)
		}
	}
}

func intp(n int) *int { return &n }

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestXLSXStore_Rows(t *testing.T) {
	path := writeWorkbook(t, "api", [][]any{
		{"id", "call_range", "category", "range_start_num", "range_end_num",
			"range_start_suffix", "range_end_suffix", "row", "shelf_level", "side"},
		{"A1", "370-371", "Education", 370, 371, "ก", "ด", 3, 2, "left"},
		{"A2", "900-999", "History", 900, 999, "", "", nil, nil, ""},
	})

	rows, err := NewXLSXStore(path, "api").Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A1", rows[0].ID)
	assert.Equal(t, "Education", rows[0].Category)
	assert.Equal(t, "370", rows[0].StartNum)
	assert.Equal(t, "ก", rows[0].StartSuffix)
	require.NotNil(t, rows[0].Row)
	assert.Equal(t, 3, *rows[0].Row)
	assert.Equal(t, "left", rows[0].Side)

	assert.Nil(t, rows[1].Row)
	assert.Equal(t, "999", rows[1].EndNum)
}

func TestXLSXStore_RowsFeedTheIndex(t *testing.T) {
	path := writeWorkbook(t, "api", [][]any{
		{"id", "call_range", "category"},
		{"T1", "370.1-370.5", "Education"},
		{"BAD", "abc-def", "Broken"},
	})

	rows, err := NewXLSXStore(path, "api").Rows()
	require.NoError(t, err)

	idx := index.Build(rows)
	assert.Equal(t, 1, idx.Size())
	assert.Equal(t, 1, idx.Dropped())
	assert.Equal(t, int64(370100), idx.Ranges()[0].Start.Key)
}

func TestXLSXStore_MissingFile(t *testing.T) {
	_, err := NewXLSXStore(filepath.Join(t.TempDir(), "nope.xlsx"), "api").Rows()
	assert.Error(t, err)
}

func TestXLSXStore_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, "api", [][]any{{"id"}})
	_, err := NewXLSXStore(path, "wrong_sheet").Rows()
	assert.Error(t, err)
}

// fakeStore counts loads so the build-once barrier is observable.
type fakeStore struct {
	mu    sync.Mutex
	calls int
	rows  []index.Row
	err   error
}

func (f *fakeStore) Rows() ([]index.Row, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.rows, f.err
}

func TestCachedStore_BuildsOnce(t *testing.T) {
	src := &fakeStore{rows: []index.Row{
		{ID: "A1", CallRange: "370-371", Category: "Education", StartNum: "370", EndNum: "371"},
	}}
	cached := NewCachedStore(src, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, err := cached.Locator()
			assert.NoError(t, err)
			assert.Equal(t, 1, loc.Size())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, src.calls, "concurrent first requests must share one build")
}

func TestCachedStore_CachesError(t *testing.T) {
	src := &fakeStore{err: errors.New("boom")}
	cached := NewCachedStore(src, 0)

	_, err1 := cached.Locator()
	_, err2 := cached.Locator()

	assert.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.Equal(t, 1, src.calls)
}
