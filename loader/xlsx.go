package loader

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AJ-Ball/lib-api/index"
)

// Defaults matching the catalog workbook this service was built around.
const (
	DefaultWorkbook = "Data_Lib.xlsx"
	DefaultSheet    = "api"
)

// XLSXStore reads catalog rows from an Excel workbook. The first row of the
// sheet is the header row; headers are bound to canonical columns with fuzzy
// lookup (see resolveColumns).
type XLSXStore struct {
	path  string
	sheet string
}

// NewXLSXStore creates a store for the given workbook path and sheet name.
// Empty arguments fall back to DefaultWorkbook and DefaultSheet.
func NewXLSXStore(path, sheet string) *XLSXStore {
	if path == "" {
		path = DefaultWorkbook
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &XLSXStore{path: path, sheet: sheet}
}

// Rows loads and validates all data rows from the workbook. Cell-level
// problems degrade to absent fields; only a missing file or sheet is an
// error. Boundary parseability is not checked here - that is the index's
// call, and it drops bad rows itself.
func (s *XLSXStore) Rows() ([]index.Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("closing workbook", "path", s.path, "error", cerr)
		}
	}()

	cells, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	cols := resolveColumns(cells[0])
	if len(cols) == 0 {
		return nil, fmt.Errorf("sheet %q: no recognizable columns in header row", s.sheet)
	}

	rows := make([]index.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		row := rowFromRecord(record, cols)
		if row == (index.Row{}) {
			continue // fully blank line
		}
		rows = append(rows, row)
	}

	slog.Info("workbook loaded", "path", s.path, "sheet", s.sheet, "rows", len(rows))
	return rows, nil
}

func rowFromRecord(record []string, cols map[string]int) index.Row {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	return index.Row{
		ID:            cell(colID),
		CallRange:     cell(colCallRange),
		Category:      cell(colCategory),
		MapURL:        cell(colMapURL),
		Side:          cell(colSide),
		Row:           intCell(cell(colRow)),
		ShelfLevel:    intCell(cell(colShelfLevel)),
		Locker:        intCell(cell(colLocker)),
		BuildingFloor: intCell(cell(colBuildingFloor)),
		StartRaw:      cell(colStartRaw),
		EndRaw:        cell(colEndRaw),
		StartNum:      cell(colStartNum),
		EndNum:        cell(colEndNum),
		StartSuffix:   cell(colStartSuffix),
		EndSuffix:     cell(colEndSuffix),
	}
}

// intCell coerces a cell to an integer, tolerating Excel's float rendering
// of whole numbers ("3", "3.0"). Anything else is an absent value.
func intCell(s string) *int {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(v)
		return &n
	}
	return nil
}
