package dataprocessing

import (
	"fmt"
	"strings"

	"ratchetcli/pkg/contracts/domain"
)

// headerRows is the fixed two-row header convention at the input boundary:
// row 1 carries the column names, row 2 the unit labels and is discarded.
const headerRows = 2

// Table is an in-memory snapshot of one sheet's data block. Columns hold
// the normalized, de-duplicated header keys; cells stay raw strings until
// the numeric coercer runs. SheetRows maps each data row back to its
// one-based spreadsheet row so error entries can point at real cells.
type Table struct {
	Sheet     string
	Columns   []string
	Rows      [][]string
	SheetRows []int

	index map[string]int
}

// NewTable builds a table from a raw header row and data rows. Header keys
// are normalized; a key seen more than once gets a "__dupN" suffix and a
// duplicate-column warning. firstSheetRow is the one-based spreadsheet row
// of the first data row.
func NewTable(sheet string, header []string, rows [][]string, firstSheetRow int, log *domain.ErrorLog) *Table {
	t := &Table{Sheet: sheet, index: make(map[string]int)}

	seen := make(map[string]int)
	for _, raw := range header {
		key := NormalizeKey(raw)
		if n, dup := seen[key]; dup {
			seen[key] = n + 1
			log.Append(domain.ErrorEntry{
				Sheet:   sheet,
				Level:   domain.LevelWarning,
				Message: fmt.Sprintf("Duplicate column after normalization: '%s'.", key),
				Column:  raw,
			})
			key = fmt.Sprintf("%s__dup%d", key, n+1)
		} else {
			seen[key] = 0
		}
		t.index[key] = len(t.Columns)
		t.Columns = append(t.Columns, key)
	}

	for i, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
		t.SheetRows = append(t.SheetRows, firstSheetRow+i)
	}
	return t
}

// Column returns the index of the column with the given normalized key.
func (t *Table) Column(key string) (int, bool) {
	i, ok := t.index[key]
	return i, ok
}

// FindColumn resolves a single alias key to a column, falling back to a
// space-insensitive comparison so "pipe id" also finds "pipeid".
func (t *Table) FindColumn(key string) (string, bool) {
	norm := NormalizeKey(key)
	if _, ok := t.index[norm]; ok {
		return norm, true
	}
	squeezed := strings.ReplaceAll(norm, " ", "")
	for _, col := range t.Columns {
		if strings.ReplaceAll(col, " ", "") == squeezed {
			return col, true
		}
	}
	return "", false
}

// Cell returns the raw text of the cell at (row, column index). Rows read
// from excelize can be ragged, so indexes past the row's end are blank.
func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// CellByKey returns the raw text of the cell at (row, column key).
func (t *Table) CellByKey(row int, key string) string {
	i, ok := t.index[key]
	if !ok {
		return ""
	}
	return t.Cell(row, i)
}

// SheetRow returns the one-based spreadsheet row for a data row index.
func (t *Table) SheetRow(row int) int {
	if row < 0 || row >= len(t.SheetRows) {
		return 0
	}
	return t.SheetRows[row]
}

// StripDupSuffix removes the "__dupN" disambiguation suffix so that the
// original normalized header text can be matched against alias tables.
func StripDupSuffix(key string) string {
	if i := strings.Index(key, "__dup"); i >= 0 {
		return key[:i]
	}
	return key
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
