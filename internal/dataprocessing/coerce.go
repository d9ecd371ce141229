package dataprocessing

import (
	"strconv"
	"strings"

	"ratchetcli/pkg/contracts/domain"
)

// ParseNumeric attempts a numeric parse of a raw cell. Blank cells are
// missing values, not failures; the second return distinguishes "blank"
// (nil, true) from "non-numeric" (nil, false). Thousands separators are
// tolerated the way the rest of the pipeline reads spreadsheet numbers.
func ParseNumeric(cell string) (*float64, bool) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// CoerceReadings converts the canonical case fields of every reading to
// numerics. Each originally non-blank cell that fails to parse becomes nil
// and produces one warning-level entry naming the sheet, spreadsheet row,
// canonical column and raw value. Failures never abort the run.
func CoerceReadings(readings []domain.CaseReading, t *Table, log *domain.ErrorLog) {
	for i := range readings {
		r := &readings[i]
		for _, field := range domain.CaseNumericFields {
			raw, ok := r.Raw[field]
			if !ok {
				continue
			}
			v, parsed := ParseNumeric(raw)
			if !parsed {
				log.CellWarning(t.Sheet, "Non-numeric value found.", t.SheetRow(r.RowID), field, raw)
			}
			r.Values[field] = v
		}
	}
}
