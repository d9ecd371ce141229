package dataprocessing

import (
	"fmt"
	"sort"
	"strings"

	"ratchetcli/pkg/contracts/domain"
)

// Property columns of the PipeProperties sheet.
var propertyAliases = []alias{
	{"pipe_id", []string{"pipeid", "pipe id"}},
	{"d_out", []string{"actual o d inch"}},
	{"thck", []string{"wall thick inch"}},
	{"pipe_material", []string{"pipe material"}},
	{"alpha_room", []string{"thermal exp e 6in inf"}},
	{"c4", []string{"ratchet c4"}},
}

// ExtractProperties reads the PipeProperties table into one record per
// distinct normalized pipe id. Numeric cells are coerced with per-cell
// warnings; duplicate pipe ids produce a single warning naming them all and
// the first occurrence wins.
func ExtractProperties(t *Table, log *domain.ErrorLog) map[string]domain.PipeProperty {
	cols := resolveAliases(t, propertyAliases, log)

	cell := func(row int, canonical string) string {
		r := cols[canonical]
		if !r.Present {
			return ""
		}
		return t.CellByKey(row, r.Column)
	}
	numeric := func(row int, canonical string) *float64 {
		raw := cell(row, canonical)
		v, parsed := ParseNumeric(raw)
		if !parsed {
			log.CellWarning(t.Sheet, "Non-numeric value found.", t.SheetRow(row), canonical, raw)
		}
		return v
	}

	props := make(map[string]domain.PipeProperty)
	var duplicates []string
	for row := range t.Rows {
		rawID := cell(row, "pipe_id")
		key, ok := NormalizePipeID(rawID)
		if !ok {
			continue
		}
		if _, seen := props[key]; seen {
			duplicates = append(duplicates, key)
			continue
		}
		props[key] = domain.PipeProperty{
			Key:          key,
			PipeID:       strings.TrimSpace(rawID),
			PipeMaterial: cell(row, "pipe_material"),
			DOut:         numeric(row, "d_out"),
			Thck:         numeric(row, "thck"),
			AlphaRoom:    numeric(row, "alpha_room"),
			C4:           numeric(row, "c4"),
		}
	}

	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		log.Warning(t.Sheet, fmt.Sprintf(
			"Duplicate PipeID values found in PipeProperties: %s. Using first occurrence.",
			strings.Join(uniqueStrings(duplicates), ", ")))
	}
	return props
}

func uniqueStrings(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
