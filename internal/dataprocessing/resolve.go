package dataprocessing

import (
	"fmt"

	"ratchetcli/pkg/contracts/domain"
)

// An alias binds a canonical field to the ordered list of header keys that
// may carry it. Resolution takes the first alias present in the table.
type alias struct {
	Canonical string
	Keys      []string
}

// Runner columns of the PresTempPipeID sheet.
var runnerAliases = []alias{
	{"from", []string{"from"}},
	{"to", []string{"to"}},
	{"material", []string{"material"}},
	{"pipe_id", []string{"pipe id", "pipeid"}},
	{"nominal_in", []string{"nominal in", "nominalin"}},
}

// resolved maps a canonical field to the source column it was found in.
// Absent is explicit: downstream code sees a stable schema either way.
type resolved struct {
	Column  string
	Present bool
}

// resolveAliases resolves each canonical field to its first matching
// column. Required fields that resolve to nothing are logged as
// error-level entries and left as explicit absences; the table keeps a
// stable downstream schema with null cells in their place.
func resolveAliases(t *Table, aliases []alias, log *domain.ErrorLog) map[string]resolved {
	out := make(map[string]resolved, len(aliases))
	for _, a := range aliases {
		found := false
		for _, key := range a.Keys {
			if col, ok := t.FindColumn(key); ok {
				out[a.Canonical] = resolved{Column: col, Present: true}
				found = true
				break
			}
		}
		if !found {
			log.Error(t.Sheet, fmt.Sprintf("Missing required column '%s'.", a.Canonical))
			out[a.Canonical] = resolved{}
		}
	}
	return out
}

// ExtractRunners builds one RunnerRow per data row of the PresTempPipeID
// sheet. Missing runner columns have already been logged by the resolver;
// their cells come back blank.
func ExtractRunners(t *Table, log *domain.ErrorLog) []domain.RunnerRow {
	cols := resolveAliases(t, runnerAliases, log)

	cell := func(row int, canonical string) string {
		r := cols[canonical]
		if !r.Present {
			return ""
		}
		return t.CellByKey(row, r.Column)
	}

	runners := make([]domain.RunnerRow, 0, len(t.Rows))
	for i := range t.Rows {
		runners = append(runners, domain.RunnerRow{
			RowID:     i,
			From:      cell(i, "from"),
			To:        cell(i, "to"),
			Material:  cell(i, "material"),
			PipeID:    cell(i, "pipe_id"),
			NominalIn: cell(i, "nominal_in"),
		})
	}
	return runners
}
