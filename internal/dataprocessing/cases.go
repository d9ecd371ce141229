package dataprocessing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ratchetcli/pkg/contracts/domain"
)

// caseHeaderRe matches normalized headers of the form "case <n> <field>".
var caseHeaderRe = regexp.MustCompile(`^case\s*(\d+)\s+(.*)$`)

// caseFieldAliases maps normalized case field text to canonical field ids.
// Field text that starts with "auto" is a derived column and is dropped
// before this table is consulted.
var caseFieldAliases = map[string]string{
	"pres psi":       domain.FieldPressure,
	"temp deg f":     domain.FieldTemperature,
	"expan in 100ft": domain.FieldExpansion,
	"hot mod e6 psi": domain.FieldHotModulus,
	"yield sy psi":   domain.FieldYield,
	"allow sm psi":   domain.FieldAllowSM,
	"delta t1 deg f": domain.FieldDeltaT1,
	"delta t2 deg f": domain.FieldDeltaT2,
}

// canonicalCaseField maps case field text to its canonical id. Unrecognized
// text falls back to an underscore-joined slug; those columns are carried
// through as extras but take no part in the envelope computation. The
// second return is false for "auto" fields, which are dropped silently.
func canonicalCaseField(field string) (string, bool, bool) {
	if strings.HasPrefix(field, "auto") {
		return "", false, false
	}
	if canonical, ok := caseFieldAliases[field]; ok {
		return canonical, true, true
	}
	return Slug(field), false, true
}

// ParseCases scans the PresTempPipeID table for "Case N <field>" column
// groups and reshapes the wide table into the long (row x case) form. The
// returned readings are ordered by ascending case number, then source row
// order. The second return lists the case numbers found; an empty list is
// the fatal no-case-columns condition, already logged.
func ParseCases(t *Table, log *domain.ErrorLog) ([]domain.CaseReading, []int) {
	type caseColumn struct {
		column    string
		canonical bool
	}
	caseMap := make(map[int]map[string]caseColumn)

	for _, col := range t.Columns {
		m := caseHeaderRe.FindStringSubmatch(StripDupSuffix(col))
		if m == nil {
			continue
		}
		caseNum, err := strconv.Atoi(m[1])
		if err != nil || caseNum <= 0 {
			continue
		}
		field := strings.TrimSpace(m[2])
		canonical, known, keep := canonicalCaseField(field)
		if !keep {
			continue
		}
		fields, ok := caseMap[caseNum]
		if !ok {
			fields = make(map[string]caseColumn)
			caseMap[caseNum] = fields
		}
		if _, dup := fields[canonical]; dup {
			log.Append(domain.ErrorEntry{
				Sheet:   t.Sheet,
				Level:   domain.LevelWarning,
				Message: fmt.Sprintf("Duplicate case field '%s' in case %d.", canonical, caseNum),
				Column:  col,
			})
		}
		fields[canonical] = caseColumn{column: col, canonical: known}
	}

	if len(caseMap) == 0 {
		log.Error(t.Sheet, "No case columns found in PresTempPipeID sheet.")
		return nil, nil
	}

	caseNums := make([]int, 0, len(caseMap))
	for n := range caseMap {
		caseNums = append(caseNums, n)
	}
	sort.Ints(caseNums)

	var readings []domain.CaseReading
	for _, caseNum := range caseNums {
		fields := caseMap[caseNum]
		for row := range t.Rows {
			reading := domain.CaseReading{
				RowID:      row,
				CaseNumber: caseNum,
				Raw:        make(map[string]string),
				Values:     make(map[string]*float64),
			}
			for name, cc := range fields {
				cell := t.CellByKey(row, cc.column)
				if cc.canonical {
					reading.Raw[name] = cell
					continue
				}
				if reading.Extra == nil {
					reading.Extra = make(map[string]string)
				}
				reading.Extra[name] = cell
			}
			readings = append(readings, reading)
		}
	}
	return readings, caseNums
}
