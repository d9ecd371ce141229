package dataprocessing

import (
	"math"
	"sort"

	"ratchetcli/pkg/contracts/domain"
)

// ComputeEnvelopes reduces the long table to one worst-case record per
// runner row: greatest absolute pressure (reported as the magnitude),
// minimum yield, maximum delta-T1 and maximum hot modulus, each attributed
// to the case that produced it. Ties go to the first case in case order;
// a metric whose readings are all missing stays nil together with its
// case number.
func ComputeEnvelopes(readings []domain.CaseReading) []domain.Envelope {
	byRow := make(map[int][]domain.CaseReading)
	var rowIDs []int
	for _, r := range readings {
		if _, seen := byRow[r.RowID]; !seen {
			rowIDs = append(rowIDs, r.RowID)
		}
		byRow[r.RowID] = append(byRow[r.RowID], r)
	}
	sort.Ints(rowIDs)

	envelopes := make([]domain.Envelope, 0, len(rowIDs))
	for _, rowID := range rowIDs {
		group := byRow[rowID]
		env := domain.Envelope{RowID: rowID}
		env.PMax, env.PMaxCase = maxAbsWithCase(group, domain.FieldPressure)
		env.SyMin, env.SyMinCase = minWithCase(group, domain.FieldYield)
		env.DeltaT1Max, env.DeltaT1Case = maxWithCase(group, domain.FieldDeltaT1)
		env.EMax, env.EMaxCase = maxWithCase(group, domain.FieldHotModulus)
		envelopes = append(envelopes, env)
	}
	return envelopes
}

// maxAbsWithCase picks the reading with the greatest pressure magnitude and
// reports the magnitude, not the signed original value.
func maxAbsWithCase(group []domain.CaseReading, field string) (*float64, *int) {
	return pick(group, field, func(best, v float64) bool {
		return math.Abs(v) > math.Abs(best)
	}, math.Abs)
}

func maxWithCase(group []domain.CaseReading, field string) (*float64, *int) {
	return pick(group, field, func(best, v float64) bool { return v > best }, nil)
}

func minWithCase(group []domain.CaseReading, field string) (*float64, *int) {
	return pick(group, field, func(best, v float64) bool { return v < best }, nil)
}

// pick scans the group in case order and keeps the first value that beats
// the running best. transform, when set, maps the winning value before it
// is reported.
func pick(group []domain.CaseReading, field string, better func(best, v float64) bool, transform func(float64) float64) (*float64, *int) {
	var best *float64
	var bestCase *int
	for _, r := range group {
		v := r.Value(field)
		if v == nil {
			continue
		}
		if best == nil || better(*best, *v) {
			value, caseNum := *v, r.CaseNumber
			best, bestCase = &value, &caseNum
		}
	}
	if best == nil {
		return nil, nil
	}
	if transform != nil {
		return domain.Float(transform(*best)), bestCase
	}
	return best, bestCase
}
