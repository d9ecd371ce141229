package dataprocessing

import (
	"math"
	"strings"

	"ratchetcli/pkg/contracts/domain"
)

// AggregateMaterials re-aggregates the per-node results by trimmed material
// label into worst-of-worst records: the most conservative value of each
// physical quantity across the group, independent of which node produced
// it, with the surviving extreme's node pair kept as provenance. The
// allowable formula is re-run on each synthesized record as a cross-check
// envelope. Rows with a blank material label are skipped entirely.
// Materials keep their first-appearance order so color assignment stays
// stable for a stable input.
func AggregateMaterials(nodes []domain.NodeResult) []domain.MaterialEnvelope {
	groups := make(map[string][]domain.NodeResult)
	var order []string
	for _, node := range nodes {
		material := strings.TrimSpace(node.Runner.Material)
		if material == "" {
			continue
		}
		if _, seen := groups[material]; !seen {
			order = append(order, material)
		}
		groups[material] = append(groups[material], node)
	}

	envelopes := make([]domain.MaterialEnvelope, 0, len(order))
	for _, material := range order {
		group := groups[material]
		env := domain.MaterialEnvelope{Material: material}

		env.PMax = reduceNodes(group, envelopeValue(func(e domain.Envelope) *float64 { return e.PMax }), largerAbs)
		env.SyMin = reduceNodes(group, envelopeValue(func(e domain.Envelope) *float64 { return e.SyMin }), smaller)
		env.DeltaT1Max = reduceNodes(group, envelopeValue(func(e domain.Envelope) *float64 { return e.DeltaT1Max }), larger)
		env.EMax = reduceNodes(group, envelopeValue(func(e domain.Envelope) *float64 { return e.EMax }), larger)
		env.DOut = reduceNodes(group, propertyValue(func(p *domain.PipeProperty) *float64 { return p.DOut }), larger)
		env.Thck = reduceNodes(group, propertyValue(func(p *domain.PipeProperty) *float64 { return p.Thck }), smaller)
		env.AlphaRoom = reduceNodes(group, propertyValue(func(p *domain.PipeProperty) *float64 { return p.AlphaRoom }), larger)
		env.C4 = reduceNodes(group, propertyValue(func(p *domain.PipeProperty) *float64 { return p.C4 }), smaller)

		env.Allowable = CalculateAllowable(domain.AllowableInput{
			PMax:      env.PMax.Value,
			SyMin:     env.SyMin.Value,
			EMax:      env.EMax.Value,
			AlphaRoom: env.AlphaRoom.Value,
			C4:        env.C4.Value,
			DOut:      env.DOut.Value,
			Thck:      env.Thck.Value,
		})
		envelopes = append(envelopes, env)
	}
	return envelopes
}

func envelopeValue(get func(domain.Envelope) *float64) func(domain.NodeResult) *float64 {
	return func(n domain.NodeResult) *float64 { return get(n.Envelope) }
}

func propertyValue(get func(*domain.PipeProperty) *float64) func(domain.NodeResult) *float64 {
	return func(n domain.NodeResult) *float64 {
		if n.Property == nil {
			return nil
		}
		return get(n.Property)
	}
}

func larger(best, v float64) bool    { return v > best }
func smaller(best, v float64) bool   { return v < best }
func largerAbs(best, v float64) bool { return math.Abs(v) > math.Abs(best) }

// reduceNodes scans the group in node order and keeps the first value that
// beats the running best, together with its provenance.
func reduceNodes(group []domain.NodeResult, get func(domain.NodeResult) *float64, better func(best, v float64) bool) domain.Extreme {
	var extreme domain.Extreme
	for _, node := range group {
		v := get(node)
		if v == nil {
			continue
		}
		if extreme.Value == nil || better(*extreme.Value, *v) {
			extreme = domain.Extreme{
				Value: domain.Float(*v),
				RowID: domain.Int(node.Runner.RowID),
				Nodes: node.Runner.From + "->" + node.Runner.To,
			}
		}
	}
	return extreme
}
