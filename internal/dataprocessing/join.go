package dataprocessing

import (
	"fmt"

	"ratchetcli/pkg/contracts/domain"
)

// JoinProperties left-joins the per-row envelopes onto the property records
// keyed by normalized pipe id. Rows with a blank pipe id and rows whose id
// has no property match each get a warning and keep a nil property; the
// allowable computation downstream treats that as missing inputs.
func JoinProperties(runners []domain.RunnerRow, envelopes []domain.Envelope, props map[string]domain.PipeProperty, log *domain.ErrorLog) []domain.NodeResult {
	envByRow := make(map[int]domain.Envelope, len(envelopes))
	for _, env := range envelopes {
		envByRow[env.RowID] = env
	}

	results := make([]domain.NodeResult, 0, len(runners))
	for _, runner := range runners {
		node := domain.NodeResult{
			Runner:   runner,
			Envelope: envByRow[runner.RowID],
		}
		node.Envelope.RowID = runner.RowID

		key, ok := NormalizePipeID(runner.PipeID)
		if !ok {
			log.Warning(SheetPresTemp, "Missing Pipe ID for join.")
		} else if prop, found := props[key]; found {
			p := prop
			node.Property = &p
		} else {
			log.Warning(SheetProperties, fmt.Sprintf("No property match for Pipe ID %s.", key))
		}
		results = append(results, node)
	}
	return results
}
