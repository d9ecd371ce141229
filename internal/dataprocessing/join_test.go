package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratchetcli/pkg/contracts/domain"
)

func TestJoinPropertiesMatchesNormalizedIDs(t *testing.T) {
	log := domain.NewErrorLog("test.xlsx")
	runners := []domain.RunnerRow{
		{RowID: 0, PipeID: " p-1 "},
		{RowID: 1, PipeID: "P-2"},
		{RowID: 2, PipeID: ""},
	}
	envelopes := []domain.Envelope{{RowID: 0}, {RowID: 1}, {RowID: 2}}
	props := map[string]domain.PipeProperty{
		"P-1": {Key: "P-1", PipeID: "P-1", PipeMaterial: "A106-B"},
	}

	nodes := JoinProperties(runners, envelopes, props, log)
	require.Len(t, nodes, 3)

	require.NotNil(t, nodes[0].Property)
	assert.Equal(t, "A106-B", nodes[0].Property.PipeMaterial)
	assert.Nil(t, nodes[1].Property)
	assert.Nil(t, nodes[2].Property)

	require.Equal(t, 2, log.Len())
	assert.Contains(t, log.Entries()[0].Message, "No property match for Pipe ID P-2")
	assert.Contains(t, log.Entries()[1].Message, "Missing Pipe ID for join")
}

func TestJoinPropertiesCopiesPropertyRecords(t *testing.T) {
	log := domain.NewErrorLog("test.xlsx")
	runners := []domain.RunnerRow{
		{RowID: 0, PipeID: "P-1"},
		{RowID: 1, PipeID: "P-1"},
	}
	envelopes := []domain.Envelope{{RowID: 0}, {RowID: 1}}
	props := map[string]domain.PipeProperty{
		"P-1": {Key: "P-1", Thck: domain.Float(0.237)},
	}

	nodes := JoinProperties(runners, envelopes, props, log)
	require.Len(t, nodes, 2)
	require.NotNil(t, nodes[0].Property)
	require.NotNil(t, nodes[1].Property)
	assert.NotSame(t, nodes[0].Property, nodes[1].Property)
}
