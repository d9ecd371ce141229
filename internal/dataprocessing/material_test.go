package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratchetcli/pkg/contracts/domain"
)

func nodeForTest(rowID int, from, to, material string, env domain.Envelope, prop *domain.PipeProperty) domain.NodeResult {
	env.RowID = rowID
	return domain.NodeResult{
		Runner:   domain.RunnerRow{RowID: rowID, From: from, To: to, Material: material},
		Envelope: env,
		Property: prop,
	}
}

func TestAggregateMaterialsConservativeExtremes(t *testing.T) {
	nodes := []domain.NodeResult{
		nodeForTest(0, "A", "B", "CS",
			domain.Envelope{
				PMax:       domain.Float(10),
				SyMin:      domain.Float(50),
				DeltaT1Max: domain.Float(20),
				EMax:       domain.Float(30),
			},
			&domain.PipeProperty{
				DOut:      domain.Float(2),
				Thck:      domain.Float(0.5),
				AlphaRoom: domain.Float(6.5),
				C4:        domain.Float(1.1),
			}),
		nodeForTest(1, "B", "C", "CS",
			domain.Envelope{
				PMax:       domain.Float(12),
				SyMin:      domain.Float(45),
				DeltaT1Max: domain.Float(15),
				EMax:       domain.Float(28),
			},
			&domain.PipeProperty{
				DOut:      domain.Float(3),
				Thck:      domain.Float(0.4),
				AlphaRoom: domain.Float(7.0),
				C4:        domain.Float(1.0),
			}),
	}

	materials := AggregateMaterials(nodes)
	require.Len(t, materials, 1)
	m := materials[0]
	assert.Equal(t, "CS", m.Material)

	assert.Equal(t, 12.0, *m.PMax.Value)
	assert.Equal(t, "B->C", m.PMax.Nodes)
	assert.Equal(t, 1, *m.PMax.RowID)

	assert.Equal(t, 45.0, *m.SyMin.Value)
	assert.Equal(t, "B->C", m.SyMin.Nodes)

	assert.Equal(t, 20.0, *m.DeltaT1Max.Value)
	assert.Equal(t, "A->B", m.DeltaT1Max.Nodes)

	assert.Equal(t, 30.0, *m.EMax.Value)
	assert.Equal(t, "A->B", m.EMax.Nodes)

	assert.Equal(t, 3.0, *m.DOut.Value)
	assert.Equal(t, 0.4, *m.Thck.Value)
	assert.Equal(t, 7.0, *m.AlphaRoom.Value)
	assert.Equal(t, 1.0, *m.C4.Value)
	assert.Equal(t, "B->C", m.C4.Nodes)

	// The synthesized worst-of-worst record goes back through the formula.
	assert.True(t, m.Allowable.OK())
	require.NotNil(t, m.Allowable.X)
	assert.InDelta(t, (12.0*3.0)/(2*0.4*45.0), *m.Allowable.X, 1e-12)
}

func TestAggregateMaterialsSkipsBlankLabels(t *testing.T) {
	nodes := []domain.NodeResult{
		nodeForTest(0, "A", "B", "  ", domain.Envelope{PMax: domain.Float(1)}, nil),
		nodeForTest(1, "B", "C", "", domain.Envelope{PMax: domain.Float(2)}, nil),
		nodeForTest(2, "C", "D", "CS", domain.Envelope{PMax: domain.Float(3)}, nil),
	}

	materials := AggregateMaterials(nodes)
	require.Len(t, materials, 1)
	assert.Equal(t, "CS", materials[0].Material)
}

func TestAggregateMaterialsFirstSeenOrder(t *testing.T) {
	nodes := []domain.NodeResult{
		nodeForTest(0, "A", "B", "SS", domain.Envelope{}, nil),
		nodeForTest(1, "B", "C", "CS", domain.Envelope{}, nil),
		nodeForTest(2, "C", "D", "SS", domain.Envelope{}, nil),
	}

	materials := AggregateMaterials(nodes)
	require.Len(t, materials, 2)
	assert.Equal(t, "SS", materials[0].Material)
	assert.Equal(t, "CS", materials[1].Material)
}

func TestAggregateMaterialsMissingPropertiesStayMissing(t *testing.T) {
	nodes := []domain.NodeResult{
		nodeForTest(0, "A", "B", "CS", domain.Envelope{PMax: domain.Float(1)}, nil),
	}

	materials := AggregateMaterials(nodes)
	require.Len(t, materials, 1)
	m := materials[0]
	assert.Nil(t, m.DOut.Value)
	assert.Nil(t, m.Thck.Value)
	assert.Equal(t, "Missing inputs", m.Allowable.Note)
}

func TestAggregateMaterialsTrimsLabels(t *testing.T) {
	nodes := []domain.NodeResult{
		nodeForTest(0, "A", "B", " CS ", domain.Envelope{PMax: domain.Float(1)}, nil),
		nodeForTest(1, "B", "C", "CS", domain.Envelope{PMax: domain.Float(2)}, nil),
	}

	materials := AggregateMaterials(nodes)
	require.Len(t, materials, 1)
	assert.Equal(t, 2.0, *materials[0].PMax.Value)
}
