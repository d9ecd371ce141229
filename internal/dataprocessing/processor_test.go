package dataprocessing

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ratchetcli/pkg/contracts/domain"
)

var presHeaderForTest = []interface{}{
	"From", "To", "Material", "Pipe ID", "Nominal     in",
	"Case 1 Pres. psi", "Case 1 Temp. Deg.F", "Case 1 Yield(SY)  psi", "Case 1 Delta T1 Deg.F", "Case 1 Hot Mod. E6 psi",
	"Case 2 Pres. psi", "Case 2 Temp. Deg.F", "Case 2 Yield(SY)  psi", "Case 2 Delta T1 Deg.F", "Case 2 Hot Mod. E6 psi",
}

var propHeaderForTest = []interface{}{
	"PipeID", "Actual O.D.  inch", "Wall Thick.  inch", "Pipe Material", "Thermal Exp.  E-6in/inF", "Ratchet C4",
}

// writeWorkbookForTest builds a two-sheet input workbook with a header row,
// a units row, and the given data rows, matching the export layout the
// pipeline expects.
func writeWorkbookForTest(t *testing.T, presRows, propRows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for sheet, content := range map[string]struct {
		header []interface{}
		rows   [][]interface{}
	}{
		SheetPresTemp:   {presHeaderForTest, presRows},
		SheetProperties: {propHeaderForTest, propRows},
	} {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, "A1", &content.header))
		units := make([]interface{}, len(content.header))
		for i := range units {
			units[i] = "unit"
		}
		require.NoError(t, f.SetSheetRow(sheet, "A2", &units))
		for i, row := range content.rows {
			cell := fmt.Sprintf("A%d", i+3)
			r := row
			require.NoError(t, f.SetSheetRow(sheet, cell, &r))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "line101.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestProcessFileHappyPath(t *testing.T) {
	path := writeWorkbookForTest(t,
		[][]interface{}{
			{"10", "20", "CS", "p-1", 4,
				100, 300, 40000, 200, 27.9,
				150, 250, 38000, 150, 26.5},
		},
		[][]interface{}{
			{"P-1", 4.5, 0.237, "A106-B", 6.5, 1.1},
		})

	report := NewProcessor(nil).ProcessFile(path)

	assert.False(t, report.Structural)
	assert.Equal(t, 0, report.Errors.Len())
	require.Len(t, report.Nodes, 1)

	node := report.Nodes[0]
	assert.Equal(t, "10", node.Runner.From)
	require.NotNil(t, node.Property)
	assert.Equal(t, "A106-B", node.Property.PipeMaterial)

	require.NotNil(t, node.Envelope.PMax)
	assert.Equal(t, 150.0, *node.Envelope.PMax)
	assert.Equal(t, 2, *node.Envelope.PMaxCase)
	assert.Equal(t, 38000.0, *node.Envelope.SyMin)
	assert.Equal(t, 200.0, *node.Envelope.DeltaT1Max)
	assert.Equal(t, 27.9, *node.Envelope.EMax)

	assert.True(t, node.Allowable.OK())
	require.NotNil(t, node.Allowable.Allowable)
	assert.Greater(t, *node.Allowable.Allowable, 0.0)

	require.Len(t, report.Materials, 1)
	assert.Equal(t, "CS", report.Materials[0].Material)
}

func TestProcessFileRerunIsDeterministic(t *testing.T) {
	path := writeWorkbookForTest(t,
		[][]interface{}{
			{"10", "20", "CS", "P-1", 4,
				100, 300, 40000, 200, 27.9,
				"bad", 250, 38000, 150, 26.5},
			{"20", "30", "SS", "P-2", 6,
				90, 280, 41000, 180, 27.0,
				110, 240, 39000, 160, 26.0},
		},
		[][]interface{}{
			{"P-1", 4.5, 0.237, "A106-B", 6.5, 1.1},
		})

	p := NewProcessor(nil)
	first := p.ProcessFile(path)
	second := p.ProcessFile(path)

	assert.Equal(t, first.Structural, second.Structural)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Materials, second.Materials)
	assert.Equal(t, first.Errors.Entries(), second.Errors.Entries())
}

func TestProcessFileDuplicatePipeID(t *testing.T) {
	path := writeWorkbookForTest(t,
		[][]interface{}{
			{"10", "20", "CS", "P-1", 4,
				100, 300, 40000, 200, 27.9,
				150, 250, 38000, 150, 26.5},
		},
		[][]interface{}{
			{"P-1", 4.5, 0.237, "A106-B", 6.5, 1.1},
			{"p-1", 6.625, 0.280, "A106-B", 6.5, 1.1},
		})

	report := NewProcessor(nil).ProcessFile(path)

	var warnings []domain.ErrorEntry
	for _, e := range report.Errors.Entries() {
		if e.Level == domain.LevelWarning {
			warnings = append(warnings, e)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "Duplicate PipeID")
	assert.Contains(t, warnings[0].Message, "P-1")

	require.Len(t, report.Nodes, 1)
	require.NotNil(t, report.Nodes[0].Property)
	assert.Equal(t, 0.237, *report.Nodes[0].Property.Thck)
}

func TestProcessFileMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet(SheetPresTemp)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(SheetPresTemp, "A1", &presHeaderForTest))
	require.NoError(t, f.DeleteSheet("Sheet1"))
	path := filepath.Join(t.TempDir(), "noprops.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	report := NewProcessor(nil).ProcessFile(path)

	assert.True(t, report.Structural)
	assert.True(t, report.Errors.HasErrors())
	require.NotEmpty(t, report.Errors.Entries())
	assert.Contains(t, report.Errors.Entries()[0].Message, "Missing sheet")
	assert.Empty(t, report.Nodes)
}

func TestProcessFileUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	report := NewProcessor(nil).ProcessFile(path)

	assert.True(t, report.Structural)
	require.NotEmpty(t, report.Errors.Entries())
	assert.Contains(t, report.Errors.Entries()[0].Message, "Failed to read Excel file")
}

func TestProcessFileNonNumericCaseValue(t *testing.T) {
	path := writeWorkbookForTest(t,
		[][]interface{}{
			{"10", "20", "CS", "P-1", 4,
				"N/A", 300, 40000, 200, 27.9,
				150, 250, 38000, 150, 26.5},
		},
		[][]interface{}{
			{"P-1", 4.5, 0.237, "A106-B", 6.5, 1.1},
		})

	report := NewProcessor(nil).ProcessFile(path)

	assert.False(t, report.Structural)
	var found *domain.ErrorEntry
	for i, e := range report.Errors.Entries() {
		if e.Message == "Non-numeric value found." {
			found = &report.Errors.Entries()[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, domain.LevelWarning, found.Level)
	require.NotNil(t, found.Row)
	assert.Equal(t, 3, *found.Row)
	assert.Equal(t, domain.FieldPressure, found.Column)
	assert.Equal(t, "N/A", found.Value)

	// The bad cell drops out; the other case still drives the envelope.
	require.Len(t, report.Nodes, 1)
	require.NotNil(t, report.Nodes[0].Envelope.PMax)
	assert.Equal(t, 150.0, *report.Nodes[0].Envelope.PMax)
}
