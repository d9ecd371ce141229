package exporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ratchetcli/pkg/contracts/domain"
)

// Output sheet names.
const (
	SheetPerNode  = "PerNodeEnvelope"
	SheetMaterial = "MaterialEnvelope"
	SheetErrors   = "Errors"
)

// reportColumn pairs an output column with the unit label written into the
// inserted second row. Unitless columns carry an empty label.
type reportColumn struct {
	Name string
	Unit string
}

var nodeColumns = []reportColumn{
	{"from", ""},
	{"to", ""},
	{"material", ""},
	{"pipe_id", ""},
	{"nominal_in", "inch"},
	{"p_max", "psi"},
	{"p_max_case", ""},
	{"sy_min", "psi"},
	{"sy_min_case", ""},
	{"delta_t1_max", "deg F"},
	{"delta_t1_case", ""},
	{"E_max", "E6 psi"},
	{"E_max_case", ""},
	{"d_out", "inch"},
	{"thck", "inch"},
	{"alpha_room", "E-6in/inF"},
	{"c4", ""},
	{"x", ""},
	{"y", ""},
	{"allowable", "deg F"},
	{"note", ""},
}

var materialColumns = []reportColumn{
	{"material", ""},
	{"p_max", "psi"},
	{"p_max_nodes", ""},
	{"sy_min", "psi"},
	{"sy_min_nodes", ""},
	{"delta_t1_max", "deg F"},
	{"delta_t1_nodes", ""},
	{"E_max", "E6 psi"},
	{"E_max_nodes", ""},
	{"d_out", "inch"},
	{"d_out_nodes", ""},
	{"thck", "inch"},
	{"thck_nodes", ""},
	{"alpha_room", "E-6in/inF"},
	{"alpha_room_nodes", ""},
	{"c4", ""},
	{"c4_nodes", ""},
	{"x", ""},
	{"y", ""},
	{"allowable", "deg F"},
	{"note", ""},
}

var errorColumns = []string{"file", "sheet", "level", "message", "row", "column", "value"}

// OutputName derives the output workbook name for an input file:
// <input_stem>_ratchet.xlsx.
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_ratchet.xlsx"
}

// WriteReport writes the annotated report workbook for one processed input
// file. Structural failures produce a workbook containing only the Errors
// sheet; otherwise the per-node and per-material sheets are written with
// their unit rows and the material highlight fonts, plus the error log.
func WriteReport(path string, report *domain.FileReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if report.Structural {
		if err := f.SetSheetName("Sheet1", SheetErrors); err != nil {
			return fmt.Errorf("failed to create errors sheet: %w", err)
		}
		writeErrors(f, report.Errors)
		return save(f, path)
	}

	if err := f.SetSheetName("Sheet1", SheetPerNode); err != nil {
		return fmt.Errorf("failed to create per-node sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetMaterial); err != nil {
		return fmt.Errorf("failed to create material sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetErrors); err != nil {
		return fmt.Errorf("failed to create errors sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	nodeRowByID := writePerNode(f, report.Nodes)
	writeMaterials(f, report.Materials)
	writeErrors(f, report.Errors)

	for _, sheet := range []string{SheetPerNode, SheetMaterial, SheetErrors} {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
	}

	if err := highlightMaterials(f, report.Materials, nodeRowByID); err != nil {
		return err
	}
	return save(f, path)
}

func save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// writeHeader writes the column names and the unit row under them.
func writeHeader(f *excelize.File, sheet string, columns []reportColumn) {
	for i, col := range columns {
		setCell(f, sheet, i+1, 1, col.Name)
		if col.Unit != "" {
			setCell(f, sheet, i+1, 2, col.Unit)
		}
	}
}

// writePerNode fills the per-node sheet and returns the map from RowID to
// the sheet row each node landed on, for the material highlight pass.
func writePerNode(f *excelize.File, nodes []domain.NodeResult) map[int]int {
	writeHeader(f, SheetPerNode, nodeColumns)

	rowByID := make(map[int]int, len(nodes))
	for i, node := range nodes {
		row := i + 3
		rowByID[node.Runner.RowID] = row

		values := map[string]interface{}{
			"from":          node.Runner.From,
			"to":            node.Runner.To,
			"material":      node.Runner.Material,
			"pipe_id":       node.Runner.PipeID,
			"nominal_in":    node.Runner.NominalIn,
			"p_max":         optFloat(node.Envelope.PMax),
			"p_max_case":    optInt(node.Envelope.PMaxCase),
			"sy_min":        optFloat(node.Envelope.SyMin),
			"sy_min_case":   optInt(node.Envelope.SyMinCase),
			"delta_t1_max":  optFloat(node.Envelope.DeltaT1Max),
			"delta_t1_case": optInt(node.Envelope.DeltaT1Case),
			"E_max":         optFloat(node.Envelope.EMax),
			"E_max_case":    optInt(node.Envelope.EMaxCase),
			"x":             optFloat(node.Allowable.X),
			"y":             optFloat(node.Allowable.Y),
			"allowable":     optFloat(node.Allowable.Allowable),
			"note":          node.Allowable.Note,
		}
		if node.Property != nil {
			values["d_out"] = optFloat(node.Property.DOut)
			values["thck"] = optFloat(node.Property.Thck)
			values["alpha_room"] = optFloat(node.Property.AlphaRoom)
			values["c4"] = optFloat(node.Property.C4)
		}
		writeRow(f, SheetPerNode, nodeColumns, row, values)
	}
	return rowByID
}

func writeMaterials(f *excelize.File, materials []domain.MaterialEnvelope) {
	writeHeader(f, SheetMaterial, materialColumns)

	for i, m := range materials {
		row := i + 3
		writeRow(f, SheetMaterial, materialColumns, row, map[string]interface{}{
			"material":         m.Material,
			"p_max":            optFloat(m.PMax.Value),
			"p_max_nodes":      m.PMax.Nodes,
			"sy_min":           optFloat(m.SyMin.Value),
			"sy_min_nodes":     m.SyMin.Nodes,
			"delta_t1_max":     optFloat(m.DeltaT1Max.Value),
			"delta_t1_nodes":   m.DeltaT1Max.Nodes,
			"E_max":            optFloat(m.EMax.Value),
			"E_max_nodes":      m.EMax.Nodes,
			"d_out":            optFloat(m.DOut.Value),
			"d_out_nodes":      m.DOut.Nodes,
			"thck":             optFloat(m.Thck.Value),
			"thck_nodes":       m.Thck.Nodes,
			"alpha_room":       optFloat(m.AlphaRoom.Value),
			"alpha_room_nodes": m.AlphaRoom.Nodes,
			"c4":               optFloat(m.C4.Value),
			"c4_nodes":         m.C4.Nodes,
			"x":                optFloat(m.Allowable.X),
			"y":                optFloat(m.Allowable.Y),
			"allowable":        optFloat(m.Allowable.Allowable),
			"note":             m.Allowable.Note,
		})
	}
}

func writeErrors(f *excelize.File, log *domain.ErrorLog) {
	for i, name := range errorColumns {
		setCell(f, SheetErrors, i+1, 1, name)
	}
	if log == nil {
		return
	}
	for i, e := range log.Entries() {
		row := i + 2
		setCell(f, SheetErrors, 1, row, e.File)
		setCell(f, SheetErrors, 2, row, e.Sheet)
		setCell(f, SheetErrors, 3, row, e.Level)
		setCell(f, SheetErrors, 4, row, e.Message)
		setCell(f, SheetErrors, 5, row, optInt(e.Row))
		setCell(f, SheetErrors, 6, row, e.Column)
		setCell(f, SheetErrors, 7, row, e.Value)
	}
}

// highlightMaterials applies each material's generated color, in bold, to
// its row on the material sheet and to every per-node cell that supplied a
// winning extreme for that material.
func highlightMaterials(f *excelize.File, materials []domain.MaterialEnvelope, nodeRowByID map[int]int) error {
	nodeCol := make(map[string]int, len(nodeColumns))
	for i, col := range nodeColumns {
		nodeCol[col.Name] = i + 1
	}

	for i, m := range materials {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: MaterialColor(i)},
		})
		if err != nil {
			return fmt.Errorf("failed to create material style: %w", err)
		}

		row := i + 3
		if err := f.SetRowStyle(SheetMaterial, row, row, style); err != nil {
			return fmt.Errorf("failed to style material row: %w", err)
		}

		for _, win := range []struct {
			field   string
			extreme domain.Extreme
		}{
			{"p_max", m.PMax},
			{"sy_min", m.SyMin},
			{"delta_t1_max", m.DeltaT1Max},
			{"E_max", m.EMax},
			{"d_out", m.DOut},
			{"thck", m.Thck},
			{"alpha_room", m.AlphaRoom},
			{"c4", m.C4},
		} {
			field, extreme := win.field, win.extreme
			if extreme.RowID == nil {
				continue
			}
			nodeRow, ok := nodeRowByID[*extreme.RowID]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(nodeCol[field], nodeRow)
			if err != nil {
				return fmt.Errorf("failed to locate highlight cell: %w", err)
			}
			if err := f.SetCellStyle(SheetPerNode, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style winning cell: %w", err)
			}
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, columns []reportColumn, row int, values map[string]interface{}) {
	for i, col := range columns {
		if v, ok := values[col.Name]; ok {
			setCell(f, sheet, i+1, row, v)
		}
	}
}

// setCell writes a value unless it is nil; nil stays a blank cell so that
// missing inputs never show up as zeros.
func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	if value == nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, cell, value)
}

func optFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func optInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
