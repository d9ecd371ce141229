package dataprocessing

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ratchetcli/pkg/contracts/domain"
)

// Processor runs the full per-file pipeline: load the two input sheets,
// reshape the case columns into the long table, compute the per-node
// envelopes and allowables, and re-aggregate them by material. It holds no
// state between files; every call starts from a fresh error log.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a processor that logs through the given logger.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// ProcessFile computes the report for one input workbook. It never returns
// an error: anything that stops computation is recorded in the report's
// error log and flags the report as structural, so the caller still writes
// an error-log-only output workbook for the file.
func (p *Processor) ProcessFile(path string) *domain.FileReport {
	report := &domain.FileReport{
		File:   filepath.Base(path),
		Errors: domain.NewErrorLog(filepath.Base(path)),
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		report.Errors.Error("", fmt.Sprintf("Failed to read Excel file: %v", err))
		report.Structural = true
		return report
	}
	defer f.Close()

	presTable, presOK := LoadSheet(f, SheetPresTemp, report.Errors)
	propTable, propOK := LoadSheet(f, SheetProperties, report.Errors)
	if !presOK || !propOK {
		report.Structural = true
		return report
	}

	runners := ExtractRunners(presTable, report.Errors)
	readings, caseNums := ParseCases(presTable, report.Errors)
	if len(caseNums) == 0 {
		report.Structural = true
		return report
	}
	CoerceReadings(readings, presTable, report.Errors)

	props := ExtractProperties(propTable, report.Errors)
	envelopes := ComputeEnvelopes(readings)
	nodes := JoinProperties(runners, envelopes, props, report.Errors)
	for i := range nodes {
		nodes[i].Allowable = CalculateAllowable(NodeAllowableInput(nodes[i]))
	}

	report.Nodes = nodes
	report.Materials = AggregateMaterials(nodes)

	p.logger.Info("Processed input file",
		slog.String("file", report.File),
		slog.Int("rows", len(runners)),
		slog.Int("cases", len(caseNums)),
		slog.Int("materials", len(report.Materials)),
		slog.Int("findings", report.Errors.Len()))

	return report
}
