package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ratchetcli/internal/config"
	"ratchetcli/internal/dataprocessing"
	"ratchetcli/internal/exporter"
	"ratchetcli/internal/files"
	"ratchetcli/internal/infrastructure"
	"ratchetcli/pkg/contracts"
)

func main() {
	os.Exit(run())
}

func run() int {
	inputDir := flag.String("input", "", "input folder containing Excel files (defaults to data/input)")
	outputDir := flag.String("output", "", "output folder for ratchet results (defaults to data/output)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Command-line flags override config values.
	if *inputDir != "" {
		cfg.Batch.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.Batch.OutputDir = *outputDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting ratchet processing",
		slog.String("input_dir", cfg.Batch.InputDir),
		slog.String("output_dir", cfg.Batch.OutputDir))

	found, err := files.FindExcelFiles(cfg.Batch.InputDir)
	if err != nil {
		logger.Error("Failed to read input directory",
			slog.String("input_dir", cfg.Batch.InputDir),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Cannot read input directory %s: %v\n", cfg.Batch.InputDir, err)
		return 1
	}

	fmt.Printf("Found %d Excel files\n", len(found))
	if len(found) == 0 {
		logger.Warn("No Excel files found in input directory",
			slog.String("input_dir", cfg.Batch.InputDir),
			slog.String("pattern", "*.xlsx"))
		fmt.Fprintf(os.Stderr, "No Excel files found in %s\n", cfg.Batch.InputDir)
		return 1
	}

	if err := os.MkdirAll(cfg.Batch.OutputDir, 0755); err != nil {
		logger.Error("Error creating output directory",
			slog.String("output_dir", cfg.Batch.OutputDir),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Cannot create output directory %s: %v\n", cfg.Batch.OutputDir, err)
		return 1
	}

	processor := dataprocessing.NewProcessor(logger)
	for i, file := range found {
		fmt.Printf("Processing file %d of %d: %s\n", i+1, len(found), file.Name)
		processOne(processor, logger, file.Path, cfg.Batch.OutputDir)
	}

	logger.Info("Processing complete", slog.Int("files", len(found)))
	fmt.Printf("Processing complete: %d files\n", len(found))
	return 0
}

// processOne runs one input file to completion. A failing file must not
// abort the batch, so write errors and panics are logged and swallowed
// here.
func processOne(p *dataprocessing.Processor, logger *slog.Logger, path, outDir string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure while processing file",
				slog.String("file", filepath.Base(path)),
				slog.Any("panic", r))
		}
	}()

	report := p.ProcessFile(path)
	outPath := filepath.Join(outDir, exporter.OutputName(path))
	if err := exporter.WriteReport(outPath, report); err != nil {
		logger.Error("Error writing report workbook",
			slog.String("file", report.File),
			slog.String("path", outPath),
			slog.String("error", err.Error()))
		return
	}

	logger.Info("Wrote report workbook",
		slog.String("file", report.File),
		slog.String("path", outPath),
		slog.Bool("structural", report.Structural),
		slog.Int("findings", report.Errors.Len()))
}
