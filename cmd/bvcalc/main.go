// Command bvcalc runs the BV 2.0 calculation engine against a corpus of
// unit descriptions and a published reference BV list.
//
// Usage:
//
//	bvcalc validate-bv --input <units-dir> --reference <mul-csv> --catalogue <catalogue.yaml> --out <report.json> [--diagnostics] [--workers N] [--timeout-ms N] [--tolerance-pct N]
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/nicoberrocal/bvcalc/bv"
	"github.com/nicoberrocal/bvcalc/bv/validate"
	"github.com/nicoberrocal/bvcalc/internal/catalogdata"
	"github.com/nicoberrocal/bvcalc/internal/config"
	"github.com/nicoberrocal/bvcalc/internal/metrics"
	"github.com/nicoberrocal/bvcalc/internal/storelog"
)

type validateBVCommand struct {
	Input        string  `long:"input" description:"Directory of unit JSON files" required:"true"`
	Reference    string  `long:"reference" description:"CSV file of unitId,referenceBv rows" required:"true"`
	Catalogue    string  `long:"catalogue" description:"Equipment catalogue YAML path" required:"true"`
	Out          string  `long:"out" description:"Report JSON output path" required:"true"`
	Diagnostics  bool    `long:"diagnostics" description:"Include per-stage diagnostics"`
	Workers      int     `long:"workers" description:"Worker pool size (default: NumCPU)"`
	TimeoutMs    int     `long:"timeout-ms" description:"Per-unit timeout in milliseconds"`
	TolerancePct float64 `long:"tolerance-pct" description:"Delta percent treated as within tolerance for the exit code (default: 1.0)"`
	Debug        bool    `long:"debug" description:"Enable debug-level logging"`
}

// resolvedConfig overlays validateBVCommand's CLI flags onto
// internal/config.Default(), the precedence the package doc promises
// (flags override defaults; this CLI has no env/file layer to insert
// between them).
func resolvedConfig(cmd validateBVCommand) config.Config {
	cfg := config.Default()
	cfg.CataloguePath = cmd.Catalogue
	cfg.InputDir = cmd.Input
	cfg.ReferencePath = cmd.Reference
	cfg.OutPath = cmd.Out
	cfg.Diagnostics = cmd.Diagnostics
	cfg.Workers = cmd.Workers
	cfg.UnitTimeout = time.Duration(cmd.TimeoutMs) * time.Millisecond
	if cmd.TolerancePct > 0 {
		cfg.WithinTolerancePercent = cmd.TolerancePct
	}
	return cfg
}

type options struct {
	ValidateBV validateBVCommand `command:"validate-bv" description:"Validate a unit corpus against reference BV values"`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "bvcalc: unexpected panic: %v\n", r)
			os.Exit(2)
		}
	}()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "bvcalc"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if parser.Active == nil || parser.Active.Name != "validate-bv" {
		fmt.Fprintln(os.Stderr, "bvcalc: a command is required (validate-bv)")
		os.Exit(2)
	}

	os.Exit(runValidateBV(opts.ValidateBV))
}

func runValidateBV(cmd validateBVCommand) int {
	cfg := resolvedConfig(cmd)
	log := storelog.New(cmd.Debug)

	catalogue, err := catalogdata.Load(cfg.CataloguePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bvcalc: %v\n", err)
		return 2
	}

	entries, err := loadCorpus(cfg.InputDir, cfg.ReferencePath, catalogue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bvcalc: %v\n", err)
		return 2
	}

	metrics.ValidationWorkerPoolSize.Set(float64(cfg.Workers))

	report, err := validate.Validate(context.Background(), entries, validate.Options{
		Catalogue:      catalogue,
		Workers:        cfg.Workers,
		Diagnostics:    cfg.Diagnostics,
		PerUnitTimeout: int(cfg.UnitTimeout / time.Millisecond),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "bvcalc: validation run failed: %v\n", err)
		return 2
	}

	for _, r := range report.Results {
		if r.Err != nil {
			storelog.LogUnitError(log, r.UnitID, r.Err)
			continue
		}
		storelog.LogUnitWarnings(log, r.UnitID, r.Breakdown.Warnings)
		storelog.LogDiagnostics(log, r.UnitID, r.Breakdown.Diagnostics)
		metrics.ClassificationTotal.WithLabelValues(string(r.Classification)).Inc()
	}
	storelog.LogBatchSummary(log, report)

	if err := writeReport(cfg.OutPath, report); err != nil {
		fmt.Fprintf(os.Stderr, "bvcalc: writing report: %v\n", err)
		return 2
	}

	for _, r := range report.Results {
		if r.Err != nil {
			return 2
		}
	}
	return report.ExitCodeWithTolerance(cfg.WithinTolerancePercent)
}

// unitFile is the JSON shape accepted for a single unit description,
// loaded from each *.json file in --input (the file name need not match
// unitId).
type unitFile struct {
	UnitID string  `json:"unitId"`
	Unit   bv.Unit `json:"unit"`
}

func loadCorpus(inputDir, referencePath string, catalogue bv.EquipmentCatalogue) ([]validate.CorpusEntry, error) {
	referenceBV, err := loadReferenceCSV(referencePath)
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", inputDir, err)
	}

	entries := make([]validate.CorpusEntry, 0, len(files))
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var uf unitFile
		if err := json.Unmarshal(raw, &uf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		ref, ok := referenceBV[uf.UnitID]
		if !ok {
			return nil, fmt.Errorf("no reference BV for unit %q (file %s)", uf.UnitID, path)
		}
		entries = append(entries, validate.CorpusEntry{UnitID: uf.UnitID, Unit: uf.Unit, ReferenceBV: ref})
	}
	return entries, nil
}

func loadReferenceCSV(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := make(map[string]int, len(rows))
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "unitId") {
			continue // header row
		}
		if len(row) < 2 {
			continue
		}
		bvValue, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid referenceBv %q", path, i+1, row[1])
		}
		out[strings.TrimSpace(row[0])] = bvValue
	}
	return out, nil
}

func writeReport(path string, report validate.Report) error {
	data, err := json.MarshalIndent(report.ToSummary(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
