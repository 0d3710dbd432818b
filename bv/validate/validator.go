// Package validate runs the BV 2.0 pipeline across a reference corpus and
// classifies each unit's computed value against a published BV, the only
// place in this module where concurrency is genuinely useful: calculating
// a batch of independent units.
package validate

import (
	"context"

	"github.com/nicoberrocal/bvcalc/bv"
)

// CorpusEntry is one reference-corpus row: a unit paired with its
// published Master Unit List BV, plus enough provenance to record (not
// resolve) rules-variant discrepancies.
type CorpusEntry struct {
	UnitID       string
	Unit         bv.Unit
	ReferenceBV  int
	Era          string
	RulesVariant string
}

// UnitResult is one corpus entry's outcome: either a breakdown and
// classification, or an error that halted calculation for that unit.
type UnitResult struct {
	UnitID         string
	Breakdown      bv.BVBreakdown
	DeltaPercent   float64
	Classification bv.Classification
	Err            error
	TimedOut       bool
}

// Options configures a validation run.
type Options struct {
	Catalogue   bv.EquipmentCatalogue
	Workers     int  // <= 0 means runtime.NumCPU()
	Diagnostics bool
	PerUnitTimeout int // milliseconds; <= 0 means no timeout
}

// Report is the aggregate outcome of a validation run: per-unit results
// plus summary counts per classification bucket.
type Report struct {
	Results []UnitResult
	Counts  map[bv.Classification]int
}

// Validate runs every corpus entry through the BV pipeline, in parallel
// across a worker pool sized per opts.Workers, and returns a report sorted
// deterministically by unit id regardless of completion order.
func Validate(ctx context.Context, entries []CorpusEntry, opts Options) (Report, error) {
	results, err := runPool(ctx, entries, opts)
	if err != nil {
		return Report{}, err
	}

	sortByUnitID(results)

	counts := make(map[bv.Classification]int)
	for _, r := range results {
		if r.Err != nil || r.TimedOut {
			continue
		}
		counts[r.Classification]++
	}

	return Report{Results: results, Counts: counts}, nil
}

func classify(entry CorpusEntry, breakdown bv.BVBreakdown) (float64, bv.Classification) {
	if entry.ReferenceBV == 0 {
		return 0, bv.Exact
	}
	delta := float64(breakdown.FinalBV-entry.ReferenceBV) / float64(entry.ReferenceBV) * 100.0
	return delta, bv.ClassifyDelta(delta)
}
