package validate

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nicoberrocal/bvcalc/bv"
	"github.com/nicoberrocal/bvcalc/internal/metrics"
)

// runPool fans calculation out across a fixed-size worker pool, checking
// ctx between units (never mid-calculation, since a single bv.Calculate
// call never suspends). A cancelled context stops further dispatch; units
// already in flight still complete and are reported.
func runPool(ctx context.Context, entries []CorpusEntry, opts Options) ([]UnitResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(entries) && len(entries) > 0 {
		workers = len(entries)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	results := make([]UnitResult, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for idx := range jobs {
				select {
				case <-gctx.Done():
					results[idx] = UnitResult{UnitID: entries[idx].UnitID, Err: gctx.Err()}
					continue
				default:
				}
				results[idx] = computeOne(entries[idx], opts)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range entries {
			select {
			case <-gctx.Done():
				return nil
			case jobs <- i:
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// computeOne runs a single corpus entry through the pipeline, honoring
// opts.PerUnitTimeout as a wall-clock budget that marks the unit TimedOut
// rather than failing the whole batch.
func computeOne(entry CorpusEntry, opts Options) UnitResult {
	calcOpts := bv.DefaultOptions()
	calcOpts.Diagnostics = opts.Diagnostics

	if opts.PerUnitTimeout <= 0 {
		start := time.Now()
		breakdown, err := bv.Calculate(entry.Unit, opts.Catalogue, calcOpts)
		metrics.UnitCalculateDuration.Observe(time.Since(start).Seconds())
		return finish(entry, breakdown, err)
	}

	type outcome struct {
		breakdown bv.BVBreakdown
		err       error
	}
	done := make(chan outcome, 1)
	go func() {
		start := time.Now()
		b, err := bv.Calculate(entry.Unit, opts.Catalogue, calcOpts)
		metrics.UnitCalculateDuration.Observe(time.Since(start).Seconds())
		done <- outcome{b, err}
	}()

	select {
	case o := <-done:
		return finish(entry, o.breakdown, o.err)
	case <-time.After(time.Duration(opts.PerUnitTimeout) * time.Millisecond):
		return UnitResult{UnitID: entry.UnitID, TimedOut: true}
	}
}

// finish records the terminal outcome for one unit, counting the two
// ambient failure modes a batch run cares about: a halted calculation
// (UnsupportedConfiguration) and a catalogue miss that was tolerated but
// still degrades the result (unknown equipment, zero-BV'd).
func finish(entry CorpusEntry, breakdown bv.BVBreakdown, err error) UnitResult {
	if err != nil {
		if _, ok := err.(*bv.UnsupportedConfigurationError); ok {
			metrics.UnsupportedConfigurationTotal.Inc()
		}
		return UnitResult{UnitID: entry.UnitID, Err: err}
	}
	metrics.UnknownEquipmentTotal.Add(float64(len(breakdown.Warnings)))
	delta, class := classify(entry, breakdown)
	breakdown.ReferenceBV = &entry.ReferenceBV
	breakdown.DeltaPercent = &delta
	breakdown.Classification = class
	return UnitResult{UnitID: entry.UnitID, Breakdown: breakdown, DeltaPercent: delta, Classification: class}
}

func sortByUnitID(results []UnitResult) {
	sort.Slice(results, func(i, j int) bool { return results[i].UnitID < results[j].UnitID })
}
