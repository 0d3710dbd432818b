package validate

import "github.com/nicoberrocal/bvcalc/bv"

// Summary is the JSON-serializable shape cmd/bvcalc writes to --out. It
// flattens Report into a form stable across Go-internal field reordering.
type Summary struct {
	TotalUnits int                        `json:"totalUnits"`
	Counts     map[bv.Classification]int `json:"counts"`
	Units      []UnitSummary              `json:"units"`
}

// UnitSummary is one corpus entry's reported outcome.
type UnitSummary struct {
	UnitID         string           `json:"unitId"`
	FinalBV        int              `json:"finalBv,omitempty"`
	ReferenceBV    *int             `json:"referenceBv,omitempty"`
	DeltaPercent   *float64         `json:"deltaPercent,omitempty"`
	Classification bv.Classification `json:"classification,omitempty"`
	Error          string           `json:"error,omitempty"`
	TimedOut       bool             `json:"timedOut,omitempty"`
}

// ToSummary flattens a Report into its serializable form.
func (r Report) ToSummary() Summary {
	s := Summary{TotalUnits: len(r.Results), Counts: r.Counts, Units: make([]UnitSummary, 0, len(r.Results))}
	for _, res := range r.Results {
		u := UnitSummary{UnitID: res.UnitID, TimedOut: res.TimedOut}
		if res.Err != nil {
			u.Error = res.Err.Error()
		} else if !res.TimedOut {
			u.FinalBV = res.Breakdown.FinalBV
			u.ReferenceBV = res.Breakdown.ReferenceBV
			u.DeltaPercent = res.Breakdown.DeltaPercent
			u.Classification = res.Classification
		}
		s.Units = append(s.Units, u)
	}
	return s
}

// ExitCode reports the process exit code per spec: 0 if every classified
// unit is within 1%, 1 if any unit falls outside 1%, and 2 if any unit's
// calculation failed with an error. Timed-out units are skipped.
func (r Report) ExitCode() int {
	return r.ExitCodeWithTolerance(1.0)
}

// ExitCodeWithTolerance is ExitCode generalized to a caller-supplied
// tolerance percentage, letting cmd/bvcalc honor
// internal/config.Config.WithinTolerancePercent instead of the spec's
// hardcoded 1% default.
func (r Report) ExitCodeWithTolerance(tolerancePercent float64) int {
	for _, res := range r.Results {
		if res.Err != nil {
			return 2
		}
		if res.TimedOut {
			continue
		}
		delta := res.DeltaPercent
		if delta < 0 {
			delta = -delta
		}
		if delta > tolerancePercent {
			return 1
		}
	}
	return 0
}
