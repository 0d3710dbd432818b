package bv

// HeatEfficiencyModel computes heat capacity and expected heat generation
// for a unit's weapon set, treating all weapons as firing simultaneously
// for BV purposes.
type HeatEfficiencyModel struct{}

func NewHeatEfficiencyModel() *HeatEfficiencyModel { return &HeatEfficiencyModel{} }

// HeatProfile is the resolved capacity/generation/excess figures for a unit.
type HeatProfile struct {
	Capacity   float64
	Generation float64
	Excess     float64
}

// perSinkDissipation returns the heat dissipated by a single heat sink of
// the given type.
func perSinkDissipation(t HeatSinkType) float64 {
	switch t {
	case SinkDouble, SinkDoubleClan, SinkLaser:
		return 2.0
	default: // Single, Compact
		return 1.0
	}
}

// maxIntegralSinks returns the maximum number of heat sinks an engine can
// host integrally (free of extra tonnage), per spec.md §4.5.
func maxIntegralSinks(engineRating int) int {
	m := engineRating / 25
	if m > 10 {
		m = 10
	}
	return m
}

// Compute derives the unit's heat capacity, generation, and excess from
// its normalized equipment list and heat sink configuration. It depends
// only on the resolved equipment list, not weapon ordering, so it runs
// ahead of the WeaponOrderer (C6) in the pipeline.
func (h *HeatEfficiencyModel) Compute(nu *NormalizedUnit, diag *Diagnostics) HeatProfile {
	hs := nu.Source.HeatSinks
	integral := hs.Integral
	if maxIntegral := maxIntegralSinks(nu.Source.Engine.Rating); integral > maxIntegral {
		integral = maxIntegral
	}
	external := hs.Count - integral
	if external < 0 {
		external = 0
	}

	perSink := perSinkDissipation(hs.Type)
	capacity := (float64(integral) + float64(external)) * perSink

	generation := 0.0
	for _, it := range nu.Equipment {
		if !it.Found || !it.Record.Category.IsWeapon() {
			continue
		}
		generation += it.Record.HeatPerShot
	}

	excess := generation - capacity
	if excess < 0 {
		excess = 0
	}

	profile := HeatProfile{
		Capacity:   round4(capacity),
		Generation: round4(generation),
		Excess:     round4(excess),
	}
	diag.record("C5:HeatEfficiency", profile.Excess,
		"capacity="+trimTrailingZeros(profile.Capacity),
		"generation="+trimTrailingZeros(profile.Generation),
	)
	return profile
}
