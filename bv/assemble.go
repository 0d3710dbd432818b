package bv

// Options control a single Calculate invocation.
type Options struct {
	// Pilot applies the BV 2.0 skill-adjustment multiplier when non-nil.
	// A nil Pilot is skill-neutral (equivalent to the regular 4/5 pilot).
	Pilot *PilotSkills

	// Diagnostics requests per-stage intermediates on the returned
	// BVBreakdown.
	Diagnostics bool

	// ClampToMinimumOne enforces finalBV >= 1. DefaultOptions sets it to
	// true; a zero-value Options leaves it false.
	ClampToMinimumOne bool
}

// DefaultOptions returns the zero-value-safe defaults: no pilot
// adjustment, no diagnostics, clamped to a minimum BV of 1.
func DefaultOptions() Options {
	return Options{ClampToMinimumOne: true}
}

// BVAssembler combines the defensive and offensive subtotals into the
// final BV, applying the pilot-skill multiplier and the last-step
// rounding rule.
type BVAssembler struct{}

func NewBVAssembler() *BVAssembler { return &BVAssembler{} }

// Assemble computes baseBV, applies the pilot multiplier, and rounds to
// the final integer BV.
func (a *BVAssembler) Assemble(defensiveSubtotal, offensiveSubtotal float64, opts Options, diag *Diagnostics) (baseBV float64, pilotMultiplier float64, finalBV int) {
	baseBV = round4(defensiveSubtotal + offensiveSubtotal)

	pilotMultiplier = 1.0
	if opts.Pilot != nil {
		pilotMultiplier = PilotMultiplier(*opts.Pilot)
	}

	adjusted := round4(baseBV * pilotMultiplier)
	finalBV = roundHalfUpInt(adjusted)
	if opts.ClampToMinimumOne && finalBV < 1 {
		finalBV = 1
	}

	diag.record("C9:BVAssembler", float64(finalBV),
		"baseBV="+trimTrailingZeros(baseBV),
		"pilotMultiplier="+trimTrailingZeros(pilotMultiplier),
	)
	return baseBV, pilotMultiplier, finalBV
}

// Calculate runs the full BV 2.0 pipeline (C1-C9) for a single unit. It
// never panics: UnsupportedConfigurationError and InvalidInputError are
// returned as errors with no BVBreakdown produced; every other failure
// mode (unknown equipment) degrades to a warning on the breakdown.
func Calculate(unit Unit, catalogue EquipmentCatalogue, opts Options) (BVBreakdown, error) {
	var diag *Diagnostics
	if opts.Diagnostics {
		diag = &Diagnostics{}
	}

	normalizer := NewUnitNormalizer(catalogue)
	nu, err := normalizer.Normalize(unit)
	if err != nil {
		return BVBreakdown{}, err
	}

	movement := ComputeMovementProfile(unit.Movement)

	defCalc := NewDefensiveBVCalculator()
	defensiveSubtotal := defCalc.Compute(nu, movement, diag)

	heatModel := NewHeatEfficiencyModel()
	heat := heatModel.Compute(nu, diag)

	orderer := NewWeaponOrderer(catalogue)
	ordered := orderer.Order(nu, diag)

	offCalc := NewOffensiveBVCalculator(catalogue)
	offensive := offCalc.Compute(nu, ordered, heat, diag)

	speedTonnage := NewSpeedAndTonnageFactors()
	speedFactor, tonnageFactor := speedTonnage.Compute(unit, movement, diag)

	offensiveSubtotal := round4(offensive.PreFactor * speedFactor * tonnageFactor)

	assembler := NewBVAssembler()
	baseBV, pilotMultiplier, finalBV := assembler.Assemble(defensiveSubtotal, offensiveSubtotal, opts, diag)

	breakdown := BVBreakdown{
		UnitID:                     unitLabel(unit),
		DefensiveSubtotal:          defensiveSubtotal,
		OffensiveSubtotalPreFactor: offensive.PreFactor,
		SpeedFactor:                speedFactor,
		TonnageFactor:              tonnageFactor,
		OffensiveSubtotal:          offensiveSubtotal,
		BaseBV:                     baseBV,
		PilotMultiplier:            pilotMultiplier,
		FinalBV:                    finalBV,
		Warnings:                   nu.Warnings,
		Diagnostics:                diag,
	}
	return breakdown, nil
}
