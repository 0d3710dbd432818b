package bv

// OffensiveBVCalculator applies heat-excess halving, ammo capping,
// physical-attack BV, electronics BV, and the explosive-component
// penalty to produce the pre-factor offensive subtotal.
type OffensiveBVCalculator struct {
	Catalogue EquipmentCatalogue
}

func NewOffensiveBVCalculator(catalogue EquipmentCatalogue) *OffensiveBVCalculator {
	return &OffensiveBVCalculator{Catalogue: catalogue}
}

// WeaponContribution is one weapon's final (possibly halved) BV, retained
// for diagnostics and for the monotonicity/heat-boundary test suite.
type WeaponContribution struct {
	Weapon    OrderedWeapon
	Halved    bool
	Contribution float64
}

// OffensiveResult bundles every line the assembler needs plus enough
// detail for diagnostics and tests.
type OffensiveResult struct {
	WeaponContributions []WeaponContribution
	WeaponBV            float64
	AmmoBV              float64
	PhysicalBV          float64
	ElectronicsBV       float64
	ExplosivePenalty    float64
	PreFactor           float64
}

// Compute walks the heat-ordered weapon list, halving everything past the
// point cumulative heat exceeds capacity, then adds ammo/physical/
// electronics BV and subtracts the explosive-component penalty.
func (c *OffensiveBVCalculator) Compute(nu *NormalizedUnit, ordered []OrderedWeapon, heat HeatProfile, diag *Diagnostics) OffensiveResult {
	contributions := c.halveByHeat(ordered, heat.Capacity)

	weaponBV := 0.0
	for _, wc := range contributions {
		weaponBV += wc.Contribution
	}
	weaponBV = round4(weaponBV)

	ammoBV := c.ammoBV(nu, ordered)
	physicalBV := c.physicalBV(nu)
	electronicsBV := c.electronicsBV(nu)
	explosivePenalty := c.explosivePenalty(nu)

	preFactor := round4(weaponBV + ammoBV + physicalBV + electronicsBV - explosivePenalty)
	if preFactor < 0 {
		preFactor = 0
	}

	diag.record("C7:OffensiveBV", preFactor,
		"weaponBV="+trimTrailingZeros(weaponBV),
		"ammoBV="+trimTrailingZeros(ammoBV),
		"physicalBV="+trimTrailingZeros(physicalBV),
		"electronicsBV="+trimTrailingZeros(electronicsBV),
		"explosivePenalty="+trimTrailingZeros(explosivePenalty),
	)

	return OffensiveResult{
		WeaponContributions: contributions,
		WeaponBV:            weaponBV,
		AmmoBV:              ammoBV,
		PhysicalBV:          physicalBV,
		ElectronicsBV:       electronicsBV,
		ExplosivePenalty:    explosivePenalty,
		PreFactor:           preFactor,
	}
}

// halveByHeat walks the heat-ordered weapon list top-down, accumulating
// heat. The weapon whose heat takes the running total strictly past
// capacity, and every weapon after it, contributes half of its modified
// BV, rounded down to 0.01; a weapon that exactly closes the gap is not
// halved. A
// one-shot launcher's contribution is halved again for the one-shot
// penalty, applied before the heat-excess halving check.
func (c *OffensiveBVCalculator) halveByHeat(ordered []OrderedWeapon, capacity float64) []WeaponContribution {
	out := make([]WeaponContribution, 0, len(ordered))
	cumulative := 0.0
	for _, w := range ordered {
		base := w.ModifiedBV
		if w.Record.OneShot {
			base = roundDownToCent(base * 0.5)
		}

		cumulative += w.Record.HeatPerShot
		halved := cumulative > capacity
		contribution := base
		if halved {
			contribution = roundDownToCent(base * 0.5)
		}

		out = append(out, WeaponContribution{Weapon: w, Halved: halved, Contribution: contribution})
	}
	return out
}

// ammoBV sums ammunition BV per weapon type, capped at the combined base
// (un-halved, un-modified) weapon BV of that type on the unit.
func (c *OffensiveBVCalculator) ammoBV(nu *NormalizedUnit, ordered []OrderedWeapon) float64 {
	weaponBaseByType := make(map[string]float64)
	for _, w := range ordered {
		key := CanonicalID(w.Record.ID)
		weaponBaseByType[key] += w.BaseBV
	}

	ammoByType := make(map[string]float64)
	for _, link := range nu.AmmoLinks {
		if !link.HasWeapon || !link.AmmoItem.Found {
			continue
		}
		rec := link.AmmoItem.Record
		if rec.StandardRoundCount <= 0 {
			continue
		}
		fraction := float64(link.AmmoItem.Item.AmmoRemaining) / float64(rec.StandardRoundCount)
		ammoByType[link.AmmoKey] += fraction * rec.BaseBV
	}

	total := 0.0
	for key, sum := range ammoByType {
		typeCap := weaponBaseByType[key]
		if sum > typeCap {
			sum = typeCap
		}
		total += sum
	}
	return round4(total)
}

// physicalBV adds catalogue physical-weapon BV plus implicit punch/kick/
// charge BV derived from tonnage and actuator presence. Quads compute
// kick-only with both-leg equivalence; bipeds get punch (arms) and kick
// (legs).
func (c *OffensiveBVCalculator) physicalBV(nu *NormalizedUnit) float64 {
	u := nu.Source
	total := 0.0

	for _, it := range nu.Equipment {
		if it.Found && it.Record.Category == CategoryPhysicalWeapon {
			total += it.Record.BaseBV
		}
	}

	tonnage := float64(u.Tonnage)
	switch u.Config {
	case Biped, Tripod, LAM:
		total += tonnage * 0.1 * armsWithActuators(u)
		total += tonnage * 0.2 * legsWithActuators(u)
	case Quad, QuadVee:
		total += tonnage * 0.2 * 1.0 // both-leg equivalence: single kick term
	}

	mf := float64(u.Movement.WalkMP + u.Movement.JumpMP)
	charge := tonnage * mf * 0.1
	const chargeCapPerTon = 0.4 // BV-equivalent cap on the charge/DFA contribution, per tonnage
	if maxCharge := tonnage * chargeCapPerTon; charge > maxCharge {
		charge = maxCharge
	}
	total += charge

	return round4(total)
}

// armsWithActuators and legsWithActuators assume full actuator
// complements unless the unit model is later extended to track
// per-location actuator state; the normalized Unit does not currently
// carry destroyed/missing-actuator data (as-built loadout only, per
// spec.md §4.7's edge cases).
func armsWithActuators(u Unit) float64 { return 2.0 }
func legsWithActuators(u Unit) float64 { return 2.0 }

// electronicsBV adds flat BV for TAG, C3, C3i, NARC, and Improved NARC,
// attributed to offense per BV 2.0 (spec.md §4.7).
func (c *OffensiveBVCalculator) electronicsBV(nu *NormalizedUnit) float64 {
	total := 0.0
	for _, it := range nu.Equipment {
		if !it.Found || it.Record.Category != CategoryElectronic {
			continue
		}
		total += it.Record.BaseBV
	}
	return round4(total)
}

// explosivePenalty subtracts 1 BV per ton-equivalent of exposed explosive
// risk: for every explosive component not protected by CASE in its
// location, the tonnage of the weapons mounted in that location (summed)
// is subtracted.
func (c *OffensiveBVCalculator) explosivePenalty(nu *NormalizedUnit) float64 {
	caseLocations := make(map[Location]bool)
	weaponTonsByLocation := make(map[Location]float64)
	for _, it := range nu.Equipment {
		if it.Found && it.Record.Category == CategoryDefensive && CanonicalID(it.Record.ID) == "CASE" {
			caseLocations[it.Item.Location] = true
		}
		if it.Found && it.Record.Category.IsWeapon() {
			weaponTonsByLocation[it.Item.Location] += it.Record.TonnageEach
		}
	}

	total := 0.0
	for _, it := range nu.Equipment {
		if !it.Found || !it.Record.Explosive {
			continue
		}
		if caseLocations[it.Item.Location] {
			continue
		}
		total += weaponTonsByLocation[it.Item.Location]
	}
	return round4(total)
}
