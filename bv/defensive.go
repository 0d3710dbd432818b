package bv

// DefensiveBVCalculator computes the defensive BV subtotal from armor,
// structure, engine, gyro, cockpit, and defensive equipment, weighted by
// the movement-derived defensive factor.
type DefensiveBVCalculator struct{}

// NewDefensiveBVCalculator constructs a DefensiveBVCalculator. It carries
// no state; the type exists to mirror the pipeline's component boundary
// and give diagnostics a stable stage name.
func NewDefensiveBVCalculator() *DefensiveBVCalculator { return &DefensiveBVCalculator{} }

// cockpitMultiplier is applied to a flat per-unit cockpit base, mirroring
// the defensive-equipment style treatment TechManual gives cockpits for
// BV purposes.
func cockpitMultiplier(t CockpitType) float64 {
	switch t {
	case CockpitSmall:
		return 0.5
	case CockpitCommandConsole:
		return 1.5
	case CockpitTorsoMounted:
		return 1.0
	case CockpitIndustrial:
		return 0.5
	default:
		return 1.0
	}
}

const cockpitBaseBV = 6.0 // flat per-unit baseline the multiplier scales

// Compute returns the defensive subtotal for a normalized unit, given the
// movement profile already derived for it, and appends a StageTrace when
// diag is non-nil.
func (c *DefensiveBVCalculator) Compute(nu *NormalizedUnit, movement MovementProfile, diag *Diagnostics) float64 {
	u := nu.Source

	armorLine := c.armorLine(u)
	structureLine := c.structureLine(u)
	engineLine := float64(u.Engine.Rating) * engineBVMultiplier(u.Engine.Type)
	gyroLine := gyroTonnage(u.Gyro, u.Engine.Rating) * gyroBVMultiplier(u.Gyro)
	cockpitLine := cockpitBaseBV * cockpitMultiplier(u.Cockpit)
	defensiveEquipLine := c.defensiveEquipmentLine(nu)

	sum := armorLine + structureLine + engineLine + gyroLine + cockpitLine + defensiveEquipLine

	tmm := tmmForMovement(movement.EffectiveRunMP)
	factor := defensiveFactorForTMM(tmm)
	// +0.1 per point of jump MP that exceeds running MP.
	if extra := movement.JumpMP - movement.RunMP; extra > 0 {
		factor += 0.1 * float64(extra)
	}

	subtotal := round4(sum * factor)
	if subtotal < 0 {
		subtotal = 0
	}

	diag.record("C4:DefensiveBV", subtotal,
		"armor="+trimTrailingZeros(armorLine),
		"structure="+trimTrailingZeros(structureLine),
		"engine="+trimTrailingZeros(engineLine),
		"gyro="+trimTrailingZeros(gyroLine),
		"cockpit="+trimTrailingZeros(cockpitLine),
		"defensiveEquip="+trimTrailingZeros(defensiveEquipLine),
		"factor="+trimTrailingZeros(factor),
	)
	return subtotal
}

// armorLine sums per-location armor points weighted by the armor-type
// multiplier, counting rear-arc points at full value. Center-torso rear
// armor is weighted slightly lower, matching the published location
// weighting that de-emphasizes CT rear relative to front arcs.
func (c *DefensiveBVCalculator) armorLine(u Unit) float64 {
	mult := armorMultiplier(u.ArmorType)
	total := 0.0
	for _, a := range u.Armor {
		total += float64(a.Front)
		rearWeight := 1.0
		if a.Location == LocCenterTorso {
			rearWeight = 0.75
		}
		total += float64(a.Rear) * rearWeight
	}
	line := total * mult * 2.5
	if u.ArmorType == ArmorStealth {
		line += stealthSystemBV
	}
	return line
}

// structureLine sums per-location internal structure points weighted by
// the structure-type multiplier and further scaled by the engine-type
// structure multiplier (XL/XXL reduce structure survivability).
func (c *DefensiveBVCalculator) structureLine(u Unit) float64 {
	mult := structureMultiplier(u.Structure)
	total := 0.0
	for _, s := range u.StructurePts {
		total += float64(s.Points)
	}
	return total * mult * 1.5 * engineStructureMultiplier(u.Engine.Type)
}

// defensiveEquipmentLine sums the BV of AMS, ECM, Guardian, Stealth
// system (handled above as a flat add to the armor line), and CASE.
func (c *DefensiveBVCalculator) defensiveEquipmentLine(nu *NormalizedUnit) float64 {
	total := 0.0
	for _, it := range nu.Equipment {
		if !it.Found || it.Record.Category != CategoryDefensive {
			continue
		}
		total += it.Record.BaseBV
	}
	return total
}
