package bv

import "math"

// SpeedAndTonnageFactors computes the speed factor from effective
// movement plus jump, and the tonnage adjustment, per spec.md §4.8.
type SpeedAndTonnageFactors struct{}

func NewSpeedAndTonnageFactors() *SpeedAndTonnageFactors { return &SpeedAndTonnageFactors{} }

// Compute returns the speed factor and tonnage factor for a unit given
// its resolved movement profile.
func (s *SpeedAndTonnageFactors) Compute(u Unit, movement MovementProfile, diag *Diagnostics) (speedFactor, tonnageFactor float64) {
	jw := jumpWeight(movement.JumpType)
	mf := float64(movement.EffectiveRunMP) + math.Max(0, float64(movement.JumpMP)*jw-math.Round(float64(movement.EffectiveRunMP)/2.0))

	raw := (mf-5)*0.1 + 1.0
	speedFactor = clamp(raw, 0.5, 2.5)
	speedFactor = round4(speedFactor)

	tonnageFactor = 1.0 + float64(u.Tonnage)/100.0
	if u.Config == LAM {
		tonnageFactor *= 0.95
	}
	tonnageFactor = round4(tonnageFactor)

	diag.record("C8:SpeedTonnage", speedFactor,
		"mf="+trimTrailingZeros(mf),
		"tonnageFactor="+trimTrailingZeros(tonnageFactor),
	)
	return speedFactor, tonnageFactor
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
