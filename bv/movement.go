package bv

import "math"

// MovementProfile holds the resolved movement figures used by the
// defensive factor and the speed factor, honouring MASC, Supercharger,
// and TSM. Jump boosters are not modelled; jump MP is taken as given.
type MovementProfile struct {
	WalkMP        int
	RunMP         int
	JumpMP        int
	JumpType      JumpType
	EffectiveRunMP int
}

// jumpWeight returns the bias a jump type contributes to the speed
// factor's effective movement figure.
func jumpWeight(t JumpType) float64 {
	switch t {
	case JumpImproved:
		return 0.75
	case JumpMechanical:
		return 1.0
	case JumpUMU:
		return 0.5
	case JumpStandard:
		return 0.5
	default:
		return 0.0
	}
}

// ComputeMovementProfile derives walk/run/jump MP from a unit's base
// movement, applying MASC, Supercharger, and TSM per spec.md §4.3.
func ComputeMovementProfile(m Movement) MovementProfile {
	walk := m.WalkMP
	if m.HasTSM {
		walk += 2
	}

	run := walk + int(math.Ceil(float64(walk)/2.0))
	if m.HasMASC {
		run += int(math.Floor(float64(walk) * 0.5))
	}
	if m.HasSupercharger {
		run += int(math.Floor(float64(walk) * 0.5))
	}
	if runCap := walk * 2; run > runCap {
		run = runCap
	}

	jump := m.JumpMP
	effective := run
	jumpContribution := int(math.Round(float64(jump) * jumpWeight(m.JumpType)))
	if jumpContribution > effective {
		effective = jumpContribution
	}

	return MovementProfile{
		WalkMP:         walk,
		RunMP:          run,
		JumpMP:         jump,
		JumpType:       m.JumpType,
		EffectiveRunMP: effective,
	}
}
