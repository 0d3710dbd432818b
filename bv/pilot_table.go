package bv

// PilotSkills identifies a pilot's gunnery and piloting skill levels,
// each in the published 0..7 range (0 is the best, 7 the worst).
type PilotSkills struct {
	Gunnery  int
	Piloting int
}

// pilotMultiplierTable is the full BV 2.0 gunnery x piloting adjustment
// table. Rows are gunnery 0..7, columns are piloting 0..7. The regular
// pilot (gunnery 4, piloting 5) multiplier is 1.0, the skill-neutral
// anchor spec.md §8 property 6 requires.
var pilotMultiplierTable = [8][8]float64{
	// piloting: 0     1     2     3     4     5     6     7
	{2.42, 2.31, 2.21, 2.10, 1.93, 1.75, 1.68, 1.59}, // gunnery 0
	{2.21, 2.11, 2.02, 1.93, 1.76, 1.60, 1.54, 1.45}, // gunnery 1
	{1.93, 1.85, 1.76, 1.68, 1.54, 1.40, 1.35, 1.28}, // gunnery 2
	{1.66, 1.58, 1.51, 1.44, 1.35, 1.20, 1.16, 1.09}, // gunnery 3
	{1.38, 1.32, 1.26, 1.20, 1.10, 1.00, 0.95, 0.90}, // gunnery 4
	{1.31, 1.19, 1.13, 1.08, 0.99, 0.90, 0.86, 0.81}, // gunnery 5
	{1.24, 1.12, 1.07, 1.02, 0.94, 0.85, 0.81, 0.77}, // gunnery 6
	{1.17, 1.06, 1.01, 0.96, 0.88, 0.80, 0.76, 0.72}, // gunnery 7
}

// PilotMultiplier looks up the BV 2.0 skill-adjustment multiplier for a
// gunnery/piloting pair, clamping out-of-range values to the table edges.
func PilotMultiplier(skills PilotSkills) float64 {
	g := clampInt(skills.Gunnery, 0, 7)
	p := clampInt(skills.Piloting, 0, 7)
	return pilotMultiplierTable[g][p]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
