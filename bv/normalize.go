package bv

import "fmt"

// NormalizedEquipmentItem is an EquipmentItem tagged with its resolved
// catalogue record and derived arc, ready for downstream stages.
type NormalizedEquipmentItem struct {
	Item   EquipmentItem
	Record EquipmentRecord
	Found  bool
	Arc    Arc
}

// AmmoLink associates an ammunition item with the weapon family it feeds.
// When multiple weapons of the same type exist on the unit, every bin of
// that ammo key feeds the combined pool (see offensive.go §ammo cap).
type AmmoLink struct {
	AmmoItem  NormalizedEquipmentItem
	AmmoKey   string
	HasWeapon bool
}

// NormalizedUnit is the canonicalized form of Unit that every later stage
// consumes. It never mutates Unit; it is a derived, read-only projection.
type NormalizedUnit struct {
	Source Unit

	Equipment []NormalizedEquipmentItem
	AmmoLinks []AmmoLink

	EngineWeight    float64
	StructureWeight float64
	HeatSinkWeight  float64
	ArmorWeight     float64

	Warnings []string
}

// engineWeightTable returns the published engine weight (tons) for a
// given rating, looked up rather than computed by formula per the
// design notes ("engine weight by rating table, not formula").
// The table below steps in 10-point rating bands up to 200 and in
// wider bands (mostly 20 points) above that.
func engineWeightTable(rating int) float64 {
	// Standard fusion engine weight table, tons, by rating band.
	// Values step at the published TechManual rating breakpoints.
	bands := []struct {
		maxRating int
		tons      float64
	}{
		{10, 0.5}, {20, 1.0}, {30, 1.5}, {40, 2.0}, {50, 2.5},
		{60, 3.0}, {70, 3.5}, {80, 4.0}, {90, 4.5}, {100, 5.0},
		{110, 5.5}, {120, 6.0}, {130, 6.5}, {140, 7.0}, {150, 7.5},
		{160, 8.0}, {170, 8.5}, {180, 9.0}, {190, 9.5}, {200, 10.0},
		{220, 11.0}, {240, 12.0}, {250, 12.5}, {260, 13.0}, {280, 14.0},
		{300, 15.0}, {320, 16.0}, {340, 17.0}, {360, 18.0}, {380, 19.0},
		{400, 20.0}, {420, 21.0}, {440, 22.0}, {460, 23.0}, {480, 24.0},
		{500, 25.0},
	}
	for _, b := range bands {
		if rating <= b.maxRating {
			return b.tons
		}
	}
	return 25.0
}

// UnitNormalizer canonicalizes the inbound Unit: resolves equipment ids,
// groups ammo with compatible weapons, expands variant fields, computes
// derived tonnages.
type UnitNormalizer struct {
	Catalogue EquipmentCatalogue
}

// NewUnitNormalizer constructs a UnitNormalizer bound to a catalogue.
func NewUnitNormalizer(catalogue EquipmentCatalogue) *UnitNormalizer {
	return &UnitNormalizer{Catalogue: catalogue}
}

// Normalize resolves the unit's equipment and derived tonnages.
//
// It returns UnsupportedConfigurationError when a unit flagged
// InnerSphere or Clan mounts catalogued equipment of the other tech base;
// engine, gyro, cockpit, structure and armor types carry no tech base and
// are not checked. It returns InvalidInputError for malformed numeric
// fields. Unknown equipment never fails the call; it is recorded as a
// warning and treated as zero BV downstream.
func (n *UnitNormalizer) Normalize(u Unit) (*NormalizedUnit, error) {
	if err := validateBasics(u); err != nil {
		return nil, err
	}

	out := &NormalizedUnit{Source: u}
	out.EngineWeight = engineWeightTable(u.Engine.Rating)
	out.StructureWeight = float64(u.Tonnage) * 0.1 * structureMultiplier(u.Structure)
	out.HeatSinkWeight = heatSinkTonnage(u.HeatSinks)
	out.ArmorWeight = totalArmorPoints(u.Armor) / armorPointsPerTon(u.ArmorType)

	resolved := make([]NormalizedEquipmentItem, 0, len(u.Equipment))
	for _, item := range u.Equipment {
		rec, ok := n.Catalogue.Lookup(item.ID)
		if !ok {
			out.Warnings = append(out.Warnings, unknownEquipmentWarning(item.ID))
		}
		resolved = append(resolved, NormalizedEquipmentItem{
			Item:   item,
			Record: rec,
			Found:  ok,
			Arc:    arcFor(item),
		})
	}
	out.Equipment = resolved
	out.AmmoLinks = n.linkAmmo(resolved)

	if err := checkTechBaseConsistency(u, resolved); err != nil {
		return nil, err
	}

	return out, nil
}

// checkTechBaseConsistency rejects a pure InnerSphere or pure Clan unit
// that mounts equipment from the opposite tech base: only a unit declared
// Mixed may combine them. Unknown-equipment items are skipped since their
// tech base cannot be known.
func checkTechBaseConsistency(u Unit, items []NormalizedEquipmentItem) error {
	if u.TechBase == Mixed {
		return nil
	}
	for _, it := range items {
		if !it.Found {
			continue
		}
		if it.Record.TechBase != "" && it.Record.TechBase != u.TechBase {
			return &UnsupportedConfigurationError{
				Unit:   unitLabel(u),
				Reason: fmt.Sprintf("%s equipment %q mounted on a %s-only unit", it.Record.TechBase, it.Item.ID, u.TechBase),
			}
		}
	}
	return nil
}

func validateBasics(u Unit) error {
	if u.Tonnage < 5 || u.Tonnage > 200 {
		return &InvalidInputError{Unit: unitLabel(u), Field: "Tonnage", Reason: "must be between 5 and 200"}
	}
	if u.Engine.Rating < 0 {
		return &InvalidInputError{Unit: unitLabel(u), Field: "Engine.Rating", Reason: "must be non-negative"}
	}
	for _, a := range u.Armor {
		if a.Front < 0 || a.Rear < 0 {
			return &InvalidInputError{Unit: unitLabel(u), Field: fmt.Sprintf("Armor[%s]", a.Location), Reason: "armor points must be non-negative"}
		}
	}
	for _, s := range u.StructurePts {
		if s.Points < 0 {
			return &InvalidInputError{Unit: unitLabel(u), Field: fmt.Sprintf("Structure[%s]", s.Location), Reason: "structure points must be non-negative"}
		}
	}
	if u.HeatSinks.Count < 0 || u.HeatSinks.Integral < 0 || u.HeatSinks.Integral > u.HeatSinks.Count {
		return &InvalidInputError{Unit: unitLabel(u), Field: "HeatSinks", Reason: "integral sink count must be between 0 and total count"}
	}
	return nil
}

func unitLabel(u Unit) string {
	if u.Variant != "" {
		return u.ChassisName + " " + u.Variant
	}
	return u.ChassisName
}

// arcFor derives a weapon's firing arc from its mount. Ordinary arm, leg,
// and torso mounts are the primary (forward) firing arc — an arm or torso
// weapon is not a "secondary arc" mount just by virtue of its location; per
// spec.md §4.6 the secondary-arc multiplier is reserved for genuinely
// side/rear-firing mounts. RearMounted marks the rear arc. A Turret mount
// tracks its own arc (it can traverse independently of the chassis facing)
// but is explicitly exempted from any arc penalty in arcMultiplier, per
// spec.md §4.6's "Turret: x1.0 (no change, but tracked)".
func arcFor(item EquipmentItem) Arc {
	switch {
	case item.RearMounted:
		return ArcRear
	case item.Turret:
		return ArcTorso
	default:
		return ArcForward
	}
}

// linkAmmo assigns each ammunition item to the weapon type it feeds. If no
// weapon of the matching type exists on the unit, the link is recorded
// with HasWeapon=false so the offensive calculator can zero its BV.
func (n *UnitNormalizer) linkAmmo(items []NormalizedEquipmentItem) []AmmoLink {
	weaponKeys := make(map[string]bool)
	for _, it := range items {
		if it.Found && it.Record.Category.IsWeapon() {
			weaponKeys[CanonicalID(it.Record.ID)] = true
		}
	}

	links := make([]AmmoLink, 0)
	for _, it := range items {
		if !it.Found || it.Record.Category != CategoryAmmunition {
			continue
		}
		key := CanonicalID(it.Record.AmmoKey)
		links = append(links, AmmoLink{
			AmmoItem:  it,
			AmmoKey:   key,
			HasWeapon: weaponKeys[key],
		})
	}
	return links
}

func totalArmorPoints(armor []ArmorPoints) float64 {
	total := 0.0
	for _, a := range armor {
		total += float64(a.Front + a.Rear)
	}
	return total
}

// armorPointsPerTon returns the number of armor points one ton of the
// given armor type provides, used only for the derived tonnage figure
// (the defensive BV line uses the multiplier table directly, not this).
func armorPointsPerTon(t ArmorType) float64 {
	switch t {
	case ArmorFerroFibrous, ArmorHeavyFF:
		return 17.92
	case ArmorLightFF:
		return 16.96
	case ArmorStealth:
		return 16.0
	default:
		return 16.0
	}
}

func heatSinkTonnage(hs HeatSinks) float64 {
	external := hs.Count - hs.Integral
	if external < 0 {
		external = 0
	}
	return float64(external) * 1.0
}
