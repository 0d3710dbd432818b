package bv

import "strings"

// EquipmentCategory classifies how an item participates in the pipeline.
type EquipmentCategory string

const (
	CategoryEnergyWeapon   EquipmentCategory = "EnergyWeapon"
	CategoryBallisticWeapon EquipmentCategory = "BallisticWeapon"
	CategoryMissileWeapon  EquipmentCategory = "MissileWeapon"
	CategoryAmmunition     EquipmentCategory = "Ammunition"
	CategoryElectronic     EquipmentCategory = "Electronic"
	CategoryPhysicalWeapon EquipmentCategory = "PhysicalWeapon"
	CategoryDefensive      EquipmentCategory = "Defensive"
	CategoryFixed          EquipmentCategory = "Fixed"
)

// IsWeapon reports whether the category is one of the three weapon kinds.
func (c EquipmentCategory) IsWeapon() bool {
	return c == CategoryEnergyWeapon || c == CategoryBallisticWeapon || c == CategoryMissileWeapon
}

// EquipmentRecord is the catalogue's stat row for one equipment identifier.
type EquipmentRecord struct {
	ID       string
	Name     string
	Category EquipmentCategory
	TechBase TechBase

	BaseBV       float64
	Damage       float64
	HeatPerShot  float64
	MinRange     int
	ShortRange   int
	MediumRange  int
	LongRange    int
	ExtremeRange int

	TonnageEach float64
	Slots       int

	Explosive   bool
	Cluster     bool
	ClusterSize int

	// Enhanceable reports whether the item accepts an Artemis/TC/PPC-capacitor pairing.
	Enhanceable bool

	// AmmoKey is the weapon family this ammo type feeds, e.g. "LRM-20".
	// Empty for non-ammunition items.
	AmmoKey string

	// StandardRoundCount is the number of rounds a "full" bin of this
	// ammo carries, used to prorate partial bins for ammo BV.
	StandardRoundCount int

	// OneShot marks launchers that fire once and carry the one-shot BV penalty.
	OneShot bool
}

// EquipmentCatalogue resolves equipment identifiers to typed stat records.
// Implementations are shared, read-only, and built once at process startup.
type EquipmentCatalogue interface {
	Lookup(id string) (EquipmentRecord, bool)
	AmmoMatches(ammoID, weaponID string) bool
	IsExplosive(id string) bool
}

// CanonicalID normalizes an equipment identifier so that "LRM-20",
// "lrm 20", and "LRM20" all collapse to the same catalogue key.
func CanonicalID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range strings.ToUpper(id) {
		switch r {
		case ' ', '-', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StaticCatalogue is an in-memory, read-only EquipmentCatalogue keyed by
// canonical id. It is the default catalogue used by tests and by callers
// that do not wire in internal/catalogdata.
type StaticCatalogue struct {
	byID map[string]EquipmentRecord
}

// NewStaticCatalogue builds a catalogue from a slice of records, indexing
// each by its canonicalized id.
func NewStaticCatalogue(records []EquipmentRecord) *StaticCatalogue {
	c := &StaticCatalogue{byID: make(map[string]EquipmentRecord, len(records))}
	for _, r := range records {
		c.byID[CanonicalID(r.ID)] = r
	}
	return c
}

func (c *StaticCatalogue) Lookup(id string) (EquipmentRecord, bool) {
	r, ok := c.byID[CanonicalID(id)]
	return r, ok
}

// AmmoMatches reports whether the ammo item feeds the given weapon item,
// by comparing the ammo's AmmoKey against the weapon's canonical id.
func (c *StaticCatalogue) AmmoMatches(ammoID, weaponID string) bool {
	ammo, ok := c.Lookup(ammoID)
	if !ok || ammo.Category != CategoryAmmunition {
		return false
	}
	weapon, ok := c.Lookup(weaponID)
	if !ok {
		return false
	}
	return CanonicalID(ammo.AmmoKey) == CanonicalID(weapon.ID) || CanonicalID(ammo.AmmoKey) == CanonicalID(weapon.Name)
}

func (c *StaticCatalogue) IsExplosive(id string) bool {
	r, ok := c.Lookup(id)
	return ok && r.Explosive
}
