package bv

import "sort"

// OrderedWeapon is a weapon item with its modified BV resolved, ready for
// the heat-excess halving walk in the offensive calculator.
type OrderedWeapon struct {
	Item        NormalizedEquipmentItem
	Record      EquipmentRecord
	ModifiedBV  float64 // after enhancement and arc multipliers
	BaseBV      float64 // catalogue BV, unmodified, for ammo-cap pooling
	Arc         Arc
}

// WeaponOrderer sorts weapons by descending modified BV, applying TC,
// Artemis, PPC capacitor, Apollo, rear-mount, and arc multipliers.
type WeaponOrderer struct {
	Catalogue EquipmentCatalogue
}

func NewWeaponOrderer(catalogue EquipmentCatalogue) *WeaponOrderer {
	return &WeaponOrderer{Catalogue: catalogue}
}

const (
	tcBonus        = 0.25
	artemisIVBonus = 0.20
	artemisVBonus  = 0.30
	ppcCapBonus    = 0.50
	apolloBonus    = 0.15
)

// Order resolves every weapon's modified BV and returns them sorted
// descending by that value. Ties break by equipment id, then original
// slot index.
func (o *WeaponOrderer) Order(nu *NormalizedUnit, diag *Diagnostics) []OrderedWeapon {
	linked := indexLinks(nu.Equipment)

	out := make([]OrderedWeapon, 0)
	for _, it := range nu.Equipment {
		if !it.Found || !it.Record.Category.IsWeapon() {
			continue
		}
		modified := it.Record.BaseBV
		modified *= enhancementMultiplier(it, linked, nu.Equipment, o.Catalogue)
		modified *= arcMultiplier(it)

		out = append(out, OrderedWeapon{
			Item:       it,
			Record:     it.Record,
			ModifiedBV: round4(modified),
			BaseBV:     it.Record.BaseBV,
			Arc:        it.Arc,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ModifiedBV != out[j].ModifiedBV {
			return out[i].ModifiedBV > out[j].ModifiedBV
		}
		if out[i].Item.Record.ID != out[j].Item.Record.ID {
			return out[i].Item.Record.ID < out[j].Item.Record.ID
		}
		return out[i].Item.Item.SlotIndex < out[j].Item.Item.SlotIndex
	})

	diag.record("C6:WeaponOrder", float64(len(out)))
	return out
}

// indexLinks maps each item id to the NormalizedEquipmentItem carrying that
// id, so a weapon's LinkedItemID can be resolved to its TC/Artemis/
// capacitor. Items sharing an id collapse to the last one listed.
func indexLinks(items []NormalizedEquipmentItem) map[string]NormalizedEquipmentItem {
	byID := make(map[string]NormalizedEquipmentItem, len(items))
	for _, it := range items {
		byID[it.Item.ID] = it
	}
	return byID
}

// enhancementMultiplier resolves the TC/Artemis/PPC-capacitor/Apollo
// bonus for a weapon by following its LinkedItemID, or by scanning for an
// enhancement item that links back to this weapon.
func enhancementMultiplier(weapon NormalizedEquipmentItem, byID map[string]NormalizedEquipmentItem, all []NormalizedEquipmentItem, cat EquipmentCatalogue) float64 {
	if !weapon.Record.Enhanceable {
		return 1.0
	}

	var enhancer *NormalizedEquipmentItem
	if weapon.Item.LinkedItemID != "" {
		if e, ok := byID[weapon.Item.LinkedItemID]; ok {
			enhancer = &e
		}
	}
	if enhancer == nil {
		for i := range all {
			if all[i].Item.LinkedItemID == weapon.Item.ID {
				enhancer = &all[i]
				break
			}
		}
	}
	if enhancer == nil || !enhancer.Found {
		return 1.0
	}

	switch CanonicalID(enhancer.Record.ID) {
	case "TARGETINGCOMPUTER", "TC":
		if isTCCompatible(weapon.Record) {
			return 1.0 + tcBonus
		}
	case "ARTEMISIV":
		return 1.0 + artemisIVBonus
	case "ARTEMISV":
		return 1.0 + artemisVBonus
	case "PPCCAPACITOR":
		return 1.0 + ppcCapBonus
	case "APOLLOFCS":
		return 1.0 + apolloBonus
	}
	return 1.0
}

// isTCCompatible reports whether a weapon qualifies for the Targeting
// Computer bonus: direct-fire, ballistic or energy with damage >= 5,
// never missile weapons.
func isTCCompatible(r EquipmentRecord) bool {
	if r.Category == CategoryMissileWeapon {
		return false
	}
	if r.Category == CategoryBallisticWeapon {
		return true
	}
	return r.Category == CategoryEnergyWeapon && r.Damage >= 5
}

// arcMultiplier applies the rear-mount and turret rules. An ordinary arm,
// leg, or torso mount fires in the primary (forward) arc and counts at
// full value — it is not a "secondary arc" mount merely by virtue of its
// location. A turret mount is tracked as its own arc by arcFor but is
// explicitly exempted here: spec.md §4.6 states "Turret: x1.0 (no change,
// but tracked)", so it always counts full regardless of rear-mount status,
// since a turret can traverse to cover whatever arc it is fired into. A
// non-turreted rear-mounted weapon is halved.
func arcMultiplier(it NormalizedEquipmentItem) float64 {
	if it.Item.Turret {
		return 1.0
	}
	if it.Item.RearMounted {
		return 0.5
	}
	return 1.0
}
