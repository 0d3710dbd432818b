// Package catalogdata loads the equipment catalogue from its authored
// YAML source and adapts it to bv.EquipmentCatalogue, the one place this
// module touches a human-edited config file rather than a generated one.
package catalogdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nicoberrocal/bvcalc/bv"
)

// equipmentFile is the on-disk YAML shape: a flat list of records, kept
// close to bv.EquipmentRecord's field names so authoring doesn't need a
// translation layer.
type equipmentFile struct {
	Equipment []equipmentEntry `yaml:"equipment"`
}

type equipmentEntry struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	Category           string  `yaml:"category"`
	TechBase           string  `yaml:"techBase"`
	BaseBV             float64 `yaml:"baseBv"`
	Damage             float64 `yaml:"damage"`
	HeatPerShot        float64 `yaml:"heatPerShot"`
	MinRange           int     `yaml:"minRange"`
	ShortRange         int     `yaml:"shortRange"`
	MediumRange        int     `yaml:"mediumRange"`
	LongRange          int     `yaml:"longRange"`
	ExtremeRange       int     `yaml:"extremeRange"`
	TonnageEach        float64 `yaml:"tonnageEach"`
	Slots              int     `yaml:"slots"`
	Explosive          bool    `yaml:"explosive"`
	Cluster            bool    `yaml:"cluster"`
	ClusterSize        int     `yaml:"clusterSize"`
	Enhanceable        bool    `yaml:"enhanceable"`
	AmmoKey            string  `yaml:"ammoKey"`
	StandardRoundCount int     `yaml:"standardRoundCount"`
	OneShot            bool    `yaml:"oneShot"`
}

// Load reads an equipment catalogue YAML file and builds a
// bv.StaticCatalogue from it. Unknown category/tech-base strings fail
// loudly here, at process start, rather than silently downstream.
func Load(path string) (*bv.StaticCatalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogdata: reading %s: %w", path, err)
	}

	var file equipmentFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalogdata: parsing %s: %w", path, err)
	}

	records := make([]bv.EquipmentRecord, 0, len(file.Equipment))
	for _, e := range file.Equipment {
		category, err := parseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("catalogdata: equipment %q: %w", e.ID, err)
		}
		techBase, err := parseTechBase(e.TechBase)
		if err != nil {
			return nil, fmt.Errorf("catalogdata: equipment %q: %w", e.ID, err)
		}
		records = append(records, bv.EquipmentRecord{
			ID:                 e.ID,
			Name:               e.Name,
			Category:           category,
			TechBase:           techBase,
			BaseBV:             e.BaseBV,
			Damage:             e.Damage,
			HeatPerShot:        e.HeatPerShot,
			MinRange:           e.MinRange,
			ShortRange:         e.ShortRange,
			MediumRange:        e.MediumRange,
			LongRange:          e.LongRange,
			ExtremeRange:       e.ExtremeRange,
			TonnageEach:        e.TonnageEach,
			Slots:              e.Slots,
			Explosive:          e.Explosive,
			Cluster:            e.Cluster,
			ClusterSize:        e.ClusterSize,
			Enhanceable:        e.Enhanceable,
			AmmoKey:            e.AmmoKey,
			StandardRoundCount: e.StandardRoundCount,
			OneShot:            e.OneShot,
		})
	}

	return bv.NewStaticCatalogue(records), nil
}

func parseCategory(s string) (bv.EquipmentCategory, error) {
	switch bv.EquipmentCategory(s) {
	case bv.CategoryEnergyWeapon, bv.CategoryBallisticWeapon, bv.CategoryMissileWeapon,
		bv.CategoryAmmunition, bv.CategoryElectronic, bv.CategoryPhysicalWeapon,
		bv.CategoryDefensive, bv.CategoryFixed:
		return bv.EquipmentCategory(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

func parseTechBase(s string) (bv.TechBase, error) {
	if s == "" {
		return "", nil
	}
	switch bv.TechBase(s) {
	case bv.InnerSphere, bv.Clan, bv.Mixed:
		return bv.TechBase(s), nil
	default:
		return "", fmt.Errorf("unknown tech base %q", s)
	}
}
