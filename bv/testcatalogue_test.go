package bv

// testCatalogue returns a small StaticCatalogue covering the equipment
// used across the package's unit tests and the literal scenario fixtures.
func testCatalogue() *StaticCatalogue {
	return NewStaticCatalogue([]EquipmentRecord{
		{ID: "AC20", Name: "Autocannon/20", Category: CategoryBallisticWeapon, TechBase: InnerSphere, BaseBV: 178, Damage: 20, HeatPerShot: 7, TonnageEach: 14},
		{ID: "AC10", Name: "Autocannon/10", Category: CategoryBallisticWeapon, TechBase: InnerSphere, BaseBV: 123, Damage: 10, HeatPerShot: 3, TonnageEach: 12},
		{ID: "LRM20", Name: "LRM-20", Category: CategoryMissileWeapon, TechBase: InnerSphere, BaseBV: 181, Damage: 20, HeatPerShot: 6, TonnageEach: 10, Cluster: true, ClusterSize: 20, Enhanceable: true},
		{ID: "LRM20AMMO", Name: "LRM-20 Ammo", Category: CategoryAmmunition, TechBase: InnerSphere, BaseBV: 27, AmmoKey: "LRM20", StandardRoundCount: 6, TonnageEach: 1, Explosive: true},
		{ID: "SRM6", Name: "SRM-6", Category: CategoryMissileWeapon, TechBase: InnerSphere, BaseBV: 79, Damage: 12, HeatPerShot: 4, TonnageEach: 3},
		{ID: "SRM6AMMO", Name: "SRM-6 Ammo", Category: CategoryAmmunition, TechBase: InnerSphere, BaseBV: 21, AmmoKey: "SRM6", StandardRoundCount: 15, TonnageEach: 1, Explosive: true},
		{ID: "MEDLASER", Name: "Medium Laser", Category: CategoryEnergyWeapon, TechBase: InnerSphere, BaseBV: 46, Damage: 5, HeatPerShot: 3, TonnageEach: 1},
		{ID: "LLASER", Name: "Large Laser", Category: CategoryEnergyWeapon, TechBase: InnerSphere, BaseBV: 124, Damage: 8, HeatPerShot: 8, TonnageEach: 5},
		{ID: "MG", Name: "Machine Gun", Category: CategoryBallisticWeapon, TechBase: InnerSphere, BaseBV: 5, Damage: 2, HeatPerShot: 0, TonnageEach: 0.5},
		{ID: "TC", Name: "Targeting Computer", Category: CategoryElectronic, TechBase: InnerSphere, BaseBV: 0},
		{ID: "ARTEMISIV", Name: "Artemis IV FCS", Category: CategoryElectronic, TechBase: InnerSphere, BaseBV: 0},
		{ID: "CASE", Name: "CASE", Category: CategoryDefensive, TechBase: InnerSphere, BaseBV: 0},
		{ID: "AMS", Name: "Anti-Missile System", Category: CategoryDefensive, TechBase: InnerSphere, BaseBV: 32},
	})
}
