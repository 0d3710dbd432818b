// Package bv implements the Battle Value 2.0 calculation pipeline: a
// pure, single-threaded, deterministic transform from a normalized
// BattleMech unit description to a published BV number.
package bv

// TechBase identifies the equipment lineage governing a unit or an item.
type TechBase string

const (
	InnerSphere TechBase = "InnerSphere"
	Clan        TechBase = "Clan"
	Mixed       TechBase = "Mixed"
)

// Configuration identifies the chassis layout, which changes how movement,
// physical attacks, and the tonnage factor resolve.
type Configuration string

const (
	Biped   Configuration = "Biped"
	Quad    Configuration = "Quad"
	Tripod  Configuration = "Tripod"
	LAM     Configuration = "LAM"
	QuadVee Configuration = "QuadVee"
)

// EngineType changes the structure survivability multiplier and the
// defensive engine line.
type EngineType string

const (
	EngineStandard EngineType = "Standard"
	EngineLight    EngineType = "Light"
	EngineXL       EngineType = "XL"
	EngineXXL      EngineType = "XXL"
	EngineCompact  EngineType = "Compact"
)

// GyroType changes the defensive gyro line multiplier.
type GyroType string

const (
	GyroStandard   GyroType = "Standard"
	GyroCompact    GyroType = "Compact"
	GyroHeavyDuty  GyroType = "HeavyDuty"
	GyroExtraLight GyroType = "ExtraLight"
	GyroNone       GyroType = "None"
)

// CockpitType changes the defensive cockpit line.
type CockpitType string

const (
	CockpitStandard     CockpitType = "Standard"
	CockpitSmall        CockpitType = "Small"
	CockpitCommandConsole CockpitType = "CommandConsole"
	CockpitTorsoMounted CockpitType = "TorsoMounted"
	CockpitIndustrial   CockpitType = "Industrial"
)

// StructureType changes the structure-point multiplier.
type StructureType string

const (
	StructureStandard  StructureType = "Standard"
	StructureEndoSteel StructureType = "EndoSteel"
	StructureComposite StructureType = "Composite"
	StructureReinforced StructureType = "Reinforced"
	StructureIndustrial StructureType = "Industrial"
)

// ArmorType changes the armor-point multiplier.
type ArmorType string

const (
	ArmorStandard    ArmorType = "Standard"
	ArmorFerroFibrous ArmorType = "FerroFibrous"
	ArmorHeavyFF     ArmorType = "HeavyFerroFibrous"
	ArmorLightFF     ArmorType = "LightFerroFibrous"
	ArmorStealth     ArmorType = "Stealth"
)

// HeatSinkType changes per-sink dissipation and slot cost.
type HeatSinkType string

const (
	SinkSingle     HeatSinkType = "Single"
	SinkDouble     HeatSinkType = "Double"
	SinkDoubleClan HeatSinkType = "DoubleClan"
	SinkLaser      HeatSinkType = "Laser"
	SinkCompact    HeatSinkType = "Compact"
)

// JumpType changes how jump MP enters the movement and speed-factor math.
type JumpType string

const (
	JumpNone       JumpType = ""
	JumpStandard   JumpType = "Standard"
	JumpImproved   JumpType = "Improved"
	JumpMechanical JumpType = "Mechanical"
	JumpUMU        JumpType = "UMU"
)

// Location is a mount point on the unit. Torso locations carry a rear arc.
type Location string

const (
	LocHead      Location = "Head"
	LocCenterTorso Location = "CenterTorso"
	LocLeftTorso Location = "LeftTorso"
	LocRightTorso Location = "RightTorso"
	LocLeftArm   Location = "LeftArm"
	LocRightArm  Location = "RightArm"
	LocLeftLeg   Location = "LeftLeg"
	LocRightLeg  Location = "RightLeg"
)

// Arc is the firing direction classification used by the weapon orderer.
type Arc string

const (
	ArcForward Arc = "Forward"
	ArcLeft    Arc = "Left"
	ArcRight   Arc = "Right"
	ArcRear    Arc = "Rear"
	ArcTorso   Arc = "Torso"
)

// ArmorPoints holds per-location armor, including rear-arc points for
// torso locations that carry one.
type ArmorPoints struct {
	Location Location `bson:"location" json:"location"`
	Front    int      `bson:"front" json:"front"`
	Rear     int      `bson:"rear,omitempty" json:"rear,omitempty"` // only meaningful for torso locations
}

// StructurePoints holds per-location internal structure points.
type StructurePoints struct {
	Location Location `bson:"location" json:"location"`
	Points   int      `bson:"points" json:"points"`
}

// Engine describes the unit's power plant.
type Engine struct {
	Type   EngineType `bson:"type" json:"type"`
	Rating int        `bson:"rating" json:"rating"`
}

// HeatSinks describes the unit's heat-dissipation equipment.
type HeatSinks struct {
	Type     HeatSinkType `bson:"type" json:"type"`
	Count    int          `bson:"count" json:"count"`
	Integral int          `bson:"integral" json:"integral"` // count integrally mounted in the engine, subset of Count
}

// Movement describes base movement capability before enhancement.
type Movement struct {
	WalkMP          int      `bson:"walkMp" json:"walkMp"`
	JumpMP          int      `bson:"jumpMp,omitempty" json:"jumpMp,omitempty"`
	JumpType        JumpType `bson:"jumpType,omitempty" json:"jumpType,omitempty"`
	HasMASC         bool     `bson:"hasMasc,omitempty" json:"hasMasc,omitempty"`
	HasSupercharger bool     `bson:"hasSupercharger,omitempty" json:"hasSupercharger,omitempty"`
	HasTSM          bool     `bson:"hasTsm,omitempty" json:"hasTsm,omitempty"`
}

// EquipmentItem is one piece of gear mounted on the unit, as supplied by
// the caller before normalization.
type EquipmentItem struct {
	ID            string   `bson:"id" json:"id"`
	Location      Location `bson:"location" json:"location"`
	RearMounted   bool     `bson:"rearMounted,omitempty" json:"rearMounted,omitempty"`
	Turret        bool     `bson:"turret,omitempty" json:"turret,omitempty"`
	LinkedItemID  string   `bson:"linkedItemId,omitempty" json:"linkedItemId,omitempty"` // Artemis/TC/PPC-capacitor pairing, by item id
	AmmoRemaining int      `bson:"ammoRemaining,omitempty" json:"ammoRemaining,omitempty"` // only meaningful for ammunition items
	SlotIndex     int      `bson:"slotIndex" json:"slotIndex"`                              // original construction order, used as a tie-break
}

// SPA is a special pilot ability identifier. The core does not interpret
// SPAs; it carries them through for callers (e.g. diagnostics) that do.
type SPA string

// Unit is the immutable input to the BV pipeline.
type Unit struct {
	ChassisName string        `bson:"chassisName" json:"chassisName"`
	Variant     string        `bson:"variant,omitempty" json:"variant,omitempty"`
	Tonnage     int           `bson:"tonnage" json:"tonnage"`
	TechBase    TechBase      `bson:"techBase" json:"techBase"`
	Config      Configuration `bson:"config" json:"config"`

	Engine    Engine        `bson:"engine" json:"engine"`
	Gyro      GyroType      `bson:"gyro" json:"gyro"`
	Cockpit   CockpitType   `bson:"cockpit" json:"cockpit"`
	Structure StructureType `bson:"structure" json:"structure"`
	ArmorType ArmorType     `bson:"armorType" json:"armorType"`

	Armor        []ArmorPoints     `bson:"armor" json:"armor"`
	StructurePts []StructurePoints `bson:"structurePoints" json:"structurePoints"`

	HeatSinks HeatSinks `bson:"heatSinks" json:"heatSinks"`
	Movement  Movement  `bson:"movement" json:"movement"`

	Equipment []EquipmentItem `bson:"equipment,omitempty" json:"equipment,omitempty"`
	SPAs      []SPA           `bson:"spas,omitempty" json:"spas,omitempty"`
}
