package catalogue

import (
	"github.com/hollowmere/quadrealm/internal/game/board"
)

// Effect is the six-delta payload carried by improvements, unit plans and
// projects. Positive and negative values are both meaningful.
type Effect struct {
	Wealth       float64 `yaml:"wealth,omitempty"`
	Harvest      float64 `yaml:"harvest,omitempty"`
	Zeal         float64 `yaml:"zeal,omitempty"`
	Fortune      float64 `yaml:"fortune,omitempty"`
	Strength     float64 `yaml:"strength,omitempty"`
	Satisfaction float64 `yaml:"satisfaction,omitempty"`
}

// Blessing is a tech-tree unlock, paid for with accumulated fortune.
type Blessing struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Cost        float64 `yaml:"cost"`
}

// ImprovementType groups improvements by the concern they serve.
type ImprovementType string

const (
	Industrial   ImprovementType = "INDUSTRIAL"
	Magical      ImprovementType = "MAGICAL"
	Economical   ImprovementType = "ECONOMICAL"
	Bountiful    ImprovementType = "BOUNTIFUL"
	Intimidatory ImprovementType = "INTIMIDATORY"
	Pandering    ImprovementType = "PANDERING"
)

// Improvement is a constructible settlement building. Prereq names the
// blessing that unlocks it; empty means available from the start. Required
// names the core resources deducted when construction is committed.
type Improvement struct {
	Type        ImprovementType   `yaml:"type"`
	Cost        float64           `yaml:"cost"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Effect      Effect            `yaml:"effect"`
	Prereq      string            `yaml:"prereq,omitempty"`
	Required    board.ResourceSet `yaml:"required,omitempty"`
}

// UnitPlan is the immutable template a unit is stamped from. Instantiated
// units own a copy of their plan; the copies diverge through faction scaling,
// relic rewards and day/night adjustments.
type UnitPlan struct {
	MaxHealth    float64 `yaml:"max_health"`
	Power        float64 `yaml:"power"`
	TotalStamina int     `yaml:"total_stamina"`
	Name         string  `yaml:"name"`
	Prereq       string  `yaml:"prereq,omitempty"`
	Cost         float64 `yaml:"cost"`
	CanSettle    bool    `yaml:"can_settle,omitempty"`
	Heals        bool    `yaml:"heals,omitempty"`
	MaxCapacity  int     `yaml:"max_capacity,omitempty"`
}

// ProjectType names the yield category a project siphons zeal into.
type ProjectType string

const (
	ProjectBountiful  ProjectType = "BOUNTIFUL"  // harvest
	ProjectEconomical ProjectType = "ECONOMICAL" // wealth
	ProjectMagical    ProjectType = "MAGICAL"    // fortune
)

// Project is a perpetual construction that never completes; while selected
// it redirects a quarter of the settlement's zeal into its category.
type Project struct {
	Type        ProjectType `yaml:"type"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
}

// Faction identifies one of the fourteen playable empires.
type Faction string

const (
	Agriculturists  Faction = "Agriculturists"
	Capitalists     Faction = "Capitalists"
	Scrutineers     Faction = "Scrutineers"
	TheGodless      Faction = "The Godless"
	Ravenous        Faction = "Ravenous"
	Fundamentalists Faction = "Fundamentalists"
	Orthodox        Faction = "Orthodox"
	Frontiersmen    Faction = "Frontiersmen"
	Imperials       Faction = "Imperials"
	Persistent      Faction = "Persistent"
	Explorers       Faction = "Explorers"
	Infidels        Faction = "Infidels"
	Nocturne        Faction = "Nocturne"
	TheConcentrated Faction = "The Concentrated"
)

// Factions lists every playable faction.
var Factions = []Faction{
	Agriculturists, Capitalists, Scrutineers, TheGodless, Ravenous,
	Fundamentalists, Orthodox, Frontiersmen, Imperials, Persistent,
	Explorers, Infidels, Nocturne, TheConcentrated,
}

// FactionDetail is the static metadata for a faction: its lore strings and
// its multiplicative yield modifiers. A zero multiplier in the data file
// means "unmodified" and is normalised to 1 at load time.
type FactionDetail struct {
	Faction     Faction `yaml:"name"`
	Lore        string  `yaml:"lore"`
	Wealth      float64 `yaml:"wealth"`
	Harvest     float64 `yaml:"harvest"`
	Zeal        float64 `yaml:"zeal"`
	Fortune     float64 `yaml:"fortune"`
}

// VictoryImprovementName is the improvement whose completion wins the game
// outright, and ArdourPrefix marks the blessings counted for Serendipity.
const (
	VictoryImprovementName = "Holy Sanctum"
	ArdourPrefix           = "Piece of"
)
