// Package catalogue holds the static game data: blessings, improvements,
// unit plans, projects and faction metadata. The data ships embedded in the
// binary and is immutable once loaded; the rest of the engine treats it as a
// set of read-only lookup tables.
package catalogue

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hollowmere/quadrealm/internal/game/board"
)

//go:embed data.yaml
var rawData []byte

// Catalogue is the loaded set of static lookup tables.
type Catalogue struct {
	Blessings    []Blessing
	Improvements []Improvement
	UnitPlans    []UnitPlan
	Projects     []Project
	FactionData  map[Faction]FactionDetail

	blessingsByName    map[string]Blessing
	improvementsByName map[string]Improvement
	unitPlansByName    map[string]UnitPlan
}

type dataFile struct {
	Blessings    []Blessing      `yaml:"blessings"`
	Improvements []Improvement   `yaml:"improvements"`
	UnitPlans    []UnitPlan      `yaml:"unit_plans"`
	Projects     []Project       `yaml:"projects"`
	Factions     []FactionDetail `yaml:"factions"`
}

// Load parses the embedded data file into a Catalogue.
func Load() (*Catalogue, error) {
	var df dataFile
	if err := yaml.Unmarshal(rawData, &df); err != nil {
		return nil, fmt.Errorf("parsing catalogue data: %w", err)
	}

	c := &Catalogue{
		Blessings:          df.Blessings,
		Improvements:       df.Improvements,
		UnitPlans:          df.UnitPlans,
		Projects:           df.Projects,
		FactionData:        make(map[Faction]FactionDetail, len(df.Factions)),
		blessingsByName:    make(map[string]Blessing, len(df.Blessings)),
		improvementsByName: make(map[string]Improvement, len(df.Improvements)),
		unitPlansByName:    make(map[string]UnitPlan, len(df.UnitPlans)),
	}
	for _, b := range df.Blessings {
		c.blessingsByName[b.Name] = b
	}
	for _, imp := range df.Improvements {
		if imp.Prereq != "" {
			if _, ok := c.blessingsByName[imp.Prereq]; !ok {
				return nil, fmt.Errorf("improvement %q requires unknown blessing %q", imp.Name, imp.Prereq)
			}
		}
		c.improvementsByName[imp.Name] = imp
	}
	for _, up := range df.UnitPlans {
		if up.Prereq != "" {
			if _, ok := c.blessingsByName[up.Prereq]; !ok {
				return nil, fmt.Errorf("unit plan %q requires unknown blessing %q", up.Name, up.Prereq)
			}
		}
		c.unitPlansByName[up.Name] = up
	}
	for _, fd := range df.Factions {
		// Absent multipliers mean unmodified.
		if fd.Wealth == 0 {
			fd.Wealth = 1
		}
		if fd.Harvest == 0 {
			fd.Harvest = 1
		}
		if fd.Zeal == 0 {
			fd.Zeal = 1
		}
		if fd.Fortune == 0 {
			fd.Fortune = 1
		}
		c.FactionData[fd.Faction] = fd
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the shared catalogue, loading it on first use. The
// embedded data is validated by tests, so a parse failure here is a build
// defect and panics.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		var err error
		defaultCat, err = Load()
		if err != nil {
			panic("catalogue: " + err.Error())
		}
	})
	return defaultCat
}

// BlessingByName looks up a blessing.
func (c *Catalogue) BlessingByName(name string) (Blessing, bool) {
	b, ok := c.blessingsByName[name]
	return b, ok
}

// ImprovementByName looks up an improvement.
func (c *Catalogue) ImprovementByName(name string) (Improvement, bool) {
	imp, ok := c.improvementsByName[name]
	return imp, ok
}

// UnitPlanByName looks up a unit plan.
func (c *Catalogue) UnitPlanByName(name string) (UnitPlan, bool) {
	up, ok := c.unitPlansByName[name]
	return up, ok
}

// DefaultUnitPlan returns the plan every settlement garrisons at founding.
func (c *Catalogue) DefaultUnitPlan() UnitPlan {
	return c.unitPlansByName["Warrior"]
}

// FactionModifiers returns the multiplicative yield coefficients for a
// faction. Unknown factions yield the identity.
func (c *Catalogue) FactionModifiers(f Faction) (wealth, harvest, zeal, fortune float64) {
	fd, ok := c.FactionData[f]
	if !ok {
		return 1, 1, 1, 1
	}
	return fd.Wealth, fd.Harvest, fd.Zeal, fd.Fortune
}

// AvailableBlessings returns the blessings the player has not yet completed,
// cheapest first.
func (c *Catalogue) AvailableBlessings(completed map[string]bool) []Blessing {
	var out []Blessing
	for _, b := range c.Blessings {
		if !completed[b.Name] {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// AvailableImprovements returns the improvements whose prerequisite blessing
// is complete, that the settlement has not already built, and whose core
// resource requirements the given stock can pay. Cheapest first.
func (c *Catalogue) AvailableImprovements(completed map[string]bool, built map[string]bool, stock board.ResourceSet) []Improvement {
	var out []Improvement
	for _, imp := range c.Improvements {
		if imp.Prereq != "" && !completed[imp.Prereq] {
			continue
		}
		if built[imp.Name] {
			continue
		}
		if !stock.CoreCovers(imp.Required) {
			continue
		}
		out = append(out, imp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// AvailableUnitPlans returns the plans whose prerequisite blessing is
// complete. Settle-capable plans need the settlement to be at least level 2,
// and are withheld entirely when allowSettlers is false. Cheapest first.
func (c *Catalogue) AvailableUnitPlans(completed map[string]bool, setlLevel int, allowSettlers bool) []UnitPlan {
	var out []UnitPlan
	for _, up := range c.UnitPlans {
		if up.Prereq != "" && !completed[up.Prereq] {
			continue
		}
		if up.CanSettle && (!allowSettlers || setlLevel < 2) {
			continue
		}
		out = append(out, up)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// UnlockableImprovements returns the improvements gated directly behind the
// given blessing.
func (c *Catalogue) UnlockableImprovements(b Blessing) []Improvement {
	var out []Improvement
	for _, imp := range c.Improvements {
		if imp.Prereq == b.Name {
			out = append(out, imp)
		}
	}
	return out
}

// UnlockableUnits returns the unit plans gated directly behind the given
// blessing.
func (c *Catalogue) UnlockableUnits(b Blessing) []UnitPlan {
	var out []UnitPlan
	for _, up := range c.UnitPlans {
		if up.Prereq == b.Name {
			out = append(out, up)
		}
	}
	return out
}

// HeathenPlan returns the plan for a heathen spawned on the given turn. The
// stat floor rises by 10 every 40 turns, so late-game spawns stay relevant.
func (c *Catalogue) HeathenPlan(turn int) UnitPlan {
	scale := float64(10 * (turn / 40))
	return UnitPlan{
		MaxHealth:    80 + scale,
		Power:        80 + scale,
		TotalStamina: 2,
		Name:         "Heathen",
		Cost:         0,
	}
}
