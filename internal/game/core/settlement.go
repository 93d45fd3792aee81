package core

import (
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
)

// HarvestStatus reflects a settlement's food situation, derived from its
// satisfaction every turn.
type HarvestStatus int

const (
	HarvestStandard HarvestStatus = iota
	HarvestPoor
	HarvestPlentiful
)

// EconomicStatus reflects a settlement's wealth situation, derived from its
// satisfaction every turn.
type EconomicStatus int

const (
	EconomyStandard EconomicStatus = iota
	EconomyRecession
	EconomyBoom
)

// Construction is a settlement's current work: exactly one of Improvement,
// UnitPlan or Project is set. Projects never complete; they siphon zeal for
// as long as they stay selected.
type Construction struct {
	Improvement *catalogue.Improvement
	UnitPlan    *catalogue.UnitPlan
	Project     *catalogue.Project
	Consumed    float64
}

// Name returns the display name of whatever is under construction.
func (c *Construction) Name() string {
	switch {
	case c.Improvement != nil:
		return c.Improvement.Name
	case c.UnitPlan != nil:
		return c.UnitPlan.Name
	case c.Project != nil:
		return c.Project.Name
	}
	return ""
}

// Cost returns the zeal cost of the current work. Projects report zero; they
// are never "finished".
func (c *Construction) Cost() float64 {
	switch {
	case c.Improvement != nil:
		return c.Improvement.Cost
	case c.UnitPlan != nil:
		return c.UnitPlan.Cost
	}
	return 0
}

// Settlement is a player-owned city anchored to one or more quads.
type Settlement struct {
	Name            string
	X, Y            int
	Quads           []*board.Quad
	Garrison        []*Unit
	Improvements    []catalogue.Improvement
	Resources       board.ResourceSet
	CurrentWork     *Construction
	HarvestReserves float64
	Level           int
	Satisfaction    float64
	Strength        float64
	MaxStrength     float64
	Besieged        bool
	HarvestStatus   HarvestStatus
	EconomicStatus  EconomicStatus
	ProducedSettler bool
}

// NewSettlement founds a settlement on the given quads, applying the
// founding faction's adjustments: Concentrated settlements start at double
// strength, Imperial ones at half, and Frontiersmen settle at 75
// satisfaction instead of 50.
func NewSettlement(name string, x, y int, quads []*board.Quad, faction catalogue.Faction) *Settlement {
	s := &Settlement{
		Name:         name,
		X:            x,
		Y:            y,
		Quads:        quads,
		Level:        1,
		Satisfaction: 50,
		Strength:     100,
		MaxStrength:  100,
	}
	switch faction {
	case catalogue.TheConcentrated:
		s.Strength *= 2
		s.MaxStrength *= 2
	case catalogue.Imperials:
		s.Strength /= 2
		s.MaxStrength /= 2
	case catalogue.Frontiersmen:
		s.Satisfaction = 75
	}
	s.RecomputeResources()
	return s
}

// RecomputeResources re-aggregates the settlement's resources from its owned
// quads. Called whenever the quad set changes.
func (s *Settlement) RecomputeResources() {
	total := board.ResourceSet{}
	for _, q := range s.Quads {
		total.Add(q.Resources)
	}
	s.Resources = total
}

// AddQuad extends the settlement's territory by one quad.
func (s *Settlement) AddQuad(q *board.Quad) {
	s.Quads = append(s.Quads, q)
	s.RecomputeResources()
}

// HasImprovement reports whether the named improvement has been built here.
func (s *Settlement) HasImprovement(name string) bool {
	for _, imp := range s.Improvements {
		if imp.Name == name {
			return true
		}
	}
	return false
}

// BuiltImprovements returns the names of completed improvements as a lookup
// set, in the shape the catalogue queries expect.
func (s *Settlement) BuiltImprovements() map[string]bool {
	built := make(map[string]bool, len(s.Improvements))
	for _, imp := range s.Improvements {
		built[imp.Name] = true
	}
	return built
}

// LevelUpThreshold returns the harvest reserves needed to reach the next
// level from the current one.
func (s *Settlement) LevelUpThreshold() float64 {
	return float64(s.Level*s.Level) * 25
}
