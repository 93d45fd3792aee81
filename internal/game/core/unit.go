package core

import (
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
)

// Combatant is the duck type shared by player units and heathens; the combat
// calculator only needs this much of either.
type Combatant interface {
	CurrentHealth() float64
	SetHealth(h float64)
	AttackPower() float64
	MarkActed()
}

// Unit is a deployed or garrisoned army unit. Its Plan is an owned copy of a
// catalogue template, never shared with another unit: faction scaling, relic
// rewards and night adjustments all mutate the copy independently.
type Unit struct {
	Health           float64
	RemainingStamina int
	X, Y             int
	Garrisoned       bool
	HasActed         bool
	Besieging        bool
	Plan             catalogue.UnitPlan

	// Passengers is only populated for deployer units (Plan.MaxCapacity > 0).
	Passengers []*Unit
}

// NewUnit stamps a unit out of a plan. The plan is copied by value.
func NewUnit(plan catalogue.UnitPlan, x, y int, garrisoned bool) *Unit {
	return &Unit{
		Health:           plan.MaxHealth,
		RemainingStamina: plan.TotalStamina,
		X:                x,
		Y:                y,
		Garrisoned:       garrisoned,
		Plan:             plan,
	}
}

func (u *Unit) CurrentHealth() float64 { return u.Health }
func (u *Unit) SetHealth(h float64)    { u.Health = h }
func (u *Unit) AttackPower() float64   { return u.Plan.Power }
func (u *Unit) MarkActed()             { u.HasActed = true }

// IsDeployer reports whether this unit carries passengers.
func (u *Unit) IsDeployer() bool { return u.Plan.MaxCapacity > 0 }

// Upkeep is the per-turn wealth cost of keeping the unit deployed.
func (u *Unit) Upkeep() float64 { return u.Plan.Cost / 10 }

// Heathen is a neutral hostile unit owned by no player. Its plan is scaled
// by the turn it spawned on.
type Heathen struct {
	Health           float64
	RemainingStamina int
	X, Y             int
	Plan             catalogue.UnitPlan
}

// NewHeathen spawns a heathen at the given location.
func NewHeathen(plan catalogue.UnitPlan, x, y int) *Heathen {
	return &Heathen{
		Health:           plan.MaxHealth,
		RemainingStamina: plan.TotalStamina,
		X:                x,
		Y:                y,
		Plan:             plan,
	}
}

func (h *Heathen) CurrentHealth() float64 { return h.Health }
func (h *Heathen) SetHealth(v float64)    { h.Health = v }
func (h *Heathen) AttackPower() float64   { return h.Plan.Power }

// MarkActed is a no-op: heathens act exactly once per turn by construction.
func (h *Heathen) MarkActed() {}
