package calc

import (
	"math"

	"github.com/hollowmere/quadrealm/internal/game/catalogue"
)

// ScaleUnitPlan returns a copy of the plan with the owning faction's martial
// leanings applied, plus a hardening bonus for any bloodstone held by the
// settlement doing the training. Imperial units hit harder, Persistent ones
// last longer but hit softer, and Explorer units range further on thinner
// frames.
func ScaleUnitPlan(plan catalogue.UnitPlan, faction catalogue.Faction, bloodstone int) catalogue.UnitPlan {
	switch faction {
	case catalogue.Imperials:
		plan.Power *= 1.5
	case catalogue.Persistent:
		plan.MaxHealth *= 1.5
		plan.Power *= 0.75
	case catalogue.Explorers:
		plan.TotalStamina = int(math.RoundToEven(1.5 * float64(plan.TotalStamina)))
		plan.MaxHealth *= 0.75
	}
	if bloodstone > 0 {
		boost := 1 + 0.5*float64(bloodstone)
		plan.Power *= boost
		plan.MaxHealth *= boost
	}
	return plan
}

// ScaleBlessing returns a copy of the blessing priced for the given faction.
// The Godless pay half again for every blessing.
func ScaleBlessing(b catalogue.Blessing, faction catalogue.Faction) catalogue.Blessing {
	if faction == catalogue.TheGodless {
		b.Cost *= 1.5
	}
	return b
}
