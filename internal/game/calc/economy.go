package calc

import (
	"github.com/hollowmere/quadrealm/internal/common"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// SettlementTotals computes a settlement's per-turn yields in all four
// categories. The modifier pipeline applies in a fixed order: level scaling,
// project siphon, faction multipliers, status modifiers, rare resources,
// then night. The strict flag drops the presentational floor of 1 on zeal
// and fortune to a true zero; only the AI's "is there anything worth
// building" check passes strict=true.
func SettlementTotals(cat *catalogue.Catalogue, p *core.Player, s *core.Settlement, isNight, strict bool) (wealth, harvest, zeal, fortune float64) {
	for _, q := range s.Quads {
		wealth += q.Wealth
		harvest += q.Harvest
		zeal += q.Zeal
		fortune += q.Fortune
	}
	for _, imp := range s.Improvements {
		wealth += imp.Effect.Wealth
		harvest += imp.Effect.Harvest
		zeal += imp.Effect.Zeal
		fortune += imp.Effect.Fortune
	}

	// Each level above the first adds a quarter of the base yield.
	scale := 1 + 0.25*float64(s.Level-1)
	wealth *= scale
	harvest *= scale
	zeal *= scale
	fortune *= scale

	// An active project turns a quarter of zeal into its category.
	if s.CurrentWork != nil && s.CurrentWork.Project != nil {
		siphon := zeal * 0.25
		switch s.CurrentWork.Project.Type {
		case catalogue.ProjectBountiful:
			harvest += siphon
		case catalogue.ProjectEconomical:
			wealth += siphon
		case catalogue.ProjectMagical:
			fortune += siphon
		}
	}

	wMod, hMod, zMod, fMod := cat.FactionModifiers(p.Faction)
	wealth *= wMod
	harvest *= hMod
	zeal *= zMod
	fortune *= fMod

	switch s.EconomicStatus {
	case core.EconomyRecession:
		wealth = 0
	case core.EconomyBoom:
		wealth *= 1.5
	}
	if s.HarvestStatus == core.HarvestPoor || s.Besieged {
		harvest = 0
	} else if s.HarvestStatus == core.HarvestPlentiful {
		harvest *= 1.5
	}

	if n := s.Resources.Aurora; n > 0 {
		wealth *= 1 + 0.5*float64(n)
	}
	if n := s.Resources.Aquamarine; n > 0 {
		fortune *= 1 + 0.5*float64(n)
	}

	if isNight {
		if p.Faction != catalogue.Nocturne && s.Resources.Sunstone == 0 {
			harvest *= 0.5
		}
		fortune *= 1.1
	}

	floor := 1.0
	if strict {
		floor = 0
	}
	wealth = max(wealth, 0)
	harvest = max(harvest, 0)
	zeal = max(zeal, floor)
	fortune = max(fortune, floor)
	return wealth, harvest, zeal, fortune
}

// PlayerTotals sums settlement yields across a player's empire. Unit upkeep
// is not included; see ProjectedWealth for the solvency view.
func PlayerTotals(cat *catalogue.Catalogue, p *core.Player, isNight bool) (wealth, harvest, zeal, fortune float64) {
	for _, s := range p.Settlements {
		w, h, z, f := SettlementTotals(cat, p, s, isNight, false)
		wealth += w
		harvest += h
		zeal += z
		fortune += f
	}
	return wealth, harvest, zeal, fortune
}

// ProjectedWealth is the wealth delta the player would see at the end of
// this turn: settlement wealth minus upkeep for every deployed unit.
func ProjectedWealth(cat *catalogue.Catalogue, p *core.Player, isNight bool) float64 {
	wealth, _, _, _ := PlayerTotals(cat, p, isNight)
	for _, u := range p.Units {
		if !u.Garrisoned {
			wealth -= u.Upkeep()
		}
	}
	return wealth
}

// CompleteConstruction resolves a finished piece of work. Improvements join
// the settlement's list and apply their strength and satisfaction effects;
// unit plans produce a garrisoned unit, with settler production costing the
// settlement a level. Projects never arrive here.
func CompleteConstruction(cat *catalogue.Catalogue, s *core.Settlement, p *core.Player) {
	work := s.CurrentWork
	if work == nil {
		return
	}
	switch {
	case work.Improvement != nil:
		imp := *work.Improvement
		s.Improvements = append(s.Improvements, imp)

		strengthGain := imp.Effect.Strength
		if p.Faction == catalogue.TheConcentrated {
			strengthGain *= 2
		}
		s.Strength += strengthGain
		s.MaxStrength += strengthGain
		s.Satisfaction = common.ClampFloat(s.Satisfaction+imp.Effect.Satisfaction, 0, 100)

	case work.UnitPlan != nil:
		plan := ScaleUnitPlan(*work.UnitPlan, p.Faction, s.Resources.Bloodstone)
		unit := core.NewUnit(plan, s.X, s.Y, true)
		s.Garrison = append(s.Garrison, unit)

		if plan.CanSettle {
			s.Level--
			s.HarvestReserves = float64((s.Level-1)*(s.Level-1)) * 25
			s.ProducedSettler = true
		}
	}
	s.CurrentWork = nil
}
