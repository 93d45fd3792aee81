package ai

import (
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// expansionLevel is the settlement level at which a playstyle wants its
// settler trained.
func expansionLevel(style core.ExpansionPlaystyle) int {
	switch style {
	case core.ExpansionExpansionist:
		return 3
	case core.ExpansionHermit:
		return 10
	default:
		return 5
	}
}

// chooseConstruction selects a settlement's next piece of work, walking a
// strict priority ladder: an army at all, then expansion, then morale, then
// food, then late-game deployers, then whatever the playstyle favours. Every
// rung has a fallback, so a settlement with anything buildable never sits
// idle. A chosen improvement's resource requirement is paid immediately.
func (m *MoveMaker) chooseConstruction(p *core.Player, s *core.Settlement, all []*core.Player, isNight bool) {
	completed := p.CompletedBlessings()
	improvements := m.cat.AvailableImprovements(completed, s.BuiltImprovements(), p.Resources)
	units := m.cat.AvailableUnitPlans(completed, s.Level, p.Faction != catalogue.TheConcentrated)
	if len(units) == 0 && len(improvements) == 0 {
		return
	}

	// An empire with no army at all fixes that before anything else.
	if len(p.Units) == 0 && len(s.Garrison) == 0 && len(units) > 0 {
		m.queueWork(p, s, unitWork(&units[0]))
		return
	}

	// Expansion: one settler per settlement once it is grown enough, or a
	// settler from any grown settlement when the whole empire is miserable.
	if p.Faction != catalogue.TheConcentrated {
		wantsSettler := (s.Level >= expansionLevel(p.AIPlaystyle.Expansion) && !s.ProducedSettler) ||
			(s.Level > 1 && m.allDiscontent(p))
		if wantsSettler {
			if settler := settlerIn(units); settler != nil {
				m.queueWork(p, s, unitWork(settler))
				return
			}
		}
	}

	wealth, harvest, zeal, fortune := calc.SettlementTotals(m.cat, p, s, isNight, true)
	ideal := m.idealWork(s, improvements, units, [4]float64{wealth, harvest, zeal, fortune})

	var satImps, harvImps, strengthImps []catalogue.Improvement
	for _, imp := range improvements {
		if imp.Effect.Satisfaction > 0 {
			satImps = append(satImps, imp)
		}
		if imp.Effect.Harvest > 0 {
			harvImps = append(harvImps, imp)
		}
		if imp.Effect.Strength > 0 {
			strengthImps = append(strengthImps, imp)
		}
	}

	switch {
	case s.Satisfaction < 50 && (len(satImps) > 0 || len(harvImps) > 0):
		pool := append(append([]catalogue.Improvement{}, satImps...), harvImps...)
		chosen := pool[0]
		bestBenefit := chosen.Effect.Satisfaction + chosen.Effect.Harvest
		for _, imp := range pool[1:] {
			if benefit := imp.Effect.Satisfaction + imp.Effect.Harvest; benefit > bestBenefit &&
				imp.Cost <= chosen.Cost {
				chosen, bestBenefit = imp, benefit
			}
		}
		// A morale fix taking many times longer to build than the cheapest
		// improvement is not worth stalling the settlement for.
		if improvements[0].Cost*5 < chosen.Cost {
			m.queueWork(p, s, ideal)
		} else {
			m.queueWork(p, s, improvementWork(&chosen))
		}
	case harvest < float64(s.Level*4) && len(harvImps) > 0:
		chosen := harvImps[0]
		for _, imp := range harvImps[1:] {
			if imp.Effect.Harvest > chosen.Effect.Harvest && imp.Cost <= chosen.Cost {
				chosen = imp
			}
		}
		m.queueWork(p, s, improvementWork(&chosen))
	case m.anyOtherImminent(p, all) && deployerIn(units) != nil && !m.hasSpareDeployer(p):
		m.queueWork(p, s, unitWork(bestDeployer(units)))
	default:
		m.queueWork(p, s, m.playstyleWork(p, s, units, strengthImps, ideal))
	}
}

// playstyleWork is the bottom rung of the ladder: aggressive empires raise
// power, defensive ones raise health and walls, neutral ones take the ideal.
func (m *MoveMaker) playstyleWork(p *core.Player, s *core.Settlement, units []catalogue.UnitPlan,
	strengthImps []catalogue.Improvement, ideal *core.Construction) *core.Construction {
	healers := healerPlans(units)
	switch p.AIPlaystyle.Attack {
	case core.AttackAggressive:
		if len(p.Units) < s.Level && len(units) > 0 {
			pool := units
			if len(p.Units) > 0 && len(healers) > 0 && m.deployedHealerRatio(p) < 0.2 {
				pool = healers
			}
			return unitWork(mostPowerful(pool))
		}
	case core.AttackDefensive:
		if len(p.Units)*2 < s.Level && len(units) > 0 {
			if len(p.Units) > 0 && len(healers) > 0 && m.deployedHealerRatio(p) < 0.5 {
				return unitWork(mostPowerful(healers))
			}
			return unitWork(toughestUnit(units))
		}
		if len(strengthImps) > 0 {
			return improvementWork(&strengthImps[0])
		}
	}
	return ideal
}

// idealWork is the standing fallback: the improvement that shores up the
// settlement's weakest yield without dropping satisfaction below the
// contentment line, or the first available unit when nothing can be built.
func (m *MoveMaker) idealWork(s *core.Settlement, improvements []catalogue.Improvement,
	units []catalogue.UnitPlan, totals [4]float64) *core.Construction {
	if len(improvements) == 0 {
		return unitWork(&units[0])
	}
	category := 0
	for i := 1; i < 4; i++ {
		if totals[i] < totals[category] {
			category = i
		}
	}
	best := improvements[0]
	bestScore := categoryEffect(best.Effect, category)
	for _, imp := range improvements[1:] {
		if score := categoryEffect(imp.Effect, category); score > bestScore &&
			s.Satisfaction+imp.Effect.Satisfaction >= 50 {
			best, bestScore = imp, score
		}
	}
	return improvementWork(&best)
}

// queueWork installs the chosen construction, paying any improvement's
// resource requirement up front.
func (m *MoveMaker) queueWork(p *core.Player, s *core.Settlement, work *core.Construction) {
	if work == nil {
		return
	}
	if work.Improvement != nil {
		p.Resources.DeductCore(work.Improvement.Required)
	}
	s.CurrentWork = work
	m.logger.Debug().Str("player", p.Name).Str("work", work.Name()).Msg("Construction queued")
}

func unitWork(plan *catalogue.UnitPlan) *core.Construction {
	if plan == nil {
		return nil
	}
	cp := *plan
	return &core.Construction{UnitPlan: &cp}
}

func improvementWork(imp *catalogue.Improvement) *core.Construction {
	if imp == nil {
		return nil
	}
	cp := *imp
	return &core.Construction{Improvement: &cp}
}

// deployedHealerRatio measures healers among the units in the field.
func (m *MoveMaker) deployedHealerRatio(p *core.Player) float64 {
	if len(p.Units) == 0 {
		return 0
	}
	healers := 0
	for _, u := range p.Units {
		if u.Plan.Heals {
			healers++
		}
	}
	return float64(healers) / float64(len(p.Units))
}

func (m *MoveMaker) allDiscontent(p *core.Player) bool {
	for _, s := range p.Settlements {
		if s.Satisfaction >= 40 {
			return false
		}
	}
	return len(p.Settlements) > 0
}

func (m *MoveMaker) anyOtherImminent(p *core.Player, all []*core.Player) bool {
	for _, other := range all {
		if other != p && !other.Eliminated && len(other.ImminentVictories) > 0 {
			return true
		}
	}
	return false
}

// hasSpareDeployer reports whether the player already fields a deployer with
// room for more passengers.
func (m *MoveMaker) hasSpareDeployer(p *core.Player) bool {
	for _, u := range p.Units {
		if u.IsDeployer() && len(u.Passengers) < u.Plan.MaxCapacity {
			return true
		}
	}
	return false
}

func mostPowerful(units []catalogue.UnitPlan) *catalogue.UnitPlan {
	best := &units[0]
	for i := range units {
		if units[i].Power >= best.Power {
			best = &units[i]
		}
	}
	return best
}

func toughestUnit(units []catalogue.UnitPlan) *catalogue.UnitPlan {
	best := &units[0]
	for i := range units {
		if units[i].MaxHealth >= best.MaxHealth {
			best = &units[i]
		}
	}
	return best
}

func settlerIn(units []catalogue.UnitPlan) *catalogue.UnitPlan {
	for i := range units {
		if units[i].CanSettle {
			return &units[i]
		}
	}
	return nil
}

func healerPlans(units []catalogue.UnitPlan) []catalogue.UnitPlan {
	var out []catalogue.UnitPlan
	for _, up := range units {
		if up.Heals {
			out = append(out, up)
		}
	}
	return out
}

func deployerIn(units []catalogue.UnitPlan) *catalogue.UnitPlan {
	for i := range units {
		if units[i].MaxCapacity > 0 {
			return &units[i]
		}
	}
	return nil
}

func bestDeployer(units []catalogue.UnitPlan) *catalogue.UnitPlan {
	var best *catalogue.UnitPlan
	for i := range units {
		if units[i].MaxCapacity > 0 && (best == nil || units[i].MaxCapacity >= best.MaxCapacity) {
			best = &units[i]
		}
	}
	return best
}
