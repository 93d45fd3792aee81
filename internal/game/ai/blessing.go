package ai

import (
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// chooseBlessing picks the player's next blessing. The ideal choice is the
// cheapest blessing whose unlocked improvements most boost the weakest
// yield category; aggressive and defensive playstyles short-circuit to the
// first blessing unlocking units or strength respectively.
func (m *MoveMaker) chooseBlessing(p *core.Player, isNight bool) {
	avail := m.cat.AvailableBlessings(p.CompletedBlessings())
	if len(avail) == 0 {
		return
	}

	switch p.AIPlaystyle.Attack {
	case core.AttackAggressive:
		for _, b := range avail {
			if len(m.cat.UnlockableUnits(b)) > 0 {
				m.undertake(p, b)
				return
			}
		}
	case core.AttackDefensive:
		for _, b := range avail {
			for _, imp := range m.cat.UnlockableImprovements(b) {
				if imp.Effect.Strength > 0 {
					m.undertake(p, b)
					return
				}
			}
		}
	}

	m.undertake(p, m.idealBlessing(p, avail, isNight))
}

// idealBlessing scores each candidate by how much its unlocked improvements
// would lift the weakest category. Candidates arrive cheapest first, so the
// first best score wins ties.
func (m *MoveMaker) idealBlessing(p *core.Player, avail []catalogue.Blessing, isNight bool) catalogue.Blessing {
	category := m.lowestCategory(p, isNight)
	best := avail[0]
	bestScore := -1.0
	for _, b := range avail {
		score := 0.0
		for _, imp := range m.cat.UnlockableImprovements(b) {
			score += categoryEffect(imp.Effect, category)
		}
		if score > bestScore {
			best = b
			bestScore = score
		}
	}
	return best
}

func (m *MoveMaker) undertake(p *core.Player, b catalogue.Blessing) {
	p.OngoingBlessing = &core.OngoingBlessing{Blessing: calc.ScaleBlessing(b, p.Faction)}
	m.logger.Debug().Str("player", p.Name).Str("blessing", b.Name).Msg("Blessing undertaken")
}
