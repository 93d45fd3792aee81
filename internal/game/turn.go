package game

import (
	"github.com/hollowmere/quadrealm/internal/common"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// EndTurn resolves the current turn. It returns false without touching any
// state when the warning gate blocks, and false after full processing when
// the turn ended in a victory; true means the turn advanced.
func (gs *GameState) EndTurn() bool {
	if gs.CheckForWarnings() {
		return false
	}

	turnLogger := gs.logger.With().Int("turn", gs.Turn).Logger()
	turnLogger.Debug().Msg("Processing turn")

	for _, p := range gs.Players {
		if p.Eliminated {
			continue
		}
		gs.processPlayer(p)
	}

	gs.refreshHeathens()
	if gs.Cfg.ClimaticEffects {
		gs.advanceClock()
	}

	if v := gs.CheckForVictory(); v != nil {
		turnLogger.Info().
			Str("player", v.Player.Name).
			Str("victory", string(v.Type)).
			Msg("Game over")
		gs.sink.VictoryAchieved(*v)
		if gs.recorder != nil {
			gs.sink.AchievementsUnlocked(gs.recorder.RecordGameEvent(gs, v, false))
		}
		return false
	}

	if gs.recorder != nil {
		gs.sink.AchievementsUnlocked(gs.recorder.RecordGameEvent(gs, nil, false))
	}

	gs.Turn++
	turnLogger.Debug().Msg("Turn finished")
	return true
}

// CheckForWarnings inspects the human player's position and reports whether
// ending the turn should be blocked: idle settlements, no ongoing blessing,
// or a turn that would close with negative wealth. The warning details go
// out through the sink. AI-only games never block.
func (gs *GameState) CheckForWarnings() bool {
	p := gs.HumanPlayer()
	if p == nil || p.Eliminated || len(p.Settlements) == 0 {
		return false
	}

	var idle []*core.Settlement
	for _, s := range p.Settlements {
		if s.CurrentWork == nil {
			idle = append(idle, s)
		}
	}
	noBlessing := p.OngoingBlessing == nil
	negativeWealth := p.Wealth+calc.ProjectedWealth(gs.cat, p, gs.IsNight()) < 0

	if len(idle) == 0 && !noBlessing && !negativeWealth {
		return false
	}
	gs.sink.Warning(idle, noBlessing, negativeWealth)
	return true
}

// processPlayer runs one player's full end-of-turn settlement and economy
// processing.
func (gs *GameState) processPlayer(p *core.Player) {
	isNight := gs.IsNight()
	var completed, levelled []*core.Settlement
	var fortuneTotal float64

	p.Resources.ResetRare()

	for _, s := range p.Settlements {
		gs.updateStatuses(p, s)

		// Totals are taken before the siege resolves so that a siege lifted
		// this turn still depresses this turn's yields.
		_, harvest, zeal, fortune := calc.SettlementTotals(gs.cat, p, s, isNight, false)
		fortuneTotal += fortune

		gs.resolveSiegeOrRegen(s)
		for _, u := range s.Garrison {
			resetUnit(p, u)
		}

		// Satisfaction tracks whether the harvest keeps up with the
		// settlement's size.
		if harvest < float64(s.Level*4) {
			delta := -0.5
			if p.Faction == catalogue.Capitalists {
				delta = -1
			}
			s.Satisfaction += delta
		} else if harvest >= float64(s.Level*8) {
			s.Satisfaction += 0.25
		}
		s.Satisfaction = common.ClampFloat(s.Satisfaction, 0, 100)

		if work := s.CurrentWork; work != nil && work.Project == nil {
			work.Consumed += zeal
			if work.Consumed >= work.Cost() {
				calc.CompleteConstruction(gs.cat, s, p)
				completed = append(completed, s)
			}
		}

		s.HarvestReserves += harvest
		levelCap := 10
		if p.Faction == catalogue.Ravenous {
			levelCap = 5
		}
		if s.Level < levelCap && s.HarvestReserves >= s.LevelUpThreshold() {
			s.Level++
			levelled = append(levelled, s)
			if p.Faction == catalogue.TheConcentrated {
				gs.acquireBestAdjacentQuad(s)
			}
			p.SeeAround(s.X, s.Y, p.VisionRadius())
		}

		p.Resources.AddCore(s.Resources)
		p.Resources.TallyRare(s.Resources)
	}

	for _, u := range p.Units {
		resetUnit(p, u)
	}

	if ob := p.OngoingBlessing; ob != nil {
		ob.FortuneConsumed += fortuneTotal
		if ob.FortuneConsumed >= ob.Blessing.Cost {
			p.Blessings = append(p.Blessings, ob.Blessing)
			p.OngoingBlessing = nil
			gs.sink.BlessingCompleted(p, ob.Blessing)
		}
	}

	gs.reconcileWealth(p)

	if len(completed) > 0 {
		gs.sink.ConstructionsCompleted(p, completed)
	}
	if len(levelled) > 0 {
		gs.sink.LevelUps(levelled)
	}
}

// reconcileWealth applies the turn's wealth delta, selling units off the end
// of the list until the player is solvent. Accumulated wealth takes the raw
// delta; sale refunds never count toward it.
func (gs *GameState) reconcileWealth(p *core.Player) {
	overall := calc.ProjectedWealth(gs.cat, p, gs.IsNight())
	p.AccumulatedWealth += overall

	for p.Wealth+overall < 0 && len(p.Units) > 0 {
		u := p.Units[len(p.Units)-1]
		p.Units = p.Units[:len(p.Units)-1]
		overall += u.Plan.Cost
		gs.logger.Debug().
			Str("player", p.Name).
			Str("unit", u.Plan.Name).
			Msg("Unit sold to cover upkeep")
	}
	p.Wealth = max(p.Wealth+overall, 0)
}

// updateStatuses derives the settlement's harvest and economic status from
// the five-tier satisfaction ladder.
func (gs *GameState) updateStatuses(p *core.Player, s *core.Settlement) {
	switch {
	case s.Satisfaction < 20:
		s.HarvestStatus = core.HarvestPoor
		s.EconomicStatus = core.EconomyRecession
	case s.Satisfaction < 40:
		s.HarvestStatus = core.HarvestPoor
		s.EconomicStatus = core.EconomyStandard
	case s.Satisfaction < 60:
		s.HarvestStatus = core.HarvestStandard
		s.EconomicStatus = core.EconomyStandard
	case s.Satisfaction < 80:
		s.HarvestStatus = core.HarvestPlentiful
		s.EconomicStatus = core.EconomyStandard
	default:
		s.HarvestStatus = core.HarvestPlentiful
		s.EconomicStatus = core.EconomyBoom
	}

	if p.Faction == catalogue.Agriculturists && s.HarvestStatus == core.HarvestPoor {
		s.HarvestStatus = core.HarvestStandard
	}
	if p.Faction == catalogue.Capitalists && s.EconomicStatus == core.EconomyRecession {
		s.EconomicStatus = core.EconomyStandard
	}
}

// resolveSiegeOrRegen applies siege strength decay, or regeneration when the
// settlement is at peace and below full strength.
func (gs *GameState) resolveSiegeOrRegen(s *core.Settlement) {
	if s.Besieged {
		n := gs.besiegerCount(s)
		if n == 0 {
			s.Besieged = false
			return
		}
		s.Strength = max(0, s.Strength-10*float64(n))
		return
	}
	if s.Strength < s.MaxStrength {
		regen := 0.1 * s.MaxStrength
		if s.Resources.Obsidian > 0 {
			regen *= 2
		}
		s.Strength = min(s.MaxStrength, s.Strength+regen)
	}
}

// besiegerCount counts enemy units besieging from a quad adjacent to the
// settlement.
func (gs *GameState) besiegerCount(s *core.Settlement) int {
	n := 0
	for _, p := range gs.Players {
		for _, u := range p.Units {
			if u.Besieging && common.Chebyshev(u.X, u.Y, s.X, s.Y) <= 1 {
				n++
			}
		}
	}
	return n
}

// acquireBestAdjacentQuad extends the settlement by the unclaimed
// neighbouring quad with the highest total yield, if one exists.
func (gs *GameState) acquireBestAdjacentQuad(s *core.Settlement) {
	var best *board.Quad
	for _, owned := range s.Quads {
		for _, q := range gs.Board.AdjacentQuads(owned.X, owned.Y) {
			if gs.quadClaimed(q) {
				continue
			}
			if best == nil || q.TotalYield() > best.TotalYield() {
				best = q
			}
		}
	}
	if best != nil {
		s.AddQuad(best)
	}
}

func (gs *GameState) quadClaimed(q *board.Quad) bool {
	for _, p := range gs.Players {
		for _, s := range p.Settlements {
			for _, owned := range s.Quads {
				if owned == q {
					return true
				}
			}
		}
	}
	return false
}

// resetUnit restores a unit for the next turn: full stamina, a tenth of max
// health back (doubled for the Persistent) and a cleared act flag.
func resetUnit(p *core.Player, u *core.Unit) {
	u.RemainingStamina = u.Plan.TotalStamina
	heal := 0.1 * u.Plan.MaxHealth
	if p.Faction == catalogue.Persistent {
		heal *= 2
	}
	u.Health = min(u.Plan.MaxHealth, u.Health+heal)
	u.HasActed = false
}

// advanceClock ticks the day and night counters and applies the power
// shifts on each transition. The revert is deliberately asymmetric: heathen
// power halves on daybreak whatever it was, and Nocturne units come out of
// the night at a quarter power with health and stamina halved.
func (gs *GameState) advanceClock() {
	if gs.NighttimeLeft == 0 {
		gs.UntilNight--
		if gs.UntilNight > 0 {
			return
		}
		gs.NighttimeLeft = 5 + gs.rng.Intn(16)
		for _, h := range gs.Heathens {
			h.Plan.Power *= 2
		}
		gs.forEachNocturneUnit(func(u *core.Unit) {
			u.Plan.Power *= 2
		})
		gs.logger.Debug().Int("duration", gs.NighttimeLeft).Msg("Night has fallen")
		gs.sink.NightChanged(true)
		return
	}

	gs.NighttimeLeft--
	if gs.NighttimeLeft > 0 {
		return
	}
	gs.UntilNight = 10 + gs.rng.Intn(11)
	for _, h := range gs.Heathens {
		h.Plan.Power /= 2
	}
	gs.forEachNocturneUnit(func(u *core.Unit) {
		u.Plan.Power /= 4
		u.Plan.MaxHealth /= 2
		u.Health = min(u.Health/2, u.Plan.MaxHealth)
		u.Plan.TotalStamina = (u.Plan.TotalStamina + 1) / 2
		u.RemainingStamina = common.Min(u.RemainingStamina, u.Plan.TotalStamina)
	})
	gs.logger.Debug().Int("until_night", gs.UntilNight).Msg("Day has broken")
	gs.sink.NightChanged(false)
}

// forEachNocturneUnit visits every Nocturne player's units, garrisoned ones
// included.
func (gs *GameState) forEachNocturneUnit(fn func(*core.Unit)) {
	for _, p := range gs.Players {
		if p.Faction != catalogue.Nocturne {
			continue
		}
		for _, u := range p.Units {
			fn(u)
		}
		for _, s := range p.Settlements {
			for _, u := range s.Garrison {
				fn(u)
			}
		}
	}
}
