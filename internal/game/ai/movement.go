package ai

import (
	"github.com/hollowmere/quadrealm/internal/common"
	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// settleDistance is how far from its own empire a settler must be before
// founding.
const settleDistance = 10

// moveUnit dispatches a deployed unit on its type's behaviour.
func (m *MoveMaker) moveUnit(p *core.Player, u *core.Unit, all []*core.Player, b *board.Board, cfg game.Config, isNight bool) {
	switch {
	case u.Plan.CanSettle:
		m.moveSettler(p, u, all, b)
	case u.Plan.Heals:
		m.moveHealer(p, u, b, cfg)
	case u.IsDeployer():
		m.moveDeployer(p, u, all, b, cfg)
	default:
		m.moveCombatUnit(p, u, all, b, cfg)
	}
}

// moveSettler wanders until the unit stands far enough from every friendly
// settlement and beside a core resource, then founds a settlement and
// consumes itself. A boxed-in settler gives up silently for the turn.
func (m *MoveMaker) moveSettler(p *core.Player, u *core.Unit, all []*core.Player, b *board.Board) {
	for attempt := 0; attempt < 5; attempt++ {
		if m.canSettleAt(p, u.X, u.Y, all, b) {
			m.found(p, u, b)
			return
		}
		if !m.randomStep(p, u, b) {
			return
		}
	}
	if m.canSettleAt(p, u.X, u.Y, all, b) {
		m.found(p, u, b)
	}
}

func (m *MoveMaker) canSettleAt(p *core.Player, x, y int, all []*core.Player, b *board.Board) bool {
	for _, s := range p.Settlements {
		if common.Chebyshev(x, y, s.X, s.Y) < settleDistance {
			return false
		}
	}
	for _, other := range all {
		for _, s := range other.Settlements {
			if s.X == x && s.Y == y {
				return false
			}
		}
	}
	q := b.QuadAt(x, y)
	if q == nil || q.Biome == board.BiomeSea {
		return false
	}
	for _, adj := range b.AdjacentQuads(x, y) {
		if adj.Resources.HasCore() {
			return true
		}
	}
	return false
}

func (m *MoveMaker) found(p *core.Player, u *core.Unit, b *board.Board) {
	q := b.QuadAt(u.X, u.Y)
	s := core.NewSettlement(m.namer.GetName(q.Biome), u.X, u.Y, []*board.Quad{q}, p.Faction)
	p.Settlements = append(p.Settlements, s)
	p.RemoveUnit(u)
	p.SeeAround(u.X, u.Y, p.VisionRadius())
	m.logger.Debug().Str("player", p.Name).Str("settlement", s.Name).Msg("Settlement founded")
}

// moveHealer looks for a damaged friendly unit in reach and heals it, else
// explores.
func (m *MoveMaker) moveHealer(p *core.Player, u *core.Unit, b *board.Board, cfg game.Config) {
	for _, friend := range p.Units {
		if friend == u || friend.Health >= friend.Plan.MaxHealth {
			continue
		}
		if common.Chebyshev(u.X, u.Y, friend.X, friend.Y) > u.RemainingStamina+1 {
			continue
		}
		m.stepBeside(u, friend.X, friend.Y, b)
		calc.Heal(u, friend, true)
		return
	}
	m.exploreOrInvestigate(p, u, b, cfg)
}

// moveDeployer ferries escorts toward whichever enemy is closest to
// winning: empty, it returns home for passengers; loaded, it heads for the
// threat's weakest settlement and unloads on arrival.
func (m *MoveMaker) moveDeployer(p *core.Player, u *core.Unit, all []*core.Player, b *board.Board, cfg game.Config) {
	threat := m.biggestThreat(p, all)
	if threat == nil {
		m.exploreOrInvestigate(p, u, b, cfg)
		return
	}

	if len(u.Passengers) == 0 {
		if home := nearestSettlement(p, u.X, u.Y); home != nil {
			m.stepBeside(u, home.X, home.Y, b)
		}
		return
	}

	target := weakestSettlement(threat)
	if target == nil {
		m.exploreOrInvestigate(p, u, b, cfg)
		return
	}
	m.stepBeside(u, target.X, target.Y, b)
	if common.Chebyshev(u.X, u.Y, target.X, target.Y) <= 1 {
		passenger := u.Passengers[len(u.Passengers)-1]
		u.Passengers = u.Passengers[:len(u.Passengers)-1]
		passenger.X, passenger.Y = u.X, u.Y
		p.Units = append(p.Units, passenger)
	}
}

// moveCombatUnit attacks a unit if the playstyle allows it, then tries
// settlements, then the late-game escort dance, then explores.
func (m *MoveMaker) moveCombatUnit(p *core.Player, u *core.Unit, all []*core.Player, b *board.Board, cfg game.Config) {
	if target, owner := m.attackableUnit(p, u, all); target != nil {
		m.stepBeside(u, target.X, target.Y, b)
		data := calc.Attack(u, target, true)
		if data.DefenderWasKilled {
			owner.RemoveUnit(target)
		}
		if data.AttackerWasKilled {
			p.RemoveUnit(u)
		}
		return
	}

	if setl, owner := m.attackableSettlement(p, u, all); setl != nil {
		m.stepBeside(u, setl.X, setl.Y, b)
		if common.Chebyshev(u.X, u.Y, setl.X, setl.Y) > 1 {
			return
		}
		data := calc.AttackSettlement(u, setl, owner, true)
		if data.SetlWasTaken {
			owner.RemoveSettlement(setl)
			p.Settlements = append(p.Settlements, setl)
			setl.Besieged = false
			p.SeeAround(setl.X, setl.Y, p.VisionRadius())
			m.logger.Debug().
				Str("settlement", setl.Name).
				Str("from", owner.Name).
				Str("to", p.Name).
				Msg("Settlement conquered")
		}
		if data.AttackerWasKilled {
			p.RemoveUnit(u)
		}
		return
	}

	if setl := m.siegeableSettlement(p, u, all); setl != nil {
		m.stepBeside(u, setl.X, setl.Y, b)
		if common.Chebyshev(u.X, u.Y, setl.X, setl.Y) <= 1 {
			u.Besieging = true
			setl.Besieged = true
			u.MarkActed()
			return
		}
	}

	if threat := m.biggestThreat(p, all); threat != nil {
		if deployer := m.boardableDeployer(p, u); deployer != nil {
			p.RemoveUnit(u)
			deployer.Passengers = append(deployer.Passengers, u)
			return
		}
		if target := weakestSettlement(threat); target != nil {
			m.stepBeside(u, target.X, target.Y, b)
			return
		}
	}

	m.exploreOrInvestigate(p, u, b, cfg)
}

// attackableUnit finds an enemy unit in reach the playstyle is willing to
// fight. Infidel units and imminent-victory owners bypass the thresholds.
func (m *MoveMaker) attackableUnit(p *core.Player, u *core.Unit, all []*core.Player) (*core.Unit, *core.Player) {
	for _, other := range all {
		if other == p || other.Eliminated {
			continue
		}
		bypass := other.Faction == catalogue.Infidels || len(other.ImminentVictories) > 0
		for _, target := range other.Units {
			if common.Chebyshev(u.X, u.Y, target.X, target.Y) > u.RemainingStamina+1 {
				continue
			}
			if bypass || m.willingToFight(p, u, target) {
				return target, other
			}
		}
	}
	return nil, nil
}

func (m *MoveMaker) willingToFight(p *core.Player, u *core.Unit, target *core.Unit) bool {
	switch p.AIPlaystyle.Attack {
	case core.AttackAggressive:
		return true
	case core.AttackNeutral:
		return u.Health >= 2*target.Health
	default:
		return false
	}
}

// attackableSettlement finds an enemy settlement in reach worth assaulting
// directly. Thresholds scale with caution; imminent-victory owners bypass
// them.
func (m *MoveMaker) attackableSettlement(p *core.Player, u *core.Unit, all []*core.Player) (*core.Settlement, *core.Player) {
	for _, other := range all {
		if other == p || other.Eliminated {
			continue
		}
		bypass := other.Faction == catalogue.Infidels || len(other.ImminentVictories) > 0
		for _, setl := range other.Settlements {
			if common.Chebyshev(u.X, u.Y, setl.X, setl.Y) > u.RemainingStamina+1 {
				continue
			}
			if bypass {
				return setl, other
			}
			switch p.AIPlaystyle.Attack {
			case core.AttackAggressive:
				if u.Health >= 2*setl.Strength {
					return setl, other
				}
			case core.AttackNeutral:
				if u.Health >= 10*setl.Strength {
					return setl, other
				}
			default:
				if setl.Strength <= 0 {
					return setl, other
				}
			}
		}
	}
	return nil, nil
}

// siegeableSettlement finds an enemy settlement in reach that aggressive
// units settle down to strangle instead of storming.
func (m *MoveMaker) siegeableSettlement(p *core.Player, u *core.Unit, all []*core.Player) *core.Settlement {
	if p.AIPlaystyle.Attack != core.AttackAggressive {
		return nil
	}
	for _, other := range all {
		if other == p || other.Eliminated || other.Faction == catalogue.Infidels {
			continue
		}
		for _, setl := range other.Settlements {
			if common.Chebyshev(u.X, u.Y, setl.X, setl.Y) <= u.RemainingStamina+1 && setl.Strength > 0 {
				return setl
			}
		}
	}
	return nil
}

func (m *MoveMaker) boardableDeployer(p *core.Player, u *core.Unit) *core.Unit {
	for _, d := range p.Units {
		if !d.IsDeployer() || d == u {
			continue
		}
		if len(d.Passengers) >= d.Plan.MaxCapacity {
			continue
		}
		if common.Chebyshev(u.X, u.Y, d.X, d.Y) <= u.RemainingStamina {
			return d
		}
	}
	return nil
}

func (m *MoveMaker) biggestThreat(p *core.Player, all []*core.Player) *core.Player {
	var threat *core.Player
	for _, other := range all {
		if other == p || other.Eliminated || len(other.ImminentVictories) == 0 {
			continue
		}
		if threat == nil || len(other.ImminentVictories) > len(threat.ImminentVictories) {
			threat = other
		}
	}
	return threat
}

func nearestSettlement(p *core.Player, x, y int) *core.Settlement {
	var best *core.Settlement
	bestDist := 0
	for _, s := range p.Settlements {
		d := common.Chebyshev(x, y, s.X, s.Y)
		if best == nil || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

func weakestSettlement(p *core.Player) *core.Settlement {
	var best *core.Settlement
	for _, s := range p.Settlements {
		if best == nil || s.Strength < best.Strength {
			best = s
		}
	}
	return best
}

// stepBeside walks the unit toward (tx, ty) until adjacent or out of
// stamina. Transit over occupied quads is allowed; only the destination
// matters.
func (m *MoveMaker) stepBeside(u *core.Unit, tx, ty int, b *board.Board) {
	for u.RemainingStamina > 0 && common.Chebyshev(u.X, u.Y, tx, ty) > 1 {
		nx, ny := u.X, u.Y
		if nx < tx {
			nx++
		} else if nx > tx {
			nx--
		}
		if ny < ty {
			ny++
		} else if ny > ty {
			ny--
		}
		if !b.InBounds(nx, ny) {
			return
		}
		u.X, u.Y = nx, ny
		u.RemainingStamina--
	}
}

// exploreOrInvestigate heads for a relic in reach, else wanders.
func (m *MoveMaker) exploreOrInvestigate(p *core.Player, u *core.Unit, b *board.Board, cfg game.Config) {
	if q := m.relicInReach(p, u, b, cfg); q != nil {
		m.stepBeside(u, q.X, q.Y, b)
		if common.Chebyshev(u.X, u.Y, q.X, q.Y) <= 1 {
			result := calc.InvestigateRelic(m.rng, p, u, q, cfg.FogOfWar)
			m.logger.Debug().
				Str("player", p.Name).
				Str("result", string(result)).
				Msg("Relic investigated")
		}
		return
	}
	m.randomStep(p, u, b)
}

// relicInReach finds a relic quad within movement range. Under fog of war
// only quads the player has seen count.
func (m *MoveMaker) relicInReach(p *core.Player, u *core.Unit, b *board.Board, cfg game.Config) *board.Quad {
	for dy := -u.RemainingStamina - 1; dy <= u.RemainingStamina+1; dy++ {
		for dx := -u.RemainingStamina - 1; dx <= u.RemainingStamina+1; dx++ {
			q := b.QuadAt(u.X+dx, u.Y+dy)
			if q == nil || !q.Relic {
				continue
			}
			if cfg.FogOfWar {
				if _, seen := p.QuadsSeen[q.Loc()]; !seen {
					continue
				}
			}
			return q
		}
	}
	return nil
}

// randomStep tries up to five random in-bounds destinations within stamina
// range, reporting whether the unit moved.
func (m *MoveMaker) randomStep(p *core.Player, u *core.Unit, b *board.Board) bool {
	if u.RemainingStamina == 0 {
		return false
	}
	for attempt := 0; attempt < 5; attempt++ {
		dx := m.rng.Intn(2*u.RemainingStamina+1) - u.RemainingStamina
		dy := m.rng.Intn(2*u.RemainingStamina+1) - u.RemainingStamina
		if dx == 0 && dy == 0 {
			continue
		}
		nx, ny := u.X+dx, u.Y+dy
		if !b.InBounds(nx, ny) {
			continue
		}
		u.RemainingStamina -= common.Max(common.Abs(dx), common.Abs(dy))
		u.X, u.Y = nx, ny
		p.SeeAround(nx, ny, p.VisionRadius())
		return true
	}
	return false
}
