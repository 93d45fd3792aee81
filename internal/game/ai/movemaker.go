// Package ai implements the computer players: one MoveMaker drives every AI
// empire through its blessing choice, construction queue, garrison
// deployments and unit moves. All decisions are deterministic given the
// injected random source.
package ai

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// MoveMaker drives AI turns. One instance serves every AI player in a game.
type MoveMaker struct {
	rng    *rand.Rand
	cat    *catalogue.Catalogue
	namer  *catalogue.Namer
	logger zerolog.Logger
}

// New creates a MoveMaker drawing from the given source and naming new
// settlements from the given pool.
func New(rng *rand.Rand, namer *catalogue.Namer) *MoveMaker {
	return &MoveMaker{
		rng:    rng,
		cat:    catalogue.Default(),
		namer:  namer,
		logger: log.With().Str("component", "ai").Logger(),
	}
}

// MakeMove runs one AI player's whole turn.
func (m *MoveMaker) MakeMove(p *core.Player, all []*core.Player, b *board.Board, cfg game.Config, isNight bool) {
	if p.OngoingBlessing == nil {
		m.chooseBlessing(p, isNight)
	}

	for _, s := range p.Settlements {
		if s.CurrentWork == nil {
			m.chooseConstruction(p, s, all, isNight)
		} else {
			m.fastForwardConstruction(p, s)
		}
		m.deployGarrison(p, s, b)
	}

	units := make([]*core.Unit, len(p.Units))
	copy(units, p.Units)
	for _, u := range units {
		if u.HasActed || u.Garrisoned {
			continue
		}
		m.moveUnit(p, u, all, b, cfg, isNight)
	}

	m.reconcileWealth(p, isNight)
}

// fastForwardConstruction pays off cheap remaining work out of pocket.
// Projects are perpetual and never bought out.
func (m *MoveMaker) fastForwardConstruction(p *core.Player, s *core.Settlement) {
	work := s.CurrentWork
	if work == nil || work.Project != nil {
		return
	}
	remaining := work.Cost() - work.Consumed
	if remaining <= 0 || remaining >= p.Wealth/3 {
		return
	}
	p.Wealth -= remaining
	work.Consumed = work.Cost()
	m.logger.Debug().
		Str("player", p.Name).
		Str("work", work.Name()).
		Float64("paid", remaining).
		Msg("Construction bought out")
}

// deployGarrison pushes garrisoned units into the field. Settlers always
// deploy; the rest deploy when the settlement is under pressure, the
// garrison is crowded, or the playstyle is anything but defensive.
func (m *MoveMaker) deployGarrison(p *core.Player, s *core.Settlement, b *board.Board) {
	garrison := make([]*core.Unit, len(s.Garrison))
	copy(garrison, s.Garrison)
	for _, u := range garrison {
		deploy := u.Plan.CanSettle ||
			s.Besieged ||
			s.Strength < s.MaxStrength/2 ||
			len(s.Garrison) > 3 ||
			p.AIPlaystyle.Attack != core.AttackDefensive
		if !deploy {
			continue
		}
		x, y, ok := m.freeAdjacent(b, s.X, s.Y, p)
		if !ok {
			return
		}
		for i, g := range s.Garrison {
			if g == u {
				s.Garrison = append(s.Garrison[:i], s.Garrison[i+1:]...)
				break
			}
		}
		u.Garrisoned = false
		u.X, u.Y = x, y
		p.Units = append(p.Units, u)
		p.SeeAround(x, y, p.VisionRadius())
	}
}

// freeAdjacent finds an adjacent quad with no friendly unit on it.
func (m *MoveMaker) freeAdjacent(b *board.Board, x, y int, p *core.Player) (int, int, bool) {
	for _, q := range b.AdjacentQuads(x, y) {
		occupied := false
		for _, u := range p.Units {
			if u.X == q.X && u.Y == q.Y {
				occupied = true
				break
			}
		}
		if !occupied {
			return q.X, q.Y, true
		}
	}
	return 0, 0, false
}

// reconcileWealth sells the single least valuable unit if the turn would
// close insolvent.
func (m *MoveMaker) reconcileWealth(p *core.Player, isNight bool) {
	if p.Wealth+calc.ProjectedWealth(m.cat, p, isNight) >= 0 || len(p.Units) == 0 {
		return
	}
	worst := 0
	for i, u := range p.Units {
		if u.Health+u.Plan.Power < p.Units[worst].Health+p.Units[worst].Plan.Power {
			worst = i
		}
	}
	sold := p.Units[worst]
	p.Units = append(p.Units[:worst], p.Units[worst+1:]...)
	p.Wealth += sold.Plan.Cost
	m.logger.Debug().Str("player", p.Name).Str("unit", sold.Plan.Name).Msg("Unit sold by AI")
}

// lowestCategory returns the index (0 wealth, 1 harvest, 2 zeal, 3 fortune)
// of the player's weakest yield category, measured strictly.
func (m *MoveMaker) lowestCategory(p *core.Player, isNight bool) int {
	var totals [4]float64
	for _, s := range p.Settlements {
		w, h, z, f := calc.SettlementTotals(m.cat, p, s, isNight, true)
		totals[0] += w
		totals[1] += h
		totals[2] += z
		totals[3] += f
	}
	lowest := 0
	for i := 1; i < 4; i++ {
		if totals[i] < totals[lowest] {
			lowest = i
		}
	}
	return lowest
}

func categoryEffect(e catalogue.Effect, category int) float64 {
	switch category {
	case 0:
		return e.Wealth
	case 1:
		return e.Harvest
	case 2:
		return e.Zeal
	default:
		return e.Fortune
	}
}
