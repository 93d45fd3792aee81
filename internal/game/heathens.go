package game

import (
	"github.com/hollowmere/quadrealm/internal/common"
	"github.com/hollowmere/quadrealm/internal/game/calc"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// heathenSpawnInterval is the turn cadence of new heathen arrivals.
const heathenSpawnInterval = 5

// refreshHeathens runs the end-of-turn heathen lifecycle: a spawn every
// fifth turn, then a stamina reset and a slow heal at a tenth of max health
// per turn.
func (gs *GameState) refreshHeathens() {
	if gs.Turn%heathenSpawnInterval == 0 {
		gs.spawnHeathen()
	}
	for _, h := range gs.Heathens {
		h.RemainingStamina = h.Plan.TotalStamina
		h.Health = min(h.Health+h.Plan.MaxHealth*0.1, h.Plan.MaxHealth)
	}
}

// spawnHeathen places a new heathen on a random unoccupied quad, with stats
// scaled by the current turn. A heathen born at night arrives already
// empowered.
func (gs *GameState) spawnHeathen() {
	plan := gs.cat.HeathenPlan(gs.Turn)
	if gs.IsNight() {
		plan.Power *= 2
	}
	banned := gs.bannedHeathenQuads()
	for attempt := 0; attempt < 100; attempt++ {
		x, y := gs.rng.Intn(gs.Board.W), gs.rng.Intn(gs.Board.H)
		if gs.OccupiedAt(x, y) || banned[[2]int{x, y}] {
			continue
		}
		h := core.NewHeathen(plan, x, y)
		gs.Heathens = append(gs.Heathens, h)
		gs.logger.Debug().Int("x", x).Int("y", y).Float64("power", plan.Power).Msg("Heathen spawned")
		return
	}
}

// ProcessHeathens moves every heathen: attack a reachable player unit with
// at most double the heathen's health, or wander. Infidel units are never
// targeted, and Infidel players share heathen vision.
func (gs *GameState) ProcessHeathens() {
	banned := gs.bannedHeathenQuads()
	heathens := make([]*core.Heathen, len(gs.Heathens))
	copy(heathens, gs.Heathens)
	for _, h := range heathens {
		target, owner := gs.heathenTarget(h)
		if target == nil {
			if !gs.wanderHeathen(h, banned) {
				gs.RemoveHeathen(h)
				gs.logger.Debug().Int("x", h.X).Int("y", h.Y).Msg("Heathen perished with nowhere to go")
			}
			continue
		}

		gs.stepToward(h, target.X, target.Y)
		data := calc.Attack(h, target, true)
		if data.DefenderWasKilled {
			owner.RemoveUnit(target)
			gs.logger.Debug().
				Str("player", owner.Name).
				Str("unit", target.Plan.Name).
				Msg("Unit slain by heathen")
		}
		if data.AttackerWasKilled {
			gs.RemoveHeathen(h)
		}
	}

	for _, p := range gs.Players {
		if p.Faction != catalogue.Infidels {
			continue
		}
		for _, h := range gs.Heathens {
			p.SeeAround(h.X, h.Y, p.VisionRadius())
		}
	}
}

// heathenTarget finds the first reachable deployed unit weak enough to be
// worth the fight.
func (gs *GameState) heathenTarget(h *core.Heathen) (*core.Unit, *core.Player) {
	for _, p := range gs.Players {
		if p.Eliminated || p.Faction == catalogue.Infidels {
			continue
		}
		for _, u := range p.Units {
			if u.Health > 2*h.Health {
				continue
			}
			if common.Chebyshev(h.X, h.Y, u.X, u.Y) <= h.RemainingStamina+1 {
				return u, p
			}
		}
	}
	return nil, nil
}

// stepToward moves the heathen adjacent to (tx, ty), spending stamina along
// the way.
func (gs *GameState) stepToward(h *core.Heathen, tx, ty int) {
	for h.RemainingStamina > 0 && common.Chebyshev(h.X, h.Y, tx, ty) > 1 {
		if h.X < tx {
			h.X++
		} else if h.X > tx {
			h.X--
		}
		if h.Y < ty {
			h.Y++
		} else if h.Y > ty {
			h.Y--
		}
		h.RemainingStamina--
	}
}

// wanderHeathen tries up to five random destinations, spending the full
// remaining stamina on the hop. It reports false when every attempt lands
// on a banned quad, which kills a heathen caught inside a sunstone
// exclusion zone at nightfall.
func (gs *GameState) wanderHeathen(h *core.Heathen, banned map[[2]int]bool) bool {
	for attempt := 0; attempt < 5; attempt++ {
		dx := gs.rng.Intn(2*h.RemainingStamina+1) - h.RemainingStamina
		rest := h.RemainingStamina - common.Abs(dx)
		dy := rest
		if gs.rng.Intn(2) == 0 {
			dy = -rest
		}
		nx := common.Clamp(h.X+dx, 0, gs.Board.W-1)
		ny := common.Clamp(h.Y+dy, 0, gs.Board.H-1)
		if banned[[2]int{nx, ny}] {
			continue
		}
		h.RemainingStamina -= common.Abs(dx) + common.Abs(dy)
		h.X, h.Y = nx, ny
		return true
	}
	return false
}

// bannedHeathenQuads collects the quads heathens refuse to stand on: every
// Infidel unit's quad, every settlement quad, and at night a box reaching
// 3*(1+sunstone) quads out from each settlement holding sunstone.
func (gs *GameState) bannedHeathenQuads() map[[2]int]bool {
	banned := make(map[[2]int]bool)
	for _, p := range gs.Players {
		if p.Faction == catalogue.Infidels {
			for _, u := range p.Units {
				banned[[2]int{u.X, u.Y}] = true
			}
		}
		for _, s := range p.Settlements {
			for _, q := range s.Quads {
				if gs.IsNight() && s.Resources.Sunstone > 0 {
					reach := 3 * (1 + s.Resources.Sunstone)
					for x := q.X - reach; x <= q.X+reach; x++ {
						for y := q.Y - reach; y <= q.Y+reach; y++ {
							banned[[2]int{x, y}] = true
						}
					}
				} else {
					banned[[2]int{q.X, q.Y}] = true
				}
			}
		}
	}
	return banned
}
