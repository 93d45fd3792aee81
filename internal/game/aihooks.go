package game

import (
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// InitialiseAIs founds a starting settlement for every AI player that has
// none, on a random unoccupied dry quad, named from the biome's pool.
func (gs *GameState) InitialiseAIs(namer *catalogue.Namer) {
	for _, p := range gs.Players {
		if p.IsHuman() || len(p.Settlements) > 0 {
			continue
		}
		for attempt := 0; attempt < 100; attempt++ {
			x, y := gs.rng.Intn(gs.Board.W), gs.rng.Intn(gs.Board.H)
			q := gs.Board.QuadAt(x, y)
			if q.Biome == board.BiomeSea || gs.OccupiedAt(x, y) {
				continue
			}
			s := core.NewSettlement(namer.GetName(q.Biome), x, y, []*board.Quad{q}, p.Faction)
			p.Settlements = append(p.Settlements, s)
			p.SeeAround(x, y, p.VisionRadius())
			gs.logger.Debug().
				Str("player", p.Name).
				Str("settlement", s.Name).
				Int("x", x).Int("y", y).
				Msg("AI settled")
			break
		}
	}
}

// ProcessAIs lets every surviving AI player take its turn.
func (gs *GameState) ProcessAIs(mm MoveMaker) {
	for _, p := range gs.Players {
		if p.IsHuman() || p.Eliminated {
			continue
		}
		mm.MakeMove(p, gs.Players, gs.Board, gs.Cfg, gs.IsNight())
	}
}
