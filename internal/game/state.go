// Package game owns the root aggregate and the turn resolution engine. A
// GameState is created once per game and mutated in place by EndTurn; there
// is no concurrent access within a turn, and every random draw comes from
// the single injected source so that a seed replays to an identical game.
package game

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// Config carries the per-game toggles that alter core behaviour.
type Config struct {
	// FogOfWar gates the vision relic reward and AI exploration value.
	FogOfWar bool
	// ClimaticEffects enables the day and night cycle.
	ClimaticEffects bool
}

// GameState is the root aggregate: the board, every player, every heathen
// and the clock counters. All turn processing hangs off it.
type GameState struct {
	ID       string
	Board    *board.Board
	Players  []*core.Player
	Heathens []*core.Heathen
	Turn     int

	// UntilNight counts turns down to nightfall; NighttimeLeft counts the
	// remaining night turns and doubles as the is-night flag.
	UntilNight    int
	NighttimeLeft int

	Cfg      Config
	rng      *rand.Rand
	cat      *catalogue.Catalogue
	sink     NotificationSink
	recorder EventRecorder
	logger   zerolog.Logger
}

// New creates an empty game over a freshly generated board. Players are
// added separately via GenPlayers so callers control the roster.
func New(cfg Config, b *board.Board, rng *rand.Rand) *GameState {
	id := uuid.New().String()
	return &GameState{
		ID:         id,
		Board:      b,
		Turn:       1,
		UntilNight: 10 + rng.Intn(11),
		Cfg:        cfg,
		rng:        rng,
		cat:        catalogue.Default(),
		sink:       NopSink{},
		recorder:   nil,
		logger:     log.With().Str("component", "game").Str("game_id", id).Logger(),
	}
}

// SetSink installs the notification sink. A nil sink restores the no-op
// default.
func (gs *GameState) SetSink(sink NotificationSink) {
	if sink == nil {
		sink = NopSink{}
	}
	gs.sink = sink
}

// SetRecorder installs the statistics recorder. A nil recorder disables
// recording.
func (gs *GameState) SetRecorder(rec EventRecorder) { gs.recorder = rec }

// Catalogue exposes the static content the game was built against.
func (gs *GameState) Catalogue() *catalogue.Catalogue { return gs.cat }

// RNG exposes the game's random source. Collaborators that need draws (AI,
// relic rolls) must use this one, never a global.
func (gs *GameState) RNG() *rand.Rand { return gs.rng }

// IsNight reports whether the night phase is active.
func (gs *GameState) IsNight() bool { return gs.NighttimeLeft > 0 }

// HumanPlayer returns the human player, or nil in an AI-only game.
func (gs *GameState) HumanPlayer() *core.Player {
	for _, p := range gs.Players {
		if p.IsHuman() {
			return p
		}
	}
	return nil
}

// GenPlayers fills the roster with n players drawing distinct factions from
// a shuffled deck. When withHuman is set the first player is
// human-controlled; every other player gets a random playstyle pair.
func (gs *GameState) GenPlayers(n int, withHuman bool) {
	deck := make([]catalogue.Faction, len(catalogue.Factions))
	copy(deck, catalogue.Factions)
	gs.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	if n > len(deck) {
		n = len(deck)
	}

	for i := 0; i < n; i++ {
		var style *core.AIPlaystyle
		if !withHuman || i > 0 {
			style = &core.AIPlaystyle{
				Attack:    core.AttackPlaystyle(gs.rng.Intn(3)),
				Expansion: core.ExpansionPlaystyle(gs.rng.Intn(3)),
			}
		}
		name := string(deck[i])
		gs.Players = append(gs.Players, core.NewPlayer(name, deck[i], style))
	}
	gs.logger.Info().Int("players", len(gs.Players)).Bool("with_human", withHuman).Msg("Roster generated")
}

// SettlementAt returns the settlement anchored at (x, y) and its owner, or
// nils.
func (gs *GameState) SettlementAt(x, y int) (*core.Settlement, *core.Player) {
	for _, p := range gs.Players {
		for _, s := range p.Settlements {
			if s.X == x && s.Y == y {
				return s, p
			}
		}
	}
	return nil, nil
}

// UnitAt returns the first deployed unit found at (x, y) and its owner, or
// nils.
func (gs *GameState) UnitAt(x, y int) (*core.Unit, *core.Player) {
	for _, p := range gs.Players {
		for _, u := range p.Units {
			if u.X == x && u.Y == y {
				return u, p
			}
		}
	}
	return nil, nil
}

// OccupiedAt reports whether a settlement, unit or heathen sits on (x, y).
func (gs *GameState) OccupiedAt(x, y int) bool {
	if s, _ := gs.SettlementAt(x, y); s != nil {
		return true
	}
	if u, _ := gs.UnitAt(x, y); u != nil {
		return true
	}
	for _, h := range gs.Heathens {
		if h.X == x && h.Y == y {
			return true
		}
	}
	return false
}

// RemoveHeathen deletes a heathen, if present.
func (gs *GameState) RemoveHeathen(h *core.Heathen) {
	for i, candidate := range gs.Heathens {
		if candidate == h {
			gs.Heathens = append(gs.Heathens[:i], gs.Heathens[i+1:]...)
			return
		}
	}
}
