// Package achievements holds the registry of unlockable achievements and the
// verification pass run over game state after turns and victories. Predicates
// are pure queries and never mutate state.
package achievements

import (
	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// Statistics is the cumulative aggregate persisted across games. Playtime is
// in seconds. Victories and FactionsUsed are keyed sets with counts.
type Statistics struct {
	Playtime     float64
	TurnsPlayed  int
	Defeats      int
	Victories    map[core.VictoryType]int
	FactionsUsed map[catalogue.Faction]int
}

// NewStatistics returns an empty aggregate with its maps allocated.
func NewStatistics() Statistics {
	return Statistics{
		Victories:    make(map[core.VictoryType]int),
		FactionsUsed: make(map[catalogue.Faction]int),
	}
}

// Achievement pairs a display name with its verification predicate.
// PostVictory achievements are only evaluated at the moment a victory
// completes; their predicates check conditions that cannot be re-derived
// from ongoing state afterwards.
type Achievement struct {
	Name        string
	Description string
	PostVictory bool
	verify      func(gs *game.GameState, stats Statistics) bool
}

// Verify evaluates every achievement not already unlocked and returns the
// ones that newly pass. PostVictory achievements are skipped unless justWon
// is set.
func Verify(gs *game.GameState, stats Statistics, unlocked map[string]bool, justWon bool) []Achievement {
	var passed []Achievement
	for _, a := range All {
		if unlocked[a.Name] {
			continue
		}
		if a.PostVictory && !justWon {
			continue
		}
		if a.verify(gs, stats) {
			passed = append(passed, a)
		}
	}
	return passed
}

// human returns the human player, or nil in an AI-only game. Predicates over
// live game state are about the human player's empire.
func human(gs *game.GameState) *core.Player {
	return gs.HumanPlayer()
}

func wonWith(f catalogue.Faction) func(*game.GameState, Statistics) bool {
	return func(gs *game.GameState, _ Statistics) bool {
		p := human(gs)
		return p != nil && p.Faction == f
	}
}

func achievedVictory(vt core.VictoryType) func(*game.GameState, Statistics) bool {
	return func(_ *game.GameState, stats Statistics) bool {
		return stats.Victories[vt] > 0
	}
}

func playedHours(h int) func(*game.GameState, Statistics) bool {
	return func(_ *game.GameState, stats Statistics) bool {
		return int(stats.Playtime/3600) >= h
	}
}

// verifyFullHouse checks whether eight or more of the human player's units
// besiege the same settlement at once. Besieging units are matched to
// settlements by adjacency to any of the settlement's quads.
func verifyFullHouse(gs *game.GameState, _ Statistics) bool {
	p := human(gs)
	if p == nil {
		return false
	}
	var all []*core.Settlement
	for _, pl := range gs.Players {
		all = append(all, pl.Settlements...)
	}
	counts := make(map[string]int)
	for _, u := range p.Units {
		if !u.Besieging {
			continue
		}
		for _, s := range all {
			for _, q := range s.Quads {
				if abs(u.X-q.X) <= 1 && abs(u.Y-q.Y) <= 1 {
					counts[s.Name]++
				}
			}
		}
	}
	for _, n := range counts {
		if n >= 8 {
			return true
		}
	}
	return false
}

// verifyWorthIt checks whether the human player has built an improvement
// that reduces satisfaction.
func verifyWorthIt(gs *game.GameState, _ Statistics) bool {
	p := human(gs)
	if p == nil {
		return false
	}
	for _, s := range p.Settlements {
		for _, imp := range s.Improvements {
			if imp.Effect.Satisfaction < 0 {
				return true
			}
		}
	}
	return false
}

// verifyThirdX checks whether any of the human player's settlements sits on
// four or more resources of any kind.
func verifyThirdX(gs *game.GameState, _ Statistics) bool {
	p := human(gs)
	if p == nil {
		return false
	}
	for _, s := range p.Settlements {
		r := s.Resources
		total := r.Ore + r.Timber + r.Magma +
			r.Aurora + r.Bloodstone + r.Obsidian + r.Sunstone + r.Aquamarine
		if total >= 4 {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
