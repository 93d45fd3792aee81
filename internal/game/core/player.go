package core

import (
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
)

// AttackPlaystyle drives an AI's combat eligibility thresholds.
type AttackPlaystyle int

const (
	AttackNeutral AttackPlaystyle = iota
	AttackAggressive
	AttackDefensive
)

// ExpansionPlaystyle drives the settlement level at which an AI trains
// settlers.
type ExpansionPlaystyle int

const (
	ExpansionNeutral ExpansionPlaystyle = iota
	ExpansionExpansionist
	ExpansionHermit
)

// AIPlaystyle is the archetype pair assigned to AI players. Human players
// carry a nil playstyle.
type AIPlaystyle struct {
	Attack    AttackPlaystyle
	Expansion ExpansionPlaystyle
}

// OngoingBlessing tracks fortune accumulated toward a blessing's cost.
type OngoingBlessing struct {
	Blessing        catalogue.Blessing
	FortuneConsumed float64
}

// Player is one of up to fourteen empires in a game. AccumulatedWealth only
// ever grows (victory tracking); Wealth is spendable and floored at zero
// after reconciliation.
type Player struct {
	Name              string
	Faction           catalogue.Faction
	Wealth            float64
	AccumulatedWealth float64
	Resources         board.ResourceSet
	Settlements       []*Settlement
	Units             []*Unit
	AIPlaystyle       *AIPlaystyle
	OngoingBlessing   *OngoingBlessing
	Blessings         []catalogue.Blessing
	ImminentVictories map[VictoryType]struct{}
	JubilationCtr     int
	Eliminated        bool
	QuadsSeen         map[board.Loc]struct{}
}

// NewPlayer creates a player with empty holdings. A nil playstyle marks the
// human player.
func NewPlayer(name string, faction catalogue.Faction, playstyle *AIPlaystyle) *Player {
	return &Player{
		Name:              name,
		Faction:           faction,
		AIPlaystyle:       playstyle,
		ImminentVictories: make(map[VictoryType]struct{}),
		QuadsSeen:         make(map[board.Loc]struct{}),
	}
}

// IsHuman reports whether this player is human-controlled.
func (p *Player) IsHuman() bool { return p.AIPlaystyle == nil }

// HasBlessing reports whether the named blessing has been completed.
func (p *Player) HasBlessing(name string) bool {
	for _, b := range p.Blessings {
		if b.Name == name {
			return true
		}
	}
	return false
}

// CompletedBlessings returns completed blessing names as a lookup set.
func (p *Player) CompletedBlessings() map[string]bool {
	done := make(map[string]bool, len(p.Blessings))
	for _, b := range p.Blessings {
		done[b.Name] = true
	}
	return done
}

// HasSettlerUnit reports whether any of the player's units can found a
// settlement. Relevant to the elimination protection for humans.
func (p *Player) HasSettlerUnit() bool {
	for _, u := range p.Units {
		if u.Plan.CanSettle {
			return true
		}
	}
	return false
}

// VisionRadius is how far a player's units and settlements see. Explorers
// see twice as far as everyone else.
func (p *Player) VisionRadius() int {
	if p.Faction == catalogue.Explorers {
		return 10
	}
	return 5
}

// SeeAround marks the square of quads around (x, y) as seen. Visibility
// only ever grows.
func (p *Player) SeeAround(x, y, radius int) {
	for j := y - radius; j <= y+radius; j++ {
		for i := x - radius; i <= x+radius; i++ {
			if i >= 0 && i < board.Width && j >= 0 && j < board.Height {
				p.QuadsSeen[board.Loc{X: i, Y: j}] = struct{}{}
			}
		}
	}
}

// RemoveUnit deletes a unit from the player's deployed list, if present.
func (p *Player) RemoveUnit(u *Unit) {
	for i, candidate := range p.Units {
		if candidate == u {
			p.Units = append(p.Units[:i], p.Units[i+1:]...)
			return
		}
	}
}

// RemoveSettlement deletes a settlement from the player's holdings, if
// present.
func (p *Player) RemoveSettlement(s *Settlement) {
	for i, candidate := range p.Settlements {
		if candidate == s {
			p.Settlements = append(p.Settlements[:i], p.Settlements[i+1:]...)
			return
		}
	}
}
