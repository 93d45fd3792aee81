package achievements

import (
	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// victoryBlessings is how many catalogue blessings exist purely as victory
// steps. They do not count towards Wholly Blessed.
const victoryBlessings = 4

// All lists every obtainable achievement. Order is presentation order.
var All = []Achievement{
	{Name: "Chicken Dinner", Description: "Win a game.",
		verify: func(_ *game.GameState, stats Statistics) bool {
			return len(stats.Victories) > 0
		}},
	{Name: "Fully Improved", Description: "Build every non-victory improvement in one game.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			if p == nil {
				return false
			}
			built := 0
			for _, s := range p.Settlements {
				built += len(s.Improvements)
			}
			return built >= len(gs.Catalogue().Improvements)-1
		}},
	{Name: "Harvest Galore", Description: "Have at least 5 settlements with plentiful harvests.",
		verify: settlementsWith(5, func(s *core.Settlement) bool {
			return s.HarvestStatus == core.HarvestPlentiful
		})},
	{Name: "Mansa Musa", Description: "Have at least 5 settlements with boom economies.",
		verify: settlementsWith(5, func(s *core.Settlement) bool {
			return s.EconomicStatus == core.EconomyBoom
		})},
	{Name: "Last One Standing", Description: "Achieve an elimination victory.",
		verify: achievedVictory(core.VictoryElimination)},
	{Name: "They Love Me!", Description: "Achieve a jubilation victory.",
		verify: achievedVictory(core.VictoryJubilation)},
	{Name: "Megalopoleis", Description: "Achieve a gluttony victory.",
		verify: achievedVictory(core.VictoryGluttony)},
	{Name: "Wealth Upon Wealth", Description: "Achieve an affluence victory.",
		verify: achievedVictory(core.VictoryAffluence)},
	{Name: "Sanctum Sanctorum", Description: "Achieve a vigour victory.",
		verify: achievedVictory(core.VictoryVigour)},
	{Name: "Arduously Blessed", Description: "Achieve a serendipity victory.",
		verify: achievedVictory(core.VictorySerendipity)},
	{Name: "Grow And Grow", Description: "Win with the Agriculturists.",
		PostVictory: true, verify: wonWith(catalogue.Agriculturists)},
	{Name: "Money Talks", Description: "Win with the Capitalists.",
		PostVictory: true, verify: wonWith(catalogue.Capitalists)},
	{Name: "Telescopic", Description: "Win with the Scrutineers.",
		PostVictory: true, verify: wonWith(catalogue.Scrutineers)},
	{Name: "Suitably Skeptical", Description: "Win with The Godless.",
		PostVictory: true, verify: wonWith(catalogue.TheGodless)},
	{Name: "Gallivanting Greed", Description: "Win with The Ravenous.",
		PostVictory: true, verify: wonWith(catalogue.Ravenous)},
	{Name: "The Clang Of Iron", Description: "Win with the Fundamentalists.",
		PostVictory: true, verify: wonWith(catalogue.Fundamentalists)},
	{Name: "The Passionate Eye", Description: "Win with The Orthodox.",
		PostVictory: true, verify: wonWith(catalogue.Orthodox)},
	{Name: "Cloudscrapers", Description: "Win with The Concentrated.",
		PostVictory: true, verify: wonWith(catalogue.TheConcentrated)},
	{Name: "Never Rest", Description: "Win with the Frontiersmen.",
		PostVictory: true, verify: wonWith(catalogue.Frontiersmen)},
	{Name: "Empirical Evidence", Description: "Win with the Imperials.",
		PostVictory: true, verify: wonWith(catalogue.Imperials)},
	{Name: "The Singular Purpose", Description: "Win with The Persistent.",
		PostVictory: true, verify: wonWith(catalogue.Persistent)},
	{Name: "Cartographic Courage", Description: "Win with the Explorers.",
		PostVictory: true, verify: wonWith(catalogue.Explorers)},
	{Name: "Sub-Human, Super-Success", Description: "Win with the Infidels.",
		PostVictory: true, verify: wonWith(catalogue.Infidels)},
	{Name: "Shine In The Dark", Description: "Win with The Nocturne.",
		PostVictory: true, verify: wonWith(catalogue.Nocturne)},
	{Name: "The Golden Quad", Description: "Found a settlement on a quad with at least 19 total yield.",
		verify: settlementsWith(1, func(s *core.Settlement) bool {
			return len(s.Quads) > 0 && s.Quads[0].TotalYield() >= 19
		})},
	{Name: "Wholly Blessed", Description: "Undergo all non-victory blessings.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			if p == nil {
				return false
			}
			return len(p.Blessings) >= len(gs.Catalogue().Blessings)-victoryBlessings
		}},
	{Name: "Unstoppable Force", Description: "Have 20 deployed units.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			return p != nil && len(p.Units) >= 20
		}},
	{Name: "Full House", Description: "Besiege a settlement with 8 units at once.",
		verify: verifyFullHouse},
	{Name: "Sprawling Skyscrapers", Description: "Fully expand a Concentrated settlement.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			if p == nil || p.Faction != catalogue.TheConcentrated {
				return false
			}
			for _, s := range p.Settlements {
				if s.Level == 10 {
					return true
				}
			}
			return false
		}},
	{Name: "Ready Reservists", Description: "Accumulate 10 units in a garrison.",
		verify: settlementsWith(1, func(s *core.Settlement) bool {
			return len(s.Garrison) >= 10
		})},
	{Name: "The Big Wall", Description: "Have a settlement reach 300 strength.",
		verify: settlementsWith(1, func(s *core.Settlement) bool {
			return s.Strength >= 300
		})},
	{Name: "Utopia", Description: "Reach 100 satisfaction in a settlement.",
		verify: settlementsWith(1, func(s *core.Settlement) bool {
			return s.Satisfaction >= 100
		})},
	{Name: "All Grown Up", Description: "Reach level 10 in a settlement.",
		verify: settlementsWith(1, func(s *core.Settlement) bool {
			return s.Level == 10
		})},
	{Name: "Terra Nullius", Description: "Found 10 settlements.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			return p != nil && len(p.Settlements) >= 10
		}},
	{Name: "All Is Revealed", Description: "See all quads in a fog of war game.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			return p != nil && gs.Cfg.FogOfWar &&
				len(p.QuadsSeen) == gs.Board.W*gs.Board.H
		}},
	{Name: "Player's Choice", Description: "Have at least 3 imminent victories in one game.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			return p != nil && len(p.ImminentVictories) >= 3
		}},
	// The below will need to be changed if extra factions are ever introduced.
	{Name: "Free For All", Description: "Win a game with 14 players.",
		PostVictory: true, verify: func(gs *game.GameState, _ Statistics) bool {
			return len(gs.Players) == 14
		}},
	{Name: "Sleepwalker", Description: "Have 5 units deployed at nighttime.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			return p != nil && gs.IsNight() && len(p.Units) >= 5
		}},
	{Name: "Just Before Bed", Description: "Play for 1 hour total.",
		verify: playedHours(1)},
	{Name: "All Nighter", Description: "Play for 5 hours total.",
		verify: playedHours(5)},
	{Name: "Keep Coming Back", Description: "Play for 20 hours total.",
		verify: playedHours(20)},
	{Name: "One More Turn", Description: "Play 250 turns.",
		verify: func(_ *game.GameState, stats Statistics) bool {
			return stats.TurnsPlayed >= 250
		}},
	{Name: "What Time Is It?", Description: "Play 1000 turns.",
		verify: func(_ *game.GameState, stats Statistics) bool {
			return stats.TurnsPlayed >= 1000
		}},
	{Name: "The Collector", Description: "Achieve every type of victory.",
		verify: func(_ *game.GameState, stats Statistics) bool {
			return len(stats.Victories) == len(core.VictoryTypes)
		}},
	{Name: "Globalist", Description: "Use every faction.",
		verify: func(_ *game.GameState, stats Statistics) bool {
			return len(stats.FactionsUsed) == len(catalogue.Factions)
		}},
	{Name: "Midnight Feast", Description: "Achieve plentiful harvest in a settlement at nighttime.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			if !gs.IsNight() {
				return false
			}
			p := human(gs)
			if p == nil {
				return false
			}
			for _, s := range p.Settlements {
				if s.HarvestStatus == core.HarvestPlentiful {
					return true
				}
			}
			return false
		}},
	{Name: "It's Worth It", Description: "Build an improvement that decreases satisfaction.",
		verify: verifyWorthIt},
	{Name: "On The Brink", Description: "Found a settlement on the edge of the map.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			if p == nil {
				return false
			}
			for _, s := range p.Settlements {
				if s.X == 0 || s.X == gs.Board.W-1 || s.Y == 0 || s.Y == gs.Board.H-1 {
					return true
				}
			}
			return false
		}},
	{Name: "Speed Run", Description: "Win a 2 player game in 25 turns or less.",
		PostVictory: true, verify: func(gs *game.GameState, _ Statistics) bool {
			return len(gs.Players) == 2 && gs.Turn <= 25
		}},
	{Name: "Mighty Miner", Description: "Have 100 ore.",
		verify: hasCoreStock(func(r board.ResourceSet) int { return r.Ore })},
	{Name: "Lofty Lumberjack", Description: "Have 100 timber.",
		verify: hasCoreStock(func(r board.ResourceSet) int { return r.Timber })},
	{Name: "Molten Multitude", Description: "Have 100 magma.",
		verify: hasCoreStock(func(r board.ResourceSet) int { return r.Magma })},
	{Name: "The Third X", Description: "Have a settlement with 4 or more resources.",
		verify: verifyThirdX},
	{Name: "Luxuries Abound", Description: "Have one of each rare resource.",
		verify: func(gs *game.GameState, _ Statistics) bool {
			p := human(gs)
			if p == nil {
				return false
			}
			r := p.Resources
			return r.Aurora > 0 && r.Bloodstone > 0 && r.Obsidian > 0 &&
				r.Sunstone > 0 && r.Aquamarine > 0
		}},
}

// settlementsWith builds a predicate passing when at least n of the human
// player's settlements satisfy cond.
func settlementsWith(n int, cond func(*core.Settlement) bool) func(*game.GameState, Statistics) bool {
	return func(gs *game.GameState, _ Statistics) bool {
		p := human(gs)
		if p == nil {
			return false
		}
		count := 0
		for _, s := range p.Settlements {
			if cond(s) {
				count++
			}
		}
		return count >= n
	}
}

func hasCoreStock(pick func(board.ResourceSet) int) func(*game.GameState, Statistics) bool {
	return func(gs *game.GameState, _ Statistics) bool {
		p := human(gs)
		return p != nil && pick(p.Resources) >= 100
	}
}
