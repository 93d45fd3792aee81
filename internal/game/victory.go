package game

import (
	"strings"

	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// CheckForVictory scans every player for the six victory conditions. It
// first flags eliminations by attrition, then looks for a trigger; all
// imminent conditions found before a trigger are batched through the sink.
// A player's imminentVictories set keeps repeat notifications out, so
// calling this twice without state changes notifies at most once.
func (gs *GameState) CheckForVictory() *core.Victory {
	gs.flagEliminations()

	active := make([]*core.Player, 0, len(gs.Players))
	holders := make([]*core.Player, 0, len(gs.Players))
	totalSetls := 0
	for _, p := range gs.Players {
		if !p.Eliminated {
			active = append(active, p)
		}
		if len(p.Settlements) > 0 {
			holders = append(holders, p)
		}
		totalSetls += len(p.Settlements)
	}

	var imminent []core.Victory
	for _, p := range active {
		if v := gs.scanPlayer(p, totalSetls, &imminent); v != nil {
			return v
		}
	}

	// Elimination: one player holds every remaining settlement, and no
	// landless human is still carrying a settler to refound with.
	if len(holders) == 1 && !gs.landlessHumanHoldsSettler() {
		return &core.Victory{Player: holders[0], Type: core.VictoryElimination}
	}

	if len(imminent) > 0 {
		gs.sink.CloseToVictory(imminent)
	}
	return nil
}

func (gs *GameState) landlessHumanHoldsSettler() bool {
	for _, p := range gs.Players {
		if p.IsHuman() && len(p.Settlements) == 0 && p.HasSettlerUnit() {
			return true
		}
	}
	return false
}

// flagEliminations marks players who have lost every settlement. A human
// who still holds a settler-capable unit survives; AI players get no such
// protection. The flag is set exactly once, and a human defeat is recorded.
func (gs *GameState) flagEliminations() {
	for _, p := range gs.Players {
		if p.Eliminated || len(p.Settlements) > 0 {
			continue
		}
		if p.IsHuman() && p.HasSettlerUnit() {
			continue
		}
		p.Eliminated = true
		gs.logger.Info().Str("player", p.Name).Msg("Player eliminated")
		gs.sink.Elimination(p)
		if p.IsHuman() && gs.recorder != nil {
			gs.sink.AchievementsUnlocked(gs.recorder.RecordGameEvent(gs, nil, true))
		}
	}
}

// scanPlayer evaluates one player against every victory condition,
// returning a trigger if one fires and appending any newly imminent
// conditions.
func (gs *GameState) scanPlayer(p *core.Player, totalSetls int, imminent *[]core.Victory) *core.Victory {
	// Jubilation: a generation of unbroken contentment.
	jubilant := 0
	for _, s := range p.Settlements {
		if s.Satisfaction >= 100 {
			jubilant++
		}
	}
	if jubilant >= 5 {
		p.JubilationCtr++
		if p.JubilationCtr >= 25 {
			return &core.Victory{Player: p, Type: core.VictoryJubilation}
		}
		gs.markImminent(p, core.VictoryJubilation, imminent)
	} else {
		p.JubilationCtr = 0
		gs.clearImminent(p, core.VictoryJubilation)
	}

	// Gluttony: ten settlements grown to the maximum level.
	maxed := 0
	for _, s := range p.Settlements {
		if s.Level >= 10 {
			maxed++
		}
	}
	switch {
	case maxed >= 10:
		return &core.Victory{Player: p, Type: core.VictoryGluttony}
	case maxed >= 8:
		gs.markImminent(p, core.VictoryGluttony, imminent)
	default:
		gs.clearImminent(p, core.VictoryGluttony)
	}

	// Affluence: monotonic, so the imminent flag never clears.
	if p.AccumulatedWealth >= 100000 {
		return &core.Victory{Player: p, Type: core.VictoryAffluence}
	}
	if p.AccumulatedWealth >= 75000 {
		gs.markImminent(p, core.VictoryAffluence, imminent)
	}

	// Vigour: the Holy Sanctum, built or building.
	constructing := false
	for _, s := range p.Settlements {
		if s.HasImprovement(catalogue.VictoryImprovementName) {
			return &core.Victory{Player: p, Type: core.VictoryVigour}
		}
		if w := s.CurrentWork; w != nil && w.Name() == catalogue.VictoryImprovementName {
			constructing = true
		}
	}
	if constructing {
		gs.markImminent(p, core.VictoryVigour, imminent)
	} else {
		gs.clearImminent(p, core.VictoryVigour)
	}

	// Serendipity: the three pieces of ardour. Monotonic as well.
	ardour := 0
	for _, b := range p.Blessings {
		if strings.HasPrefix(b.Name, catalogue.ArdourPrefix) {
			ardour++
		}
	}
	if ardour >= 3 {
		return &core.Victory{Player: p, Type: core.VictorySerendipity}
	}
	if ardour == 2 {
		gs.markImminent(p, core.VictorySerendipity, imminent)
	}

	// Elimination imminence: holding every settlement but one.
	if totalSetls > 1 && len(p.Settlements) == totalSetls-1 {
		gs.markImminent(p, core.VictoryElimination, imminent)
	} else {
		gs.clearImminent(p, core.VictoryElimination)
	}

	return nil
}

func (gs *GameState) markImminent(p *core.Player, vt core.VictoryType, imminent *[]core.Victory) {
	if _, seen := p.ImminentVictories[vt]; seen {
		return
	}
	p.ImminentVictories[vt] = struct{}{}
	*imminent = append(*imminent, core.Victory{Player: p, Type: vt})
}

func (gs *GameState) clearImminent(p *core.Player, vt core.VictoryType) {
	delete(p.ImminentVictories, vt)
}
