package calc

import (
	"math/rand"

	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// InvestigationResult names the outcome of a relic investigation.
type InvestigationResult string

const (
	ResultFortune InvestigationResult = "FORTUNE"
	ResultWealth  InvestigationResult = "WEALTH"
	ResultVision  InvestigationResult = "VISION"
	ResultHealth  InvestigationResult = "HEALTH"
	ResultPower   InvestigationResult = "POWER"
	ResultStamina InvestigationResult = "STAMINA"
	ResultUpkeep  InvestigationResult = "UPKEEP"
	ResultOre     InvestigationResult = "ORE"
	ResultTimber  InvestigationResult = "TIMBER"
	ResultMagma   InvestigationResult = "MAGMA"
	ResultNone    InvestigationResult = "NONE"
)

// InvestigateRelic rolls the outcome of a unit investigating a relic quad
// and applies it directly to the unit or player. The roll lands in [0, 140];
// anything at or above 100 is a dud. Scrutineers never fail: their roll is
// rescaled into [0, 100] so the bucket proportions hold. The relic is
// consumed regardless of outcome.
//
// The fortune bucket needs an ongoing blessing to pour into and the vision
// bucket only exists under fog of war; rolls landing in either otherwise pay
// out as wealth.
func InvestigateRelic(rng *rand.Rand, p *core.Player, u *core.Unit, quad *board.Quad, fogOfWar bool) InvestigationResult {
	quad.Relic = false

	roll := rng.Intn(141)
	if p.Faction == catalogue.Scrutineers {
		roll = roll * 100 / 140
	} else if roll >= 100 {
		return ResultNone
	}

	switch {
	case roll < 10 && p.OngoingBlessing != nil:
		p.OngoingBlessing.FortuneConsumed += p.OngoingBlessing.Blessing.Cost / 5
		return ResultFortune
	case roll < 20 || (roll < 30 && !fogOfWar):
		p.Wealth += 25
		p.AccumulatedWealth += 25
		return ResultWealth
	case roll < 30:
		p.SeeAround(quad.X, quad.Y, 10)
		return ResultVision
	case roll < 40:
		u.Plan.MaxHealth += 5
		u.Health += 5
		return ResultHealth
	case roll < 50:
		u.Plan.Power += 5
		return ResultPower
	case roll < 60:
		u.Plan.TotalStamina++
		u.RemainingStamina = u.Plan.TotalStamina
		return ResultStamina
	case roll < 70:
		u.Plan.Cost = 0
		return ResultUpkeep
	case roll < 80:
		p.Resources.Ore += 10
		return ResultOre
	case roll < 90:
		p.Resources.Timber += 10
		return ResultTimber
	}
	p.Resources.Magma += 10
	return ResultMagma
}
