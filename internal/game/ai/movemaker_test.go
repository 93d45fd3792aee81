package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

func newTestMoveMaker(seed int64) *MoveMaker {
	rng := rand.New(rand.NewSource(seed))
	return New(rng, catalogue.NewNamer(rng))
}

func aiPlayer(faction catalogue.Faction, attack core.AttackPlaystyle, expansion core.ExpansionPlaystyle) *core.Player {
	return core.NewPlayer(string(faction), faction, &core.AIPlaystyle{Attack: attack, Expansion: expansion})
}

func settle(p *core.Player, b *board.Board, x, y int) *core.Settlement {
	s := core.NewSettlement("Natanas", x, y, []*board.Quad{b.QuadAt(x, y)}, p.Faction)
	p.Settlements = append(p.Settlements, s)
	return s
}

func TestChooseBlessing_AggressivePrefersUnits(t *testing.T) {
	m := newTestMoveMaker(1)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackAggressive, core.ExpansionNeutral)

	m.chooseBlessing(p, false)

	require.NotNil(t, p.OngoingBlessing)
	units := m.cat.UnlockableUnits(p.OngoingBlessing.Blessing)
	assert.NotEmpty(t, units, "an aggressive AI studies what arms it")
}

func TestChooseBlessing_DefensivePrefersStrength(t *testing.T) {
	m := newTestMoveMaker(1)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackDefensive, core.ExpansionNeutral)

	m.chooseBlessing(p, false)

	require.NotNil(t, p.OngoingBlessing)
	strength := false
	for _, imp := range m.cat.UnlockableImprovements(p.OngoingBlessing.Blessing) {
		if imp.Effect.Strength > 0 {
			strength = true
		}
	}
	assert.True(t, strength, "a defensive AI studies what fortifies it")
}

func TestChooseBlessing_NeutralTakesSomething(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	settle(p, b, 5, 5)

	m.chooseBlessing(p, false)

	require.NotNil(t, p.OngoingBlessing)
}

func TestChooseBlessing_SkipsCompleted(t *testing.T) {
	m := newTestMoveMaker(1)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	for _, b := range m.cat.AvailableBlessings(nil) {
		p.Blessings = append(p.Blessings, b)
	}
	done := len(p.Blessings)

	m.chooseBlessing(p, false)

	if p.OngoingBlessing != nil {
		assert.False(t, p.HasBlessing(p.OngoingBlessing.Blessing.Name))
	}
	assert.Len(t, p.Blessings, done)
}

func TestChooseConstruction_NoArmyBuildsFirstUnit(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	require.NotNil(t, s.CurrentWork.UnitPlan)
	assert.Equal(t, 25.0, s.CurrentWork.UnitPlan.Cost)
	assert.False(t, s.CurrentWork.UnitPlan.CanSettle)
}

func TestChooseConstruction_ExpansionistBuildsSettlerAtLevelThree(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionExpansionist)
	s := settle(p, b, 5, 5)
	s.Level = 3
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	require.NotNil(t, s.CurrentWork.UnitPlan)
	assert.True(t, s.CurrentWork.UnitPlan.CanSettle)
}

func TestChooseConstruction_HermitWaitsForLevelTen(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionHermit)
	s := settle(p, b, 5, 5)
	s.Level = 3
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	if s.CurrentWork.UnitPlan != nil {
		assert.False(t, s.CurrentWork.UnitPlan.CanSettle)
	}
}

func TestChooseConstruction_ConcentratedNeverBuildsSettlers(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.TheConcentrated, core.AttackNeutral, core.ExpansionExpansionist)
	s := settle(p, b, 5, 5)
	s.Level = 10
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	if s.CurrentWork.UnitPlan != nil {
		assert.False(t, s.CurrentWork.UnitPlan.CanSettle)
	}
}

func TestChooseConstruction_AllImprovementsBuiltStillQueuesWork(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))
	s.Improvements = append(s.Improvements, m.cat.Improvements...)

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork, "a settlement with units on offer never sits idle")
	assert.NotNil(t, s.CurrentWork.UnitPlan)
}

func TestChooseConstruction_DiscontentEmpireBuildsAnotherSettler(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionHermit)
	s := settle(p, b, 5, 5)
	s.Level = 2
	s.ProducedSettler = true
	s.Satisfaction = 20
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	require.NotNil(t, s.CurrentWork.UnitPlan)
	assert.True(t, s.CurrentWork.UnitPlan.CanSettle,
		"empire-wide misery calls for a new settlement even after the first settler")
}

func TestChooseConstruction_DiscontentBeatsAggressiveRecruitment(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackAggressive, core.ExpansionHermit)
	s := settle(p, b, 5, 5)
	s.Level = 5
	s.Satisfaction = 45
	p.Units = append(p.Units, core.NewUnit(m.cat.DefaultUnitPlan(), 6, 5, false))

	m.chooseConstruction(p, s, []*core.Player{p}, false)

	require.NotNil(t, s.CurrentWork)
	require.NotNil(t, s.CurrentWork.Improvement)
	morale := s.CurrentWork.Improvement.Effect.Satisfaction + s.CurrentWork.Improvement.Effect.Harvest
	assert.Greater(t, morale, 0.0, "morale comes before muscle")
}

func TestChooseConstruction_DeductsImprovementResources(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionHermit)
	s := settle(p, b, 5, 5)
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))
	s.Satisfaction = 90
	p.Resources.Ore = 10

	for i := 0; i < 20 && s.CurrentWork == nil; i++ {
		m.chooseConstruction(p, s, []*core.Player{p}, false)
		if s.CurrentWork != nil && s.CurrentWork.Improvement != nil &&
			!s.CurrentWork.Improvement.Required.IsEmpty() {
			assert.Less(t, p.Resources.Ore, 10, "requirements are paid at selection")
		}
	}
	require.NotNil(t, s.CurrentWork)
}

func TestFastForwardConstruction(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	imp, _ := m.cat.ImprovementByName("Melting Pot")
	s.CurrentWork = &core.Construction{Improvement: &imp, Consumed: imp.Cost - 5}
	p.Wealth = 100

	m.fastForwardConstruction(p, s)

	assert.Equal(t, 95.0, p.Wealth)
	assert.Equal(t, imp.Cost, s.CurrentWork.Consumed)
}

func TestFastForwardConstruction_TooDearToBuyOut(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	imp, _ := m.cat.ImprovementByName("Melting Pot")
	s.CurrentWork = &core.Construction{Improvement: &imp, Consumed: 0}
	p.Wealth = 50

	m.fastForwardConstruction(p, s)

	assert.Equal(t, 50.0, p.Wealth)
	assert.Equal(t, 0.0, s.CurrentWork.Consumed)
}

func TestDeployGarrison_SettlersAlwaysDeploy(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackDefensive, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	settler, _ := m.cat.UnitPlanByName("Settler")
	s.Garrison = append(s.Garrison, core.NewUnit(settler, 5, 5, true))

	m.deployGarrison(p, s, b)

	assert.Empty(t, s.Garrison)
	require.Len(t, p.Units, 1)
	assert.False(t, p.Units[0].Garrisoned)
}

func TestDeployGarrison_DefensiveHoldsCombatUnits(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackDefensive, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	s.Garrison = append(s.Garrison, core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.deployGarrison(p, s, b)

	assert.Len(t, s.Garrison, 1, "a defensive AI keeps its walls manned")
	assert.Empty(t, p.Units)
}

func TestDeployGarrison_BesiegedDeploysEverything(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackDefensive, core.ExpansionNeutral)
	s := settle(p, b, 5, 5)
	s.Besieged = true
	s.Garrison = append(s.Garrison,
		core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true),
		core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, true))

	m.deployGarrison(p, s, b)

	assert.Empty(t, s.Garrison)
	assert.Len(t, p.Units, 2)
}

func TestReconcileWealth_SellsLeastValuableUnit(t *testing.T) {
	m := newTestMoveMaker(1)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	p.Wealth = 0

	strong := m.cat.DefaultUnitPlan()
	strong.Cost = 500
	weak := m.cat.DefaultUnitPlan()
	weak.Cost = 500
	weak.Power = 1
	weak.MaxHealth = 1
	weakUnit := core.NewUnit(weak, 1, 1, false)
	p.Units = append(p.Units, core.NewUnit(strong, 0, 0, false), weakUnit)

	m.reconcileWealth(p, false)

	require.Len(t, p.Units, 1)
	assert.NotContains(t, p.Units, weakUnit)
	assert.Equal(t, 500.0, p.Wealth)
}

func TestMoveSettler_FoundsAwayFromHomeNearResources(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(40, 40)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	settle(p, b, 0, 0)

	b.QuadAt(31, 30).Resources.Ore = 1
	settler, _ := m.cat.UnitPlanByName("Settler")
	u := core.NewUnit(settler, 30, 30, false)
	p.Units = append(p.Units, u)

	m.moveSettler(p, u, []*core.Player{p}, b)

	require.Len(t, p.Settlements, 2)
	assert.Equal(t, 30, p.Settlements[1].X)
	assert.Equal(t, 30, p.Settlements[1].Y)
	assert.Empty(t, p.Units, "the settler becomes the settlement")
}

func TestCanSettleAt_RejectsSeaQuads(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(40, 40)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	settle(p, b, 0, 0)
	b.QuadAt(31, 30).Resources.Ore = 1

	b.QuadAt(30, 30).Biome = board.BiomeForest
	assert.True(t, m.canSettleAt(p, 30, 30, []*core.Player{p}, b))

	b.QuadAt(30, 30).Biome = board.BiomeSea
	assert.False(t, m.canSettleAt(p, 30, 30, []*core.Player{p}, b), "no settlements at sea")
}

func TestMoveSettler_TooCloseToHomeStaysAUnit(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(12, 12)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	settle(p, b, 5, 5)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			b.QuadAt(x, y).Resources.Ore = 1
		}
	}
	settler, _ := m.cat.UnitPlanByName("Settler")
	u := core.NewUnit(settler, 6, 6, false)
	p.Units = append(p.Units, u)

	m.moveSettler(p, u, []*core.Player{p}, b)

	assert.Len(t, p.Settlements, 1, "nowhere on this board is far enough from home")
	assert.Len(t, p.Units, 1)
}

func TestMoveHealer_HealsDamagedFriend(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)

	physician, ok := m.cat.UnitPlanByName("Physician")
	require.True(t, ok)
	healer := core.NewUnit(physician, 5, 5, false)
	hurt := core.NewUnit(m.cat.DefaultUnitPlan(), 6, 5, false)
	hurt.Health = 20
	p.Units = append(p.Units, healer, hurt)

	m.moveHealer(p, healer, b, game.Config{})

	assert.Equal(t, 60.0, hurt.Health)
	assert.True(t, healer.HasActed)
}

func TestMoveCombatUnit_NeutralNeedsAdvantage(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	enemy := aiPlayer(catalogue.Orthodox, core.AttackNeutral, core.ExpansionNeutral)
	settle(enemy, b, 19, 19)

	u := core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, false)
	p.Units = append(p.Units, u)
	rival := core.NewUnit(m.cat.DefaultUnitPlan(), 6, 5, false)
	enemy.Units = append(enemy.Units, rival)

	all := []*core.Player{p, enemy}
	m.moveCombatUnit(p, u, all, b, game.Config{})
	assert.Equal(t, 100.0, rival.Health, "an even fight is not worth picking")

	rival.Health = 40
	u.HasActed = false
	u.X, u.Y = 5, 5
	u.RemainingStamina = u.Plan.TotalStamina
	m.moveCombatUnit(p, u, all, b, game.Config{})
	assert.Less(t, rival.Health, 40.0, "a wounded rival invites the attack")
}

func TestMoveCombatUnit_AggressiveAlwaysFights(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackAggressive, core.ExpansionNeutral)
	enemy := aiPlayer(catalogue.Orthodox, core.AttackNeutral, core.ExpansionNeutral)
	settle(enemy, b, 19, 19)

	u := core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, false)
	p.Units = append(p.Units, u)
	rival := core.NewUnit(m.cat.DefaultUnitPlan(), 6, 5, false)
	enemy.Units = append(enemy.Units, rival)

	m.moveCombatUnit(p, u, []*core.Player{p, enemy}, b, game.Config{})

	assert.Less(t, rival.Health, 100.0)
}

func TestMoveCombatUnit_TakesUndefendedSettlement(t *testing.T) {
	m := newTestMoveMaker(1)
	b := board.New(20, 20)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackAggressive, core.ExpansionNeutral)
	settle(p, b, 1, 1)
	enemy := aiPlayer(catalogue.Orthodox, core.AttackNeutral, core.ExpansionNeutral)
	target := settle(enemy, b, 6, 5)
	target.Strength = 10

	u := core.NewUnit(m.cat.DefaultUnitPlan(), 5, 5, false)
	u.Health = 1000
	p.Units = append(p.Units, u)

	m.moveCombatUnit(p, u, []*core.Player{p, enemy}, b, game.Config{})

	assert.Empty(t, enemy.Settlements)
	assert.Len(t, p.Settlements, 2)
	assert.Contains(t, p.Settlements, target)
}

func TestMakeMove_FullTurnLeavesConsistentState(t *testing.T) {
	m := newTestMoveMaker(42)
	b := board.New(30, 30)
	p := aiPlayer(catalogue.Frontiersmen, core.AttackNeutral, core.ExpansionNeutral)
	s := settle(p, b, 10, 10)
	s.Quads[0].Wealth, s.Quads[0].Harvest, s.Quads[0].Zeal, s.Quads[0].Fortune = 5, 5, 5, 5
	p.Wealth = 100

	for i := 0; i < 5; i++ {
		m.MakeMove(p, []*core.Player{p}, b, game.Config{FogOfWar: true}, false)
		assert.GreaterOrEqual(t, p.Wealth, 0.0)
		assert.NotNil(t, p.OngoingBlessing)
		assert.NotNil(t, s.CurrentWork)
		for _, u := range p.Units {
			assert.True(t, b.InBounds(u.X, u.Y))
		}
	}
}
