package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

func flatQuad(w, h, z, f float64) *board.Quad {
	return &board.Quad{Biome: board.BiomeForest, Wealth: w, Harvest: h, Zeal: z, Fortune: f}
}

func newSettlement(faction catalogue.Faction, quads ...*board.Quad) (*core.Player, *core.Settlement) {
	p := core.NewPlayer("Totals", faction, nil)
	s := core.NewSettlement("Natanas", 0, 0, quads, faction)
	p.Settlements = append(p.Settlements, s)
	return p, s
}

func TestSettlementTotals_Base(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))

	w, h, z, f := SettlementTotals(cat, p, s, false, false)

	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h)
	assert.Equal(t, 10.0, z)
	assert.Equal(t, 10.0, f)
}

func TestSettlementTotals_LevelScaling(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	s.Level = 3

	w, h, z, f := SettlementTotals(cat, p, s, false, false)

	assert.Equal(t, 15.0, w)
	assert.Equal(t, 15.0, h)
	assert.Equal(t, 15.0, z)
	assert.Equal(t, 15.0, f)
}

func TestSettlementTotals_ImprovementEffects(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	s.Improvements = append(s.Improvements, catalogue.Improvement{
		Name:   "Scaffold",
		Effect: catalogue.Effect{Wealth: 5, Zeal: -2},
	})

	w, _, z, _ := SettlementTotals(cat, p, s, false, false)

	assert.Equal(t, 15.0, w)
	assert.Equal(t, 8.0, z)
}

func TestSettlementTotals_ProjectSiphon(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	s.CurrentWork = &core.Construction{
		Project: &catalogue.Project{Name: "Inflation by Design", Type: catalogue.ProjectEconomical},
	}

	w, h, z, _ := SettlementTotals(cat, p, s, false, false)

	assert.Equal(t, 12.5, w, "a quarter of zeal flows into the project category")
	assert.Equal(t, 10.0, h)
	assert.Equal(t, 10.0, z, "zeal itself is untouched")
}

func TestSettlementTotals_FactionModifiers(t *testing.T) {
	cat := catalogue.Default()

	p, s := newSettlement(catalogue.Agriculturists, flatQuad(10, 10, 10, 10))
	_, h, _, _ := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 12.5, h)

	p, s = newSettlement(catalogue.Orthodox, flatQuad(10, 10, 10, 10))
	w, _, _, f := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 7.5, w)
	assert.Equal(t, 12.5, f)
}

func TestSettlementTotals_Statuses(t *testing.T) {
	cat := catalogue.Default()

	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	s.EconomicStatus = core.EconomyRecession
	w, _, _, _ := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 0.0, w, "recession kills all wealth")

	s.EconomicStatus = core.EconomyBoom
	w, _, _, _ = SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 15.0, w)

	s.EconomicStatus = core.EconomyStandard
	s.HarvestStatus = core.HarvestPoor
	_, h, _, _ := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 0.0, h)

	s.HarvestStatus = core.HarvestPlentiful
	_, h, _, _ = SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 15.0, h)

	s.HarvestStatus = core.HarvestStandard
	s.Besieged = true
	_, h, _, _ = SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 0.0, h, "a siege starves the settlement")
}

func TestSettlementTotals_PoorHarvestSparesAgriculturists(t *testing.T) {
	// The harvest modifier logic does not special-case factions here; the
	// Agriculturists' immunity lives in the status assignment, so a poor
	// status still zeroes if one has somehow been set.
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Agriculturists, flatQuad(10, 10, 10, 10))
	s.HarvestStatus = core.HarvestPoor
	_, h, _, _ := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 0.0, h)
}

func TestSettlementTotals_RareResources(t *testing.T) {
	cat := catalogue.Default()
	q := flatQuad(10, 10, 10, 10)
	q.Resources.Aurora = 1
	q.Resources.Aquamarine = 2
	p, s := newSettlement(catalogue.Frontiersmen, q)

	w, _, _, f := SettlementTotals(cat, p, s, false, false)

	assert.Equal(t, 15.0, w)
	assert.Equal(t, 20.0, f)
}

func TestSettlementTotals_Night(t *testing.T) {
	cat := catalogue.Default()

	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	_, h, _, f := SettlementTotals(cat, p, s, true, false)
	assert.Equal(t, 5.0, h, "harvest halves at night")
	assert.InDelta(t, 11.0, f, 1e-9, "fortune rises at night")

	// Nocturne settlements do not lose harvest at night.
	p, s = newSettlement(catalogue.Nocturne, flatQuad(10, 10, 10, 10))
	_, h, _, _ = SettlementTotals(cat, p, s, true, false)
	assert.Equal(t, 10.0, h)

	// Neither do those with a sunstone deposit.
	q := flatQuad(10, 10, 10, 10)
	q.Resources.Sunstone = 1
	p, s = newSettlement(catalogue.Frontiersmen, q)
	_, h, _, _ = SettlementTotals(cat, p, s, true, false)
	assert.Equal(t, 10.0, h)
}

func TestSettlementTotals_Floors(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(0, 0, 0, 0))

	w, h, z, f := SettlementTotals(cat, p, s, false, false)
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 1.0, z, "zeal shows a floor of 1")
	assert.Equal(t, 1.0, f, "fortune shows a floor of 1")

	_, _, z, f = SettlementTotals(cat, p, s, false, true)
	assert.Equal(t, 0.0, z, "strict mode reports the true zero")
	assert.Equal(t, 0.0, f)
}

func TestProjectedWealth(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))

	deployed := core.NewUnit(plan(100, 100, 3), 3, 3, false)
	deployed.Plan.Cost = 50
	garrisoned := core.NewUnit(plan(100, 100, 3), 0, 0, true)
	garrisoned.Plan.Cost = 300
	p.Units = append(p.Units, deployed, garrisoned)
	s.Garrison = append(s.Garrison, garrisoned)

	// Only the deployed unit's upkeep counts: 10 - 50/10 = 5.
	assert.Equal(t, 5.0, ProjectedWealth(cat, p, false))
}

func TestCompleteConstruction_Improvement(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	imp := catalogue.Improvement{
		Name:   "Walls",
		Effect: catalogue.Effect{Strength: 25, Satisfaction: 40},
	}
	s.CurrentWork = &core.Construction{Improvement: &imp}

	CompleteConstruction(cat, s, p)

	require.Nil(t, s.CurrentWork)
	assert.True(t, s.HasImprovement("Walls"))
	assert.Equal(t, 125.0, s.Strength)
	assert.Equal(t, 125.0, s.MaxStrength)
	assert.Equal(t, 100.0, s.Satisfaction, "satisfaction clamps at 100")
}

func TestCompleteConstruction_ConcentratedStrength(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.TheConcentrated, flatQuad(10, 10, 10, 10))
	imp := catalogue.Improvement{
		Name:   "Walls",
		Effect: catalogue.Effect{Strength: 25},
	}
	s.CurrentWork = &core.Construction{Improvement: &imp}

	CompleteConstruction(cat, s, p)

	// Base 200 from the founding doubling, plus a doubled gain.
	assert.Equal(t, 250.0, s.Strength)
}

func TestCompleteConstruction_Unit(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	up := plan(100, 100, 3)
	s.CurrentWork = &core.Construction{UnitPlan: &up}

	CompleteConstruction(cat, s, p)

	require.Len(t, s.Garrison, 1)
	u := s.Garrison[0]
	assert.True(t, u.Garrisoned)
	assert.Equal(t, s.X, u.X)
	assert.Equal(t, s.Y, u.Y)
	assert.Equal(t, 100.0, u.Health)
}

func TestCompleteConstruction_BloodstoneBoost(t *testing.T) {
	cat := catalogue.Default()
	q := flatQuad(10, 10, 10, 10)
	q.Resources.Bloodstone = 1
	p, s := newSettlement(catalogue.Frontiersmen, q)
	up := plan(100, 100, 3)
	s.CurrentWork = &core.Construction{UnitPlan: &up}

	CompleteConstruction(cat, s, p)

	require.Len(t, s.Garrison, 1)
	u := s.Garrison[0]
	assert.Equal(t, 150.0, u.Plan.Power)
	assert.Equal(t, 150.0, u.Plan.MaxHealth)
	assert.Equal(t, 150.0, u.Health)
	assert.Equal(t, 100.0, up.Power, "the catalogue plan is untouched")
}

func TestCompleteConstruction_Settler(t *testing.T) {
	cat := catalogue.Default()
	p, s := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	s.Level = 3
	up := plan(100, 100, 5)
	up.CanSettle = true
	s.CurrentWork = &core.Construction{UnitPlan: &up}

	CompleteConstruction(cat, s, p)

	assert.Equal(t, 2, s.Level, "producing a settler costs a level")
	assert.Equal(t, 25.0, s.HarvestReserves)
	assert.True(t, s.ProducedSettler)
}

func TestPlayerTotals_SumsAcrossSettlements(t *testing.T) {
	cat := catalogue.Default()
	p, _ := newSettlement(catalogue.Frontiersmen, flatQuad(10, 10, 10, 10))
	p.Settlements = append(p.Settlements,
		core.NewSettlement("Vantos", 9, 9, []*board.Quad{flatQuad(5, 5, 5, 5)}, p.Faction))

	w, h, z, f := PlayerTotals(cat, p, false)

	assert.Equal(t, 15.0, w)
	assert.Equal(t, 15.0, h)
	assert.Equal(t, 15.0, z)
	assert.Equal(t, 15.0, f)
}
