package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

func plan(maxHealth, power float64, stamina int) catalogue.UnitPlan {
	return catalogue.UnitPlan{
		MaxHealth:    maxHealth,
		Power:        power,
		TotalStamina: stamina,
		Name:         "Test Unit",
		Cost:         25,
	}
}

func TestAttack(t *testing.T) {
	attacker := core.NewUnit(plan(100, 100, 3), 0, 0, false)
	defender := core.NewUnit(plan(100, 20, 3), 1, 0, false)

	data := Attack(attacker, defender, false)

	// Attacker deals power * 0.25 * 1.2; defender strikes back at a flat
	// quarter of power. Both land simultaneously.
	assert.Equal(t, 30.0, data.DamageToDefender)
	assert.Equal(t, 5.0, data.DamageToAttacker)
	assert.Equal(t, 70.0, defender.Health)
	assert.Equal(t, 95.0, attacker.Health)
	assert.True(t, attacker.HasActed)
	assert.False(t, defender.HasActed)
	assert.True(t, data.PlayerAttack)
	assert.False(t, data.AttackerWasKilled)
	assert.False(t, data.DefenderWasKilled)
}

func TestAttack_Kills(t *testing.T) {
	attacker := core.NewUnit(plan(100, 400, 3), 0, 0, false)
	defender := core.NewUnit(plan(25, 25, 3), 1, 0, false)

	data := Attack(attacker, defender, true)

	assert.True(t, data.DefenderWasKilled)
	assert.False(t, data.AttackerWasKilled)
	assert.False(t, data.PlayerAttack)
	assert.LessOrEqual(t, defender.Health, 0.0)
}

func TestAttack_HeathenAsCombatant(t *testing.T) {
	heathen := core.NewHeathen(plan(80, 80, 2), 0, 0)
	defender := core.NewUnit(plan(100, 40, 3), 1, 0, false)

	data := Attack(heathen, defender, true)

	assert.Equal(t, 80*0.25*1.2, data.DamageToDefender)
	assert.Equal(t, 10.0, data.DamageToAttacker)
	assert.Equal(t, 70.0, heathen.Health)
}

func TestHeal(t *testing.T) {
	healer := core.NewUnit(plan(75, 40, 5), 0, 0, false)
	healed := core.NewUnit(plan(100, 50, 3), 1, 0, false)
	healed.Health = 30

	data := Heal(healer, healed, false)

	assert.Equal(t, 70.0, healed.Health)
	assert.Equal(t, 40.0, data.Amount)
	assert.True(t, healer.HasActed)
}

func TestHeal_CapsAtMaxHealth(t *testing.T) {
	healer := core.NewUnit(plan(75, 40, 5), 0, 0, false)
	healed := core.NewUnit(plan(100, 50, 3), 1, 0, false)
	healed.Health = 90

	data := Heal(healer, healed, false)

	assert.Equal(t, 100.0, healed.Health)
	assert.Equal(t, 10.0, data.Amount)
}

func TestHeal_FullHealthIsNoOp(t *testing.T) {
	healer := core.NewUnit(plan(75, 40, 5), 0, 0, false)
	healed := core.NewUnit(plan(100, 50, 3), 1, 0, false)

	data := Heal(healer, healed, false)

	assert.Equal(t, 0.0, data.Amount)
	assert.True(t, healer.HasActed)
}

func TestAttackSettlement(t *testing.T) {
	owner := core.NewPlayer("Defender", catalogue.Frontiersmen, nil)
	setl := core.NewSettlement("Natanas", 5, 5, nil, owner.Faction)
	setl.Strength = 60
	attacker := core.NewUnit(plan(200, 100, 3), 4, 5, false)

	data := AttackSettlement(attacker, setl, owner, true)

	assert.Equal(t, 30.0, data.DamageToAttacker)
	assert.Equal(t, 10.0, data.DamageToSetl)
	assert.Equal(t, 170.0, attacker.Health)
	assert.Equal(t, 50.0, setl.Strength)
	assert.False(t, data.SetlWasTaken)
	assert.True(t, attacker.HasActed)
}

func TestAttackSettlement_TakenAtZeroStrength(t *testing.T) {
	owner := core.NewPlayer("Defender", catalogue.Frontiersmen, nil)
	setl := core.NewSettlement("Natanas", 5, 5, nil, owner.Faction)
	setl.Strength = 8
	attacker := core.NewUnit(plan(200, 100, 3), 4, 5, false)

	data := AttackSettlement(attacker, setl, owner, true)

	require.True(t, data.SetlWasTaken)
	assert.Equal(t, 0.0, setl.Strength, "strength floors at zero")
}

func TestInvariant_StrengthNeverNegative(t *testing.T) {
	owner := core.NewPlayer("Defender", catalogue.Frontiersmen, nil)
	setl := core.NewSettlement("Natanas", 5, 5, nil, owner.Faction)
	attacker := core.NewUnit(plan(5000, 5000, 3), 4, 5, false)

	for i := 0; i < 10; i++ {
		AttackSettlement(attacker, setl, owner, true)
		assert.GreaterOrEqual(t, setl.Strength, 0.0)
	}
}
