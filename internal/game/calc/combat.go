// Package calc holds the pure combat and economy calculations. Functions
// here keep no state of their own; their only side effects are the in-place
// health/strength mutations on the entities passed in.
package calc

import (
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// AttackData describes the outcome of a unit-on-unit attack.
type AttackData struct {
	Attacker          core.Combatant
	Defender          core.Combatant
	DamageToAttacker  float64
	DamageToDefender  float64
	PlayerAttack      bool
	AttackerWasKilled bool
	DefenderWasKilled bool
}

// Attack resolves an attack between two combatants. The attacker lands a 20%
// bonus on the standard quarter-power damage; both deltas apply
// simultaneously, with no initiative order. The attacker is marked as having
// acted.
func Attack(attacker, defender core.Combatant, ai bool) AttackData {
	attackerDmg := defender.AttackPower() * 0.25
	defenderDmg := attacker.AttackPower() * 0.25 * 1.2

	attacker.SetHealth(attacker.CurrentHealth() - attackerDmg)
	defender.SetHealth(defender.CurrentHealth() - defenderDmg)
	attacker.MarkActed()

	return AttackData{
		Attacker:          attacker,
		Defender:          defender,
		DamageToAttacker:  attackerDmg,
		DamageToDefender:  defenderDmg,
		PlayerAttack:      !ai,
		AttackerWasKilled: attacker.CurrentHealth() <= 0,
		DefenderWasKilled: defender.CurrentHealth() <= 0,
	}
}

// HealData describes the outcome of a heal action.
type HealData struct {
	Healer     *core.Unit
	Healed     *core.Unit
	Amount     float64
	PlayerHeal bool
}

// Heal restores health to a friendly unit, up to its plan's maximum. The
// healer's power is the heal amount. Healing a full-health unit is a no-op
// beyond marking the healer as acted.
func Heal(healer, healed *core.Unit, ai bool) HealData {
	before := healed.Health
	healed.Health = min(healed.Health+healer.Plan.Power, healed.Plan.MaxHealth)
	healer.MarkActed()
	return HealData{
		Healer:     healer,
		Healed:     healed,
		Amount:     healed.Health - before,
		PlayerHeal: !ai,
	}
}

// SettlementAttackData describes the outcome of a unit attacking a
// settlement directly.
type SettlementAttackData struct {
	Attacker          *core.Unit
	Settlement        *core.Settlement
	Owner             *core.Player
	DamageToAttacker  float64
	DamageToSetl      float64
	PlayerAttack      bool
	AttackerWasKilled bool
	SetlWasTaken      bool
}

// AttackSettlement resolves a direct assault on a settlement. The attacker
// absorbs half the settlement's strength as damage; the settlement loses a
// tenth of the attacker's power, floored at zero. A strength of zero means
// the settlement falls, but the ownership transfer is the caller's job.
func AttackSettlement(attacker *core.Unit, setl *core.Settlement, owner *core.Player, ai bool) SettlementAttackData {
	attackerDmg := setl.Strength / 2
	setlDmg := attacker.Plan.Power * 0.1

	attacker.Health -= attackerDmg
	setl.Strength = max(0, setl.Strength-setlDmg)
	attacker.MarkActed()

	return SettlementAttackData{
		Attacker:          attacker,
		Settlement:        setl,
		Owner:             owner,
		DamageToAttacker:  attackerDmg,
		DamageToSetl:      setlDmg,
		PlayerAttack:      !ai,
		AttackerWasKilled: attacker.Health <= 0,
		SetlWasTaken:      setl.Strength <= 0,
	}
}
