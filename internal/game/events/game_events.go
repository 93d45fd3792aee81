package events

import (
	"time"

	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// Event type constants.
const (
	TypeConstructionsCompleted = "settlement.constructions_completed"
	TypeLevelUps               = "settlement.level_ups"
	TypeBlessingCompleted      = "player.blessing_completed"
	TypeVictoryAchieved        = "game.victory"
	TypePlayerEliminated       = "player.eliminated"
	TypeNightChanged           = "game.night_changed"
	TypeCloseToVictory         = "game.close_to_victory"
	TypeTurnWarning            = "game.turn_warning"
	TypeAchievementsUnlocked   = "player.achievements_unlocked"
)

func base(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

// ConstructionsCompletedEvent is published when a player's settlements
// finish their work during turn processing.
type ConstructionsCompletedEvent struct {
	BaseEvent
	Player      *core.Player
	Settlements []*core.Settlement
}

// NewConstructionsCompletedEvent creates a ConstructionsCompletedEvent.
func NewConstructionsCompletedEvent(gameID string, p *core.Player, setls []*core.Settlement) *ConstructionsCompletedEvent {
	return &ConstructionsCompletedEvent{
		BaseEvent:   base(TypeConstructionsCompleted, gameID),
		Player:      p,
		Settlements: setls,
	}
}

// LevelUpsEvent is published when settlements grow a level.
type LevelUpsEvent struct {
	BaseEvent
	Settlements []*core.Settlement
}

// NewLevelUpsEvent creates a LevelUpsEvent.
func NewLevelUpsEvent(gameID string, setls []*core.Settlement) *LevelUpsEvent {
	return &LevelUpsEvent{BaseEvent: base(TypeLevelUps, gameID), Settlements: setls}
}

// BlessingCompletedEvent is published when a player's ongoing blessing
// finishes.
type BlessingCompletedEvent struct {
	BaseEvent
	Player   *core.Player
	Blessing catalogue.Blessing
}

// NewBlessingCompletedEvent creates a BlessingCompletedEvent.
func NewBlessingCompletedEvent(gameID string, p *core.Player, b catalogue.Blessing) *BlessingCompletedEvent {
	return &BlessingCompletedEvent{BaseEvent: base(TypeBlessingCompleted, gameID), Player: p, Blessing: b}
}

// VictoryEvent is published when the game ends.
type VictoryEvent struct {
	BaseEvent
	Victory core.Victory
}

// NewVictoryEvent creates a VictoryEvent.
func NewVictoryEvent(gameID string, v core.Victory) *VictoryEvent {
	return &VictoryEvent{BaseEvent: base(TypeVictoryAchieved, gameID), Victory: v}
}

// EliminationEvent is published when a player loses their last settlement.
type EliminationEvent struct {
	BaseEvent
	Player *core.Player
}

// NewEliminationEvent creates an EliminationEvent.
func NewEliminationEvent(gameID string, p *core.Player) *EliminationEvent {
	return &EliminationEvent{BaseEvent: base(TypePlayerEliminated, gameID), Player: p}
}

// NightChangedEvent is published on every day-night transition.
type NightChangedEvent struct {
	BaseEvent
	IsNight bool
}

// NewNightChangedEvent creates a NightChangedEvent.
func NewNightChangedEvent(gameID string, isNight bool) *NightChangedEvent {
	return &NightChangedEvent{BaseEvent: base(TypeNightChanged, gameID), IsNight: isNight}
}

// CloseToVictoryEvent is published when players newly reach an imminent
// victory condition.
type CloseToVictoryEvent struct {
	BaseEvent
	Imminent []core.Victory
}

// NewCloseToVictoryEvent creates a CloseToVictoryEvent.
func NewCloseToVictoryEvent(gameID string, imminent []core.Victory) *CloseToVictoryEvent {
	return &CloseToVictoryEvent{BaseEvent: base(TypeCloseToVictory, gameID), Imminent: imminent}
}

// TurnWarningEvent is published when the warning gate blocks the end of a
// turn.
type TurnWarningEvent struct {
	BaseEvent
	IdleSettlements []*core.Settlement
	NoBlessing      bool
	NegativeWealth  bool
}

// NewTurnWarningEvent creates a TurnWarningEvent.
func NewTurnWarningEvent(gameID string, idle []*core.Settlement, noBlessing, negativeWealth bool) *TurnWarningEvent {
	return &TurnWarningEvent{
		BaseEvent:       base(TypeTurnWarning, gameID),
		IdleSettlements: idle,
		NoBlessing:      noBlessing,
		NegativeWealth:  negativeWealth,
	}
}

// AchievementsUnlockedEvent is published when recorded statistics unlock
// achievements.
type AchievementsUnlockedEvent struct {
	BaseEvent
	Names []string
}

// NewAchievementsUnlockedEvent creates an AchievementsUnlockedEvent.
func NewAchievementsUnlockedEvent(gameID string, names []string) *AchievementsUnlockedEvent {
	return &AchievementsUnlockedEvent{BaseEvent: base(TypeAchievementsUnlocked, gameID), Names: names}
}
