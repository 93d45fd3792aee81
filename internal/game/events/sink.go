package events

import (
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// BusSink adapts the engine's notification calls onto the event bus. Each
// fire-and-forget call becomes one typed event.
type BusSink struct {
	bus    Publisher
	gameID string
}

// NewBusSink creates a sink publishing to the given bus under a game ID.
func NewBusSink(bus Publisher, gameID string) *BusSink {
	return &BusSink{bus: bus, gameID: gameID}
}

func (s *BusSink) ConstructionsCompleted(p *core.Player, setls []*core.Settlement) {
	s.bus.Publish(NewConstructionsCompletedEvent(s.gameID, p, setls))
}

func (s *BusSink) LevelUps(setls []*core.Settlement) {
	s.bus.Publish(NewLevelUpsEvent(s.gameID, setls))
}

func (s *BusSink) BlessingCompleted(p *core.Player, b catalogue.Blessing) {
	s.bus.Publish(NewBlessingCompletedEvent(s.gameID, p, b))
}

func (s *BusSink) VictoryAchieved(v core.Victory) {
	s.bus.Publish(NewVictoryEvent(s.gameID, v))
}

func (s *BusSink) Elimination(p *core.Player) {
	s.bus.Publish(NewEliminationEvent(s.gameID, p))
}

func (s *BusSink) NightChanged(isNight bool) {
	s.bus.Publish(NewNightChangedEvent(s.gameID, isNight))
}

func (s *BusSink) CloseToVictory(imminent []core.Victory) {
	s.bus.Publish(NewCloseToVictoryEvent(s.gameID, imminent))
}

func (s *BusSink) Warning(setls []*core.Settlement, noBlessing, negativeWealth bool) {
	s.bus.Publish(NewTurnWarningEvent(s.gameID, setls, noBlessing, negativeWealth))
}

func (s *BusSink) AchievementsUnlocked(names []string) {
	if len(names) == 0 {
		return
	}
	s.bus.Publish(NewAchievementsUnlockedEvent(s.gameID, names))
}
