package game

import (
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// NotificationSink receives fire-and-forget notifications during turn
// processing. The engine never reads anything back from it; a slow or
// panicking sink is the adapter's problem, not the engine's.
type NotificationSink interface {
	ConstructionsCompleted(p *core.Player, setls []*core.Settlement)
	LevelUps(setls []*core.Settlement)
	BlessingCompleted(p *core.Player, b catalogue.Blessing)
	VictoryAchieved(v core.Victory)
	Elimination(p *core.Player)
	NightChanged(isNight bool)
	CloseToVictory(imminent []core.Victory)
	Warning(setls []*core.Settlement, noBlessing, negativeWealth bool)
	AchievementsUnlocked(names []string)
}

// NopSink discards every notification. It is the default sink.
type NopSink struct{}

func (NopSink) ConstructionsCompleted(*core.Player, []*core.Settlement) {}
func (NopSink) LevelUps([]*core.Settlement)                             {}
func (NopSink) BlessingCompleted(*core.Player, catalogue.Blessing)      {}
func (NopSink) VictoryAchieved(core.Victory)                            {}
func (NopSink) Elimination(*core.Player)                                {}
func (NopSink) NightChanged(bool)                                       {}
func (NopSink) CloseToVictory([]core.Victory)                           {}
func (NopSink) Warning([]*core.Settlement, bool, bool)                  {}
func (NopSink) AchievementsUnlocked([]string)                           {}

// EventRecorder persists game outcomes and reports which achievements the
// event unlocked. A nil recorder means no persistence.
type EventRecorder interface {
	RecordGameEvent(gs *GameState, victory *core.Victory, incrementDefeats bool) []string
}

// MoveMaker drives one AI player's full turn: blessing choice, construction
// choice per settlement, then a move per deployed unit.
type MoveMaker interface {
	MakeMove(p *core.Player, all []*core.Player, b *board.Board, cfg Config, isNight bool)
}
