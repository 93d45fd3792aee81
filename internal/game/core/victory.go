package core

// VictoryType names the six mutually-achievable ways to win.
type VictoryType string

const (
	VictoryElimination VictoryType = "ELIMINATION"
	VictoryJubilation  VictoryType = "JUBILATION"
	VictoryGluttony    VictoryType = "GLUTTONY"
	VictoryAffluence   VictoryType = "AFFLUENCE"
	VictoryVigour      VictoryType = "VIGOUR"
	VictorySerendipity VictoryType = "SERENDIPITY"
)

// VictoryTypes lists every victory type.
var VictoryTypes = []VictoryType{
	VictoryElimination, VictoryJubilation, VictoryGluttony,
	VictoryAffluence, VictoryVigour, VictorySerendipity,
}

// Victory pairs a player with the condition they achieved, or are close to
// achieving in the "imminent" case.
type Victory struct {
	Player *Player
	Type   VictoryType
}
