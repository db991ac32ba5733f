package agent

import (
	"punchout/experiments/metrics"
	"punchout/game"
)

type Agent interface {
	// FindAction returns the action to play and performance metrics (if collected) from the search
	FindAction(state game.FightState) (game.Action, metrics.SearchMetric)
}
