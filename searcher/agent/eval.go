package agent

import (
	"punchout/experiments/metrics"
	"punchout/game"
	"punchout/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual play, backed by a fresh
// search for every decision.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindAction(state game.FightState) (game.Action, metrics.SearchMetric) {
	return a.mcts.Search(state)
}
