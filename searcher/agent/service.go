package agent

import (
	"fmt"

	"punchout/experiments/metrics"
	"punchout/game"
	"punchout/meta"

	"github.com/rs/zerolog/log"
)

// Service turns raw state records into actions. A Service is owned by a
// single connection and is not safe for concurrent use.
type Service struct {
	agent  Agent
	frames int
}

func NewService(agent Agent) *Service {
	return &Service{agent: agent}
}

// Frames returns the number of records decoded so far.
func (s *Service) Frames() int {
	return s.frames
}

// Decide returns the action for one state record. Malformed records and
// states where nothing can be done are answered with NoAction.
func (s *Service) Decide(record string) game.Action {
	state, err := game.ParseRecord(record)
	if err != nil {
		log.Debug().Err(err).Msgf("ignoring record %q", record)
		return game.NoAction
	}
	s.frames++

	action := game.NoAction
	if !state.IsTerminal() {
		action = s.search(state)
	}

	if s.frames%meta.LogEvery == 0 {
		log.Info().Msgf("frame %d: action=%s health=%d opp_health=%d opp_timer=%d can_punch=%d hearts_lost=%d",
			s.frames, action, state.Health, state.OppHealth, state.OppTimer, state.CanPunch, state.HeartsLost)
	}
	return action
}

// Respond answers one record with a newline terminated action token.
func (s *Service) Respond(record string) string {
	return s.Decide(record).String() + "\n"
}

func (s *Service) search(state game.FightState) (action game.Action) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Err(fmt.Errorf("%v", r)).Msgf("search failed for %s", state.Record())
			action = game.NoAction
		}
	}()

	var metric metrics.SearchMetric
	action, metric = s.agent.FindAction(state)
	if metric.Episodes > 0 {
		log.Debug().Msgf("searched %d episodes in %s, tree size %d, %d full playouts",
			metric.Episodes, metric.Duration, metric.TreeSize, metric.FullPlayouts)
	}
	return action
}
