package engine

import (
	"time"

	"punchout/experiments/metrics"
	"punchout/game"
	"punchout/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Local plays a whole bout offline. The forward simulator stands in for the
// emulator and the agent picks every action.
type Local struct {
	State     game.FightState
	Agent     agent.Agent
	simulator *game.Simulator
	maxSteps  int
}

func LocalEngine(start game.FightState, a agent.Agent, params game.Params, seed uint64) *Local {
	rng := rand.New(rand.NewSource(seed))
	return &Local{
		State:     start,
		Agent:     a,
		simulator: game.NewSimulator(params, rng),
		maxSteps:  MaxSteps,
	}
}

// WithMaxSteps caps the bout length.
func (e *Local) WithMaxSteps(steps int) *Local {
	if steps > 0 {
		e.maxSteps = steps
	}
	return e
}

// Winner returns the winner of the current state, empty while both stand.
func (e *Local) Winner() string {
	switch {
	case game.IsKnockout(e.State):
		return WinnerLittleMac
	case e.State.Health <= 0:
		return WinnerOpponent
	}
	return ""
}

// Run executes the bout loop until someone is knocked out.
func (e *Local) Run() (string, metrics.BoutMetric, []metrics.StepMetric) {
	bout := metrics.BoutMetric{StartTime: time.Now()}
	var steps []metrics.StepMetric

	log.Info().Msgf("bout starting from %s", e.State.Record())

	step := 1
	for e.Winner() == "" && step <= e.maxSteps {
		action, search := e.Agent.FindAction(e.State)
		if !game.IsLegal(e.State, action) {
			fallback := game.LegalActions(e.State)[0]
			log.Warn().Msgf("agent chose illegal action %s at step %d, playing %s", action, step, fallback)
			action = fallback
		}

		e.State, _ = e.simulator.Step(e.State, action)
		steps = append(steps, metrics.StepMetric{
			Step:         step,
			Action:       action.String(),
			Health:       e.State.Health,
			OppHealth:    e.State.OppHealth,
			SearchMetric: search,
		})
		step++
	}

	bout.Winner = e.Winner()
	bout.EndTime = time.Now()
	bout.Duration = bout.EndTime.Sub(bout.StartTime)
	bout.TotalSteps = len(steps)
	bout.FinalHealth = e.State.Health
	bout.FinalOppHealth = e.State.OppHealth

	if bout.Winner != "" {
		log.Info().Msgf("bout over after %d steps, winner: %s", bout.TotalSteps, bout.Winner)
	} else {
		log.Info().Msgf("bout stopped after %d steps without a knockout", bout.TotalSteps)
	}
	return bout.Winner, bout, steps
}
