package searcher

import (
	"time"

	"punchout/experiments/metrics"
	"punchout/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	episodes    int
	cutoff      int
	exploration float64
	params      game.Params
	seed        uint64
	metrics     metrics.Collector

	rng       *rand.Rand
	simulator *game.Simulator
	rollouts  *game.RolloutPolicy
	ucb       ucb
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithParams(params game.Params) Option {
	return func(m *MCTS) {
		m.params = params
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		if seed != 0 {
			m.seed = seed
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		episodes:    DefaultEpisodes,
		cutoff:      MaxCutoff,
		exploration: DefaultExploration,
		params:      game.NewStandardParams(),
		seed:        uint64(time.Now().UnixNano()),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	// The simulator and the rollout policy share one source; a search is
	// single threaded so draws never interleave.
	m.rng = rand.New(rand.NewSource(m.seed))
	m.simulator = game.NewSimulator(m.params, m.rng)
	m.rollouts = game.NewRolloutPolicy(m.params, m.rng)
	m.ucb = newUCB(m.exploration)
	return m
}

func (m *MCTS) Episodes() int {
	return m.episodes
}

func (m *MCTS) Cutoff() int {
	return m.cutoff
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Search builds a fresh tree rooted at state, runs the full simulation budget
// and returns the action to play with the search metrics.
func (m *MCTS) Search(state game.FightState) (game.Action, metrics.SearchMetric) {
	t := newTree(state, m.episodes+1)

	m.metrics.Start(m.cutoff, m.exploration)
	for i := 0; i < m.episodes; i++ {
		m.simulate(t)
		m.metrics.AddEpisode()
	}
	m.metrics.SetTree(t.size(), t.get(t.root()).visits)

	action := m.chooseAction(t, state)
	return action, m.metrics.Complete()
}

func (m *MCTS) simulate(t *tree) {
	leaf := m.selectThenExpand(t)
	reward, knockout := m.rollout(t.get(leaf).state)
	if knockout {
		m.metrics.AddFullPlayout()
	}
	t.backup(leaf, reward)
}

// selectThenExpand descends by UCB1 through fully expanded nodes, then adds
// one child for a random untried action if any remain. Only the rollout from
// the new node is backed up, the reward of the expanding step is dropped.
func (m *MCTS) selectThenExpand(t *tree) nodeID {
	id := t.root()
	for len(t.get(id).untried) == 0 {
		child, ok := t.bestChild(id, m.ucb)
		if !ok { // No actions at all
			return id
		}
		id = child
	}

	action := t.takeUntried(id, m.rng.Intn(len(t.get(id).untried)))
	next, _ := m.simulator.Step(t.get(id).state, action)
	return t.add(id, action, next)
}

// rollout plays the default policy from state until a knockout or the cutoff
// and returns the summed reward.
func (m *MCTS) rollout(state game.FightState) (float64, bool) {
	total := 0.0
	for depth := 1; depth <= m.cutoff; depth++ {
		if game.IsKnockout(state) {
			return total + game.KnockoutReward(m.params, depth, m.cutoff), true
		}
		var reward float64
		state, reward = m.simulator.Step(state, m.rollouts.Choose(state))
		total += reward
	}
	return total, false
}

// chooseAction returns the most visited root action, falling back to a random
// action that is legal in the observed state.
func (m *MCTS) chooseAction(t *tree, observed game.FightState) game.Action {
	legal := game.LegalActions(observed)
	if len(legal) == 0 {
		return game.NoAction
	}

	best, ok := t.mostVisitedChild(t.root())
	if ok {
		action := t.get(best).action
		if game.IsLegal(observed, action) {
			return action
		}
		log.Warn().Msgf("most visited action %s is not legal in the observed state %s", action, observed.Record())
	}
	return legal[m.rng.Intn(len(legal))]
}
