package searcher

import (
	"testing"

	"punchout/game"

	"github.com/stretchr/testify/require"
)

func TestNewMCTS(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMCTS()

		require.Equal(t, DefaultEpisodes, m.Episodes())
		require.Equal(t, MaxCutoff, m.Cutoff())
		require.Equal(t, DefaultExploration, m.Exploration())
	})

	t.Run("ignoring invalid options", func(t *testing.T) {
		m := NewMCTS(WithEpisodes(0), WithCutoff(-1), WithExploration(-2))

		require.Equal(t, DefaultEpisodes, m.Episodes())
		require.Equal(t, MaxCutoff, m.Cutoff())
		require.Equal(t, DefaultExploration, m.Exploration())
	})
}

func TestSelectThenExpand(t *testing.T) {
	t.Run("expanding the root first", func(t *testing.T) {
		m := NewMCTS(WithSeed(1))
		tr := newTree(fightState(), 8)
		untried := len(tr.get(tr.root()).untried)

		got := m.selectThenExpand(tr)

		require.Equal(t, tr.root(), tr.get(got).parent, "First expansion should add a root child")
		require.Len(t, tr.get(tr.root()).untried, untried-1)
		require.NotContains(t, tr.get(tr.root()).untried, tr.get(got).action,
			"Expanded action should leave the untried set")
	})

	t.Run("descending once the root is fully expanded", func(t *testing.T) {
		m := NewMCTS(WithSeed(2))
		tr := newTree(fightState(), 32)
		n := len(tr.get(tr.root()).untried)
		for i := 0; i < n; i++ {
			tr.backup(m.selectThenExpand(tr), 0)
		}
		require.Empty(t, tr.get(tr.root()).untried)
		require.Len(t, tr.get(tr.root()).children, n)

		got := m.selectThenExpand(tr)

		require.NotEqual(t, tr.root(), tr.get(got).parent, "Should expand below a root child")
		require.Equal(t, tr.root(), tr.get(tr.get(got).parent).parent)
	})
}

func TestRollout(t *testing.T) {
	t.Run("already knocked out opponent earns the full bonus", func(t *testing.T) {
		m := NewMCTS(WithSeed(3), WithCutoff(80))
		s := fightState()
		s.OppHealth = 0

		reward, knockout := m.rollout(s)

		require.True(t, knockout)
		require.Equal(t, game.KnockoutReward(game.NewStandardParams(), 1, 80), reward)
	})

	t.Run("stopping at the cutoff", func(t *testing.T) {
		m := NewMCTS(WithSeed(4), WithCutoff(1))
		s := fightState()

		_, knockout := m.rollout(s)

		require.False(t, knockout, "One step cannot floor a healthy opponent")
	})

	t.Run("weak opponent gets knocked out", func(t *testing.T) {
		m := NewMCTS(WithSeed(5), WithCutoff(80))
		s := fightState()
		s.OppHealth = 5

		reward, knockout := m.rollout(s)

		require.True(t, knockout)
		require.Greater(t, reward, 5000.0)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("backing up only the rollout return", func(t *testing.T) {
		m := NewMCTS(WithSeed(13), WithCutoff(80))
		s := fightState()
		s.OppHealth = 5
		s.HeartsLost = 1 // Only jabs, any of them floors the opponent
		tr := newTree(s, 2)

		m.simulate(tr)

		want := game.KnockoutReward(game.NewStandardParams(), 1, 80)
		require.Equal(t, 2, tr.size())
		require.Equal(t, want, tr.get(tr.root()).value,
			"The expanding jab's own reward should not be backed up")
		for _, child := range tr.get(tr.root()).children {
			require.Equal(t, want, tr.get(child).value)
			require.Equal(t, 1, tr.get(child).visits)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("visits add up to the budget", func(t *testing.T) {
		m := NewMCTS(WithSeed(6), WithEpisodes(50), WithCutoff(20), WithMetrics())

		action, metric := m.Search(fightState())

		require.True(t, game.IsLegal(fightState(), action), "Action %s should be legal", action)
		require.NotEqual(t, game.NoAction, action)
		require.Equal(t, 50, metric.Episodes)
		require.Equal(t, 50, metric.RootVisits, "Every simulation should back up through the root")
		require.Equal(t, 51, metric.TreeSize, "Every simulation should add exactly one node")
	})

	t.Run("small budget still returns a legal action", func(t *testing.T) {
		m := NewMCTS(WithSeed(7), WithEpisodes(3), WithCutoff(5))

		action, _ := m.Search(fightState())

		require.True(t, game.IsLegal(fightState(), action))
	})

	t.Run("standing count only throws jabs", func(t *testing.T) {
		m := NewMCTS(WithSeed(8), WithEpisodes(40), WithCutoff(10))
		s := fightState()
		s.HeartsLost = 1

		action, _ := m.Search(s)

		require.True(t, action.IsJab(), "Expected a jab, got %s", action)
	})

	t.Run("nearly beaten opponent still gets a fight action", func(t *testing.T) {
		m := NewMCTS(WithSeed(9), WithEpisodes(200))
		s := fightState()
		s.OppHealth = 10

		action, metric := m.Search(s)

		require.True(t, game.IsLegal(s, action))
		require.NotEqual(t, game.NoAction, action)
		require.Zero(t, metric.Episodes, "Metrics are off by default")
	})

	t.Run("root children never exceed the legal set", func(t *testing.T) {
		m := NewMCTS(WithSeed(10), WithEpisodes(100), WithCutoff(10))
		s := fightState()
		s.UpperCooldown = 3
		tr := newTree(s, 101)

		for i := 0; i < 100; i++ {
			m.simulate(tr)
		}

		for a := range tr.get(tr.root()).children {
			require.True(t, game.IsLegal(s, a), "Root child %s should be legal", a)
		}
	})
}

func TestChooseAction(t *testing.T) {
	t.Run("falling back to a legal action without children", func(t *testing.T) {
		m := NewMCTS(WithSeed(11))
		tr := newTree(fightState(), 1)

		got := m.chooseAction(tr, fightState())

		require.True(t, game.IsLegal(fightState(), got))
	})

	t.Run("falling back when the best child is illegal in the observed state", func(t *testing.T) {
		m := NewMCTS(WithSeed(12))
		tr := newTree(fightState(), 2)
		child := tr.add(tr.root(), game.UpperLeft, fightState())
		tr.get(child).visits = 10
		observed := fightState()
		observed.HeartsLost = 1

		got := m.chooseAction(tr, observed)

		require.True(t, got.IsJab(), "Should fall back to the observed legal set, got %s", got)
	})
}
