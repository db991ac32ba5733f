package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestPolicy(seed uint64) *RolloutPolicy {
	return NewRolloutPolicy(NewStandardParams(), rand.New(rand.NewSource(seed)))
}

// sampleChoices collects the distinct actions the policy picks for s.
func sampleChoices(p *RolloutPolicy, s FightState, n int) map[Action]int {
	seen := map[Action]int{}
	for i := 0; i < n; i++ {
		seen[p.Choose(s)]++
	}
	return seen
}

func TestRolloutPolicyChoose(t *testing.T) {
	t.Run("standing count mashes jabs", func(t *testing.T) {
		s := activeState()
		s.HeartsLost = 1
		s.CanPunch = 0

		seen := sampleChoices(newTestPolicy(1), s, 200)

		require.Len(t, seen, 2)
		require.Contains(t, seen, PunchLeft)
		require.Contains(t, seen, PunchRight)
	})

	t.Run("critical stamina only defends", func(t *testing.T) {
		s := activeState()
		s.CanPunch = 5

		for a := range sampleChoices(newTestPolicy(2), s, 200) {
			require.True(t, a.IsDefense(), "Expected a defense, got %s", a)
		}
	})

	t.Run("low stamina favours defense but still punches", func(t *testing.T) {
		s := activeState()
		s.CanPunch = 9

		seen := sampleChoices(newTestPolicy(3), s, 3000)
		defenses, punches := 0, 0
		for a, n := range seen {
			if a.IsDefense() {
				defenses += n
			} else {
				require.True(t, a.IsPunch(), "Expected a punch, got %s", a)
				punches += n
			}
		}
		// Pool is 6 defenses vs 4 punches
		require.Greater(t, punches, 0)
		require.Greater(t, defenses, punches)
	})

	t.Run("healthy fighter goes for uppercuts", func(t *testing.T) {
		s := activeState()
		s.Health = 96

		for a := range sampleChoices(newTestPolicy(4), s, 200) {
			require.True(t, a.IsUppercut(), "Expected an uppercut, got %s", a)
		}
	})

	t.Run("healthy fighter falls back to jabs while uppercuts recover", func(t *testing.T) {
		s := activeState()
		s.UpperCooldown = 4

		for a := range sampleChoices(newTestPolicy(5), s, 200) {
			require.True(t, a.IsJab(), "Expected a jab, got %s", a)
		}
	})

	t.Run("healthy fighter with both punches recovering defends", func(t *testing.T) {
		s := activeState()
		s.UpperCooldown = 4
		s.JabCooldown = 4

		for a := range sampleChoices(newTestPolicy(6), s, 200) {
			require.True(t, a.IsDefense(), "Expected a defense, got %s", a)
		}
	})

	t.Run("hurt fighter mixes punches and defenses", func(t *testing.T) {
		s := activeState()
		s.Health = 70

		seen := sampleChoices(newTestPolicy(7), s, 3000)
		require.Len(t, seen, 7, "Every punch and defense should be picked eventually")
	})

	t.Run("inactive fight yields no action", func(t *testing.T) {
		s := activeState()
		s.InFight = 0

		require.Equal(t, NoAction, newTestPolicy(8).Choose(s))
	})
}
