package game

import "golang.org/x/exp/rand"

// Simulator is the forward model of the bout used by the search. It is
// stochastic: damage rolls and opponent timer resets come from rng.
type Simulator struct {
	params Params
	rng    *rand.Rand
}

func NewSimulator(params Params, rng *rand.Rand) *Simulator {
	return &Simulator{params: params, rng: rng}
}

// Step applies action to s for one simulation step and returns the successor
// state with the instantaneous reward. Step is total: any state and action is
// accepted, including terminal states.
func (sim *Simulator) Step(s FightState, action Action) (FightState, float64) {
	p := sim.params
	reward := 0.0

	// Punch resolution
	if action.IsPunch() && (s.Health > 0 || s.StandingCount()) {
		switch {
		case action.IsUppercut() && s.UpperCooldown == 0:
			s.UpperCooldown = p.UpperCooldown
			dmg := p.UpperDamage.Roll(sim.rng)
			s.OppHealth = max(0, s.OppHealth-dmg)
			reward += float64(dmg)*p.UpperRewardScale + p.UpperRewardBonus
		case action.IsJab() && s.JabCooldown == 0:
			s.JabCooldown = p.JabCooldown
			dmg := p.JabDamage.Roll(sim.rng)
			s.OppHealth = max(0, s.OppHealth-dmg)
			reward += float64(dmg)*p.JabRewardScale + p.JabRewardBonus
		}
	}

	// Cooldowns recover every step whatever was played
	s.JabCooldown = max(0, s.JabCooldown-1)
	s.UpperCooldown = max(0, s.UpperCooldown-1)

	// Opponent attack; dodging and blocking do not mitigate it in this model
	s.OppTimer = max(0, s.OppTimer-p.FramesPerStep)
	if s.OppTimer <= 0 {
		dmg := p.OppDamage.Roll(sim.rng)
		s.Health = max(0, s.Health-dmg)
		s.OppTimer = p.OppTimerReset.Roll(sim.rng)
		reward -= float64(dmg) * p.HitPenaltyScale
	}

	return s, reward
}
