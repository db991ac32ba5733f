package game

import (
	"punchout/utils"

	"golang.org/x/exp/rand"
)

// RolloutPolicy is the cheap default policy used to play simulated fights to
// completion. It biases toward defense when stamina is low and toward
// uppercuts when Little Mac is healthy.
type RolloutPolicy struct {
	params Params
	rng    *rand.Rand
}

func NewRolloutPolicy(params Params, rng *rand.Rand) *RolloutPolicy {
	return &RolloutPolicy{params: params, rng: rng}
}

// Choose picks one legal action for s.
func (p *RolloutPolicy) Choose(s FightState) Action {
	legal := LegalActions(s)
	punches := utils.Filter(legal, Action.IsPunch)
	defenses := utils.Filter(legal, Action.IsDefense)

	// Getting up from a knockdown: mash jabs
	if s.StandingCount() {
		return p.pick(utils.Filter(legal, Action.IsJab))
	}

	if s.CanPunch <= p.params.CriticalStamina {
		return p.pick(defenses)
	}

	if s.CanPunch <= p.params.LowStamina {
		pool := make([]Action, 0, 2*len(defenses)+len(punches))
		pool = append(pool, defenses...)
		pool = append(pool, defenses...)
		pool = append(pool, punches...)
		return p.pick(pool)
	}

	if s.Health > p.params.HealthyThreshold {
		if uppercuts := utils.Filter(punches, Action.IsUppercut); len(uppercuts) > 0 {
			return p.pick(uppercuts)
		}
		if jabs := utils.Filter(punches, Action.IsJab); len(jabs) > 0 {
			return p.pick(jabs)
		}
	} else if len(punches)+len(defenses) > 0 {
		return p.pick(append(punches, defenses...))
	}

	return p.pick(defenses)
}

// pick draws uniformly from pool, NoAction when pool is empty.
func (p *RolloutPolicy) pick(pool []Action) Action {
	if len(pool) == 0 {
		return NoAction
	}
	return pool[p.rng.Intn(len(pool))]
}
