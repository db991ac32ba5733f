package game

import "golang.org/x/exp/rand"

// Range is an inclusive integer interval sampled uniformly.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Roll draws a uniform value in [Min, Max]. A degenerate range returns Min.
func (r Range) Roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Params holds every tunable of the fight model and the rollout policy.
// Values are copied into the simulator and policy at construction and never
// modified afterwards.
type Params struct {
	FramesPerStep int `yaml:"frames_per_step"`

	JabCooldown   int   `yaml:"jab_cooldown"`
	UpperCooldown int   `yaml:"upper_cooldown"`
	JabDamage     Range `yaml:"jab_damage"`
	UpperDamage   Range `yaml:"upper_damage"`
	OppDamage     Range `yaml:"opp_damage"`
	OppTimerReset Range `yaml:"opp_timer_reset"`

	// Reward shaping: damage*Scale + Bonus per landed punch
	JabRewardScale   float64 `yaml:"jab_reward_scale"`
	JabRewardBonus   float64 `yaml:"jab_reward_bonus"`
	UpperRewardScale float64 `yaml:"upper_reward_scale"`
	UpperRewardBonus float64 `yaml:"upper_reward_bonus"`
	HitPenaltyScale  float64 `yaml:"hit_penalty_scale"`

	// Terminal reward for a knockout found during a rollout
	WinBonus      float64 `yaml:"win_bonus"`
	WinDepthBonus float64 `yaml:"win_depth_bonus"`

	// Rollout policy thresholds
	CriticalStamina  int `yaml:"critical_stamina"`
	LowStamina       int `yaml:"low_stamina"`
	HealthyThreshold int `yaml:"healthy_threshold"`
}

// NewStandardParams returns the hand-tuned model used against the NES game.
func NewStandardParams() Params {
	return Params{
		FramesPerStep: 9,

		JabCooldown:   14,
		UpperCooldown: 20,
		JabDamage:     Range{Min: 10, Max: 18},
		UpperDamage:   Range{Min: 20, Max: 34},
		OppDamage:     Range{Min: 15, Max: 28},
		OppTimerReset: Range{Min: 35, Max: 65},

		JabRewardScale:   4,
		JabRewardBonus:   10,
		UpperRewardScale: 8,
		UpperRewardBonus: 80,
		HitPenaltyScale:  0.5,

		WinBonus:      5000,
		WinDepthBonus: 30,

		CriticalStamina:  5,
		LowStamina:       9,
		HealthyThreshold: 70,
	}
}
