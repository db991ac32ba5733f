package game

// KnockoutReward is the terminal reward for flooring the opponent at the given
// rollout depth out of a rollout capped at cutoff steps. The depth term
// shrinks as depth grows so that faster knockouts score higher.
func KnockoutReward(params Params, depth, cutoff int) float64 {
	return params.WinBonus + float64(max(0, cutoff-depth))*params.WinDepthBonus
}

// IsKnockout reports whether the opponent has no health left.
func IsKnockout(s FightState) bool {
	return s.OppHealth <= 0
}
