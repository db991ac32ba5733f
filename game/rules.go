package game

import "punchout/utils"

// LegalActions returns the ordered, duplicate free set of actions available in s.
// The result is never empty: NoAction is returned when nothing else qualifies.
func LegalActions(s FightState) []Action {
	if !s.Active() || s.OppKnocked {
		return []Action{NoAction}
	}

	// Standing count: only jabs, cooldowns are ignored
	if s.StandingCount() {
		return []Action{PunchLeft, PunchRight}
	}

	actions := make([]Action, 0, len(Punches)+len(Defenses))
	if s.JabCooldown == 0 {
		actions = append(actions, Jabs...)
	}
	if s.UpperCooldown == 0 {
		actions = append(actions, Uppercuts...)
	}
	actions = append(actions, Defenses...)

	if len(actions) == 0 {
		return []Action{NoAction}
	}
	return actions
}

// IsLegal reports whether a is in LegalActions(s).
func IsLegal(s FightState, a Action) bool {
	return utils.FindIndex(LegalActions(s), a) >= 0
}
