package game

import (
	"fmt"
	"strconv"
	"strings"
)

// FightState is a snapshot of one instant of the bout. It is a plain value:
// transitions always return a modified copy, so states can be shared freely
// between search nodes.
type FightState struct {
	Health        int  // Little Mac's health
	OppHealth     int  // Opponent's health
	OppNextAction int  // Opponent's declared next attack
	OppTimer      int  // Frames until the opponent's attack lands
	CanPunch      int  // Stamina gate for punching
	InFight       int  // ActiveFightFlag while a bout is running
	OppKnocked    bool // Opponent is currently down
	HeartsLost    int  // Knockdowns suffered so far (standing count while > 0)

	// Search bookkeeping, not part of the wire record
	JabCooldown   int
	UpperCooldown int
}

// DecodeRecord builds a FightState from the eight integer fields of a record.
// Both healths are clamped at zero.
func DecodeRecord(fields []int) (FightState, error) {
	if len(fields) != RecordFields {
		return FightState{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	return FightState{
		Health:        max(0, fields[0]),
		OppHealth:     max(0, fields[1]),
		OppNextAction: fields[2],
		OppTimer:      fields[3],
		CanPunch:      fields[4],
		InFight:       fields[5],
		OppKnocked:    fields[6] != 0,
		HeartsLost:    fields[7],
	}, nil
}

// ParseRecord parses one comma separated state record, e.g.
// "96,100,5,50,10,255,0,0".
func ParseRecord(line string) (FightState, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != RecordFields {
		return FightState{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(parts))
	}

	fields := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return FightState{}, fmt.Errorf("%w: field %d %q", ErrMalformedField, i, part)
		}
		fields[i] = v
	}
	return DecodeRecord(fields)
}

// Active reports whether a bout is currently running.
func (s FightState) Active() bool {
	return s.InFight == ActiveFightFlag
}

// StandingCount reports whether Little Mac is getting up from a knockdown.
func (s FightState) StandingCount() bool {
	return s.HeartsLost > 0
}

// IsTerminal reports whether there is nothing left to plan for.
func (s FightState) IsTerminal() bool {
	return !s.Active() || s.OppKnocked || s.OppHealth <= 0
}

// Record renders the wire fields of the state.
func (s FightState) Record() string {
	knocked := 0
	if s.OppKnocked {
		knocked = 1
	}
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d",
		s.Health, s.OppHealth, s.OppNextAction, s.OppTimer,
		s.CanPunch, s.InFight, knocked, s.HeartsLost)
}
