package game

import "errors"

// ActiveFightFlag is the in_fight value the emulator writes while a bout is running.
const ActiveFightFlag = 255

// RecordFields is the number of comma separated integers in one state record.
const RecordFields = 8

var (
	ErrFieldCount     = errors.New("state record must have 8 fields")
	ErrMalformedField = errors.New("state record field is not an integer")
	ErrUnknownAction  = errors.New("unknown action")
)
