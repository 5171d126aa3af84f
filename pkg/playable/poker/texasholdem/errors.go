package texasholdem

import (
	"errors"
	"fmt"
)

// RuleError is a rule violation caused by the player, safe to show to them
type RuleError string

func (r RuleError) Error() string {
	return string(r)
}

func newRuleError(format string, a ...interface{}) RuleError {
	return RuleError(fmt.Sprintf(format, a...))
}

// ErrHandNotActive is returned when an action is attempted outside of a hand
var ErrHandNotActive = errors.New("no hand is in progress")

// ErrHandInProgress is returned when pots are distributed before the hand ended
var ErrHandInProgress = errors.New("hand is still in progress")

// ErrPlayerIndexOutOfRange is returned for an index outside of the player list
var ErrPlayerIndexOutOfRange = errors.New("player index out of range")

// ErrPlayerCannotAct is returned when the player on the clock is not active
var ErrPlayerCannotAct = RuleError("current player cannot act")

// ErrCallRequired is returned when a player checks while facing a bet
var ErrCallRequired = RuleError("you cannot check, a call is required")

// ErrNothingToCall is returned when a player calls without facing a bet
var ErrNothingToCall = RuleError("there is nothing to call")
