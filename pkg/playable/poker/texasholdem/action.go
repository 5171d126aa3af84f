package texasholdem

import (
	"time"

	"chiptracker/pkg/playable/poker/action"
)

// Clock returns the time stamped on the action history
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}

	return c()
}

// Resolution is a validated action
type Resolution struct {
	// Amount is how many chips the action moves from the player's stack
	Amount int
	// IsShortAllIn is true when an all-in raise is less than a full raise
	IsShortAllIn bool
}

// ValidateAction checks an action for the player whose turn it is
// For a raise, amount is the player's new total bet for the round.
func ValidateAction(s TableState, act action.Action, amount int) (Resolution, error) {
	p, ok := s.CurrentPlayer()
	if !ok {
		return Resolution{}, ErrPlayerIndexOutOfRange
	}

	switch act {
	case action.Fold:
		return Resolution{}, nil
	case action.Check:
		if p.CurrentBet != s.CurrentMaxBet {
			return Resolution{}, ErrCallRequired
		}

		return Resolution{}, nil
	case action.Call:
		owed := s.CurrentMaxBet - p.CurrentBet
		if owed <= 0 {
			return Resolution{}, ErrNothingToCall
		}

		if owed > p.Chips {
			owed = p.Chips
		}

		return Resolution{Amount: owed}, nil
	case action.Raise:
		minRaiseTo := s.CurrentMaxBet + s.LastRaiseSize
		allInTo := p.CurrentBet + p.Chips

		if amount < minRaiseTo && amount < allInTo {
			return Resolution{}, newRuleError("your raise to %d must be to at least %d", amount, minRaiseTo)
		}

		if amount >= allInTo {
			return Resolution{
				Amount:       p.Chips,
				IsShortAllIn: allInTo < minRaiseTo,
			}, nil
		}

		return Resolution{Amount: amount - p.CurrentBet}, nil
	}

	return Resolution{}, newRuleError("%s is not a valid action", act)
}

// ApplyAction applies a validated action for the player at playerIndex
// Pots are rebuilt and the turn passes to the next active player, or stays with the
// acting player when nobody else can act.
func ApplyAction(s TableState, playerIndex int, act action.Action, res Resolution) TableState {
	next := s.clone()
	if !next.validIndex(playerIndex) {
		return next
	}

	p := &next.Players[playerIndex]
	p.ActedThisRound = true

	switch act {
	case action.Fold:
		p.Status = StatusFolded
	case action.Call, action.Raise:
		next.addToMainPot(p.commit(res.Amount))
	}

	if act == action.Raise {
		prevMax := next.CurrentMaxBet
		if p.CurrentBet > prevMax {
			next.CurrentMaxBet = p.CurrentBet
		}

		// only a full raise reopens the betting
		if increment := p.CurrentBet - prevMax; increment >= next.LastRaiseSize {
			next.LastRaiseSize = increment
			for i := range next.Players {
				if i != playerIndex && next.Players[i].Status == StatusActive {
					next.Players[i].ActedThisRound = false
				}
			}
		}
	}

	next.rebuildPots()

	next.CurrentPlayerIndex = playerIndex
	if index, ok := NextActive(next, playerIndex); ok {
		next.CurrentPlayerIndex = index
	}

	return next
}

// ProcessAction validates and applies an action for the player whose turn it is
// On error the input state is returned untouched along with the reason.
func ProcessAction(s TableState, act action.Action, amount int, clock Clock) (TableState, error) {
	if !s.IsHandActive {
		return s, ErrHandNotActive
	}

	p, ok := s.CurrentPlayer()
	if !ok {
		return s, ErrPlayerIndexOutOfRange
	}

	if p.Status != StatusActive {
		return s, ErrPlayerCannotAct
	}

	res, err := ValidateAction(s, act, amount)
	if err != nil {
		return s, err
	}

	next := ApplyAction(s, s.CurrentPlayerIndex, act, res)
	next.ActionHistory = append(next.ActionHistory, ActionRecord{
		ID:        int64(len(next.ActionHistory) + 1),
		Type:      act,
		PlayerID:  p.ID,
		Amount:    res.Amount,
		Timestamp: clock.now(),
	})

	return CheckAndAdvancePhase(next), nil
}
