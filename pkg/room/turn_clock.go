package room

import (
	"time"

	"chiptracker/pkg/playable"
)

// TurnClock acts for a player who holds the action for too long
type TurnClock struct {
	dealer  *Dealer
	timeout time.Duration
}

var _ playable.Tickable = (*TurnClock)(nil)

// NewTurnClock returns a clock for the dealer's table
func NewTurnClock(dealer *Dealer, timeout time.Duration) *TurnClock {
	return &TurnClock{
		dealer:  dealer,
		timeout: timeout,
	}
}

// Delay checks four times per timeout, but at least once a second
func (t *TurnClock) Delay() time.Duration {
	delay := t.timeout / 4
	if delay <= 0 || delay > time.Second {
		return time.Second
	}

	return delay
}

// Tick checks or folds for the current player once their time is up
func (t *TurnClock) Tick() (bool, error) {
	return t.dealer.expireTurn(t.timeout)
}
