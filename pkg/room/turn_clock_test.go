package room

import (
	"testing"
	"time"

	"chiptracker/pkg/playable/poker/action"
	"chiptracker/pkg/playable/poker/texasholdem"
	"github.com/stretchr/testify/assert"
)

func TestTurnClock_Delay(t *testing.T) {
	assert.Equal(t, time.Second, NewTurnClock(nil, 0).Delay())
	assert.Equal(t, time.Second, NewTurnClock(nil, time.Minute).Delay())
	assert.Equal(t, time.Millisecond*500, NewTurnClock(nil, time.Second*2).Delay())
}

func TestTurnClock_Tick(t *testing.T) {
	a := assert.New(t)

	clock := newFakeClock()
	d, hook := setupDealer(t, 3, Options{Clock: clock.Now})
	tc := NewTurnClock(d, time.Second*30)

	// nothing to do without a hand
	clock.advance(time.Minute)
	updated, err := tc.Tick()
	a.NoError(err)
	a.False(updated)

	_, _ = d.StartHand()
	clock.advance(time.Second * 29)
	updated, err = tc.Tick()
	a.NoError(err)
	a.False(updated)

	// p1 faces the big blind and is folded
	clock.advance(time.Second)
	updated, err = tc.Tick()
	a.NoError(err)
	a.True(updated)
	a.Equal(texasholdem.StatusFolded, d.State().Players[0].Status)
	a.Equal("processed action", hook.LastEntry().Message)

	// the clock restarts for the next player
	updated, err = tc.Tick()
	a.NoError(err)
	a.False(updated)

	_, _ = d.Act(action.Call, 0)
	assertCurrentPlayer(t, d.State(), "p3")

	// the big blind can check
	clock.advance(time.Second * 31)
	updated, err = tc.Tick()
	a.NoError(err)
	a.True(updated)

	s := d.State()
	a.Equal(texasholdem.PhaseFlop, s.Phase)
	a.Equal(action.Check, s.ActionHistory[len(s.ActionHistory)-1].Type)
	a.Equal(clock.now, s.ActionHistory[len(s.ActionHistory)-1].Timestamp)
}

func TestTurnClock_disabled(t *testing.T) {
	clock := newFakeClock()
	d, _ := setupDealer(t, 2, Options{Clock: clock.Now})
	_, _ = d.StartHand()

	clock.advance(time.Hour)
	updated, err := NewTurnClock(d, 0).Tick()
	assert.NoError(t, err)
	assert.False(t, updated)
}
