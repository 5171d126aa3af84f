package texasholdem

import (
	"fmt"
	"testing"
	"time"

	"chiptracker/pkg/playable/poker/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2021, time.March, 1, 20, 0, 0, 0, time.UTC)

func testClock() Clock {
	return func() time.Time {
		return testTime
	}
}

// setupTable seats one player per stack with 10/20 blinds
func setupTable(t *testing.T, stacks ...int) TableState {
	t.Helper()

	entries := make([]PlayerEntry, len(stacks))
	for i, stack := range stacks {
		chips := stack
		entries[i] = Detailed(fmt.Sprintf("Player %d", i+1), nil, &chips)
	}

	s, err := InitGame(entries, 10, 20, 1000)
	require.NoError(t, err)
	return s
}

// setupPlayers builds players directly, seated in array order
func setupPlayers(statuses ...Status) []Player {
	players := make([]Player, len(statuses))
	for i, status := range statuses {
		players[i] = Player{
			ID:        fmt.Sprintf("p%d", i+1),
			Name:      fmt.Sprintf("Player %d", i+1),
			Chips:     1000,
			Status:    status,
			SeatIndex: i,
		}
	}

	return players
}

func assertProcess(t *testing.T, s TableState, act action.Action, amount int, msgAndArgs ...interface{}) TableState {
	t.Helper()

	before := s.clone()
	next, err := ProcessAction(s, act, amount, testClock())
	require.NoError(t, err, msgAndArgs...)
	assert.Equal(t, before, s, "input state must not change")
	assert.Equal(t, s.TotalChips(), next.TotalChips(), "chips must be conserved")
	return next
}

func assertProcessFailed(t *testing.T, s TableState, act action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()

	next, err := ProcessAction(s, act, amount, testClock())
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.Equal(t, s, next, msgAndArgs...)
}

func assertTurn(t *testing.T, s TableState, playerID string, msgAndArgs ...interface{}) {
	t.Helper()

	p, ok := s.CurrentPlayer()
	require.True(t, ok, msgAndArgs...)
	assert.Equal(t, playerID, p.ID, msgAndArgs...)
	assert.Equal(t, StatusActive, p.Status, msgAndArgs...)
}

func chips(s TableState) []int {
	c := make([]int, len(s.Players))
	for i, p := range s.Players {
		c[i] = p.Chips
	}

	return c
}
