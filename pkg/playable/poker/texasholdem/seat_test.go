package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatOrder(t *testing.T) {
	a := assert.New(t)

	s := TableState{Players: setupPlayers(StatusActive, StatusActive, StatusActive, StatusActive)}
	s.Players[0].SeatIndex = 2
	s.Players[1].SeatIndex = 0
	s.Players[2].SeatIndex = 2
	s.Players[3].SeatIndex = 1

	a.Equal([]int{1, 3, 0, 2}, SeatOrder(s))
	a.Equal([]int{}, SeatOrder(TableState{}))
}

func TestNextActive(t *testing.T) {
	a := assert.New(t)

	s := TableState{Players: setupPlayers(StatusActive, StatusFolded, StatusLeft, StatusActive, StatusOut, StatusAllIn)}

	index, ok := NextActive(s, 0)
	a.True(ok)
	a.Equal(3, index)

	// wraps past the last seat, skipping out and all-in players
	index, ok = NextActive(s, 3)
	a.True(ok)
	a.Equal(0, index)

	index, ok = NextActive(s, 4)
	a.True(ok)
	a.Equal(0, index)

	// unknown starting point begins at the first seat
	index, ok = NextActive(s, -1)
	a.True(ok)
	a.Equal(0, index)

	// the only active player finds themself
	s.Players[3].Status = StatusFolded
	index, ok = NextActive(s, 0)
	a.True(ok)
	a.Equal(0, index)

	s.Players[0].Status = StatusFolded
	index, ok = NextActive(s, 0)
	a.False(ok)
	a.Equal(-1, index)
}

func TestNextActive_followsSeatsNotArray(t *testing.T) {
	a := assert.New(t)

	s := TableState{Players: setupPlayers(StatusActive, StatusActive, StatusActive)}
	s.Players[0].SeatIndex = 5
	s.Players[1].SeatIndex = 1
	s.Players[2].SeatIndex = 3

	index, _ := NextActive(s, 1)
	a.Equal(2, index)
	index, _ = NextActive(s, 2)
	a.Equal(0, index)
	index, _ = NextActive(s, 0)
	a.Equal(1, index)
}

func TestNextWithChips(t *testing.T) {
	a := assert.New(t)

	s := TableState{Players: setupPlayers(StatusActive, StatusOut, StatusLeft, StatusSitOut)}
	s.Players[1].Chips = 0

	a.Equal(3, NextWithChips(s, 0))
	a.Equal(0, NextWithChips(s, 3))

	// nobody else has chips, the starting index comes back as is
	s.Players[0].Chips = 0
	s.Players[3].Chips = 0
	a.Equal(1, NextWithChips(s, 1))
}

func TestNextEligibleForBlind(t *testing.T) {
	a := assert.New(t)

	s := TableState{Players: setupPlayers(StatusActive, StatusOut, StatusSitOut, StatusActive)}
	s.Players[3].Chips = 0

	index, ok := NextEligibleForBlind(s, 0)
	a.True(ok)
	a.Equal(2, index)

	index, ok = NextEligibleForBlind(s, 2)
	a.True(ok)
	a.Equal(0, index)

	s.Players[0].Status = StatusFolded
	s.Players[2].Chips = 0
	_, ok = NextEligibleForBlind(s, 0)
	a.False(ok)
}
