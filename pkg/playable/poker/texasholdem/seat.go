package texasholdem

import "sort"

// SeatOrder returns player indexes in clockwise order
// The order comes from SeatIndex, two players sharing a seat value keep their array order.
func SeatOrder(s TableState) []int {
	order := make([]int, len(s.Players))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return s.Players[order[i]].SeatIndex < s.Players[order[j]].SeatIndex
	})

	return order
}

// walk visits every player once in seat order, starting after fromIndex and ending on it
// If fromIndex isn't a valid index, the walk starts at the first seat.
func walk(s TableState, fromIndex int, fn func(index int) bool) (int, bool) {
	order := SeatOrder(s)
	n := len(order)

	start := -1
	for pos, index := range order {
		if index == fromIndex {
			start = pos
			break
		}
	}

	for i := 1; i <= n; i++ {
		index := order[(start+i+n)%n]
		if fn(index) {
			return index, true
		}
	}

	return -1, false
}

// NextActive returns the next player after fromIndex who can take an action
func NextActive(s TableState, fromIndex int) (int, bool) {
	return walk(s, fromIndex, func(index int) bool {
		return s.Players[index].Status == StatusActive
	})
}

// NextWithChips returns the next player after fromIndex with chips who didn't leave
// If there is nobody, fromIndex is returned as is, even if that player has no chips.
func NextWithChips(s TableState, fromIndex int) int {
	index, ok := walk(s, fromIndex, func(index int) bool {
		p := s.Players[index]
		return p.Chips > 0 && p.Status != StatusLeft
	})

	if !ok {
		return fromIndex
	}

	return index
}

// NextEligibleForBlind returns the next player after fromIndex who must post a blind
// Sitting-out players still post.
func NextEligibleForBlind(s TableState, fromIndex int) (int, bool) {
	return walk(s, fromIndex, func(index int) bool {
		return isEligibleForBlind(s.Players[index])
	})
}

func isEligibleForBlind(p Player) bool {
	return p.Chips > 0 && p.Status.in(StatusActive, StatusSitOut)
}
