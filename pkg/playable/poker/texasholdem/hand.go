package texasholdem

// StartHand resets the table for a new hand, posts the blinds and picks the first player to act
// Players without chips are out. Sitting-out players don't get a turn, but still post a blind
// when it falls on them. With fewer than two active players the hand is finished immediately.
func StartHand(s TableState) TableState {
	next := s.clone()

	for i := range next.Players {
		p := &next.Players[i]
		p.CurrentBet = 0
		p.TotalBet = 0
		p.ActedThisRound = false

		if p.Status == StatusLeft {
			continue
		}

		switch {
		case p.Chips == 0:
			p.Status = StatusOut
		case p.Status == StatusSitOut:
			p.ActedThisRound = true
		default:
			p.Status = StatusActive
		}
	}

	next.Pots = nil
	next.Phase = PhasePreFlop
	next.CurrentMaxBet = 0
	next.LastRaiseSize = next.BigBlind

	if next.countStatus(StatusActive) < 2 {
		next.Phase = PhaseFinished
		next.IsHandActive = false
		return next
	}

	smallBlindIndex := next.smallBlindIndex()
	bigBlindIndex, ok := NextEligibleForBlind(next, smallBlindIndex)
	if !ok {
		bigBlindIndex = smallBlindIndex
	}

	next = PostBlind(next, smallBlindIndex, next.SmallBlind)
	next = PostBlind(next, bigBlindIndex, next.BigBlind)

	next.CurrentMaxBet = next.BigBlind
	next.LastRaiseSize = next.BigBlind
	next.rebuildPots()

	next.CurrentPlayerIndex = next.DealerIndex
	if index, ok := NextActive(next, bigBlindIndex); ok {
		next.CurrentPlayerIndex = index
	}

	next.IsHandActive = true

	// the blinds may have put everybody but one player all-in
	return CheckAndAdvancePhase(next)
}

// smallBlindIndex returns who posts the small blind
// Heads-up the dealer posts it, otherwise the next eligible player after the dealer.
func (s TableState) smallBlindIndex() int {
	eligible := 0
	for _, p := range s.Players {
		if isEligibleForBlind(p) {
			eligible++
		}
	}

	if eligible == 2 && s.validIndex(s.DealerIndex) && isEligibleForBlind(s.Players[s.DealerIndex]) {
		return s.DealerIndex
	}

	if index, ok := NextEligibleForBlind(s, s.DealerIndex); ok {
		return index
	}

	return s.DealerIndex
}

// EndHand stops the action and moves to showdown
// Chips are not touched, see DistributePot.
func EndHand(s TableState) TableState {
	next := s.clone()
	next.Phase = PhaseShowdown
	next.IsHandActive = false
	return next
}

// AdvanceDealer moves the button to the next player with chips
func AdvanceDealer(s TableState) TableState {
	if len(s.Players) == 0 {
		return s
	}

	next := s.clone()
	next.DealerIndex = NextWithChips(next, next.DealerIndex)
	return next
}
