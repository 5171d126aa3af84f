package texasholdem

// CheckAndAdvancePhase moves the hand forward once the betting round is complete
// The hand ends as soon as a single player can still win. When no more than one
// player can act, the remaining streets are skipped straight to showdown.
func CheckAndAdvancePhase(s TableState) TableState {
	if !s.IsHandActive {
		return s
	}

	if s.countStatus(StatusFolded, StatusOut, StatusLeft) >= len(s.Players)-1 {
		return EndHand(s)
	}

	for _, p := range s.Players {
		if p.Status != StatusActive {
			continue
		}

		if p.CurrentBet < s.CurrentMaxBet || !p.ActedThisRound {
			return s
		}
	}

	if s.countStatus(StatusActive) <= 1 {
		next := s
		for next.IsHandActive {
			next = advancePhase(next)
		}

		return next
	}

	return advancePhase(s)
}

// advancePhase starts the next betting round
func advancePhase(s TableState) TableState {
	next := s.clone()

	for i := range next.Players {
		next.Players[i].resetRound()
	}

	next.CurrentMaxBet = 0
	next.LastRaiseSize = next.BigBlind
	next.Phase = next.Phase.next()

	if next.Phase == PhaseShowdown || next.Phase == PhaseFinished {
		next.IsHandActive = false
		return next
	}

	next.CurrentPlayerIndex = next.DealerIndex
	if index, ok := NextActive(next, next.DealerIndex); ok {
		next.CurrentPlayerIndex = index
	}

	return next
}
