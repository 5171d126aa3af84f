package texasholdem

// PostBlind charges a forced bet to a player
// A short stack posts what it has and is all-in. The chips go to the main pot.
func PostBlind(s TableState, playerIndex, amount int) TableState {
	next := s.clone()
	if !next.validIndex(playerIndex) {
		return next
	}

	posted := next.Players[playerIndex].commit(amount)
	next.addToMainPot(posted)
	return next
}
