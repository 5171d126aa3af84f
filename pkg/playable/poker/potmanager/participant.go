package potmanager

// Contribution is everything a single player has committed to the current hand
type Contribution struct {
	PlayerID string
	TotalBet int
	// Live is false once the player folded, busted out, or left the table.
	// A dead contribution still builds the pots but can never win one.
	Live bool
	// Open is true while the player can still put chips in. An open player is
	// eligible at every level, they will either match it or give up the pot.
	// Mid-hand pots therefore list open players who have not matched them yet.
	Open bool
}
