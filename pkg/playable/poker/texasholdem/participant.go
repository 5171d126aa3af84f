package texasholdem

// Status is where a player stands in the current hand
type Status string

// Status constants
const (
	StatusWaiting Status = "waiting"
	StatusActive  Status = "active"
	StatusFolded  Status = "folded"
	StatusAllIn   Status = "allIn"
	StatusOut     Status = "out"
	StatusSitOut  Status = "sitout"
	StatusLeft    Status = "left"
)

func (s Status) in(statuses ...Status) bool {
	for _, status := range statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Player is a seat at the table
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Chips  int    `json:"chips"`
	Status Status `json:"status"`

	// CurrentBet is what the player has put in during this betting round
	CurrentBet int `json:"currentBet"`
	// TotalBet is what the player has put in during the whole hand
	TotalBet int `json:"totalBet"`

	ActedThisRound bool `json:"actedThisRound"`
	SeatIndex      int  `json:"seatIndex"`
}

// canWin returns true if the player may still win a pot
// Sitting-out players that posted a blind stay eligible.
func (p Player) canWin() bool {
	return !p.Status.in(StatusFolded, StatusOut, StatusLeft)
}

// commit moves chips from the stack into the current bet
// It never charges more than the stack, and the actual amount is returned.
func (p *Player) commit(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBet += amount

	if p.Chips == 0 {
		p.Status = StatusAllIn
	}

	return amount
}

func (p *Player) resetRound() {
	p.CurrentBet = 0
	p.ActedThisRound = false
}
