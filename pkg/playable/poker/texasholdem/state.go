package texasholdem

import (
	"time"

	"chiptracker/pkg/playable/poker/action"
	"chiptracker/pkg/playable/poker/potmanager"
)

// Phase is the betting round a hand is in
type Phase string

// Phase constants
const (
	PhasePreFlop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
	PhaseFinished Phase = "finished"
)

// next returns the following phase
// Showdown and finished have nowhere to go.
func (p Phase) next() Phase {
	switch p {
	case PhasePreFlop:
		return PhaseFlop
	case PhaseFlop:
		return PhaseTurn
	case PhaseTurn:
		return PhaseRiver
	case PhaseRiver:
		return PhaseShowdown
	}

	return p
}

// ActionRecord is an entry in the action history
type ActionRecord struct {
	ID        int64         `json:"id"`
	Type      action.Action `json:"type"`
	PlayerID  string        `json:"playerId"`
	Amount    int           `json:"amount"`
	Timestamp time.Time     `json:"timestamp"`
}

// TableState is an immutable snapshot of the table
// Every operation in this package returns a new TableState and leaves its input alone.
type TableState struct {
	Players    []Player        `json:"players"`
	Pots       potmanager.Pots `json:"pots"`
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	Phase      Phase           `json:"phase"`

	// CurrentPlayerIndex and DealerIndex are positions in Players, not seat numbers
	CurrentPlayerIndex int `json:"currentPlayerIndex"`
	DealerIndex        int `json:"dealerIndex"`

	CurrentMaxBet int `json:"currentMaxBet"`
	// LastRaiseSize is the size of the last full raise, the minimum for the next one
	LastRaiseSize int `json:"lastRaiseSize"`

	ActionHistory []ActionRecord `json:"actionHistory"`
	IsHandActive  bool           `json:"isHandActive"`
}

// clone returns a deep copy that can be changed without touching s
func (s TableState) clone() TableState {
	next := s

	next.Players = make([]Player, len(s.Players))
	copy(next.Players, s.Players)

	next.Pots = s.Pots.Clone()

	if s.ActionHistory != nil {
		next.ActionHistory = make([]ActionRecord, len(s.ActionHistory))
		copy(next.ActionHistory, s.ActionHistory)
	}

	return next
}

// PlayerByID returns the index of the player with the given ID
func (s TableState) PlayerByID(id string) (int, bool) {
	for i, p := range s.Players {
		if p.ID == id {
			return i, true
		}
	}

	return -1, false
}

// CurrentPlayer returns the player whose turn it is
func (s TableState) CurrentPlayer() (Player, bool) {
	if !s.validIndex(s.CurrentPlayerIndex) {
		return Player{}, false
	}

	return s.Players[s.CurrentPlayerIndex], true
}

// TotalChips returns every chip on the table: stacks plus pots
// Pots already include the bets of the current round.
func (s TableState) TotalChips() int {
	total := s.Pots.Total()
	for _, p := range s.Players {
		total += p.Chips
	}

	return total
}

func (s TableState) validIndex(index int) bool {
	return index >= 0 && index < len(s.Players)
}

func (s TableState) contributions() []potmanager.Contribution {
	contributions := make([]potmanager.Contribution, len(s.Players))
	for i, p := range s.Players {
		contributions[i] = potmanager.Contribution{
			PlayerID: p.ID,
			TotalBet: p.TotalBet,
			Live:     p.canWin(),
			Open:     p.Status == StatusActive,
		}
	}

	return contributions
}

func (s *TableState) rebuildPots() {
	s.Pots = potmanager.Rebuild(s.contributions())
}

// addToMainPot puts chips in the first pot until the next rebuild splits them out
func (s *TableState) addToMainPot(amount int) {
	if len(s.Pots) == 0 {
		s.Pots = potmanager.Pots{{EligiblePlayerIDs: make([]string, 0)}}
	}

	s.Pots[0].Amount += amount
}

func (s TableState) countStatus(statuses ...Status) int {
	count := 0
	for _, p := range s.Players {
		if p.Status.in(statuses...) {
			count++
		}
	}

	return count
}
