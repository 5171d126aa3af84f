package texasholdem

import (
	"fmt"

	"chiptracker/pkg/playable/poker/potmanager"
)

// Winners declares who won each pot
// Build it with AllPots, PerPot or ByStrength.
type Winners struct {
	all       []string
	perPot    [][]string
	strengths map[string]int
}

// AllPots applies the same winners to every pot
// Each pot only pays the winners who are eligible for it.
func AllPots(playerIDs ...string) Winners {
	return Winners{all: playerIDs}
}

// PerPot declares the winners of every pot, in the same order as TableState.Pots
func PerPot(playerIDs ...[]string) Winners {
	if playerIDs == nil {
		playerIDs = make([][]string, 0)
	}

	return Winners{perPot: playerIDs}
}

// ByStrength ranks the players by hand strength, higher is better
// Every pot goes to its strongest eligible players.
func ByStrength(strengths map[string]int) Winners {
	if strengths == nil {
		strengths = make(map[string]int)
	}

	return Winners{strengths: strengths}
}

// resolve turns hand strengths into winners for each of the pots
func (w Winners) resolve(pots potmanager.Pots) Winners {
	if w.strengths == nil {
		return w
	}

	wm := potmanager.NewWinManager()
	for playerID, strength := range w.strengths {
		wm.AddParticipant(playerID, strength)
	}

	return PerPot(wm.WinnersForPots(pots)...)
}

func (w Winners) forPot(i int) []string {
	if w.perPot != nil {
		return w.perPot[i]
	}

	return w.all
}

// DistributePot pays out every pot to its winners and clears the pots
// A split pot is divided evenly, the odd chips go to the first winner clockwise from the
// button. A pot with a single eligible player and no declared winner is returned to that
// player.
func DistributePot(s TableState, winners Winners) (TableState, error) {
	if s.IsHandActive {
		return s, ErrHandInProgress
	}

	winners = winners.resolve(s.Pots)
	if winners.perPot != nil && len(winners.perPot) != len(s.Pots) {
		return s, fmt.Errorf("expected winners for %d pots, got %d", len(s.Pots), len(winners.perPot))
	}

	next := s.clone()
	for i, pot := range next.Pots {
		if pot.Amount == 0 {
			continue
		}

		potWinners := next.oddChipOrder(pot, winners.forPot(i))
		if len(potWinners) == 0 {
			if len(pot.EligiblePlayerIDs) != 1 {
				return s, fmt.Errorf("pot %d has no eligible winner", i+1)
			}

			potWinners = pot.EligiblePlayerIDs
		}

		for id, amount := range potmanager.Split(pot.Amount, potWinners) {
			index, _ := next.PlayerByID(id)
			next.Players[index].Chips += amount
		}
	}

	next.Pots = nil
	next.Phase = PhaseFinished
	return next, nil
}

// oddChipOrder filters the declared winners down to the ones eligible for the pot, and
// orders them by seat starting with the seat after the button
func (s TableState) oddChipOrder(pot potmanager.Pot, declared []string) []string {
	isDeclared := make(map[string]bool, len(declared))
	for _, id := range declared {
		isDeclared[id] = true
	}

	ordered := make([]string, 0, len(declared))
	walk(s, s.DealerIndex, func(index int) bool {
		id := s.Players[index].ID
		if isDeclared[id] && pot.IsEligible(id) {
			ordered = append(ordered, id)
		}

		return false
	})

	return ordered
}
