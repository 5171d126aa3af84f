package potmanager

import (
	"sort"
)

type tier struct {
	strength  int
	playerIDs []string
}

// WinManager groups players by the strength of their hand
// The strength itself comes from an outside evaluator (or a human), higher is better.
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant records the hand strength of a player
func (w WinManager) AddParticipant(playerID string, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:  handStrength,
			playerIDs: make([]string, 0),
		}
	}

	t.playerIDs = append(t.playerIDs, playerID)
	w[handStrength] = t
}

// GetSortedTiers returns the player IDs grouped by hand strength, strongest first
func (w WinManager) GetSortedTiers() [][]string {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredPlayerIDs := make([][]string, len(tiers))
	for i, t := range tiers {
		tieredPlayerIDs[i] = t.playerIDs
	}

	return tieredPlayerIDs
}

// WinnersForPots picks the winners of every pot
// For each pot it is the strongest tier with at least one eligible player.
// A pot nobody in the manager is eligible for gets an empty set.
func (w WinManager) WinnersForPots(pots Pots) [][]string {
	tiers := w.GetSortedTiers()

	winners := make([][]string, len(pots))
	for i, pot := range pots {
		winners[i] = make([]string, 0)
		for _, playerIDs := range tiers {
			for _, id := range playerIDs {
				if pot.IsEligible(id) {
					winners[i] = append(winners[i], id)
				}
			}

			if len(winners[i]) > 0 {
				break
			}
		}
	}

	return winners
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
