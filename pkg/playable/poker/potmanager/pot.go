package potmanager

import (
	"sort"
)

// BuildLevels returns one pot per distinct contribution level, lowest level first
// Each pot holds the slice of every contribution between the previous level and its own.
// The pots are not merged, use Rebuild for the final pot structure.
func BuildLevels(contributions []Contribution) Pots {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(contributions))
	for _, c := range contributions {
		if c.TotalBet > 0 && !seen[c.TotalBet] {
			seen[c.TotalBet] = true
			levels = append(levels, c.TotalBet)
		}
	}
	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prevLevel := 0
	for _, level := range levels {
		pot := Pot{EligiblePlayerIDs: make([]string, 0)}

		contributors := 0
		for _, c := range contributions {
			reached := c.TotalBet >= level
			if reached {
				contributors++
			}

			if c.Open || (reached && c.Live) {
				pot.EligiblePlayerIDs = append(pot.EligiblePlayerIDs, c.PlayerID)
			}
		}

		pot.Amount = (level - prevLevel) * contributors
		pots = append(pots, pot)
		prevLevel = level
	}

	return pots
}

// Rebuild computes the complete pot structure from the total contributions of a hand
// Adjacent levels with the same eligible players are merged, so a hand without
// an all-in always has a single pot. A level nobody can win (every contributor
// folded) is folded into the pot below it.
func Rebuild(contributions []Contribution) Pots {
	levels := BuildLevels(contributions)

	pots := make(Pots, 0, len(levels))
	for _, pot := range levels {
		n := len(pots)
		if n > 0 && (len(pot.EligiblePlayerIDs) == 0 || pots[n-1].sameEligibility(pot)) {
			pots[n-1].Amount += pot.Amount
			continue
		}

		pots = append(pots, pot)
	}

	return pots
}

// Split divides a pot between winners
// winners must already be ordered by odd-chip priority: the first winner receives
// any remainder left after the even split.
func Split(amount int, winners []string) map[string]int {
	payouts := make(map[string]int, len(winners))
	if len(winners) == 0 {
		return payouts
	}

	share := amount / len(winners)
	for _, winner := range winners {
		payouts[winner] += share
	}

	payouts[winners[0]] += amount % len(winners)
	return payouts
}
