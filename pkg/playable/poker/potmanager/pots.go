package potmanager

// Pot is the main pot or a side pot
type Pot struct {
	Amount            int      `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayerIds"`
}

// IsEligible returns true if the player may win the pot
func (p Pot) IsEligible(playerID string) bool {
	for _, id := range p.EligiblePlayerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}

func (p Pot) sameEligibility(other Pot) bool {
	if len(p.EligiblePlayerIDs) != len(other.EligiblePlayerIDs) {
		return false
	}

	for i, id := range p.EligiblePlayerIDs {
		if other.EligiblePlayerIDs[i] != id {
			return false
		}
	}

	return true
}

// Pots is an ordered list of pots, main pot first
type Pots []Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Clone returns a deep copy
func (p Pots) Clone() Pots {
	if p == nil {
		return nil
	}

	pots := make(Pots, len(p))
	for i, pot := range p {
		ids := make([]string, len(pot.EligiblePlayerIDs))
		copy(ids, pot.EligiblePlayerIDs)
		pots[i] = Pot{
			Amount:            pot.Amount,
			EligiblePlayerIDs: ids,
		}
	}

	return pots
}
