package texasholdem

import (
	"testing"

	"chiptracker/pkg/playable/poker/action"
	"github.com/stretchr/testify/assert"
)

func TestCheckAndAdvancePhase_everybodyFolds(t *testing.T) {
	a := assert.New(t)

	s := StartHand(setupTable(t, 1000, 1000, 1000))
	s = assertProcess(t, s, action.Fold, 0)
	a.True(s.IsHandActive)
	s = assertProcess(t, s, action.Fold, 0)

	a.False(s.IsHandActive)
	a.Equal(PhaseShowdown, s.Phase)
	a.Equal(30, s.Pots.Total())
	a.Equal([]string{"p3"}, s.Pots[0].EligiblePlayerIDs)

	assertProcessFailed(t, s, action.Check, 0, "no hand is in progress")

	s, err := DistributePot(s, AllPots("p3"))
	a.NoError(err)
	a.Equal([]int{1000, 990, 1010}, chips(s))
}

func TestCheckAndAdvancePhase_streets(t *testing.T) {
	a := assert.New(t)

	s := StartHand(setupTable(t, 1000, 1000, 1000))
	s = assertProcess(t, s, action.Call, 0)
	s = assertProcess(t, s, action.Call, 0)
	a.Equal(PhasePreFlop, s.Phase, "big blind still has an option")

	s = assertProcess(t, s, action.Check, 0)
	a.Equal(PhaseFlop, s.Phase)
	a.Equal(0, s.CurrentMaxBet)
	a.Equal(20, s.LastRaiseSize)
	for _, p := range s.Players {
		a.Equal(0, p.CurrentBet)
		a.Equal(20, p.TotalBet)
		a.False(p.ActedThisRound)
	}

	// first to act after the flop is the first active player after the button
	assertTurn(t, s, "p2")
	for _, phase := range []Phase{PhaseTurn, PhaseRiver} {
		s = assertProcess(t, s, action.Check, 0)
		s = assertProcess(t, s, action.Check, 0)
		s = assertProcess(t, s, action.Check, 0)
		a.Equal(phase, s.Phase)
		assertTurn(t, s, "p2")
	}

	s = assertProcess(t, s, action.Check, 0)
	s = assertProcess(t, s, action.Check, 0)
	a.True(s.IsHandActive)
	s = assertProcess(t, s, action.Check, 0)
	a.False(s.IsHandActive)
	a.Equal(PhaseShowdown, s.Phase)
	a.Equal(60, s.Pots.Total())
}

func TestCheckAndAdvancePhase_betOnFlop(t *testing.T) {
	a := assert.New(t)

	s := StartHand(setupTable(t, 1000, 1000))
	s = assertProcess(t, s, action.Call, 0)
	s = assertProcess(t, s, action.Check, 0)
	a.Equal(PhaseFlop, s.Phase)

	// heads-up the big blind acts first after the flop
	assertTurn(t, s, "p2")
	assertProcessFailed(t, s, action.Raise, 10, "your raise to 10 must be to at least 20")
	s = assertProcess(t, s, action.Raise, 50)
	a.Equal(50, s.LastRaiseSize)

	s = assertProcess(t, s, action.Call, 0)
	a.Equal(PhaseTurn, s.Phase)
	a.Equal(140, s.Pots.Total())
}

func TestCheckAndAdvancePhase_allInFastForward(t *testing.T) {
	a := assert.New(t)

	s := StartHand(setupTable(t, 500, 1000))
	s = assertProcess(t, s, action.Raise, 500)
	a.Equal(StatusAllIn, s.Players[0].Status)
	a.Equal(480, s.LastRaiseSize)

	s = assertProcess(t, s, action.Call, 0)
	a.False(s.IsHandActive)
	a.Equal(PhaseShowdown, s.Phase)
	a.Len(s.Pots, 1)
	a.Equal(1000, s.Pots[0].Amount)
	a.Equal([]string{"p1", "p2"}, s.Pots[0].EligiblePlayerIDs)

	s, err := DistributePot(s, PerPot([]string{"p2"}))
	a.NoError(err)
	a.Equal([]int{0, 1500}, chips(s))

	s = StartHand(AdvanceDealer(s))
	a.False(s.IsHandActive)
	a.Equal(PhaseFinished, s.Phase)
	a.Equal(StatusOut, s.Players[0].Status)
}

func TestCheckAndAdvancePhase_inactive(t *testing.T) {
	s := setupTable(t, 1000, 1000)
	assert.Equal(t, s, CheckAndAdvancePhase(s))
}
