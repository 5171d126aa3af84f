package potmanager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWinManager(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddParticipant("1", 10)
	wm.AddParticipant("2", 20)
	wm.AddParticipant("3", 30)
	wm.AddParticipant("4", 20)
	wm.AddParticipant("5", 30)

	tiers := wm.GetSortedTiers()
	a.Equal("3-5|2-4|1", tiersToString(tiers))
}

func TestWinManager_WinnersForPots(t *testing.T) {
	a := assert.New(t)

	pots := BuildLevels([]Contribution{
		contribution("a", 100),
		contribution("b", 300),
		contribution("c", 500),
	})

	// the short stack has the best hand, b beats c
	wm := NewWinManager()
	wm.AddParticipant("a", 300)
	wm.AddParticipant("b", 200)
	wm.AddParticipant("c", 100)

	a.Equal([][]string{{"a"}, {"b"}, {"c"}}, wm.WinnersForPots(pots))

	// chop between b and c
	wm = NewWinManager()
	wm.AddParticipant("a", 100)
	wm.AddParticipant("b", 200)
	wm.AddParticipant("c", 200)

	a.Equal([][]string{{"b", "c"}, {"b", "c"}, {"c"}}, wm.WinnersForPots(pots))

	// nobody known is eligible
	a.Equal([][]string{{}}, NewWinManager().WinnersForPots(Pots{{Amount: 5, EligiblePlayerIDs: []string{"z"}}}))
}

func tiersToString(tiers [][]string) string {
	s := make([]string, len(tiers))
	for i, ids := range tiers {
		s[i] = strings.Join(ids, "-")
	}

	return strings.Join(s, "|")
}
