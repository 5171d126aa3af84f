package texasholdem

import (
	"errors"
	"fmt"
	"sort"
)

// MaxPlayers is the most seats a table can have
const MaxPlayers = 10

// PlayerEntry describes a player joining the table
// Use NameOnly or Detailed to build one.
type PlayerEntry struct {
	Name          string
	SeatIndex     *int
	StartingChips *int
}

// NameOnly returns an entry that takes its seat from its position and the default stack
func NameOnly(name string) PlayerEntry {
	return PlayerEntry{Name: name}
}

// Detailed returns an entry with an optional requested seat and starting stack
func Detailed(name string, seatIndex, startingChips *int) PlayerEntry {
	return PlayerEntry{
		Name:          name,
		SeatIndex:     seatIndex,
		StartingChips: startingChips,
	}
}

// InitGame seats the players and returns the initial table
// Entries are ordered by their requested seat (input order breaks ties) and then
// renumbered from zero. The button starts on the first seat.
func InitGame(entries []PlayerEntry, smallBlind, bigBlind, defaultChips int) (TableState, error) {
	if err := validateOptions(entries, smallBlind, bigBlind, defaultChips); err != nil {
		return TableState{}, err
	}

	type seating struct {
		entry     PlayerEntry
		requested int
	}

	seats := make([]seating, len(entries))
	for i, entry := range entries {
		requested := i
		if entry.SeatIndex != nil {
			requested = *entry.SeatIndex
		}

		seats[i] = seating{entry: entry, requested: requested}
	}

	sort.SliceStable(seats, func(i, j int) bool {
		return seats[i].requested < seats[j].requested
	})

	players := make([]Player, len(seats))
	for i, seat := range seats {
		chips := defaultChips
		if seat.entry.StartingChips != nil {
			chips = *seat.entry.StartingChips
		}

		players[i] = Player{
			ID:        fmt.Sprintf("p%d", i+1),
			Name:      seat.entry.Name,
			Chips:     chips,
			Status:    StatusWaiting,
			SeatIndex: i,
		}
	}

	return TableState{
		Players:            players,
		Pots:               nil,
		SmallBlind:         smallBlind,
		BigBlind:           bigBlind,
		Phase:              PhasePreFlop,
		CurrentPlayerIndex: 0,
		DealerIndex:        0,
		CurrentMaxBet:      0,
		LastRaiseSize:      bigBlind,
		ActionHistory:      make([]ActionRecord, 0),
		IsHandActive:       false,
	}, nil
}

func validateOptions(entries []PlayerEntry, smallBlind, bigBlind, defaultChips int) error {
	if smallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if bigBlind <= 0 {
		return errors.New("big blind must be > 0")
	}

	if smallBlind > bigBlind {
		return errors.New("small blind must not exceed the big blind")
	}

	if defaultChips < 0 {
		return errors.New("default chips must be >= 0")
	}

	if len(entries) > MaxPlayers {
		return fmt.Errorf("there can be at most %d players", MaxPlayers)
	}

	for i, entry := range entries {
		if entry.Name == "" {
			return fmt.Errorf("player %d is missing a name", i+1)
		}

		if entry.StartingChips != nil && *entry.StartingChips < 0 {
			return fmt.Errorf("starting chips for %s must be >= 0", entry.Name)
		}
	}

	return nil
}
