package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chiptracker/pkg/playable/poker/potmanager"
	"chiptracker/pkg/playable/poker/texasholdem"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) texasholdem.TableState {
	t.Helper()

	state, err := texasholdem.InitGame([]texasholdem.PlayerEntry{
		texasholdem.NameOnly("Ann"),
		texasholdem.NameOnly("Bob"),
		texasholdem.NameOnly("Cy"),
	}, 10, 20, 1000)
	require.NoError(t, err)

	return state
}

func Test_playerRows(t *testing.T) {
	a := assert.New(t)

	state := texasholdem.StartHand(newTable(t))
	a.Equal(pterm.TableData{
		{"Seat", "", "Player", "Chips", "Bet", "Status"},
		{"0", "D*", "Ann", "1000", "0", "active"},
		{"1", "", "Bob", "990", "10", "active"},
		{"2", "", "Cy", "980", "20", "active"},
	}, playerRows(state))
	a.Equal("preflop, blinds 10/20", heading(state))

	idle := newTable(t)
	a.Equal("D", playerRows(idle)[1][1])
	a.Equal("waiting for the next hand, blinds 10/20", heading(idle))
}

func Test_potRows(t *testing.T) {
	state := newTable(t)
	state.Pots = potmanager.Pots{
		{Amount: 300, EligiblePlayerIDs: []string{"p1", "p2", "p3"}},
		{Amount: 400, EligiblePlayerIDs: []string{"p2", "p3"}},
	}

	assert.Equal(t, pterm.TableData{
		{"Pot", "Amount", "Eligible"},
		{"main", "300", "Ann, Bob, Cy"},
		{"side 1", "400", "Bob, Cy"},
	}, potRows(state))
}

func Test_fetchState(t *testing.T) {
	a := assert.New(t)
	state := newTable(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/table" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_ = json.NewEncoder(w).Encode(state)
	}))
	defer ts.Close()

	got, err := fetchState(ts.Client(), ts.URL+"/")
	a.NoError(err)
	a.Equal(state.Players, got.Players)
	a.Equal(state.BigBlind, got.BigBlind)

	_, err = fetchState(ts.Client(), ts.URL+"/nope")
	a.EqualError(err, "unexpected status from server: 404")
}
