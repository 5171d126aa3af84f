package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"chiptracker/pkg/playable/poker/texasholdem"
	"github.com/pterm/pterm"
)

var server = flag.String("server", "http://localhost:5000", "the chip tracker server")

func main() {
	flag.Parse()

	state, err := fetchState(&http.Client{Timeout: time.Second * 5}, *server)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := render(state); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func fetchState(client *http.Client, server string) (texasholdem.TableState, error) {
	var state texasholdem.TableState

	res, err := client.Get(strings.TrimRight(server, "/") + "/table")
	if err != nil {
		return state, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return state, fmt.Errorf("unexpected status from server: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
		return state, fmt.Errorf("could not decode the table: %w", err)
	}

	return state, nil
}

func render(state texasholdem.TableState) error {
	pterm.DefaultSection.Println(heading(state))

	if err := pterm.DefaultTable.WithHasHeader().WithData(playerRows(state)).Render(); err != nil {
		return err
	}

	if len(state.Pots) == 0 {
		return nil
	}

	pterm.Println()
	return pterm.DefaultTable.WithHasHeader().WithData(potRows(state)).Render()
}

func heading(state texasholdem.TableState) string {
	if !state.IsHandActive && len(state.Pots) == 0 {
		return fmt.Sprintf("waiting for the next hand, blinds %d/%d", state.SmallBlind, state.BigBlind)
	}

	return fmt.Sprintf("%s, blinds %d/%d", state.Phase, state.SmallBlind, state.BigBlind)
}

// playerRows lists the players in seat order. D marks the button, * the player to act
func playerRows(state texasholdem.TableState) pterm.TableData {
	data := pterm.TableData{{"Seat", "", "Player", "Chips", "Bet", "Status"}}
	for _, index := range texasholdem.SeatOrder(state) {
		p := state.Players[index]

		marker := ""
		if index == state.DealerIndex {
			marker = "D"
		}

		if state.IsHandActive && index == state.CurrentPlayerIndex {
			marker += "*"
		}

		data = append(data, []string{
			strconv.Itoa(p.SeatIndex),
			marker,
			p.Name,
			strconv.Itoa(p.Chips),
			strconv.Itoa(p.CurrentBet),
			string(p.Status),
		})
	}

	return data
}

func potRows(state texasholdem.TableState) pterm.TableData {
	names := make(map[string]string, len(state.Players))
	for _, p := range state.Players {
		names[p.ID] = p.Name
	}

	data := pterm.TableData{{"Pot", "Amount", "Eligible"}}
	for i, pot := range state.Pots {
		eligible := make([]string, len(pot.EligiblePlayerIDs))
		for j, id := range pot.EligiblePlayerIDs {
			eligible[j] = names[id]
		}

		label := "main"
		if i > 0 {
			label = fmt.Sprintf("side %d", i)
		}

		data = append(data, []string{label, strconv.Itoa(pot.Amount), strings.Join(eligible, ", ")})
	}

	return data
}
