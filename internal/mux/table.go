package mux

import (
	"errors"
	"net/http"

	"chiptracker/pkg/playable"
	"chiptracker/pkg/playable/poker/action"
	"chiptracker/pkg/playable/poker/texasholdem"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.dealer.State())
	}
}

func (m *Mux) getTableHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.dealer.History())
	}
}

func (m *Mux) postTableHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := m.dealer.StartHand()
		writeTableResult(w, state, err)
	}
}

func (m *Mux) postTableDealer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := m.dealer.AdvanceDealer()
		writeTableResult(w, state, err)
	}
}

func (m *Mux) postTableUndo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := m.dealer.Undo()
		writeTableResult(w, state, err)
	}
}

func (m *Mux) postTableAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload playable.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		act, err := action.FromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		amount, _ := payload.AdditionalData.GetInt("amount")
		state, err := m.dealer.Act(act, amount)
		writeTableResult(w, state, err)
	}
}

type postTableDistributePayload struct {
	Winners       []string       `json:"winners"`
	WinnersPerPot [][]string     `json:"winnersPerPot"`
	Strengths     map[string]int `json:"strengths"`
}

func (m *Mux) postTableDistribute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postTableDistributePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		var winners texasholdem.Winners
		switch {
		case len(payload.Strengths) > 0:
			winners = texasholdem.ByStrength(payload.Strengths)
		case payload.WinnersPerPot != nil:
			winners = texasholdem.PerPot(payload.WinnersPerPot...)
		case len(payload.Winners) > 0:
			winners = texasholdem.AllPots(payload.Winners...)
		default:
			writeJSONError(w, http.StatusBadRequest, errors.New("winners, winnersPerPot or strengths is required"))
			return
		}

		details, err := m.dealer.Distribute(winners)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}

// writeTableResult writes the new table state, or the reason the change was rejected
func writeTableResult(w http.ResponseWriter, state texasholdem.TableState, err error) {
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}
