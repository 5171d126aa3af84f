package mux

import (
	"net/http"

	"chiptracker/pkg/room"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer
	log     logrus.FieldLogger
}

// NewMux returns a new HTTP mux for the dealer's table
func NewMux(log logrus.FieldLogger, version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
		log:     log,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	tr := r.PathPrefix("/table").Subrouter()
	tr.Methods(http.MethodGet).Path("").Handler(this.getTable())
	tr.Methods(http.MethodGet).Path("/history").Handler(this.getTableHistory())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableWS())
	tr.Methods(http.MethodPost).Path("/hand").Handler(this.postTableHand())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableAction())
	tr.Methods(http.MethodPost).Path("/distribute").Handler(this.postTableDistribute())
	tr.Methods(http.MethodPost).Path("/dealer").Handler(this.postTableDealer())
	tr.Methods(http.MethodPost).Path("/undo").Handler(this.postTableUndo())

	return this
}
