package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"chiptracker/internal/config"
	"chiptracker/internal/mux"
	"chiptracker/internal/util"
	"chiptracker/pkg/playable"
	"chiptracker/pkg/playable/poker/texasholdem"
	"chiptracker/pkg/room"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")
var tableName = flag.String("name", "Home Game", "the name of the table")

func main() {
	flag.Parse()

	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()
	setupLogger()

	cfg := config.Instance()
	state, err := texasholdem.InitGame(seatEntries(cfg.Table.Seats), cfg.Table.SmallBlind, cfg.Table.BigBlind, cfg.Table.DefaultChips)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up the table")
	}

	dealer := room.NewDealer(logrus.StandardLogger(), state, room.Options{
		Name:      *tableName,
		UndoDepth: cfg.Table.UndoDepth,
	})

	var tickables []playable.Tickable
	if cfg.Table.TurnTimeout > 0 {
		tickables = append(tickables, room.NewTurnClock(dealer, cfg.Table.TurnTimeout))
	}

	dealer.StartShift(tickables...)
	defer dealer.EndShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(logrus.StandardLogger(), Version, dealer))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"players": len(state.Players),
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// seatEntries turns the configured seats into player entries
// A seat without a name gets a random one.
func seatEntries(seats []config.Seat) []texasholdem.PlayerEntry {
	entries := make([]texasholdem.PlayerEntry, len(seats))
	for i, seat := range seats {
		name := seat.Name
		if name == "" {
			name = util.GetRandomName()
		}

		entries[i] = texasholdem.Detailed(name, seat.Seat, seat.Chips)
	}

	return entries
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
