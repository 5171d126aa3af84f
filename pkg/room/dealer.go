package room

import (
	"errors"
	"sync"
	"time"

	"chiptracker/pkg/playable"
	"chiptracker/pkg/playable/poker/action"
	"chiptracker/pkg/playable/poker/texasholdem"
	"github.com/sirupsen/logrus"
)

// ErrNothingToUndo is returned when the undo history is empty
var ErrNothingToUndo = errors.New("there is nothing to undo")

// ErrPotsNotDistributed is returned when a hand is started before the last one was paid out
var ErrPotsNotDistributed = errors.New("the pots must be distributed before the next hand")

// ErrWinnersRequired is returned when a distribute message names no winners
var ErrWinnersRequired = errors.New("winners are required")

type event int

const (
	eventClients event = iota
	eventTable
)

// Options configures a Dealer
type Options struct {
	// Name identifies the table in logs and state updates
	Name string
	// UndoDepth is how many changes can be undone, zero disables undo
	UndoDepth int
	// Clock stamps the action history, nil means time.Now
	Clock texasholdem.Clock
}

type snapshot struct {
	state     texasholdem.TableState
	handStart map[string]int
}

// Dealer runs a table
// It holds the current TableState, applies every change through the texasholdem package,
// and keeps the connected clients up to date.
type Dealer struct {
	log  logrus.FieldLogger
	opts Options

	lock        sync.Mutex
	state       texasholdem.TableState
	undo        []snapshot
	handStart   map[string]int
	turnStarted time.Time
	logMessages []*playable.LogMessage

	clientsLock sync.RWMutex
	clients     map[*Client]bool

	stateChanged chan event
	close        chan bool
	closeOnce    sync.Once
}

var _ playable.Playable = (*Dealer)(nil)

// NewDealer creates a new dealer for the table
func NewDealer(log logrus.FieldLogger, state texasholdem.TableState, opts Options) *Dealer {
	d := &Dealer{
		log:          log.WithField("table", opts.Name),
		opts:         opts,
		state:        state,
		undo:         make([]snapshot, 0, opts.UndoDepth),
		logMessages:  make([]*playable.LogMessage, 0),
		clients:      make(map[*Client]bool),
		stateChanged: make(chan event, 256),
		close:        make(chan bool),
	}

	d.turnStarted = d.now()
	return d
}

// Name returns the name of the table
func (d *Dealer) Name() string {
	return d.opts.Name
}

func (d *Dealer) now() time.Time {
	if d.opts.Clock != nil {
		return d.opts.Clock()
	}

	return time.Now()
}

// State returns the current snapshot
func (d *Dealer) State() texasholdem.TableState {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.state
}

// History returns every action taken at the table
func (d *Dealer) History() []texasholdem.ActionRecord {
	d.lock.Lock()
	defer d.lock.Unlock()

	history := make([]texasholdem.ActionRecord, len(d.state.ActionHistory))
	copy(history, d.state.ActionHistory)
	return history
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages() []*playable.LogMessage {
	d.lock.Lock()
	defer d.lock.Unlock()

	messages := make([]*playable.LogMessage, len(d.logMessages))
	copy(messages, d.logMessages)
	return messages
}

// GetState returns the current state of the table
func (d *Dealer) GetState() *playable.Response {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.stateResponse()
}

// NOTE: the lock must be held
func (d *Dealer) stateResponse() *playable.Response {
	messages := make([]*playable.LogMessage, len(d.logMessages))
	copy(messages, d.logMessages)

	return &playable.Response{
		Key: "tableState",
		Data: tableStateResponse{
			Name:  d.opts.Name,
			Table: d.state,
			Logs:  messages,
		},
	}
}

// commit replaces the current state and remembers the previous one for Undo
// NOTE: the lock must be held
func (d *Dealer) commit(next texasholdem.TableState) {
	if d.opts.UndoDepth > 0 {
		d.undo = append(d.undo, snapshot{state: d.state, handStart: d.handStart})
		if n := len(d.undo); n > d.opts.UndoDepth {
			d.undo = d.undo[n-d.opts.UndoDepth:]
		}
	}

	d.state = next
	d.turnStarted = d.now()
	d.notify(eventTable)
}

// notify asks the run loop to send an update, without ever blocking
func (d *Dealer) notify(e event) {
	select {
	case d.stateChanged <- e:
	default:
	}
}

// StartHand posts the blinds and starts a new hand
func (d *Dealer) StartHand() (texasholdem.TableState, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state.IsHandActive {
		return d.state, texasholdem.ErrHandInProgress
	}

	if len(d.state.Pots) > 0 {
		return d.state, ErrPotsNotDistributed
	}

	handStart := make(map[string]int, len(d.state.Players))
	for _, p := range d.state.Players {
		handStart[p.ID] = p.Chips
	}

	next := texasholdem.StartHand(d.state)
	d.commit(next)
	d.handStart = handStart

	if next.Phase == texasholdem.PhaseFinished {
		d.log.Info("not enough players to start a hand")
		d.addLogMessages(playable.SimpleLogMessageSlice("", "there are not enough players to start a hand"))
		return next, nil
	}

	d.log.WithFields(logrus.Fields{
		"dealer":     next.Players[next.DealerIndex].ID,
		"smallBlind": next.SmallBlind,
		"bigBlind":   next.BigBlind,
	}).Info("started hand")
	d.addLogMessages(playable.SimpleLogMessageSlice("", "started a new hand with blinds of %d/%d", next.SmallBlind, next.BigBlind))
	d.addPhaseLogMessage(texasholdem.PhasePreFlop, next.Phase)

	return next, nil
}

// Act takes an action for the player whose turn it is
// For a raise, amount is the new total bet for the round.
func (d *Dealer) Act(act action.Action, amount int) (texasholdem.TableState, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.act(act, amount)
}

// NOTE: the lock must be held
func (d *Dealer) act(act action.Action, amount int) (texasholdem.TableState, error) {
	prev := d.state
	next, err := texasholdem.ProcessAction(prev, act, amount, d.opts.Clock)
	if err != nil {
		d.log.WithError(err).WithField("action", act).Debug("rejected action")
		return prev, err
	}

	record := next.ActionHistory[len(next.ActionHistory)-1]
	p := prev.Players[prev.CurrentPlayerIndex]

	d.commit(next)

	d.log.WithFields(logrus.Fields{
		"player": p.ID,
		"action": act,
		"amount": record.Amount,
		"phase":  next.Phase,
	}).Info("processed action")
	d.addLogMessages(playable.SimpleLogMessageSlice(p.ID, "%s", act.LogMessage(record.Amount, p.CurrentBet+record.Amount)))
	d.addPhaseLogMessage(prev.Phase, next.Phase)

	return next, nil
}

// Distribute pays out the pots once the hand is over
// The returned details hold every player's net result for the hand.
func (d *Dealer) Distribute(winners texasholdem.Winners) (*playable.HandOverDetails, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	prev := d.state
	next, err := texasholdem.DistributePot(prev, winners)
	if err != nil {
		d.log.WithError(err).Debug("could not distribute the pots")
		return nil, err
	}

	adjustments := make(map[string]int)
	for i, p := range next.Players {
		if diff := p.Chips - prev.Players[i].Chips; diff > 0 {
			d.addLogMessages(playable.SimpleLogMessageSlice(p.ID, "won %d", diff))
		}

		if start, ok := d.handStart[p.ID]; ok && p.Chips != start {
			adjustments[p.ID] = p.Chips - start
		}
	}

	d.commit(next)
	d.log.WithField("adjustments", adjustments).Info("distributed the pots")

	return &playable.HandOverDetails{
		BalanceAdjustments: adjustments,
		Log:                prev.Pots,
	}, nil
}

// AdvanceDealer moves the button to the next player with chips
func (d *Dealer) AdvanceDealer() (texasholdem.TableState, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.state.IsHandActive {
		return d.state, texasholdem.ErrHandInProgress
	}

	next := texasholdem.AdvanceDealer(d.state)
	d.commit(next)
	d.log.WithField("dealerIndex", next.DealerIndex).Debug("moved the button")

	return next, nil
}

// Undo restores the table to how it was before the last change
func (d *Dealer) Undo() (texasholdem.TableState, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n := len(d.undo)
	if n == 0 {
		return d.state, ErrNothingToUndo
	}

	prev := d.undo[n-1]
	d.undo = d.undo[:n-1]

	d.state = prev.state
	d.handStart = prev.handStart
	d.turnStarted = d.now()
	d.notify(eventTable)

	d.log.WithField("remaining", n-1).Info("undid the last change")
	d.addLogMessages(playable.SimpleLogMessageSlice("", "the last change was undone"))

	return d.state, nil
}

// expireTurn acts for the current player if they held the action for longer than timeout
// They check when they can and fold otherwise.
func (d *Dealer) expireTurn(timeout time.Duration) (bool, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if timeout <= 0 || !d.state.IsHandActive {
		return false, nil
	}

	if d.now().Sub(d.turnStarted) < timeout {
		return false, nil
	}

	act := action.Fold
	if _, err := texasholdem.ValidateAction(d.state, action.Check, 0); err == nil {
		act = action.Check
	}

	if p, ok := d.state.CurrentPlayer(); ok {
		d.log.WithFields(logrus.Fields{"player": p.ID, "action": act}).Info("turn expired")
	}

	if _, err := d.act(act, 0); err != nil {
		return false, err
	}

	return true, nil
}

// Action performs the instruction in the message
// Betting actions carry the amount in additionalData.amount. Distribution takes
// additionalData.winners (every pot) or additionalData.winnersPerPot.
func (d *Dealer) Action(message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Action {
	case "startHand":
		if _, err := d.StartHand(); err != nil {
			return nil, false, err
		}
	case "advanceDealer":
		if _, err := d.AdvanceDealer(); err != nil {
			return nil, false, err
		}
	case "undo":
		if _, err := d.Undo(); err != nil {
			return nil, false, err
		}
	case "distribute":
		winners, err := winnersFromPayload(message.AdditionalData)
		if err != nil {
			return nil, false, err
		}

		details, err := d.Distribute(winners)
		if err != nil {
			return nil, false, err
		}

		res := playable.OK(message.Context)
		res.Data = details
		return res, true, nil
	default:
		act, err := action.FromString(message.Action)
		if err != nil {
			return nil, false, err
		}

		amount, _ := message.AdditionalData.GetInt("amount")
		if _, err := d.Act(act, amount); err != nil {
			return nil, false, err
		}
	}

	return playable.OK(message.Context), true, nil
}

func winnersFromPayload(data playable.AdditionalData) (texasholdem.Winners, error) {
	if strengths, ok := data.GetIntMap("strengths"); ok && len(strengths) > 0 {
		return texasholdem.ByStrength(strengths), nil
	}

	if perPot, ok := data.GetStringSlices("winnersPerPot"); ok {
		return texasholdem.PerPot(perPot...), nil
	}

	if winners, ok := data.GetStringSlice("winners"); ok && len(winners) > 0 {
		return texasholdem.AllPots(winners...), nil
	}

	return texasholdem.Winners{}, ErrWinnersRequired
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	res, _, err := d.Action(msg)
	if err != nil {
		d.log.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(playable.ErrorResponse(msg.Context, err))
		return
	}

	c.Send(res)
}
