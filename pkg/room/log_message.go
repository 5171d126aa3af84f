package room

import (
	"chiptracker/pkg/playable"
	"chiptracker/pkg/playable/poker/texasholdem"
)

const logMessageLimit = 25

// addLogMessages adds log messages, keeping the most recent ones
// NOTE: the lock must be held
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// addPhaseLogMessage announces the phases the hand moved through
// NOTE: the lock must be held
func (d *Dealer) addPhaseLogMessage(prev, next texasholdem.Phase) {
	if prev == next {
		return
	}

	switch next {
	case texasholdem.PhaseFlop, texasholdem.PhaseTurn, texasholdem.PhaseRiver:
		d.addLogMessages(playable.SimpleLogMessageSlice("", "betting on the %s", next))
	case texasholdem.PhaseShowdown:
		d.addLogMessages(playable.SimpleLogMessageSlice("", "the hand is over, waiting for the winners"))
	}
}
