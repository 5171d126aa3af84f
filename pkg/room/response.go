package room

import (
	"chiptracker/pkg/playable"
	"chiptracker/pkg/playable/poker/texasholdem"
)

type tableStateResponse struct {
	Name  string                 `json:"name"`
	Table texasholdem.TableState `json:"table"`
	Logs  []*playable.LogMessage `json:"logs"`
}
