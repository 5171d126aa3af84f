package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Playable is a table that takes instructions from a client
type Playable interface {
	// Action performs with a message
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetState returns the current state of the table
	GetState() *Response

	// Name returns the name of the table
	Name() string
}

// LogMessage is the format a table should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []string  `json:"playerIds"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns a response describing an error
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// HandOverDetails provides details on how a hand ended
type HandOverDetails struct {
	BalanceAdjustments map[string]int `json:"balanceAdjustments"`
	Log                interface{}    `json:"log"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// GetStringSlice returns a slice of strings
func (a AdditionalData) GetStringSlice(key string) ([]string, bool) {
	switch slice := a[key].(type) {
	case []string:
		return slice, true
	case []interface{}:
		strs := make([]string, len(slice))
		for i, val := range slice {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}

			strs[i] = s
		}
		return strs, true
	}

	return nil, false
}

// GetIntMap returns an object of integers, e.g., the hand strength of every player
func (a AdditionalData) GetIntMap(key string) (map[string]int, bool) {
	raw, ok := a[key].(map[string]interface{})
	if !ok {
		return nil, false
	}

	ints := make(map[string]int, len(raw))
	for k, val := range raw {
		floatVal, ok := val.(float64)
		if !ok {
			return nil, false
		}

		ints[k] = int(floatVal)
	}

	return ints, true
}

// GetStringSlices returns a slice of string slices, e.g., the winners of every pot
func (a AdditionalData) GetStringSlices(key string) ([][]string, bool) {
	raw, ok := a[key].([]interface{})
	if !ok {
		return nil, false
	}

	slices := make([][]string, len(raw))
	for i, val := range raw {
		s, ok := AdditionalData{"v": val}.GetStringSlice("v")
		if !ok {
			return nil, false
		}

		slices[i] = s
	}

	return slices, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}
