package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	act, err := FromString("raise")
	a.NoError(err)
	a.Equal(Raise, act)

	act, err = FromString("discard")
	a.EqualError(err, "unknown action for identifier: discard")
	a.Equal(Action(""), act)
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Call)
	a.NoError(err)
	a.Equal(`"call"`, string(b))

	var act Action
	a.NoError(json.Unmarshal([]byte(`"check"`), &act))
	a.Equal(Check, act)
	a.Error(json.Unmarshal([]byte(`"bet"`), &act))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0, 0))
	a.Equal("checked", Check.LogMessage(0, 20))
	a.Equal("called 15", Call.LogMessage(15, 20))
	a.Equal("raised to 60", Raise.LogMessage(40, 60))
	a.Equal("", Action("nope").LogMessage(1, 1))
	a.False(Action("nope").IsValid())
	a.True(Fold.IsValid())
	a.Equal("Raise", Raise.String())
}
