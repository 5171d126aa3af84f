package util

import (
	"math/rand"
	"strings"
	"testing"

	"chiptracker/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)
	defer func() {
		random = rng.Crypto{}
	}()

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := GetRandomName()

	parts := strings.Split(first, " ")
	a.Len(parts, 2)
	a.Contains(adjectives, parts[0])
	a.Contains(animals, parts[1])

	// the same seed gives the same names
	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a.Equal(first, GetRandomName())
}
