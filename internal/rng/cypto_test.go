package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.Len(found, 5)
	for i := 0; i < 5; i++ {
		a.True(found[i])
	}

	a.Equal(0, c.Intn(0))
	a.Equal(0, c.Intn(-3))
	a.Equal(0, c.Intn(1))
}
