package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand
type Crypto struct{}

var _ Generator = Crypto{}

// Intn returns a random number in [0, n)
// A non-positive n always returns zero.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
