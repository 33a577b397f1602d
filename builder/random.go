package builder

import (
	"math/rand"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/tncode"
)

// RandomCode wraps code.RandomCode as a single-node network: a random
// [[n,k]] code drawn from rng.
func RandomCode(rng *rand.Rand, n, k int) (*tncode.Code, error) {
	s, err := code.RandomCode(rng, n, k)
	if err != nil {
		return nil, err
	}
	return tncode.FromSimple(s)
}

// RandomStabilizerState wraps code.RandomStabilizerState as a
// single-node network: a random [[n,0]] state.
func RandomStabilizerState(rng *rand.Rand, n int) (*tncode.Code, error) {
	s, err := code.RandomStabilizerState(rng, n)
	if err != nil {
		return nil, err
	}
	return tncode.FromSimple(s)
}
