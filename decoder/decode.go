package decoder

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// Decode finds the most likely logical coset consistent with a
// measured syndrome under an independent depolarizing channel of
// strength p, and returns one representative of that coset together
// with the predicted success probability.
//
// Steps:
//
//	1. Map the syndrome to its pure error, one concrete operator
//	   reproducing it.
//	2. Build the node tensors with per-qubit weights 1-p where the
//	   candidate symbol matches the pure error and p/3 elsewhere,
//	   keeping the coset leg of the logical-carrying node open.
//	3. Contract the network with the chosen strategy (nil defaults to
//	   BasicContract) into the four coset likelihoods.
//	4. The heaviest coset wins: the correction is the matching product
//	   of logical operators composed with the pure error, the success
//	   probability its share of the total likelihood.
//
// Only single-logical-qubit codes are supported (ErrNotSingleLogical);
// degenerate graphs are refused with tncode.ErrDegenerateGraph, and a
// vanishing likelihood total with ErrZeroWeight.
func Decode(c *tncode.Code, syndrome []int, p float64, strategy Strategy) (pauli.Operator, float64, error) {
	if c.NumLogicalQubits() != 1 {
		return nil, 0, ErrNotSingleLogical
	}
	if c.Graph().Degenerate() {
		return nil, 0, tncode.ErrDegenerateGraph
	}
	if p < 0 || p > 1 {
		return nil, 0, ErrProbability
	}
	simple := c.Simple()
	pure, err := simple.PureError(syndrome)
	if err != nil {
		return nil, 0, err
	}

	weightFor := func(q int, s pauli.Pauli) float64 {
		if s == pure[q] {
			return 1 - p
		}
		return p / 3
	}
	sites, err := buildNetwork(c, cosetOpen, weightFor)
	if err != nil {
		return nil, 0, err
	}
	if strategy == nil {
		strategy = BasicContract()
	}
	result, err := strategy.contract(sites)
	if err != nil {
		return nil, 0, err
	}
	weights, err := result.cosetVector()
	if err != nil {
		return nil, 0, err
	}

	total := floats.Sum(weights[:])
	if total <= 0 {
		return nil, 0, ErrZeroWeight
	}
	// Ties resolve to the lowest coset index, the identity.
	best := pauli.Pauli(floats.MaxIdx(weights[:]))

	// Operator spans are fixed by the verified code, so the products
	// cannot fail.
	a, b := cosetPowers(best)
	logical, _ := pauli.ProductPow(simple.Logicals(), []int{a, b})
	correction, _ := logical.Mul(pure)
	return correction, weights[best] / total, nil
}
