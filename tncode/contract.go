package tncode

import (
	"fmt"
	"math"
)

// Contract glues two codes together: Combine followed by Fusion. Pair
// indices are given in the pre-combine numbering, the first component
// indexing a's qubits and the second b's.
func Contract(a, b *Code, pairs [][2]int, opts *SurgeryOptions) (*Code, error) {
	combined, err := Combine(a, b)
	if err != nil {
		return nil, err
	}
	nA := a.NumQubits()
	shifted := make([][2]int, len(pairs))
	for idx, p := range pairs {
		shifted[idx] = [2]int{p[0], p[1] + nA}
	}
	return Fusion(combined, shifted, opts)
}

// ContractByCoords contracts every pair of physical qubits of a and b
// whose coordinates coincide within Epsilon (a zero Epsilon falls back
// to DefaultEpsilon). Pairs are discovered in ascending qubit order.
//
// Returns ErrNoCoincidentQubits when the layouts share no qubit
// positions.
func ContractByCoords(a, b *Code, opts *SurgeryOptions) (*Code, error) {
	options := DefaultSurgeryOptions()
	if opts != nil {
		options = *opts
	}
	if options.Epsilon == 0 {
		options.Epsilon = DefaultEpsilon
	}

	var pairs [][2]int
	for _, qa := range a.graph.PhysicalNodes() {
		ca := a.graph.nodes[qa].coords
		for _, qb := range b.graph.PhysicalNodes() {
			cb := b.graph.nodes[qb].coords
			if math.Abs(ca[0]-cb[0]) <= options.Epsilon && math.Abs(ca[1]-cb[1]) <= options.Epsilon {
				pairs = append(pairs, [2]int{qa, qb})
			}
		}
	}
	if len(pairs) == 0 {
		return nil, ErrNoCoincidentQubits
	}
	if options.Verbose {
		fmt.Printf("tncode: contracting %d coinciding qubit pairs\n", len(pairs))
	}
	return Contract(a, b, pairs, &options)
}
