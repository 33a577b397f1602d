package decoder

import (
	"errors"

	"github.com/katalvlaran/tncodes/pauli"
)

// Sentinel errors for decoding and enumeration.
var (
	// ErrNotSingleLogical rejects codes that expose other than exactly
	// four logical cosets; only one encoded qubit is supported.
	ErrNotSingleLogical = errors.New("decoder: code must carry exactly one logical qubit")
	// ErrProbability rejects depolarizing probabilities outside [0,1].
	ErrProbability = errors.New("decoder: error probability outside [0,1]")
	// ErrBondDimension rejects MPSContract bond dimensions below 1.
	ErrBondDimension = errors.New("decoder: bond dimension must be at least 1")
	// ErrNotLattice indicates the virtual nodes cannot be grouped into a
	// rectangular grid of rows, which the MPS sweep requires.
	ErrNotLattice = errors.New("decoder: nodes do not form a rectangular lattice")
	// ErrZeroWeight indicates every coset weight vanished, so no coset
	// can be selected. Reachable for p=0 with a nonzero syndrome.
	ErrZeroWeight = errors.New("decoder: all coset weights vanish")
	// ErrContraction indicates the tensor network contradicts the code
	// it was derived from.
	ErrContraction = errors.New("decoder: inconsistent tensor network")
)

// cosetLegID labels the open coset leg of the logical-carrying node.
// Graph tensor indices are non-negative, so negative ids are free for
// decoder-internal legs; ids below cosetLegID are truncation bonds.
const cosetLegID = -1

// cosetMode selects which logical cosets a node tensor covers.
type cosetMode int

const (
	// cosetIdentity restricts the node to its seed's stabilizer group.
	cosetIdentity cosetMode = iota
	// cosetAll sums the node over every logical coset of its seed.
	cosetAll
	// cosetOpen keeps the coset choice as an open 4-valued leg.
	cosetOpen
)

// site is one virtual node's reduced tensor with its grid placement.
type site struct {
	label  int
	coords [2]float64
	t      *tensor
}

// Strategy contracts a tensor network to its final open-leg tensor.
// The two implementations are BasicContract and MPSContract.
type Strategy interface {
	contract(sites []site) (*tensor, error)
}

// BasicContract returns the exact strategy: every node tensor is
// multiplied in node order. Memory grows with the largest intermediate
// tensor, which can be exponential in the bond count.
func BasicContract() Strategy { return basicStrategy{} }

// MPSContract returns the approximate strategy: node rows are swept as
// a matrix product state with every oversized bond truncated to
// bondDim singular values. A bondDim below 1 surfaces as
// ErrBondDimension when the strategy runs.
func MPSContract(bondDim int) Strategy { return mpsStrategy{bondDim: bondDim} }

// cosetPowers maps a coset label to the binary powers (a,b) of the
// logical pair, so the coset representative is xbar^a ∘ zbar^b.
func cosetPowers(l pauli.Pauli) (int, int) {
	a, b := 0, 0
	if l == pauli.X || l == pauli.Y {
		a = 1
	}
	if l == pauli.Y || l == pauli.Z {
		b = 1
	}
	return a, b
}

// cosetLabel is the inverse of cosetPowers.
func cosetLabel(a, b int) pauli.Pauli {
	switch {
	case a == 1 && b == 0:
		return pauli.X
	case a == 1 && b == 1:
		return pauli.Y
	case a == 0 && b == 1:
		return pauli.Z
	default:
		return pauli.I
	}
}
