package code

import "github.com/katalvlaran/tncodes/pauli"

// Gauge fixes one logical qubit by measuring a logical Pauli on it,
// turning an [[n,k]] code into an [[n,k-1]] code.
//
// Description:
//
//	The chosen logical operator (X, Y or Z on logical qubit
//	logicalQubit) joins the stabilizer group. Its anticommuting partner
//	from the same pair becomes the pure-error candidate for the new
//	stabilizer; the fix-up pass then restores the one-to-one
//	correspondence across the enlarged set. The pair disappears from the
//	logicals.
//
// Returns ErrLogicalIndex when logicalQubit is out of range and
// ErrGaugePauli when p is the identity.
func (c Simple) Gauge(logicalQubit int, p pauli.Pauli) (Simple, error) {
	if logicalQubit < 0 || logicalQubit >= c.NumLogicalQubits() {
		return Simple{}, ErrLogicalIndex
	}
	if p != pauli.X && p != pauli.Y && p != pauli.Z {
		return Simple{}, ErrGaugePauli
	}

	xBar := c.logicals[2*logicalQubit]
	zBar := c.logicals[2*logicalQubit+1]
	var promoted, partner pauli.Operator
	switch p {
	case pauli.X:
		promoted, partner = xBar.Clone(), zBar.Clone()
	case pauli.Z:
		promoted, partner = zBar.Clone(), xBar.Clone()
	default:
		yBar, err := xBar.Mul(zBar)
		if err != nil {
			return Simple{}, err
		}
		promoted, partner = yBar, xBar.Clone()
	}

	stabs := append(cloneOps(c.stabilizers), promoted)
	pure := append(cloneOps(c.pureErrors), partner)
	if err := fixPureErrors(pure, stabs); err != nil {
		return Simple{}, err
	}

	logicals := make([]pauli.Operator, 0, len(c.logicals)-2)
	for i, l := range c.logicals {
		if i/2 == logicalQubit {
			continue
		}
		logicals = append(logicals, l)
	}
	return NewFull(stabs, logicals, pure)
}

// Permute relabels the physical qubits: qubit i of the receiver becomes
// qubit perm[i] of the result, applied uniformly to stabilizers,
// logicals and pure errors.
//
// Returns ErrBadPermutation unless perm is a permutation of 0..n-1.
func (c Simple) Permute(perm []int) (Simple, error) {
	if len(perm) != c.n {
		return Simple{}, ErrBadPermutation
	}
	seen := make([]bool, c.n)
	for _, target := range perm {
		if target < 0 || target >= c.n || seen[target] {
			return Simple{}, ErrBadPermutation
		}
		seen[target] = true
	}

	apply := func(ops []pauli.Operator) []pauli.Operator {
		out := make([]pauli.Operator, len(ops))
		for i, op := range ops {
			moved := pauli.Identity(c.n)
			for q, s := range op {
				moved[perm[q]] = s
			}
			out[i] = moved
		}
		return out
	}
	return NewFull(apply(c.stabilizers), apply(c.logicals), apply(c.pureErrors))
}

// Purify extends an [[n,k]] code to an [[n+k,0]] stabilizer state by
// entangling every logical qubit with a fresh ancilla.
//
// Each old stabilizer is padded with identities on the ancillas. Logical
// pair i contributes two new stabilizers: its X side with an extra X on
// ancilla i and its Z side with an extra Z there. Pure errors are
// rederived for the extended set.
func (c Simple) Purify() (Simple, error) {
	k := c.NumLogicalQubits()
	nn := c.n + k

	stabs := make([]pauli.Operator, 0, len(c.stabilizers)+len(c.logicals))
	for _, s := range c.stabilizers {
		padded := pauli.Identity(nn)
		copy(padded, s)
		stabs = append(stabs, padded)
	}
	for i := 0; i < k; i++ {
		x := pauli.Identity(nn)
		copy(x, c.logicals[2*i])
		x[c.n+i] = pauli.X
		z := pauli.Identity(nn)
		copy(z, c.logicals[2*i+1])
		z[c.n+i] = pauli.Z
		stabs = append(stabs, x, z)
	}

	pure, err := FindPureErrors(stabs)
	if err != nil {
		return Simple{}, err
	}
	return NewFull(stabs, nil, pure)
}
