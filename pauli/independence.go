package pauli

// AreIndependent reports whether no operator in ops can be written as a
// product of the others.
//
// Description:
//
//	Symplectic Gaussian elimination over qubit positions. Operators of
//	differing lengths never generate each other and report false; an
//	empty list is trivially independent; the all-identity operator is
//	the empty product and therefore always dependent.
//
// Steps:
//
//	1. Copy the operators into a scratch set and mark all as remaining.
//	2. For each qubit position, left to right:
//	   2a. Scan the remaining operators for up to two "pivots" carrying
//	       distinct non-identity symbols at this position.
//	   2b. Multiply pivot combinations into every other remaining
//	       operator until its symbol at this position is the identity.
//	   2c. If an operator degenerates to the all-identity vector,
//	       declare dependence.
//	   2d. Retire the pivots from the remaining set.
//	3. Independent exactly when every operator was retired as a pivot.
//
// Complexity: O(k²×n) for k operators on n qubits. Memory: O(k×n).
func AreIndependent(ops []Operator) bool {
	if len(ops) == 0 {
		return true
	}
	n := len(ops[0])
	work := make([]Operator, len(ops))
	for i, op := range ops {
		if len(op) != n {
			return false
		}
		work[i] = op.Clone()
	}

	remaining := make([]int, len(ops))
	for i := range remaining {
		remaining[i] = i
	}

	for q := 0; q < n; q++ {
		// 2a) locate up to two pivots with distinct symbols at qubit q.
		pivIdx, pivSym, found := findPivots(work, remaining, q)
		if found == 0 {
			continue
		}
		// 2b) eliminate qubit q from every non-pivot operator.
		for _, beta := range remaining {
			if beta == pivIdx[0] || (found == 2 && beta == pivIdx[1]) {
				continue
			}
			if !eliminate(work, beta, q, pivIdx, pivSym, found) {
				continue
			}
			// 2c) a dependency collapsed this operator to the identity.
			if work[beta].IsIdentity() {
				return false
			}
		}
		// 2d) retire the pivots.
		remaining = retire(remaining, pivIdx, found)
	}
	// 3) unretired operators were all-identity from the start.
	return len(remaining) == 0
}

// findPivots scans remaining operators for up to two carrying distinct
// non-identity symbols at qubit q.
func findPivots(work []Operator, remaining []int, q int) (pivIdx [2]int, pivSym [2]Pauli, found int) {
	for _, alpha := range remaining {
		s := work[alpha][q]
		if s == I || (found == 1 && s == pivSym[0]) {
			continue
		}
		pivIdx[found], pivSym[found] = alpha, s
		found++
		if found == 2 {
			return
		}
	}
	return
}

// eliminate clears qubit q of work[beta] by multiplying in pivots.
// Reports whether a multiplication happened. With a single pivot the
// pivot scan guarantees the only non-identity symbol left matches it;
// with two pivots the third symbol is their product.
func eliminate(work []Operator, beta, q int, pivIdx [2]int, pivSym [2]Pauli, found int) bool {
	s := work[beta][q]
	switch {
	case s == I:
		return false
	case s == pivSym[0]:
		mulInto(work[beta], work[pivIdx[0]])
	case found == 2 && s == pivSym[1]:
		mulInto(work[beta], work[pivIdx[1]])
	default:
		mulInto(work[beta], work[pivIdx[0]])
		mulInto(work[beta], work[pivIdx[1]])
	}
	return true
}

// retire removes the pivot indices from the remaining set, preserving order.
func retire(remaining []int, pivIdx [2]int, found int) []int {
	out := remaining[:0]
	for _, idx := range remaining {
		if idx == pivIdx[0] || (found == 2 && idx == pivIdx[1]) {
			continue
		}
		out = append(out, idx)
	}
	return out
}
