package code

import "github.com/katalvlaran/tncodes/pauli"

// FindPureErrors derives the pure errors of an independent,
// pairwise-commuting stabilizer set: operator i of the result
// anticommutes with stabilizer i and commutes with every other one.
//
// Description:
//
//	Two phases. The first runs the symplectic elimination sweep over
//	qubit positions and, at the moment each pivot is discovered, emits a
//	single-qubit candidate that anticommutes with it: for a pivot pair
//	the two candidates carry each other's symbol at that qubit, a lone
//	pivot gets any anticommuting symbol. The sweep yields exactly one
//	candidate per stabilizer but in elimination order, so the second
//	phase reorders and multiplies candidates until the one-to-one
//	correspondence holds.
//
// Steps:
//
//	1. Copy the stabilizers into a scratch set; mark all as remaining.
//	2. For each qubit, left to right:
//	   2a. Find up to two pivots with distinct non-identity symbols.
//	   2b. Emit the pivot candidates (delta operators at this qubit).
//	   2c. Eliminate the qubit from all other remaining stabilizers;
//	       a degenerated operator means dependence.
//	   2d. Retire the pivots.
//	3. Fail if anything remains unretired (dependent input).
//	4. Run the fix-up pass against the original stabilizers.
//
// Complexity: O(r²×n). Memory: O(r×n).
//
// Returns ErrDependentStabilizers from the sweep, ErrPureErrorMatch from
// the fix-up pass and ErrLengthMismatch on ragged input.
func FindPureErrors(stabilizers []pauli.Operator) ([]pauli.Operator, error) {
	if len(stabilizers) == 0 {
		return nil, nil
	}
	n := len(stabilizers[0])
	work := make([]pauli.Operator, len(stabilizers))
	for i, op := range stabilizers {
		if len(op) != n {
			return nil, ErrLengthMismatch
		}
		work[i] = op.Clone()
	}

	remaining := make([]int, len(work))
	for i := range remaining {
		remaining[i] = i
	}
	pure := make([]pauli.Operator, 0, len(work))

	for q := 0; q < n; q++ {
		// 2a) pivot scan.
		var pivIdx [2]int
		var pivSym [2]pauli.Pauli
		found := 0
		for _, alpha := range remaining {
			s := work[alpha][q]
			if s == pauli.I || (found == 1 && s == pivSym[0]) {
				continue
			}
			pivIdx[found], pivSym[found] = alpha, s
			found++
			if found == 2 {
				break
			}
		}
		if found == 0 {
			continue
		}

		// 2b) emit candidates valued with the complementary pivot symbol.
		if found == 1 {
			d := pauli.Identity(n)
			d[q] = anticommutingSymbol(pivSym[0])
			pure = append(pure, d)
		} else {
			d1 := pauli.Identity(n)
			d1[q] = pivSym[1]
			d2 := pauli.Identity(n)
			d2[q] = pivSym[0]
			pure = append(pure, d1, d2)
		}

		// 2c) eliminate qubit q elsewhere.
		for _, beta := range remaining {
			if beta == pivIdx[0] || (found == 2 && beta == pivIdx[1]) {
				continue
			}
			s := work[beta][q]
			if s == pauli.I {
				continue
			}
			switch {
			case s == pivSym[0]:
				mulAssign(work[beta], work[pivIdx[0]])
			case found == 2 && s == pivSym[1]:
				mulAssign(work[beta], work[pivIdx[1]])
			default:
				mulAssign(work[beta], work[pivIdx[0]])
				mulAssign(work[beta], work[pivIdx[1]])
			}
			if work[beta].IsIdentity() {
				return nil, ErrDependentStabilizers
			}
		}

		// 2d) retire pivots.
		kept := remaining[:0]
		for _, idx := range remaining {
			if idx == pivIdx[0] || (found == 2 && idx == pivIdx[1]) {
				continue
			}
			kept = append(kept, idx)
		}
		remaining = kept
	}

	// 3) anything left was all-identity from the start.
	if len(remaining) != 0 {
		return nil, ErrDependentStabilizers
	}

	// 4) establish the one-to-one correspondence.
	if err := fixPureErrors(pure, stabilizers); err != nil {
		return nil, err
	}
	return pure, nil
}

// fixPureErrors reorders and multiplies candidates in place until
// candidate i anticommutes with stabilizer i and commutes with the rest.
//
// For each stabilizer in turn it swaps forward a candidate that
// anticommutes with it, then multiplies that candidate into every other
// candidate still anticommuting. Earlier columns stay fixed because the
// swapped candidate commutes with all earlier stabilizers by induction.
func fixPureErrors(pure []pauli.Operator, stabilizers []pauli.Operator) error {
	if len(pure) != len(stabilizers) {
		return ErrPureErrorMatch
	}
	r := len(stabilizers)
	for alpha := 0; alpha < r; alpha++ {
		matched := false
		for beta := alpha; beta < r; beta++ {
			com, err := stabilizers[alpha].Commutation(pure[beta])
			if err != nil {
				return err
			}
			if com == 1 {
				pure[alpha], pure[beta] = pure[beta], pure[alpha]
				matched = true
				break
			}
		}
		if !matched {
			return ErrPureErrorMatch
		}
		for beta := 0; beta < r; beta++ {
			if beta == alpha {
				continue
			}
			com, err := stabilizers[alpha].Commutation(pure[beta])
			if err != nil {
				return err
			}
			if com == 1 {
				mulAssign(pure[beta], pure[alpha])
			}
		}
	}
	return nil
}

// anticommutingSymbol returns a symbol anticommuting with p: Z for X,
// X otherwise.
func anticommutingSymbol(p pauli.Pauli) pauli.Pauli {
	if p == pauli.X {
		return pauli.Z
	}
	return pauli.X
}

// mulAssign multiplies src into dst elementwise, in place.
// Callers guarantee equal lengths.
func mulAssign(dst, src pauli.Operator) {
	for i := range dst {
		dst[i] = pauli.Product(dst[i], src[i])
	}
}
