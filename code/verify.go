package code

import "github.com/katalvlaran/tncodes/pauli"

// Verify checks every structural invariant of the code and returns the
// first violation found.
//
// Checks, in order:
//
//	1. Every operator spans exactly NumQubits qubits.
//	2. Logicals come in pairs, pure errors match stabilizers one to one
//	   and the qubit count equals stabilizers plus logical pairs.
//	3. Stabilizers pairwise commute.
//	4. Stabilizers are independent.
//	5. Logicals commute with all stabilizers; within a pair the X side
//	   anticommutes with the Z side; operators of distinct pairs commute.
//	6. Pure error j anticommutes with stabilizer j and no other.
//
// Returns nil for a valid code. Complexity: O((r+k)²×n).
func (c Simple) Verify() error {
	// 1) spans.
	for _, group := range [][]pauli.Operator{c.stabilizers, c.logicals, c.pureErrors} {
		for _, op := range group {
			if len(op) != c.n {
				return ErrLengthMismatch
			}
		}
	}

	// 2) counts.
	if len(c.logicals)%2 != 0 {
		return ErrCounts
	}
	if len(c.pureErrors) != len(c.stabilizers) {
		return ErrCounts
	}
	if c.n != len(c.stabilizers)+len(c.logicals)/2 {
		return ErrCounts
	}

	// 3) stabilizers commute.
	for i := range c.stabilizers {
		for j := i + 1; j < len(c.stabilizers); j++ {
			com, err := c.stabilizers[i].Commutation(c.stabilizers[j])
			if err != nil {
				return err
			}
			if com != 0 {
				return ErrNonCommuting
			}
		}
	}

	// 4) stabilizers independent.
	if !pauli.AreIndependent(c.stabilizers) {
		return ErrDependentStabilizers
	}

	// 5) logical structure.
	for i, l := range c.logicals {
		for _, s := range c.stabilizers {
			com, err := l.Commutation(s)
			if err != nil {
				return err
			}
			if com != 0 {
				return ErrLogicalStructure
			}
		}
		for j := i + 1; j < len(c.logicals); j++ {
			com, err := l.Commutation(c.logicals[j])
			if err != nil {
				return err
			}
			samePair := i%2 == 0 && j == i+1
			if samePair && com != 1 {
				return ErrLogicalStructure
			}
			if !samePair && com != 0 {
				return ErrLogicalStructure
			}
		}
	}

	// 6) pure errors flip exactly their own stabilizer.
	for i, s := range c.stabilizers {
		for j, p := range c.pureErrors {
			com, err := s.Commutation(p)
			if err != nil {
				return err
			}
			want := 0
			if i == j {
				want = 1
			}
			if com != want {
				return ErrPureErrorMatch
			}
		}
	}
	return nil
}
