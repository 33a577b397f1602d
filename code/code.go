package code

import "github.com/katalvlaran/tncodes/pauli"

// New builds a code from stabilizer generators and paired logicals,
// deriving the pure errors with FindPureErrors. All validity invariants
// are checked; the first violated one is returned.
func New(stabilizers, logicals []pauli.Operator) (Simple, error) {
	pure, err := FindPureErrors(stabilizers)
	if err != nil {
		return Simple{}, err
	}
	return NewFull(stabilizers, logicals, pure)
}

// NewFull builds a code from explicit stabilizers, logicals and pure
// errors, validating every invariant: consistent lengths and counts,
// pairwise-commuting independent stabilizers, logicals commuting with
// the stabilizers and forming anticommuting X/Z pairs, and pure error i
// anticommuting with exactly stabilizer i.
func NewFull(stabilizers, logicals, pureErrors []pauli.Operator) (Simple, error) {
	c := Simple{
		n:           qubitCount(stabilizers, logicals),
		stabilizers: cloneOps(stabilizers),
		logicals:    cloneOps(logicals),
		pureErrors:  cloneOps(pureErrors),
	}
	if err := c.Verify(); err != nil {
		return Simple{}, err
	}
	return c, nil
}

// qubitCount reads n off the first available operator.
func qubitCount(stabilizers, logicals []pauli.Operator) int {
	if len(stabilizers) > 0 {
		return len(stabilizers[0])
	}
	if len(logicals) > 0 {
		return len(logicals[0])
	}
	return 0
}

func cloneOps(ops []pauli.Operator) []pauli.Operator {
	out := make([]pauli.Operator, len(ops))
	for i, op := range ops {
		out[i] = op.Clone()
	}
	return out
}

// NumQubits returns n, the number of physical qubits.
func (c Simple) NumQubits() int { return c.n }

// NumStabilizers returns r, the number of stabilizer generators.
func (c Simple) NumStabilizers() int { return len(c.stabilizers) }

// NumLogicalQubits returns k, the number of encoded qubits (logical
// operator pairs).
func (c Simple) NumLogicalQubits() int { return len(c.logicals) / 2 }

// Stabilizers returns a deep copy of the stabilizer generators.
func (c Simple) Stabilizers() []pauli.Operator { return cloneOps(c.stabilizers) }

// Logicals returns a deep copy of the logical operators, X/Z interleaved.
func (c Simple) Logicals() []pauli.Operator { return cloneOps(c.logicals) }

// PureErrors returns a deep copy of the pure errors, aligned with the
// stabilizer order.
func (c Simple) PureErrors() []pauli.Operator { return cloneOps(c.pureErrors) }

// Clone returns an independent copy of the code.
func (c Simple) Clone() Simple {
	return Simple{
		n:           c.n,
		stabilizers: cloneOps(c.stabilizers),
		logicals:    cloneOps(c.logicals),
		pureErrors:  cloneOps(c.pureErrors),
	}
}

// Syndrome returns the commutation of err against each stabilizer
// generator, in order. Returns ErrLengthMismatch if err acts on a
// different qubit count.
func (c Simple) Syndrome(err pauli.Operator) ([]int, error) {
	if len(err) != c.n {
		return nil, ErrLengthMismatch
	}
	out := make([]int, len(c.stabilizers))
	for i, s := range c.stabilizers {
		com, cerr := s.Commutation(err)
		if cerr != nil {
			return nil, cerr
		}
		out[i] = com
	}
	return out, nil
}

// PureError returns the canonical representative error for a syndrome:
// the product of pure errors raised to the syndrome bits. Its syndrome
// is the input syndrome. Returns ErrSyndromeLength on a size mismatch.
func (c Simple) PureError(syndrome []int) (pauli.Operator, error) {
	if len(syndrome) != len(c.pureErrors) {
		return nil, ErrSyndromeLength
	}
	op, err := pauli.ProductPow(c.pureErrors, syndrome)
	if err != nil {
		return nil, err
	}
	if len(c.pureErrors) == 0 {
		return pauli.Identity(c.n), nil
	}
	return op, nil
}
