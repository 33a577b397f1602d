package code

import "github.com/katalvlaran/tncodes/pauli"

// DefaultMaxWeight places no explicit cap on the distance search, which
// then runs up to the qubit count.
const DefaultMaxWeight = 0

// distanceConfig carries the tunables of DistanceLogicals.
type distanceConfig struct {
	maxWeight int
}

// DistanceOption adjusts the distance search.
type DistanceOption func(*distanceConfig)

// WithMaxWeight caps the search at weight w. When no logical operator
// exists up to the cap, DistanceLogicals reports ErrDistanceNotFound
// instead of enumerating heavier operators.
func WithMaxWeight(w int) DistanceOption {
	return func(cfg *distanceConfig) { cfg.maxWeight = w }
}

// DistanceLogicals finds the code distance by brute force and returns
// it together with every logical operator of that weight.
//
// Description:
//
//	Weights are tried in increasing order. For each weight w the search
//	enumerates all position subsets of size w and all 3^w non-identity
//	symbol assignments, keeping operators that commute with every
//	stabilizer and anticommute with at least one logical. The first
//	weight with a non-empty harvest is the distance.
//
// Complexity: O(C(n,d)×3^d×(r+k)×n) with d the reported distance, so
// practical for small codes only. Use WithMaxWeight to bound the cost.
//
// Returns ErrNoLogicals when the code encodes nothing and
// ErrDistanceNotFound when a cap cuts the search short.
func (c Simple) DistanceLogicals(opts ...DistanceOption) (int, []pauli.Operator, error) {
	if c.NumLogicalQubits() == 0 {
		return 0, nil, ErrNoLogicals
	}
	cfg := distanceConfig{maxWeight: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	limit := c.n
	if cfg.maxWeight > 0 && cfg.maxWeight < limit {
		limit = cfg.maxWeight
	}

	scratch := pauli.Identity(c.n)
	for w := 1; w <= limit; w++ {
		var found []pauli.Operator
		c.searchWeight(scratch, 0, w, &found)
		if len(found) > 0 {
			return w, found, nil
		}
	}
	return 0, nil, ErrDistanceNotFound
}

// searchWeight visits every operator with exactly left more non-identity
// symbols placed on qubits from index from upward, mutating op as shared
// scratch and collecting logical hits.
func (c Simple) searchWeight(op pauli.Operator, from, left int, found *[]pauli.Operator) {
	if left == 0 {
		if c.isLogical(op) {
			*found = append(*found, op.Clone())
		}
		return
	}
	for q := from; q <= c.n-left; q++ {
		for _, s := range [...]pauli.Pauli{pauli.X, pauli.Y, pauli.Z} {
			op[q] = s
			c.searchWeight(op, q+1, left-1, found)
		}
		op[q] = pauli.I
	}
}

// isLogical reports whether op commutes with every stabilizer and
// anticommutes with at least one logical. Commutation errors cannot
// occur here: a verified code keeps all spans equal.
func (c Simple) isLogical(op pauli.Operator) bool {
	for _, s := range c.stabilizers {
		if com, _ := s.Commutation(op); com != 0 {
			return false
		}
	}
	for _, l := range c.logicals {
		if com, _ := l.Commutation(op); com == 1 {
			return true
		}
	}
	return false
}
