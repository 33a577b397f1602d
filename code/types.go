package code

import (
	"errors"

	"github.com/katalvlaran/tncodes/pauli"
)

// Sentinel errors for code construction and transforms.
var (
	// ErrLengthMismatch indicates an operator whose length differs from the
	// code's qubit count.
	ErrLengthMismatch = errors.New("code: operator length mismatch")
	// ErrCounts indicates inconsistent stabilizer, logical and qubit counts
	// (the code must satisfy n = r + k with paired logicals).
	ErrCounts = errors.New("code: stabilizer, logical and qubit counts are inconsistent")
	// ErrNonCommuting indicates two stabilizer generators anticommute.
	ErrNonCommuting = errors.New("code: stabilizers do not pairwise commute")
	// ErrDependentStabilizers indicates the generators are not independent.
	ErrDependentStabilizers = errors.New("code: stabilizers are not independent")
	// ErrLogicalStructure indicates logicals that anticommute with a
	// stabilizer or violate the X/Z pairing structure.
	ErrLogicalStructure = errors.New("code: logicals violate the pairing structure")
	// ErrPureErrorMatch indicates pure errors that cannot be brought into
	// one-to-one correspondence with the stabilizers.
	ErrPureErrorMatch = errors.New("code: pure errors do not match stabilizers")
	// ErrSyndromeLength indicates a syndrome whose length differs from the
	// stabilizer count.
	ErrSyndromeLength = errors.New("code: syndrome length does not match stabilizer count")
	// ErrLogicalIndex indicates a logical qubit index out of range.
	ErrLogicalIndex = errors.New("code: logical qubit index out of range")
	// ErrGaugePauli indicates a gauge request with the identity symbol.
	ErrGaugePauli = errors.New("code: gauge symbol must be X, Y or Z")
	// ErrBadPermutation indicates a permutation that is not a bijection on
	// the qubit positions.
	ErrBadPermutation = errors.New("code: permutation is not a bijection on qubits")
	// ErrNoLogicals indicates a distance query on a code without logical qubits.
	ErrNoLogicals = errors.New("code: code has no logical qubits")
	// ErrDistanceNotFound indicates no logical operator exists within the
	// configured weight cap.
	ErrDistanceNotFound = errors.New("code: no logical operator within the weight cap")
	// ErrBadSize indicates an invalid qubit or logical count for sampling.
	ErrBadSize = errors.New("code: invalid qubit or logical count")
	// ErrSampling indicates random sampling exhausted its retry budget.
	ErrSampling = errors.New("code: random sampling exceeded retry budget")
)

// Simple is a stabilizer code. The zero value is the empty code on zero
// qubits. Instances are immutable: accessors return deep copies and
// transforms build new instances.
type Simple struct {
	n           int
	stabilizers []pauli.Operator
	logicals    []pauli.Operator // X/Z interleaved: logicals[2i] ~ X̄ᵢ, logicals[2i+1] ~ Z̄ᵢ
	pureErrors  []pauli.Operator
}
