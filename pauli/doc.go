// Package pauli implements the phase-free algebra of n-qubit Pauli
// operators used throughout tncodes.
//
// What:
//
//   - Pauli is a single-qubit symbol: I, X, Y or Z, stored as an integer.
//   - Operator is an n-qubit operator: a slice of symbols, one per qubit.
//   - Products, powers, weights and commutation are pure functions; global
//     phases are dropped, so every symbol is its own inverse and the
//     product of two distinct non-identity symbols is the third.
//   - Commutation is binary: 0 when two operators commute, 1 when they
//     anticommute (the parity of per-qubit anticommutations).
//   - AreIndependent runs a symplectic Gaussian elimination over qubit
//     positions and reports whether no operator is a product of others.
//
// Why:
//
//   - Stabilizer codes, syndromes and pure errors reduce to this algebra.
//   - The integer representation keeps group operations branch-light and
//     allocation-free on the hot paths of fusion and decoding.
//
// Complexity:
//
//   - Symbol ops:          O(1).
//   - Operator ops:        O(n).
//   - ProductPow:          O(k×n) for k operators.
//   - AreIndependent:      O(k²×n) worst case.
//
// Errors:
//
//   - ErrLengthMismatch: operands act on different qubit counts.
//   - ErrPowerCount: ProductPow received mismatched list lengths.
//   - ErrBadSymbol: Parse met a rune outside "IXYZ".
package pauli
