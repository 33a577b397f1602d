// Package code implements stabilizer quantum error-correcting codes over
// the integer Pauli representation of package pauli.
//
// What:
//
//   - Simple is a stabilizer code: r independent, pairwise-commuting
//     stabilizer generators on n qubits, k logical-qubit pairs of
//     anticommuting logical operators (X-like and Z-like, interleaved),
//     and r pure errors, where n = r + k.
//   - Pure error i anticommutes with stabilizer i and commutes with every
//     other stabilizer, so any measured syndrome maps to a representative
//     error by a product of pure errors (PureError), and any error maps
//     to its syndrome by commutation against the generators (Syndrome).
//   - FindPureErrors derives the pure errors for any independent
//     generator set in two phases: a disordered elimination sweep that
//     emits single-qubit candidates at each pivot, then a fix-up pass
//     that reorders and multiplies candidates until the correspondence
//     invariant holds.
//   - Gauge, Permute and Purify are pure transforms returning new codes;
//     DistanceLogicals enumerates minimum-weight logical operators;
//     RandomCode and RandomStabilizerState sample valid codes from an
//     explicitly threaded RNG.
//
// Why:
//
//   - These are the bricks tensor-network codes are assembled from: the
//     tncode package glues Simple codes along graphs, and the decoder
//     turns their coset structure into contractable tensors.
//
// Complexity (n qubits, r stabilizers):
//
//   - Syndrome/PureError:     O(r×n).
//   - FindPureErrors:         O(r²×n).
//   - Gauge/Permute/Purify:   O(r²×n).
//   - DistanceLogicals:       O(C(n,w)×3^w×r×n) up to the found weight w.
//
// Errors: see the sentinel set in types.go; constructors and transforms
// return them directly, tests match with errors.Is.
package code
