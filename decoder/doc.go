// Package decoder turns the tensor network behind a tncode.Code into
// numbers: maximum-likelihood corrections for measured syndromes and
// exact weight enumerators for distance counting.
//
// What:
//
//   - Decode(c, syndrome, p, strategy) returns the most likely logical
//     coset for a depolarizing channel of strength p, as a concrete
//     correction operator and its success probability.
//   - BasicContract is the exact strategy: it folds the node tensors in
//     one pass and costs up to exponential memory in the bond count.
//   - MPSContract(bondDim) sweeps the nodes row by row as a matrix
//     product state, truncating every oversized bond to bondDim via a
//     singular value decomposition. Polynomial cost, approximate.
//   - OperatorWeights(c) counts the stabilizer group and the full
//     normalizer by operator weight; Distance(c) reads the code
//     distance off the first weight where the two counts differ.
//
// How:
//
//	Every virtual node contributes one small tensor, built by walking
//	the seed code's group: a leg per bond index (dimension 4, one slot
//	per Pauli symbol), physical legs folded away immediately against
//	per-qubit weights. For decoding the weights are error
//	probabilities conditioned on the pure error; for enumeration they
//	are monomials counting operator weight. The node holding the
//	logical qubit keeps a 4-valued coset leg open, so the contracted
//	network is the length-4 vector of coset likelihoods.
//
// Errors:
//
//	ErrNotSingleLogical - decoding supports exactly one logical qubit
//	ErrProbability      - error probability outside [0,1]
//	ErrBondDimension    - MPSContract bond dimension below 1
//	ErrNotLattice       - node coordinates do not form a grid MPSContract can sweep
//	ErrZeroWeight       - every coset weight vanished, nothing to choose
//	ErrContraction      - tensor network inconsistent with the code
//
// Degenerate graphs (self-contractions flagged by the surgery layer)
// have no usable bond structure and are refused with
// tncode.ErrDegenerateGraph.
package decoder
