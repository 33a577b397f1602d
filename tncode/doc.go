// Package tncode layers a tensor-network structure over stabilizer
// codes: every code carries a graph of physical qubits and virtual
// seed-code nodes, and grows by gluing smaller codes together.
//
// What:
//
//   - Code: a code.Simple plus a CodeGraph (node coordinates, node and
//     edge types, tensor index lists) plus a registry of the seed codes
//     behind each virtual node.
//   - FromSimple wraps any code.Simple as a single-node network.
//   - Combine forms the disjoint union of two codes.
//   - Fusion eliminates physical-qubit pairs by simulating a joint
//     XX/ZZ measurement, stitching the graph across a new bond edge.
//   - Contract = Combine then Fusion; ContractByCoords discovers the
//     pairs from coinciding qubit coordinates.
//
// Why:
//
//	Large codes assembled from small seeds keep an exact record of how
//	they were built. The decoder package walks this record to build one
//	small tensor per virtual node instead of one exponential tensor for
//	the whole code, and plotting layers read the coordinates directly.
//
// Graph conventions:
//
//	Physical qubits are labeled 0..n-1, virtual nodes -1,-2,... Virtual
//	node -v hosts seed slot lists whose length equals the seed's qubit
//	count. Edges are unordered label pairs typed "physical" (qubit to
//	its virtual node) or "bond" (between virtual nodes, created by
//	fusion). Tensor indices are integers unique within one Code; an
//	edge's indices appear in the index lists of both endpoints.
//
// Degenerate contractions:
//
//	Fusing a pair whose far endpoints are the same virtual node leaves
//	no room for a bond edge. The operator algebra still goes through,
//	but the graph is marked degenerate and the decoder refuses it.
//
// Errors:
//
//	ErrFusionLogical      - fusing the pair would collapse a logical qubit
//	ErrQubitPair          - malformed, out-of-range or reused qubit pair
//	ErrNoCoincidentQubits - ContractByCoords found nothing to glue
//	ErrBadCoords          - coordinate list does not match the qubit count
//	ErrUnknownSeed        - seed name missing from the registry
//	ErrUnknownNode        - node label absent from the graph
//	ErrUnknownEdge        - edge absent from the graph
//	ErrGraphStructure     - graph fails a structural invariant
//	ErrDegenerateGraph    - graph was flagged by a degenerate contraction
//
// All operations return new values; a Code is never mutated after
// construction except for cosmetic coordinate updates via SetCoords.
package tncode
