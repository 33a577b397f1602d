package tncode

import "errors"

// ErrFusionLogical is returned when a fusion pair admits a two-qubit
// measurement operator that anticommutes with a logical: the
// measurement would destroy encoded information.
var ErrFusionLogical = errors.New("tncode: fusion would collapse a logical operator")

// ErrQubitPair is returned for fusion pairs that are out of range,
// self-referential or reuse an already fused qubit.
var ErrQubitPair = errors.New("tncode: invalid qubit pair")

// ErrNoCoincidentQubits is returned by ContractByCoords when no physical
// qubits of the two codes share coordinates.
var ErrNoCoincidentQubits = errors.New("tncode: no coinciding qubits to contract")

// ErrBadCoords is returned when WithCoords supplies a list whose length
// differs from the qubit count.
var ErrBadCoords = errors.New("tncode: coordinate count does not match qubit count")

// ErrUnknownSeed is returned when a seed name is not in the registry.
var ErrUnknownSeed = errors.New("tncode: unknown seed code")

// ErrUnknownNode is returned when a node label is not in the graph.
var ErrUnknownNode = errors.New("tncode: unknown node")

// ErrUnknownEdge is returned when an edge is not in the graph.
var ErrUnknownEdge = errors.New("tncode: unknown edge")

// ErrGraphStructure is returned by Verify when the graph breaks one of
// its structural invariants.
var ErrGraphStructure = errors.New("tncode: inconsistent code graph")

// ErrDegenerateGraph is returned by Verify after a degenerate
// self-contraction has been recorded.
var ErrDegenerateGraph = errors.New("tncode: graph degenerated by self-contraction")

// Node and edge type labels stored in the graph. A virtual node's type
// is its seed-code name instead of TypePhysical.
const (
	TypePhysical = "physical"
	TypeBond     = "bond"
)

// DefaultEpsilon is the coordinate-equality tolerance used by
// ContractByCoords when none is configured.
const DefaultEpsilon = 1e-9

// SurgeryOptions configures Fusion, Contract and ContractByCoords.
//   - Epsilon: treat coordinates within Epsilon as coinciding (default 1e-9).
//   - Verbose: if true, print one line per fused pair and per degenerate
//     self-contraction.
type SurgeryOptions struct {
	Epsilon float64
	Verbose bool
}

// DefaultSurgeryOptions returns production-safe defaults.
func DefaultSurgeryOptions() SurgeryOptions {
	return SurgeryOptions{Epsilon: DefaultEpsilon}
}

// Edge is an unordered pair of node labels, stored with U < V.
type Edge struct {
	U, V int
}

// newEdge normalizes the endpoint order.
func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// nodeData is the per-node record: 2-D coordinates for plotting, a type
// label (TypePhysical or a seed name) and the tensor indices attached to
// the node, one per seed slot for virtual nodes.
type nodeData struct {
	coords  [2]float64
	typ     string
	indices []int
}

// edgeData mirrors nodeData for edges.
type edgeData struct {
	typ     string
	indices []int
}

// Graph is the tensor-network skeleton of a Code: nodes keyed by label
// (physical qubits >= 0, virtual nodes < 0), edges keyed by normalized
// label pairs, and a counter handing out fresh tensor indices.
type Graph struct {
	nodes      map[int]nodeData
	edges      map[Edge]edgeData
	nextIndex  int
	degenerate bool
}

func newGraph() *Graph {
	return &Graph{nodes: make(map[int]nodeData), edges: make(map[Edge]edgeData)}
}
