package tncode

import (
	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
)

// Combine forms the disjoint union of two codes: a's qubits keep their
// labels, b's qubits follow at offset nA. Operators are zero-padded and
// concatenated, b's virtual nodes and tensor indices are shifted past
// a's, and the seed registries are merged. Combining a code with itself
// is safe; everything is copied by value.
func Combine(a, b *Code) (*Code, error) {
	nA := a.simple.NumQubits()
	nB := b.simple.NumQubits()
	n := nA + nB

	padRight := func(ops []pauli.Operator) []pauli.Operator {
		out := make([]pauli.Operator, len(ops))
		for i, op := range ops {
			padded := pauli.Identity(n)
			copy(padded, op)
			out[i] = padded
		}
		return out
	}
	padLeft := func(ops []pauli.Operator) []pauli.Operator {
		out := make([]pauli.Operator, len(ops))
		for i, op := range ops {
			padded := pauli.Identity(n)
			copy(padded[nA:], op)
			out[i] = padded
		}
		return out
	}

	stabs := append(padRight(a.simple.Stabilizers()), padLeft(b.simple.Stabilizers())...)
	logicals := append(padRight(a.simple.Logicals()), padLeft(b.simple.Logicals())...)
	pure := append(padRight(a.simple.PureErrors()), padLeft(b.simple.PureErrors())...)
	simple, err := code.NewFull(stabs, logicals, pure)
	if err != nil {
		return nil, err
	}

	g := newGraph()
	for label, nd := range a.graph.nodes {
		nd.indices = append([]int(nil), nd.indices...)
		g.nodes[label] = nd
	}
	for e, ed := range a.graph.edges {
		ed.indices = append([]int(nil), ed.indices...)
		g.edges[e] = ed
	}

	// b's physical labels shift up past a's qubits, virtual labels shift
	// down past a's virtual nodes, tensor indices shift past a's counter.
	mA := a.graph.virtualCount()
	offset := a.graph.nextIndex
	relabel := func(label int) int {
		if label >= 0 {
			return label + nA
		}
		return label - mA
	}
	for label, nd := range b.graph.nodes {
		shifted := append([]int(nil), nd.indices...)
		for k := range shifted {
			shifted[k] += offset
		}
		nd.indices = shifted
		g.nodes[relabel(label)] = nd
	}
	for e, ed := range b.graph.edges {
		shifted := append([]int(nil), ed.indices...)
		for k := range shifted {
			shifted[k] += offset
		}
		ed.indices = shifted
		g.edges[newEdge(relabel(e.U), relabel(e.V))] = ed
	}
	g.nextIndex = a.graph.nextIndex + b.graph.nextIndex
	g.degenerate = a.graph.degenerate || b.graph.degenerate

	seeds := make(map[string]code.Simple, len(a.seeds)+len(b.seeds))
	for name, s := range a.seeds {
		seeds[name] = s.Clone()
	}
	for name, s := range b.seeds {
		seeds[name] = s.Clone()
	}

	return &Code{simple: simple, graph: g, seeds: seeds}, nil
}
