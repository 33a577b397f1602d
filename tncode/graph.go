package tncode

import "sort"

// Nodes returns all node labels in ascending order: virtual nodes
// first (most negative to -1), then physical qubits 0..n-1.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for label := range g.nodes {
		out = append(out, label)
	}
	sort.Ints(out)
	return out
}

// PhysicalNodes returns the physical-qubit labels in ascending order.
func (g *Graph) PhysicalNodes() []int {
	out := make([]int, 0, len(g.nodes))
	for label := range g.nodes {
		if label >= 0 {
			out = append(out, label)
		}
	}
	sort.Ints(out)
	return out
}

// VirtualNodes returns the virtual-node labels in creation order:
// -1, -2, and so on.
func (g *Graph) VirtualNodes() []int {
	out := make([]int, 0, len(g.nodes))
	for label := range g.nodes {
		if label < 0 {
			out = append(out, label)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// HasNode reports whether label is present.
func (g *Graph) HasNode(label int) bool {
	_, ok := g.nodes[label]
	return ok
}

// NodeCoords returns the 2-D coordinates of a node.
func (g *Graph) NodeCoords(label int) ([2]float64, error) {
	nd, ok := g.nodes[label]
	if !ok {
		return [2]float64{}, ErrUnknownNode
	}
	return nd.coords, nil
}

// NodeType returns TypePhysical for qubits and the seed name for
// virtual nodes.
func (g *Graph) NodeType(label int) (string, error) {
	nd, ok := g.nodes[label]
	if !ok {
		return "", ErrUnknownNode
	}
	return nd.typ, nil
}

// NodeIndices returns a copy of the tensor indices attached to a node.
// For a virtual node the slice is ordered by seed slot.
func (g *Graph) NodeIndices(label int) ([]int, error) {
	nd, ok := g.nodes[label]
	if !ok {
		return nil, ErrUnknownNode
	}
	return append([]int(nil), nd.indices...), nil
}

// SetCoords moves a node. Coordinates are cosmetic: they feed plotting
// and ContractByCoords but never the operator algebra.
func (g *Graph) SetCoords(label int, coords [2]float64) error {
	nd, ok := g.nodes[label]
	if !ok {
		return ErrUnknownNode
	}
	nd.coords = coords
	g.nodes[label] = nd
	return nil
}

// Edges returns all edges sorted by endpoints.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}
		return out[a].V < out[b].V
	})
	return out
}

// EdgeType returns TypePhysical or TypeBond. Endpoint order does not
// matter.
func (g *Graph) EdgeType(e Edge) (string, error) {
	ed, ok := g.edges[newEdge(e.U, e.V)]
	if !ok {
		return "", ErrUnknownEdge
	}
	return ed.typ, nil
}

// EdgeIndices returns a copy of the tensor indices carried by an edge.
func (g *Graph) EdgeIndices(e Edge) ([]int, error) {
	ed, ok := g.edges[newEdge(e.U, e.V)]
	if !ok {
		return nil, ErrUnknownEdge
	}
	return append([]int(nil), ed.indices...), nil
}

// IndexEdge finds the edge carrying tensor index id. Every index
// belongs to at most one edge.
func (g *Graph) IndexEdge(id int) (Edge, bool) {
	for e, ed := range g.edges {
		for _, have := range ed.indices {
			if have == id {
				return e, true
			}
		}
	}
	return Edge{}, false
}

// Degenerate reports whether a self-contraction has collapsed the
// network structure. Degenerate graphs keep their operator content but
// cannot be decoded.
func (g *Graph) Degenerate() bool { return g.degenerate }

// NumNodes returns the node count, virtual nodes included.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

func (g *Graph) virtualCount() int {
	count := 0
	for label := range g.nodes {
		if label < 0 {
			count++
		}
	}
	return count
}

// virtualNeighbor resolves the virtual node behind physical qubit q and
// the tensor indices of the physical edge between them.
func (g *Graph) virtualNeighbor(q int) (int, []int, error) {
	for e, ed := range g.edges {
		if ed.typ != TypePhysical {
			continue
		}
		switch q {
		case e.U:
			return e.V, append([]int(nil), ed.indices...), nil
		case e.V:
			return e.U, append([]int(nil), ed.indices...), nil
		}
	}
	return 0, nil, ErrGraphStructure
}

// freshIndex hands out a tensor index never used in this graph.
func (g *Graph) freshIndex() int {
	id := g.nextIndex
	g.nextIndex++
	return id
}

// clone deep-copies the graph.
func (g *Graph) clone() *Graph {
	out := &Graph{
		nodes:      make(map[int]nodeData, len(g.nodes)),
		edges:      make(map[Edge]edgeData, len(g.edges)),
		nextIndex:  g.nextIndex,
		degenerate: g.degenerate,
	}
	for label, nd := range g.nodes {
		nd.indices = append([]int(nil), nd.indices...)
		out.nodes[label] = nd
	}
	for e, ed := range g.edges {
		ed.indices = append([]int(nil), ed.indices...)
		out.edges[e] = ed
	}
	return out
}

// removeNode deletes a node and every edge touching it.
func (g *Graph) removeNode(label int) {
	delete(g.nodes, label)
	for e := range g.edges {
		if e.U == label || e.V == label {
			delete(g.edges, e)
		}
	}
}

// renumberAbove shifts every physical label greater than removed down by
// one, in both node and edge keys.
func (g *Graph) renumberAbove(removed int) {
	shift := func(label int) int {
		if label > removed {
			return label - 1
		}
		return label
	}
	nodes := make(map[int]nodeData, len(g.nodes))
	for label, nd := range g.nodes {
		nodes[shift(label)] = nd
	}
	g.nodes = nodes
	edges := make(map[Edge]edgeData, len(g.edges))
	for e, ed := range g.edges {
		edges[newEdge(shift(e.U), shift(e.V))] = ed
	}
	g.edges = edges
}
