package decoder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// slotLeg classifies one seed slot of a virtual node: a physical slot
// carries the qubit it measures, a bond slot carries qubit -1 and
// survives as a tensor leg shared with the neighboring node.
type slotLeg struct {
	id    int
	qubit int
}

// nodeLegs resolves every slot index of a virtual node against the
// graph's edges, in seed slot order.
func nodeLegs(g *tncode.Graph, label int) ([]slotLeg, error) {
	slots, err := g.NodeIndices(label)
	if err != nil {
		return nil, err
	}
	legs := make([]slotLeg, len(slots))
	for pos, id := range slots {
		e, ok := g.IndexEdge(id)
		if !ok {
			return nil, fmt.Errorf("%w: tensor index %d of node %d on no edge",
				ErrContraction, id, label)
		}
		legs[pos] = slotLeg{id: id, qubit: -1}
		if e.V >= 0 {
			// Physical edges pair the virtual node with its qubit label.
			legs[pos].qubit = e.V
		}
	}
	return legs, nil
}

// forEachElement walks the seed's stabilizer group, extended to every
// logical coset the mode asks for. The operator passed to fn is reused
// between calls and must not be retained. The coset label is only
// meaningful for single-logical-qubit seeds; wider seeds are summed.
//
// Stabilizer subsets are enumerated along a Gray sequence, so each
// step multiplies in a single generator.
func forEachElement(seed code.Simple, mode cosetMode, fn func(l pauli.Pauli, op pauli.Operator)) {
	stabs := seed.Stabilizers()
	logicals := seed.Logicals()
	n := seed.NumQubits()

	cosets := 1
	if mode != cosetIdentity {
		cosets = 1 << uint(len(logicals))
	}
	for mask := 0; mask < cosets; mask++ {
		op := pauli.Identity(n)
		for i := range logicals {
			if mask>>uint(i)&1 == 1 {
				mulInto(op, logicals[i])
			}
		}
		label := pauli.I
		if len(logicals) == 2 {
			label = cosetLabel(mask&1, mask>>1&1)
		}
		fn(label, op)
		for t := 1; t < 1<<uint(len(stabs)); t++ {
			mulInto(op, stabs[bits.TrailingZeros(uint(t))])
			fn(label, op)
		}
	}
}

// nodeSeed resolves a virtual node to its seed code and classified
// slot legs.
func nodeSeed(c *tncode.Code, label int) (code.Simple, []slotLeg, error) {
	g := c.Graph()
	name, err := g.NodeType(label)
	if err != nil {
		return code.Simple{}, nil, err
	}
	seed, err := c.Seed(name)
	if err != nil {
		return code.Simple{}, nil, err
	}
	legs, err := nodeLegs(g, label)
	if err != nil {
		return code.Simple{}, nil, err
	}
	if len(legs) != seed.NumQubits() {
		return code.Simple{}, nil, fmt.Errorf("%w: node %d has %d slots for a %d-qubit seed",
			ErrContraction, label, len(legs), seed.NumQubits())
	}
	return seed, legs, nil
}

// nodeTensor builds the reduced tensor of one virtual node: a leg per
// bond slot plus, in cosetOpen mode for a logical-carrying seed, the
// open coset leg in front. Physical slots are folded away against the
// per-qubit weight w while the seed group is walked, so the tensor
// never materializes all 4^slots entries.
func nodeTensor(c *tncode.Code, label int, mode cosetMode, w func(q int, s pauli.Pauli) float64) (*tensor, error) {
	seed, legs, err := nodeSeed(c, label)
	if err != nil {
		return nil, err
	}

	open := mode == cosetOpen && seed.NumLogicalQubits() == 1
	ids := make([]int, 0, len(legs)+1)
	if open {
		ids = append(ids, cosetLegID)
	}
	axisOfSlot := make([]int, len(legs))
	for pos, leg := range legs {
		axisOfSlot[pos] = -1
		if leg.qubit < 0 {
			axisOfSlot[pos] = len(ids)
			ids = append(ids, leg.id)
		}
	}
	dims := make([]int, len(ids))
	for k := range dims {
		dims[k] = pauli.NumSymbols
	}

	t := newTensor(ids, dims)
	strides := t.strides()
	forEachElement(seed, mode, func(l pauli.Pauli, op pauli.Operator) {
		weight := 1.0
		off := 0
		if open {
			off = int(l) * strides[0]
		}
		for pos, leg := range legs {
			if leg.qubit >= 0 {
				weight *= w(leg.qubit, op[pos])
			} else {
				off += int(op[pos]) * strides[axisOfSlot[pos]]
			}
		}
		t.data[off] += weight
	})
	return t, nil
}

// buildNetwork assembles the per-node tensors for the whole code. In
// cosetOpen mode exactly one node must carry the open leg, mirroring
// the single-logical-qubit decoder contract.
func buildNetwork(c *tncode.Code, mode cosetMode, w func(q int, s pauli.Pauli) float64) ([]site, error) {
	g := c.Graph()
	labels := g.VirtualNodes()
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no virtual nodes", ErrContraction)
	}

	sites := make([]site, 0, len(labels))
	openCount := 0
	for _, label := range labels {
		t, err := nodeTensor(c, label, mode, w)
		if err != nil {
			return nil, err
		}
		if t.axis(cosetLegID) >= 0 {
			openCount++
		}
		// Label comes from the graph itself, so the lookup cannot miss.
		coords, _ := g.NodeCoords(label)
		sites = append(sites, site{label: label, coords: coords, t: t})
	}
	if mode == cosetOpen && openCount != 1 {
		return nil, fmt.Errorf("%w: %d logical-carrying nodes", ErrNotSingleLogical, openCount)
	}
	return sites, nil
}

// mulInto multiplies src into dst elementwise, in place.
func mulInto(dst, src pauli.Operator) {
	for q := range dst {
		dst[q] = pauli.Product(dst[q], src[q])
	}
}
