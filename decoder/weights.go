package decoder

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// weightPoly is a weight-enumerator polynomial: coefficient w counts
// group elements of physical weight w. A nil slice is the zero
// polynomial. Counting stays exact because the ring is integral;
// floating contraction would round large group counts.
type weightPoly []int64

// polyBump adds one to coefficient w, growing the polynomial.
func polyBump(p weightPoly, w int) weightPoly {
	for len(p) <= w {
		p = append(p, 0)
	}
	p[w]++
	return p
}

// polyAddMul accumulates the product a*b into dst and returns it.
func polyAddMul(dst, a, b weightPoly) weightPoly {
	if len(a) == 0 || len(b) == 0 {
		return dst
	}
	for len(dst) < len(a)+len(b)-1 {
		dst = append(dst, 0)
	}
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			dst[i+j] += ca * cb
		}
	}
	return dst
}

// polyTensor is the labeled-leg tensor over weight polynomials. It
// mirrors the float tensor but keeps exact integer coefficients, which
// rules out the dense float backend.
type polyTensor struct {
	ids  []int
	dims []int
	data []weightPoly
}

func newPolyTensor(ids, dims []int) *polyTensor {
	size := 1
	for _, d := range dims {
		size *= d
	}
	return &polyTensor{
		ids:  append([]int(nil), ids...),
		dims: append([]int(nil), dims...),
		data: make([]weightPoly, size),
	}
}

func (t *polyTensor) strides() []int {
	out := make([]int, len(t.dims))
	acc := 1
	for k := len(t.dims) - 1; k >= 0; k-- {
		out[k] = acc
		acc *= t.dims[k]
	}
	return out
}

func (t *polyTensor) axis(id int) int {
	for k, have := range t.ids {
		if have == id {
			return k
		}
	}
	return -1
}

// axisOffsets enumerates the flat offsets of every assignment of the
// chosen axes, in row-major order over the axis list.
func (t *polyTensor) axisOffsets(axes []int) []int {
	strides := t.strides()
	out := []int{0}
	for _, ax := range axes {
		next := make([]int, 0, len(out)*t.dims[ax])
		for _, base := range out {
			for v := 0; v < t.dims[ax]; v++ {
				next = append(next, base+v*strides[ax])
			}
		}
		out = next
	}
	return out
}

// contractPolyPair multiplies two polynomial tensors, summing over
// every shared leg.
func contractPolyPair(a, b *polyTensor) *polyTensor {
	var sharedA, sharedB, keepA, keepB []int
	for ax, id := range a.ids {
		if bx := b.axis(id); bx >= 0 {
			sharedA = append(sharedA, ax)
			sharedB = append(sharedB, bx)
		} else {
			keepA = append(keepA, ax)
		}
	}
	for bx, id := range b.ids {
		if a.axis(id) < 0 {
			keepB = append(keepB, bx)
		}
	}

	outIDs := make([]int, 0, len(keepA)+len(keepB))
	outDims := make([]int, 0, len(keepA)+len(keepB))
	for _, ax := range keepA {
		outIDs = append(outIDs, a.ids[ax])
		outDims = append(outDims, a.dims[ax])
	}
	for _, bx := range keepB {
		outIDs = append(outIDs, b.ids[bx])
		outDims = append(outDims, b.dims[bx])
	}

	aBase := a.axisOffsets(keepA)
	aShared := a.axisOffsets(sharedA)
	bShared := b.axisOffsets(sharedB)
	bBase := b.axisOffsets(keepB)

	out := newPolyTensor(outIDs, outDims)
	for ra, offA := range aBase {
		for cb, offB := range bBase {
			var acc weightPoly
			for s := range aShared {
				acc = polyAddMul(acc, a.data[offA+aShared[s]], b.data[offB+bShared[s]])
			}
			out.data[ra*len(bBase)+cb] = acc
		}
	}
	return out
}

// nodePolyTensor builds one virtual node's enumerator tensor: bond
// legs as usual, physical slots folded into the monomial counting the
// operator's weight on real qubits.
func nodePolyTensor(c *tncode.Code, label int, mode cosetMode) (*polyTensor, error) {
	seed, legs, err := nodeSeed(c, label)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(legs))
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

	t := newPolyTensor(ids, dims)
	strides := t.strides()
	forEachElement(seed, mode, func(_ pauli.Pauli, op pauli.Operator) {
		w := 0
		off := 0
		for pos, leg := range legs {
			if leg.qubit >= 0 {
				if op[pos] != pauli.I {
					w++
				}
			} else {
				off += int(op[pos]) * strides[axisOfSlot[pos]]
			}
		}
		t.data[off] = polyBump(t.data[off], w)
	})
	return t, nil
}

// OperatorWeights counts the code's stabilizer group and its full
// normalizer by operator weight, via exact contraction of the
// enumerator network. Index w of each histogram is the number of group
// elements of weight w; both histograms span weights 0..n.
//
// The two histograms agree exactly on the weights below the code
// distance, which is how Distance reads d off them. Degenerate graphs
// are refused with tncode.ErrDegenerateGraph.
func OperatorWeights(c *tncode.Code) (stabilizer, all []int64, err error) {
	if c.Graph().Degenerate() {
		return nil, nil, tncode.ErrDegenerateGraph
	}
	if stabilizer, err = contractWeights(c, cosetIdentity); err != nil {
		return nil, nil, err
	}
	if all, err = contractWeights(c, cosetAll); err != nil {
		return nil, nil, err
	}
	return stabilizer, all, nil
}

// contractWeights folds the enumerator network down to one histogram.
func contractWeights(c *tncode.Code, mode cosetMode) ([]int64, error) {
	labels := c.Graph().VirtualNodes()
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no virtual nodes", ErrContraction)
	}
	var acc *polyTensor
	for _, label := range labels {
		t, err := nodePolyTensor(c, label, mode)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = t
		} else {
			acc = contractPolyPair(acc, t)
		}
	}
	if len(acc.ids) != 0 {
		return nil, fmt.Errorf("%w: contraction left legs %v", ErrContraction, acc.ids)
	}
	hist := make([]int64, c.NumQubits()+1)
	copy(hist, acc.data[0])
	return hist, nil
}

// Distance returns the code distance: the least weight at which the
// normalizer outgrows the stabilizer group. Codes without logical
// qubits have no distance (code.ErrNoLogicals).
func Distance(c *tncode.Code) (int, error) {
	if c.NumLogicalQubits() == 0 {
		return 0, code.ErrNoLogicals
	}
	stabilizer, all, err := OperatorWeights(c)
	if err != nil {
		return 0, err
	}
	for w := 1; w < len(all); w++ {
		if all[w] != stabilizer[w] {
			return w, nil
		}
	}
	return 0, code.ErrNoLogicals
}
