// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// tensor is a dense real tensor with labeled legs. Legs are identified
// by integer ids unique within one tensor; data is stored row-major in
// id-list order with the explicit stride formula of a flat buffer.
// A rank-0 tensor is a scalar with a single data entry.
type tensor struct {
	ids  []int
	dims []int
	data []float64
}

// newTensor allocates a zeroed tensor over the given legs.
func newTensor(ids, dims []int) *tensor {
	size := 1
	for _, d := range dims {
		size *= d
	}
	return &tensor{
		ids:  append([]int(nil), ids...),
		dims: append([]int(nil), dims...),
		data: make([]float64, size),
	}
}

// strides returns the row-major stride of every axis.
func (t *tensor) strides() []int {
	out := make([]int, len(t.dims))
	acc := 1
	for k := len(t.dims) - 1; k >= 0; k-- {
		out[k] = acc
		acc *= t.dims[k]
	}
	return out
}

// axis returns the axis position of a leg id, or -1 when absent.
func (t *tensor) axis(id int) int {
	for k, have := range t.ids {
		if have == id {
			return k
		}
	}
	return -1
}

// permute returns a tensor with its legs reordered to the given id
// sequence, which must be a permutation of t.ids. Returns t itself
// when the order already matches.
func (t *tensor) permute(order []int) *tensor {
	same := true
	for k, id := range order {
		if t.ids[k] != id {
			same = false
			break
		}
	}
	if same {
		return t
	}

	rank := len(order)
	axes := make([]int, rank)
	dims := make([]int, rank)
	for k, id := range order {
		axes[k] = t.axis(id)
		dims[k] = t.dims[axes[k]]
	}
	oldStrides := t.strides()

	out := &tensor{
		ids:  append([]int(nil), order...),
		dims: dims,
		data: make([]float64, len(t.data)),
	}
	counters := make([]int, rank)
	oldOff := 0
	for newOff := range out.data {
		out.data[newOff] = t.data[oldOff]
		for k := rank - 1; k >= 0; k-- {
			counters[k]++
			oldOff += oldStrides[axes[k]]
			if counters[k] < dims[k] {
				break
			}
			counters[k] = 0
			oldOff -= dims[k] * oldStrides[axes[k]]
		}
	}
	return out
}

// contractPair multiplies two tensors, summing over every shared leg.
// With no shared legs the result is the outer product. Shared legs are
// gathered to the inner axes of both operands so the sum is a single
// dense matrix product.
func contractPair(a, b *tensor) *tensor {
	shared := make([]int, 0, len(a.ids))
	for _, id := range a.ids {
		if b.axis(id) >= 0 {
			shared = append(shared, id)
		}
	}
	aKeep := make([]int, 0, len(a.ids)-len(shared))
	for _, id := range a.ids {
		if b.axis(id) < 0 {
			aKeep = append(aKeep, id)
		}
	}
	bKeep := make([]int, 0, len(b.ids)-len(shared))
	for _, id := range b.ids {
		if a.axis(id) < 0 {
			bKeep = append(bKeep, id)
		}
	}

	aOrder := make([]int, 0, len(a.ids))
	aOrder = append(aOrder, aKeep...)
	aOrder = append(aOrder, shared...)
	bOrder := make([]int, 0, len(b.ids))
	bOrder = append(bOrder, shared...)
	bOrder = append(bOrder, bKeep...)
	pa := a.permute(aOrder)
	pb := b.permute(bOrder)

	rows, inner, cols := 1, 1, 1
	outIDs := make([]int, 0, len(aKeep)+len(bKeep))
	outDims := make([]int, 0, len(aKeep)+len(bKeep))
	for k, id := range pa.ids {
		if k < len(aKeep) {
			rows *= pa.dims[k]
			outIDs = append(outIDs, id)
			outDims = append(outDims, pa.dims[k])
		} else {
			inner *= pa.dims[k]
		}
	}
	for k := len(shared); k < len(pb.ids); k++ {
		cols *= pb.dims[k]
		outIDs = append(outIDs, pb.ids[k])
		outDims = append(outDims, pb.dims[k])
	}

	out := newTensor(outIDs, outDims)
	am := mat.NewDense(rows, inner, pa.data)
	bm := mat.NewDense(inner, cols, pb.data)
	cm := mat.NewDense(rows, cols, out.data)
	cm.Mul(am, bm)
	return out
}

// cosetVector reads the final decoding result: a rank-1 tensor over
// the open coset leg. Any other shape means the network did not reduce
// to a coset choice.
func (t *tensor) cosetVector() ([4]float64, error) {
	var out [4]float64
	if len(t.ids) != 1 || t.ids[0] != cosetLegID || t.dims[0] != len(out) {
		return out, fmt.Errorf("%w: contraction left legs %v", ErrContraction, t.ids)
	}
	copy(out[:], t.data)
	return out, nil
}
