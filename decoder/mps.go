package decoder

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tncodes/tncode"
)

// mpsStrategy sweeps the node grid row by row: the top row starts as a
// matrix product state, every further row acts on it as a matrix
// product operator, and after each row the state is compressed by
// truncating every bond grown past bondDim to its bondDim largest
// singular values.
//
// Steps:
//
//	1. Group the nodes into rows by descending y coordinate, ascending
//	   x inside a row. Ragged rows or bonds that skip past a grid
//	   neighbor are ErrNotLattice.
//	2. For each row below the first: contract every site into the state
//	   column above it, then sweep left to right, splitting each site
//	   from its right bond via SVD and passing the weighted remainder
//	   into the next column.
//	3. Fold the final row into the result tensor.
//
// Bonds already within the budget are left untouched, so a generous
// bondDim reproduces BasicContract exactly.
type mpsStrategy struct {
	bondDim int
}

func (m mpsStrategy) contract(sites []site) (*tensor, error) {
	if m.bondDim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBondDimension, m.bondDim)
	}
	rows, err := latticeRows(sites)
	if err != nil {
		return nil, err
	}
	if err := checkLatticeBonds(rows); err != nil {
		return nil, err
	}

	mps := make([]*tensor, len(rows[0]))
	for c, s := range rows[0] {
		mps[c] = s.t
	}
	nextBond := cosetLegID - 1
	for _, row := range rows[1:] {
		for c, s := range row {
			mps[c] = contractPair(mps[c], s.t)
		}
		if err := compressSweep(mps, m.bondDim, &nextBond); err != nil {
			return nil, err
		}
	}

	acc := mps[0]
	for _, t := range mps[1:] {
		acc = contractPair(acc, t)
	}
	return acc, nil
}

// latticeRows orders the sites into a rectangular grid of rows.
func latticeRows(sites []site) ([][]site, error) {
	sorted := append([]site(nil), sites...)
	sort.Slice(sorted, func(i, j int) bool {
		yi, yj := sorted[i].coords[1], sorted[j].coords[1]
		if math.Abs(yi-yj) > tncode.DefaultEpsilon {
			return yi > yj
		}
		return sorted[i].coords[0] < sorted[j].coords[0]
	})

	var rows [][]site
	for _, s := range sorted {
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			if math.Abs(last[0].coords[1]-s.coords[1]) <= tncode.DefaultEpsilon {
				rows[len(rows)-1] = append(last, s)
				continue
			}
		}
		rows = append(rows, []site{s})
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row widths %d and %d", ErrNotLattice, len(rows[0]), len(row))
		}
	}
	return rows, nil
}

// checkLatticeBonds verifies every bond joins grid neighbors: equal
// row and adjacent column, or equal column and adjacent row.
func checkLatticeBonds(rows [][]site) error {
	type gridPos struct{ r, c int }
	where := make(map[int][]gridPos)
	for r, row := range rows {
		for c, s := range row {
			for _, id := range s.t.ids {
				where[id] = append(where[id], gridPos{r: r, c: c})
			}
		}
	}
	for id, ps := range where {
		if len(ps) < 2 {
			continue
		}
		if len(ps) > 2 {
			return fmt.Errorf("%w: tensor index %d on %d nodes", ErrContraction, id, len(ps))
		}
		dr := ps[0].r - ps[1].r
		dc := ps[0].c - ps[1].c
		if dr*dr+dc*dc != 1 {
			return fmt.Errorf("%w: bond %d joins (%d,%d) and (%d,%d)",
				ErrNotLattice, id, ps[0].r, ps[0].c, ps[1].r, ps[1].c)
		}
	}
	return nil
}

// compressSweep walks the state left to right, truncating every bond
// whose total dimension exceeds chi.
func compressSweep(mps []*tensor, chi int, nextBond *int) error {
	for c := 0; c < len(mps)-1; c++ {
		shared := make([]int, 0, len(mps[c].ids))
		sharedSize := 1
		for k, id := range mps[c].ids {
			if mps[c+1].axis(id) >= 0 {
				shared = append(shared, id)
				sharedSize *= mps[c].dims[k]
			}
		}
		if len(shared) == 0 || sharedSize <= chi {
			continue
		}
		left := make([]int, 0, len(mps[c].ids)-len(shared))
		for _, id := range mps[c].ids {
			if mps[c+1].axis(id) < 0 {
				left = append(left, id)
			}
		}
		bond := *nextBond
		*nextBond--
		l, r, err := splitTruncate(mps[c], left, shared, chi, bond)
		if err != nil {
			return err
		}
		mps[c] = l
		mps[c+1] = contractPair(r, mps[c+1])
	}
	return nil
}

// splitTruncate factors t across the (left | right) leg bipartition,
// keeping at most chi singular values on a fresh bond leg. The left
// factor holds the orthonormal columns; the weighted remainder goes
// right so it can be absorbed by the neighbor.
func splitTruncate(t *tensor, leftIDs, rightIDs []int, chi, bondID int) (*tensor, *tensor, error) {
	order := make([]int, 0, len(t.ids))
	order = append(order, leftIDs...)
	order = append(order, rightIDs...)
	p := t.permute(order)

	rows, cols := 1, 1
	leftDims := make([]int, len(leftIDs))
	rightDims := make([]int, len(rightIDs))
	for k, d := range p.dims {
		if k < len(leftIDs) {
			leftDims[k] = d
			rows *= d
		} else {
			rightDims[k-len(leftIDs)] = d
			cols *= d
		}
	}

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(rows, cols, p.data), mat.SVDThin) {
		return nil, nil, fmt.Errorf("%w: SVD of a %dx%d bond matrix failed", ErrContraction, rows, cols)
	}
	values := svd.Values(nil)
	keep := chi
	if keep > len(values) {
		keep = len(values)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	left := newTensor(append(leftIDs, bondID), append(leftDims, keep))
	for r := 0; r < rows; r++ {
		for k := 0; k < keep; k++ {
			left.data[r*keep+k] = u.At(r, k)
		}
	}
	right := newTensor(append([]int{bondID}, rightIDs...), append([]int{keep}, rightDims...))
	for k := 0; k < keep; k++ {
		for c := 0; c < cols; c++ {
			right.data[k*cols+c] = values[k] * v.At(c, k)
		}
	}
	return left, right, nil
}
