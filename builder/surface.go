package builder

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// FiveQubitSurface returns the smallest planar surface patch, the
// [[5,1,2]] code cut from a 3x3 diagonal lattice. Same content as
// SurfaceCode(1), under its own catalog name.
func FiveQubitSurface() (*tncode.Code, error) {
	return surfacePatch("five_qubit_surface", 2)
}

// SurfaceCode returns the planar surface code grown size steps beyond
// a single qubit: distance size+1 on 2*(size+1)^2-2*(size+1)+1 qubits.
// Qubit nodes carry their diagonal-lattice coordinates. size < 1 is
// ErrBadDistance.
func SurfaceCode(size int) (*tncode.Code, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: surface size %d", ErrBadDistance, size)
	}
	return surfacePatch(fmt.Sprintf("surface_%d", size), size+1)
}

// surfacePatch builds the distance-dist planar patch on the diagonal
// lattice: a (2*dist-1) square grid with qubits on the even cells,
// X checks on the odd-row check cells, Z checks on the even-row ones.
// The logicals run along the top row (X) and the left column (Z).
func surfacePatch(name string, dist int) (*tncode.Code, error) {
	size := 2*dist - 1

	qubitAt := make(map[[2]int]int)
	var coords [][2]float64
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if (r+c)%2 == 0 {
				qubitAt[[2]int{r, c}] = len(coords)
				coords = append(coords, [2]float64{float64(c), -float64(r)})
			}
		}
	}

	n := len(coords)
	var stabs []pauli.Operator
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if (r+c)%2 == 0 {
				continue
			}
			sym := pauli.X
			if r%2 == 0 {
				sym = pauli.Z
			}
			op := pauli.Identity(n)
			for _, cell := range [4][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}} {
				if q, ok := qubitAt[cell]; ok {
					op[q] = sym
				}
			}
			stabs = append(stabs, op)
		}
	}

	logicalX := pauli.Identity(n)
	logicalZ := pauli.Identity(n)
	for c := 0; c < size; c += 2 {
		logicalX[qubitAt[[2]int{0, c}]] = pauli.X
	}
	for r := 0; r < size; r += 2 {
		logicalZ[qubitAt[[2]int{r, 0}]] = pauli.Z
	}

	s, err := code.New(stabs, []pauli.Operator{logicalX, logicalZ})
	if err != nil {
		return nil, err
	}
	return tncode.FromSimple(s, tncode.WithName(name), tncode.WithCoords(coords))
}
