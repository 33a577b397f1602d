package builder

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// RotatedSurfaceCode returns the rotated surface code of odd distance
// dist: [[dist*dist, 1, dist]] with qubits on a dist x dist grid, bulk
// plaquettes alternating X and Z in checkerboard order and weight-2
// checks closing the boundary. A non-positive or even dist is
// ErrBadDistance.
func RotatedSurfaceCode(dist int) (*tncode.Code, error) {
	if dist < 1 || dist%2 == 0 {
		return nil, fmt.Errorf("%w: rotated distance %d", ErrBadDistance, dist)
	}
	n := dist * dist
	at := func(r, c int) int { return r*dist + c }

	coords := make([][2]float64, 0, n)
	for r := 0; r < dist; r++ {
		for c := 0; c < dist; c++ {
			coords = append(coords, [2]float64{float64(c), -float64(r)})
		}
	}

	var stabs []pauli.Operator
	plaquette := func(sym pauli.Pauli, qubits ...int) {
		op := pauli.Identity(n)
		for _, q := range qubits {
			op[q] = sym
		}
		stabs = append(stabs, op)
	}
	for r := 0; r < dist-1; r++ {
		for c := 0; c < dist-1; c++ {
			sym := pauli.Z
			if (r+c)%2 == 0 {
				sym = pauli.X
			}
			plaquette(sym, at(r, c), at(r, c+1), at(r+1, c), at(r+1, c+1))
		}
	}
	// Boundary checks alternate in step with the bulk checkerboard.
	for c := 1; c < dist-1; c += 2 {
		plaquette(pauli.X, at(0, c), at(0, c+1))
	}
	for c := 0; c < dist-1; c += 2 {
		plaquette(pauli.X, at(dist-1, c), at(dist-1, c+1))
	}
	for r := 0; r < dist-1; r += 2 {
		plaquette(pauli.Z, at(r, 0), at(r+1, 0))
	}
	for r := 1; r < dist-1; r += 2 {
		plaquette(pauli.Z, at(r, dist-1), at(r+1, dist-1))
	}

	logicalX := pauli.Identity(n)
	logicalZ := pauli.Identity(n)
	for r := 0; r < dist; r++ {
		logicalX[at(r, 0)] = pauli.X
	}
	for c := 0; c < dist; c++ {
		logicalZ[at(0, c)] = pauli.Z
	}

	s, err := code.New(stabs, []pauli.Operator{logicalX, logicalZ})
	if err != nil {
		return nil, err
	}
	return tncode.FromSimple(s,
		tncode.WithName(fmt.Sprintf("rotated_surface_%d", dist)),
		tncode.WithCoords(coords))
}
