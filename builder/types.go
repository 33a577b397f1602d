package builder

import "errors"

var (
	// ErrBadDistance reports a surface-code parameter that yields no
	// valid patch: SurfaceCode needs size >= 1, RotatedSurfaceCode an
	// odd positive distance.
	ErrBadDistance = errors.New("builder: invalid code distance")

	// ErrUnknownCode reports a catalog lookup for a name Names does not
	// list.
	ErrUnknownCode = errors.New("builder: unknown code name")
)
