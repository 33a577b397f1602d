// Package builder constructs the standard example codes as ready-made
// tensor-network codes.
//
// What:
//
//   - FiveQubit, Steane, Bell and FiveQubitSurface return the fixed
//     small codes the tests and demos lean on.
//   - SurfaceCode(size) and RotatedSurfaceCode(dist) grow the two
//     planar surface-code families to any distance, with every qubit
//     node placed at its true lattice coordinates.
//   - Named and Names expose the fixed constructions as a catalog
//     keyed by name, for CLI and demo layers.
//   - RandomCode and RandomStabilizerState wrap the code-level
//     generators as single-node networks.
//
// Every factory returns a *tncode.Code carrying one virtual node whose
// seed is the constructed code, so results plug directly into tncode
// surgery and the decoder.
//
// Errors:
//
//	ErrBadDistance - surface-code parameter yields no valid patch
//	ErrUnknownCode - catalog name with no registered construction
package builder
