// Package lattice provides the spin storage for a two-dimensional Ising
// model on a torus.
//
// A [Lattice] is a dense W×H grid of [Spin] values stored in row-major order.
// Coordinates passed to accessors may be signed; they are wrapped onto the
// torus before any cell is read or written, so callers can offset a valid
// coordinate by ±1 without bounds checks.
//
//	l, _ := lattice.New(80, 80)
//	l.Toggle(-1, 0) // same cell as (79, 0)
//	for _, s := range l.Neighbors(0, 0) {
//		_ = l.Get(s.Row, s.Col)
//	}
//
// # Thread Safety
//
// Lattice instances are NOT thread-safe. The simulator that owns a lattice
// serialises every access.
package lattice
