package gen

import "noisy/internal/lattice"

// Checkerboard outputs a check pattern of unit cells: 1 on even cells and -1
// on odd ones, where a cell's parity is the XOR of its floored coordinates.
type Checkerboard struct{}

// NewCheckerboard returns a checkerboard generator.
func NewCheckerboard() Checkerboard {
	return Checkerboard{}
}

// Noise1D returns -1 if floor(x) is odd, 1 otherwise.
func (Checkerboard) Noise1D(x float64) float64 {
	ix := lattice.FastFloor(x)
	return lattice.Select(ix&1 == 1, -1, 1)
}

// Noise2D returns -1 if exactly one of floor(x), floor(y) is odd.
func (Checkerboard) Noise2D(x, y float64) float64 {
	ix := lattice.FastFloor(x)
	iy := lattice.FastFloor(y)
	return lattice.Select(ix&1^iy&1 == 1, -1, 1)
}

// Noise3D extends the 2D rule with floor(z).
func (Checkerboard) Noise3D(x, y, z float64) float64 {
	ix := lattice.FastFloor(x)
	iy := lattice.FastFloor(y)
	iz := lattice.FastFloor(z)
	return lattice.Select(ix&1^iy&1^iz&1 == 1, -1, 1)
}
