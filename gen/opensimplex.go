package gen

import (
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex is Kurt Spencer's OpenSimplex noise, a patent-free relative of
// simplex noise.
type OpenSimplex struct {
	noise opensimplex.Noise
	seed  int64
}

// NewOpenSimplex returns an OpenSimplex generator determined by seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{
		noise: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

// Seed returns the seed the generator was built from.
func (o *OpenSimplex) Seed() int64 {
	return o.seed
}

// Noise1D samples the 2D field along y = 0; the library has no 1D variant.
func (o *OpenSimplex) Noise1D(x float64) float64 {
	return o.Noise2D(x, 0)
}

// Noise2D returns OpenSimplex noise at (x, y).
func (o *OpenSimplex) Noise2D(x, y float64) float64 {
	return toSigned(o.noise.Eval2(x, y))
}

// Noise3D returns OpenSimplex noise at (x, y, z).
func (o *OpenSimplex) Noise3D(x, y, z float64) float64 {
	return toSigned(o.noise.Eval3(x, y, z))
}

// toSigned maps the normalized [0,1] output to [-1,1].
func toSigned(v float64) float64 {
	return clampUnit(v*2 - 1)
}
