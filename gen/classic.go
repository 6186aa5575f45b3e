package gen

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const classicPeriod = 256

// Classic is Ken Perlin's original 1985 gradient noise: random unit
// gradient vectors on the integer lattice blended with the cubic s-curve.
// A single octave is evaluated.
type Classic struct {
	noise *perlin.Perlin
	seed  int64
}

// NewClassic returns a classic Perlin generator determined by seed.
func NewClassic(seed int64) *Classic {
	// alpha and beta only weight octaves after the first.
	return &Classic{
		noise: perlin.NewPerlin(2, 2, 1, seed),
		seed:  seed,
	}
}

// Seed returns the seed the gradient tables were built from.
func (c *Classic) Seed() int64 {
	return c.seed
}

// Noise1D returns classic Perlin noise at x.
func (c *Classic) Noise1D(x float64) float64 {
	return clampUnit(c.noise.Noise1D(wrapLattice(x)))
}

// Noise2D returns classic Perlin noise at (x, y).
func (c *Classic) Noise2D(x, y float64) float64 {
	return clampUnit(c.noise.Noise2D(wrapLattice(x), wrapLattice(y)))
}

// Noise3D returns classic Perlin noise at (x, y, z).
func (c *Classic) Noise3D(x, y, z float64) float64 {
	return clampUnit(c.noise.Noise3D(wrapLattice(x), wrapLattice(y), wrapLattice(z)))
}

// wrapLattice maps x into [0, 256). The gradient lattice repeats every 256
// units, and go-perlin only locates the cell correctly for x > -4096.
func wrapLattice(x float64) float64 {
	x = math.Mod(x, classicPeriod)
	if x < 0 {
		x += classicPeriod
	}
	return x
}

// clampUnit keeps v in [-1,1]. A single classic octave stays within
// sqrt(N)/2, so this only guards rounding.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
