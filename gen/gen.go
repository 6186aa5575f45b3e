// Package gen provides deterministic noise generators that map 1D, 2D and 3D
// coordinates to a scalar in [-1, 1].
//
// Generators are immutable once built and safe for concurrent use. The
// lattice generators (Perlin and Simplex) own a 512-entry permutation table
// filled from a byte source at construction time; building two generators
// from identically seeded sources yields bit-for-bit identical output.
//
//	simplex := gen.NewSimplexSeeded(1337)
//	v := simplex.Noise2D(123*0.02, 132*0.02)
package gen

// NoiseGen is implemented by every generator in this package.
type NoiseGen interface {
	// Noise1D returns the noise value at x, in [-1, 1].
	Noise1D(x float64) float64
	// Noise2D returns the noise value at (x, y), in [-1, 1].
	Noise2D(x, y float64) float64
	// Noise3D returns the noise value at (x, y, z), in [-1, 1].
	Noise3D(x, y, z float64) float64
}

var (
	_ NoiseGen = Checkerboard{}
	_ NoiseGen = (*Perlin)(nil)
	_ NoiseGen = (*Simplex)(nil)
	_ NoiseGen = (*Classic)(nil)
	_ NoiseGen = (*OpenSimplex)(nil)
)
