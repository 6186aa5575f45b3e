package gen

import (
	"io"

	"noisy/internal/lattice"
)

// Output scales for improved Perlin noise, chosen so the worst case stays
// inside [-1,1].
const (
	perlinScale1 = 0.188
	perlinScale2 = 0.507
	perlinScale3 = 0.936
)

// Perlin is an improved Perlin noise generator (Ken Perlin, 2002): gradient
// noise on the integer lattice, blended with the quintic fade curve.
type Perlin struct {
	perm Permutation
}

// ImprovedPerlin is an alias kept for callers that name the variant
// explicitly.
type ImprovedPerlin = Perlin

// NewPerlin returns a generator whose table is drawn from a fresh
// entropy-seeded source.
func NewPerlin() *Perlin {
	return &Perlin{perm: defaultPermutation()}
}

// NewPerlinFrom draws the 256 base bytes of the table from r.
func NewPerlinFrom(r io.Reader) (*Perlin, error) {
	perm, err := ReadPermutation(r)
	if err != nil {
		return nil, err
	}
	return &Perlin{perm: perm}, nil
}

// NewPerlinSeeded returns the generator determined by seed.
func NewPerlinSeeded(seed uint64) *Perlin {
	return &Perlin{perm: seededPermutation(seed)}
}

// PerlinFromPermutation wraps a hand-built table. It panics if the table's
// halves differ.
func PerlinFromPermutation(perm Permutation) *Perlin {
	perm.mustBeValid()
	return &Perlin{perm: perm}
}

// Permutation returns a copy of the generator's table.
func (p *Perlin) Permutation() Permutation {
	return p.perm
}

// Equal reports whether both generators share the same table.
func (p *Perlin) Equal(other *Perlin) bool {
	return p.perm == other.perm
}

// Noise1D returns 1D improved Perlin noise at x.
func (p *Perlin) Noise1D(x float64) float64 {
	ix0 := lattice.FastFloor(x)
	fx0 := x - float64(ix0)
	fx1 := fx0 - 1

	ii := ix0 & 255
	jj := (ix0 + 1) & 255

	s := lattice.Fade(fx0)

	nx0 := lattice.Grad1(p.perm[ii], fx0)
	nx1 := lattice.Grad1(p.perm[jj], fx1)

	return perlinScale1 * lattice.Lerp(s, nx0, nx1)
}

// Noise2D returns 2D improved Perlin noise at (x, y).
func (p *Perlin) Noise2D(x, y float64) float64 {
	ix0 := lattice.FastFloor(x)
	iy0 := lattice.FastFloor(y)
	fx0 := x - float64(ix0)
	fy0 := y - float64(iy0)
	fx1 := fx0 - 1
	fy1 := fy0 - 1

	// Wrap at 256; the doubled table absorbs the inner offset.
	ii := ix0 & 255
	jj := iy0 & 255
	ix1 := (ix0 + 1) & 255
	iy1 := (iy0 + 1) & 255

	t := lattice.Fade(fy0)
	s := lattice.Fade(fx0)

	perm := &p.perm
	gi0 := perm[ii+int64(perm[jj])]
	gi1 := perm[ii+int64(perm[iy1])]
	gi2 := perm[ix1+int64(perm[jj])]
	gi3 := perm[ix1+int64(perm[iy1])]

	nx0 := lattice.Grad2(gi0, fx0, fy0)
	nx1 := lattice.Grad2(gi1, fx0, fy1)
	nx2 := lattice.Grad2(gi2, fx1, fy0)
	nx3 := lattice.Grad2(gi3, fx1, fy1)

	n0 := lattice.Lerp(t, nx0, nx1)
	n1 := lattice.Lerp(t, nx2, nx3)

	return perlinScale2 * lattice.Lerp(s, n0, n1)
}

// Noise3D returns 3D improved Perlin noise at (x, y, z).
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	ix0 := lattice.FastFloor(x)
	iy0 := lattice.FastFloor(y)
	iz0 := lattice.FastFloor(z)
	fx0 := x - float64(ix0)
	fy0 := y - float64(iy0)
	fz0 := z - float64(iz0)
	fx1 := fx0 - 1
	fy1 := fy0 - 1
	fz1 := fz0 - 1

	ii := ix0 & 255
	jj := iy0 & 255
	kk := iz0 & 255
	ix1 := (ix0 + 1) & 255
	iy1 := (iy0 + 1) & 255
	iz1 := (iz0 + 1) & 255

	r := lattice.Fade(fz0)
	t := lattice.Fade(fy0)
	s := lattice.Fade(fx0)

	perm := &p.perm
	hash := func(i, j, k int64) uint8 {
		return perm[i+int64(perm[j+int64(perm[k])])]
	}

	nxy0 := lattice.Grad3(hash(ii, jj, kk), fx0, fy0, fz0)
	nxy1 := lattice.Grad3(hash(ii, jj, iz1), fx0, fy0, fz1)
	nxy2 := lattice.Grad3(hash(ii, iy1, kk), fx0, fy1, fz0)
	nxy3 := lattice.Grad3(hash(ii, iy1, iz1), fx0, fy1, fz1)
	nxy4 := lattice.Grad3(hash(ix1, jj, kk), fx1, fy0, fz0)
	nxy5 := lattice.Grad3(hash(ix1, jj, iz1), fx1, fy0, fz1)
	nxy6 := lattice.Grad3(hash(ix1, iy1, kk), fx1, fy1, fz0)
	nxy7 := lattice.Grad3(hash(ix1, iy1, iz1), fx1, fy1, fz1)

	nx0 := lattice.Lerp(r, nxy0, nxy1)
	nx1 := lattice.Lerp(r, nxy2, nxy3)
	nx2 := lattice.Lerp(r, nxy4, nxy5)
	nx3 := lattice.Lerp(r, nxy6, nxy7)

	n0 := lattice.Lerp(t, nx0, nx1)
	n1 := lattice.Lerp(t, nx2, nx3)

	return perlinScale3 * lattice.Lerp(s, n0, n1)
}
