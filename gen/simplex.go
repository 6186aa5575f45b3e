package gen

import (
	"io"

	"noisy/internal/lattice"
)

// Skewing and unskewing factors: F2 = (sqrt(3)-1)/2, G2 = (3-sqrt(3))/6,
// F3 = 1/3, G3 = 1/6.
const (
	f2 = 0.366025403784
	g2 = 0.211324865405
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// Simplex is a simplex noise generator after Stefan Gustavson's reference
// implementation, with Peter Eastman's speedups and the 2012 rank ordering.
type Simplex struct {
	perm Permutation
}

// NewSimplex returns a generator whose table is drawn from a fresh
// entropy-seeded source.
func NewSimplex() *Simplex {
	return &Simplex{perm: defaultPermutation()}
}

// NewSimplexFrom draws the 256 base bytes of the table from r.
func NewSimplexFrom(r io.Reader) (*Simplex, error) {
	perm, err := ReadPermutation(r)
	if err != nil {
		return nil, err
	}
	return &Simplex{perm: perm}, nil
}

// NewSimplexSeeded returns the generator determined by seed.
func NewSimplexSeeded(seed uint64) *Simplex {
	return &Simplex{perm: seededPermutation(seed)}
}

// SimplexFromPermutation wraps a hand-built table. It panics if the table's
// halves differ.
func SimplexFromPermutation(perm Permutation) *Simplex {
	perm.mustBeValid()
	return &Simplex{perm: perm}
}

// Permutation returns a copy of the generator's table.
func (s *Simplex) Permutation() Permutation {
	return s.perm
}

// Equal reports whether both generators share the same table.
func (s *Simplex) Equal(other *Simplex) bool {
	return s.perm == other.perm
}

// Noise1D returns 1D simplex noise at x.
func (s *Simplex) Noise1D(x float64) float64 {
	i0 := lattice.FastFloor(x)
	i1 := i0 + 1
	x0 := x - float64(i0)
	x1 := x0 - 1

	t0 := 1 - x0*x0
	t0 *= t0
	n0 := t0 * t0 * lattice.Grad1(s.perm[i0&255], x0)

	t1 := 1 - x1*x1
	t1 *= t1
	n1 := t1 * t1 * lattice.Grad1(s.perm[i1&255], x1)

	// The maximum is 8*(3/4)^4 = 2.53125; 0.395 fits that within [-1,1].
	return 0.395 * (n0 + n1)
}

// Noise2D returns 2D simplex noise at (x, y).
func (s *Simplex) Noise2D(x, y float64) float64 {
	// Skew the input space to find the simplex cell.
	sk := (x + y) * f2
	i := lattice.FastFloor(x + sk)
	j := lattice.FastFloor(y + sk)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower triangle (0,0)->(1,0)->(1,1) or upper (0,0)->(0,1)->(1,1).
	var i1, j1 int64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255
	perm := &s.perm

	n0 := corner2(0.5-x0*x0-y0*y0, perm[ii+int64(perm[jj])], x0, y0)
	n1 := corner2(0.5-x1*x1-y1*y1, perm[ii+i1+int64(perm[jj+j1])], x1, y1)
	n2 := corner2(0.5-x2*x2-y2*y2, perm[ii+1+int64(perm[jj+1])], x2, y2)

	return 40 * (n0 + n1 + n2)
}

// Noise3D returns 3D simplex noise at (x, y, z).
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	sk := (x + y + z) * f3
	i := lattice.FastFloor(x + sk)
	j := lattice.FastFloor(y + sk)
	k := lattice.FastFloor(z + sk)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the offsets to pick one of the six tetrahedra of the cube.
	// (i1,j1,k1) and (i2,j2,k2) are the second and third corners.
	var i1, j1, k1, i2, j2, k2 int64
	if x0 >= y0 {
		switch {
		case y0 >= z0: // X Y Z
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0: // X Z Y
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default: // Z X Y
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0: // Z Y X
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0: // Y Z X
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default: // Y X Z
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	perm := &s.perm
	hash := func(di, dj, dk int64) uint8 {
		return perm[ii+di+int64(perm[jj+dj+int64(perm[kk+dk])])]
	}

	n0 := corner3(0.6-x0*x0-y0*y0-z0*z0, hash(0, 0, 0), x0, y0, z0)
	n1 := corner3(0.6-x1*x1-y1*y1-z1*z1, hash(i1, j1, k1), x1, y1, z1)
	n2 := corner3(0.6-x2*x2-y2*y2-z2*z2, hash(i2, j2, k2), x2, y2, z2)
	n3 := corner3(0.6-x3*x3-y3*y3-z3*z3, hash(1, 1, 1), x3, y3, z3)

	return 32 * (n0 + n1 + n2 + n3)
}

// corner2 is the contribution of one 2D corner with radial falloff t.
func corner2(t float64, gi uint8, x, y float64) float64 {
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * lattice.Grad2(gi, x, y)
}

func corner3(t float64, gi uint8, x, y, z float64) float64 {
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * lattice.Grad3(gi, x, y, z)
}
