package lattice

// The gradient helpers turn the low bits of a permutation byte into one of a
// small set of gradient directions and return its dot product with the
// offset vector. Gradients are longer than unit length, so callers rescale
// their sums to fit [-1,1].

// Grad1 uses gradients 1..8 with a random sign.
func Grad1(hash uint8, x float64) float64 {
	h := hash & 15
	grad := float64(1 + h&7)
	if h&8 != 0 {
		grad = -grad
	}
	return grad * x
}

// Grad2 picks one of 8 directions from the low 3 bits.
func Grad2(hash uint8, x, y float64) float64 {
	h := hash & 7
	u := Select(h < 4, x, y)
	v := Select(h < 4, y, x)
	return Select(h&1 != 0, -u, u) + Select(h&2 != 0, -2*v, 2*v)
}

// Grad3 picks one of 12 cube-edge directions from the low 4 bits. Values 12
// to 15 repeat four of them.
func Grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := Select(h < 8, x, y)
	v := Select(h < 4, y, Select(h == 12 || h == 14, x, z))
	return Select(h&1 != 0, -u, u) + Select(h&2 != 0, -v, v)
}
