// Package lattice holds the scalar helpers shared by the lattice noise
// generators: flooring, interpolation curves and the hashed gradient
// functions.
package lattice

// FastFloor returns the largest integer not greater than x.
// NaN and infinities give undefined results.
func FastFloor(x float64) int64 {
	i := int64(x)
	if x < float64(i) {
		return i - 1
	}
	return i
}

// Lerp linearly interpolates between a and b.
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at 0 and 1.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Select returns ifTrue when cond holds, ifFalse otherwise.
func Select(cond bool, ifTrue, ifFalse float64) float64 {
	if cond {
		return ifTrue
	}
	return ifFalse
}
