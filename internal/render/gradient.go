package render

import "noisy/gen"

// Gradient is an ordered set of glyphs from darkest to brightest.
type Gradient []rune

var (
	// Shades is the five-level gradient used for continuous noise.
	Shades = Gradient(" ░▒▓█")
	// Blocks is the two-level gradient used for the checkerboard.
	Blocks = Gradient(" █")
)

// ForKind picks the gradient that suits a generator kind.
func ForKind(kind gen.Kind) Gradient {
	if kind == gen.KindCheckerboard {
		return Blocks
	}
	return Shades
}

// Bucket maps a noise value in [-1,1] to one of levels buckets. Values
// outside the range land in the first or last bucket.
func Bucket(v float64, levels int) int {
	b := int((v + 1) * 0.5 * float64(levels))
	if b < 0 {
		return 0
	}
	if b >= levels {
		return levels - 1
	}
	return b
}

// Glyph returns the glyph for v.
func (g Gradient) Glyph(v float64) rune {
	return g[Bucket(v, len(g))]
}

// Gray returns a grey level for v, 0 at -1 and 255 at 1.
func Gray(v float64) uint8 {
	return uint8(Bucket(v, 256))
}
