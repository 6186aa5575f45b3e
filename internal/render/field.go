package render

import (
	"fmt"
	"strings"

	"noisy/gen"
)

// Sample evaluates g at the cell (col, row) of v for the given dimension.
// A 1D field ignores the row.
func Sample(g gen.NoiseGen, dim int, v Viewport, col, row int) float64 {
	x, y := v.Coord(col, row)
	switch dim {
	case 1:
		return g.Noise1D(x)
	case 3:
		return g.Noise3D(x, y, v.Z)
	default:
		return g.Noise2D(x, y)
	}
}

// Field renders v as plain text lines. A 1D field is a single line.
func Field(g gen.NoiseGen, dim int, v Viewport, grad Gradient) ([]string, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("unsupported dimension %d (expected 1, 2 or 3)", dim)
	}
	rows := v.H
	if dim == 1 {
		rows = 1
	}

	lines := make([]string, rows)
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		for col := 0; col < v.W; col++ {
			sb.WriteRune(grad.Glyph(Sample(g, dim, v, col, row)))
		}
		lines[row] = sb.String()
	}
	return lines, nil
}
