package render

import "math"

// Viewport maps screen cells to noise coordinates. Cell (col, row) samples
// (X + col*Step, Y + row*Step); Z is the slice used for 3D fields.
type Viewport struct {
	X, Y, Z float64
	Step    float64
	W, H    int // size in cells
}

const (
	minStep = 1e-4
	maxStep = 10
)

// Coord returns the noise coordinates sampled by the cell at col, row.
func (v Viewport) Coord(col, row int) (float64, float64) {
	return v.X + float64(col)*v.Step, v.Y + float64(row)*v.Step
}

// Pan moves the view by dx, dy cells.
func (v Viewport) Pan(dx, dy int) Viewport {
	v.X += float64(dx) * v.Step
	v.Y += float64(dy) * v.Step
	return v
}

// Zoom scales the step by factor, keeping the centre cell fixed. The step
// stays within [1e-4, 10].
func (v Viewport) Zoom(factor float64) Viewport {
	cx, cy := v.Coord(v.W/2, v.H/2)
	v.Step = math.Max(minStep, math.Min(maxStep, v.Step*factor))
	v.X = cx - float64(v.W/2)*v.Step
	v.Y = cy - float64(v.H/2)*v.Step
	return v
}

// Slide moves the 3D slice by dz cells.
func (v Viewport) Slide(dz int) Viewport {
	v.Z += float64(dz) * v.Step
	return v
}
