package render

import (
	"fmt"
	"strings"

	"noisy/gen"
)

// StatusRows is the number of rows reserved below the field.
const StatusRows = 1

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

var statusBg = [3]uint8{24, 24, 32}

// Frame is everything the engine needs to draw one screen.
type Frame struct {
	Gen      gen.NoiseGen
	Kind     gen.Kind
	Seed     int64
	Dim      int
	View     Viewport
	Gradient Gradient
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

// FieldSize returns the number of cells available for the field.
func (e *Engine) FieldSize() (int, int) {
	h := e.height - StatusRows
	if h < 0 {
		h = 0
	}
	return e.width, h
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for f, emitting only the cells that
// changed since the previous call.
func (e *Engine) Render(f Frame) string {
	fieldW, fieldH := e.FieldSize()
	v := f.View
	v.W, v.H = fieldW, fieldH

	for y := 0; y < fieldH; y++ {
		row := y
		if f.Dim == 1 {
			row = 0
		}
		for x := 0; x < fieldW; x++ {
			val := Sample(f.Gen, f.Dim, v, x, row)
			g := Gray(val)
			e.next[y][x] = Cell{
				Ch:  f.Gradient.Glyph(val),
				FgR: g, FgG: g, FgB: g,
			}
		}
	}

	e.writeStatusLine(fieldH, statusText(f))

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

func statusText(f Frame) string {
	s := fmt.Sprintf(" %s %dD  seed %d  origin (%.3f, %.3f", f.Kind, f.Dim, f.Seed, f.View.X, f.View.Y)
	if f.Dim == 3 {
		s += fmt.Sprintf(", %.3f", f.View.Z)
	}
	return s + fmt.Sprintf(")  step %.4g  [wasd/arrows pan, +/- zoom, z/x slice, 1-3 dim, q quit]", f.View.Step)
}

func (e *Engine) writeStatusLine(row int, text string) {
	if row < 0 || row >= e.height {
		return
	}
	runes := []rune(text)
	for x := 0; x < e.width; x++ {
		c := Cell{Ch: ' ', FgR: 200, FgG: 200, FgB: 200, BgR: statusBg[0], BgG: statusBg[1], BgB: statusBg[2]}
		if x < len(runes) {
			c.Ch = runes[x]
		}
		e.next[row][x] = c
	}
}
