package render

import (
	"strings"
	"testing"

	"noisy/gen"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		levels int
		want   int
	}{
		{"bottom", -1, 5, 0},
		{"top", 1, 5, 4},
		{"middle", 0, 5, 2},
		{"just below second", -0.61, 5, 0},
		{"second", -0.55, 5, 1},
		{"below range", -3, 5, 0},
		{"above range", 3, 5, 4},
		{"two levels low", -0.5, 2, 0},
		{"two levels high", 0.5, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bucket(tt.v, tt.levels); got != tt.want {
				t.Errorf("Bucket(%v, %d) = %d, want %d", tt.v, tt.levels, got, tt.want)
			}
		})
	}
}

func TestGray(t *testing.T) {
	if g := Gray(-1); g != 0 {
		t.Errorf("Gray(-1) = %d, want 0", g)
	}
	if g := Gray(1); g != 255 {
		t.Errorf("Gray(1) = %d, want 255", g)
	}
}

func TestForKind(t *testing.T) {
	if g := ForKind(gen.KindCheckerboard); string(g) != string(Blocks) {
		t.Errorf("checkerboard gradient = %q", string(g))
	}
	if g := ForKind(gen.KindSimplex); string(g) != string(Shades) {
		t.Errorf("simplex gradient = %q", string(g))
	}
}

func TestFieldCheckerboard(t *testing.T) {
	v := Viewport{X: 0, Y: 0, Step: 0.5, W: 8, H: 4}

	lines, err := Field(gen.NewCheckerboard(), 2, v, Blocks)
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	want := []string{
		"██  ██  ",
		"██  ██  ",
		"  ██  ██",
		"  ██  ██",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}

	lines, err = Field(gen.NewCheckerboard(), 1, v, Blocks)
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if len(lines) != 1 || lines[0] != "██  ██  " {
		t.Errorf("1D field = %q", lines)
	}
}

func TestFieldRejectsDimension(t *testing.T) {
	for _, dim := range []int{0, 4} {
		if _, err := Field(gen.NewCheckerboard(), dim, Viewport{Step: 1, W: 2, H: 2}, Blocks); err == nil {
			t.Errorf("Field(dim %d) succeeded", dim)
		}
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{X: 10, Y: 20, Step: 0.5, W: 10, H: 4}

	if x, y := v.Coord(2, 3); x != 11 || y != 21.5 {
		t.Errorf("Coord(2, 3) = (%v, %v), want (11, 21.5)", x, y)
	}

	p := v.Pan(-4, 2)
	if p.X != 8 || p.Y != 21 {
		t.Errorf("Pan = (%v, %v), want (8, 21)", p.X, p.Y)
	}

	cx, cy := v.Coord(5, 2)
	z := v.Zoom(2)
	if z.Step != 1 {
		t.Errorf("Zoom step = %v, want 1", z.Step)
	}
	if zx, zy := z.Coord(5, 2); zx != cx || zy != cy {
		t.Errorf("zoom moved centre from (%v, %v) to (%v, %v)", cx, cy, zx, zy)
	}
	if s := v.Zoom(1e9).Step; s != maxStep {
		t.Errorf("Zoom clamp = %v, want %v", s, maxStep)
	}

	if s := v.Slide(3); s.Z != 1.5 {
		t.Errorf("Slide(3).Z = %v, want 1.5", s.Z)
	}
}

func TestEngineDiff(t *testing.T) {
	e := NewEngine(6, 3)
	f := Frame{
		Gen:      gen.NewCheckerboard(),
		Kind:     gen.KindCheckerboard,
		Dim:      2,
		View:     Viewport{Step: 1},
		Gradient: Blocks,
	}

	first := e.Render(f)
	if !strings.Contains(first, MoveTo(1, 1)) || !strings.HasSuffix(first, Reset) {
		t.Errorf("first frame missing cursor home or reset: %q", first)
	}
	if again := e.Render(f); again != "" {
		t.Errorf("unchanged frame emitted %q", again)
	}

	f.View = f.View.Pan(1, 0)
	if moved := e.Render(f); moved == "" {
		t.Error("panned frame emitted nothing")
	}
}

func TestEngineFieldSize(t *testing.T) {
	w, h := NewEngine(80, 24).FieldSize()
	if w != 80 || h != 24-StatusRows {
		t.Errorf("FieldSize = %dx%d", w, h)
	}
	if _, h := NewEngine(10, 0).FieldSize(); h != 0 {
		t.Errorf("FieldSize height = %d, want 0", h)
	}
}
