package server

import (
	"testing"

	"noisy/gen"
	"noisy/internal/render"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []Action
	}{
		{"wasd", []byte("wasd"), []Action{ActionUp, ActionLeft, ActionDown, ActionRight}},
		{"arrows", []byte("\x1b[A\x1b[B\x1b[C\x1b[D"), []Action{ActionUp, ActionDown, ActionRight, ActionLeft}},
		{"zoom", []byte("+-="), []Action{ActionZoomIn, ActionZoomOut, ActionZoomIn}},
		{"slice", []byte("zx"), []Action{ActionSliceBack, ActionSliceForward}},
		{"dimensions", []byte("132"), []Action{ActionDim1, ActionDim3, ActionDim2}},
		{"quit", []byte("q"), []Action{ActionQuit}},
		{"ctrl-c", []byte{3}, []Action{ActionQuit}},
		{"ignored", []byte("?é"), nil},
		{"truncated escape", []byte("\x1b["), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInput(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
					return
				}
			}
		})
	}
}

func TestViewStateApply(t *testing.T) {
	st := &viewState{frame: render.Frame{
		Dim:  2,
		View: render.Viewport{X: 0, Y: 0, Step: 1},
	}}
	st.resize(20, 10)

	st.apply(ActionRight)
	st.apply(ActionDown)
	if st.frame.View.X != panCells || st.frame.View.Y != panCells {
		t.Errorf("after pan origin = (%v, %v), want (%d, %d)", st.frame.View.X, st.frame.View.Y, panCells, panCells)
	}

	st.apply(ActionZoomIn)
	if st.frame.View.Step >= 1 {
		t.Errorf("zoom in step = %v, want < 1", st.frame.View.Step)
	}

	st.apply(ActionDim3)
	st.apply(ActionSliceForward)
	if st.frame.Dim != 3 || st.frame.View.Z <= 0 {
		t.Errorf("dim = %d, z = %v", st.frame.Dim, st.frame.View.Z)
	}
	if st.frame.View.W != 20 || st.frame.View.H != 10 {
		t.Errorf("size = %dx%d, want 20x10", st.frame.View.W, st.frame.View.H)
	}
}

func TestGenCache(t *testing.T) {
	c, err := NewGenCache(2)
	if err != nil {
		t.Fatalf("NewGenCache: %v", err)
	}

	a, seed := c.Get(gen.KindSimplex, 7)
	if seed != 7 {
		t.Errorf("seed = %d, want 7", seed)
	}
	b, _ := c.Get(gen.KindSimplex, 7)
	if a != b {
		t.Error("same kind and seed returned different instances")
	}

	r1, s1 := c.Get(gen.KindPerlin, 0)
	r2, s2 := c.Get(gen.KindPerlin, 0)
	if s1 == 0 || s1 != s2 || r1 != r2 {
		t.Errorf("zero seed not pinned: %d vs %d", s1, s2)
	}

	c.Get(gen.KindClassic, 1)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	if _, err := NewGenCache(0); err == nil {
		t.Error("NewGenCache(0) succeeded")
	}
}
