package gen

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"simplex", KindSimplex, false},
		{"Simplex", KindSimplex, false},
		{" perlin ", KindPerlin, false},
		{"improved_perlin", KindPerlin, false},
		{"improved", KindPerlin, false},
		{"checker", KindCheckerboard, false},
		{"CHECKERBOARD", KindCheckerboard, false},
		{"classic", KindClassic, false},
		{"opensimplex", KindOpenSimplex, false},
		{"worley", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			g, err := New(k, 1234)
			if err != nil {
				t.Fatalf("New(%q): %v", k, err)
			}
			again, _ := New(k, 1234)
			if g.Noise2D(3.3, 4.4) != again.Noise2D(3.3, 4.4) {
				t.Error("seeded generators differ")
			}

			if _, err := New(k, 0); err != nil {
				t.Fatalf("New(%q, 0): %v", k, err)
			}
		})
	}

	if _, err := New("worley", 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(worley) error = %v, want ErrUnknownKind", err)
	}
}

func TestNewMatchesConstructors(t *testing.T) {
	g, _ := New(KindSimplex, 77)
	s, ok := g.(*Simplex)
	if !ok {
		t.Fatalf("New(simplex) returned %T", g)
	}
	if !s.Equal(NewSimplexSeeded(77)) {
		t.Error("New(simplex, 77) differs from NewSimplexSeeded(77)")
	}
}

func TestRandomSeed(t *testing.T) {
	if got := randomSeed(17); got != 17 {
		t.Errorf("randomSeed(17) = %d, want 17", got)
	}
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		seen[randomSeed(0)] = true
	}
	if len(seen) < 100 {
		t.Errorf("100 random seeds gave only %d distinct values", len(seen))
	}
}
