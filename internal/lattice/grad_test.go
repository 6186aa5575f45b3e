package lattice

import "testing"

func TestGrad1(t *testing.T) {
	want := [16]float64{1, 2, 3, 4, 5, 6, 7, 8, -1, -2, -3, -4, -5, -6, -7, -8}
	for h := 0; h < 16; h++ {
		if got := Grad1(uint8(h), 1); got != want[h] {
			t.Errorf("Grad1(%d, 1) = %v, want %v", h, got, want[h])
		}
		// Only the low nibble is used.
		if got := Grad1(uint8(h|0xa0), 1); got != want[h] {
			t.Errorf("Grad1(%#x, 1) = %v, want %v", h|0xa0, got, want[h])
		}
	}
}

func TestGrad2(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want [16]float64
	}{
		{"unit", 1, 1, [16]float64{3, 1, -1, -3, 3, 1, -1, -3, 3, 1, -1, -3, 3, 1, -1, -3}},
		{"distinct axes", 1, 2, [16]float64{5, 3, -3, -5, 4, 0, 0, -4, 5, 3, -3, -5, 4, 0, 0, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for h := 0; h < 16; h++ {
				if got := Grad2(uint8(h), tt.x, tt.y); got != tt.want[h] {
					t.Errorf("Grad2(%d, %v, %v) = %v, want %v", h, tt.x, tt.y, got, tt.want[h])
				}
			}
		})
	}
}

func TestGrad3(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    [16]float64
	}{
		{"unit", 1, 1, 1, [16]float64{2, 0, 0, -2, 2, 0, 0, -2, 2, 0, 0, -2, 2, 0, 0, -2}},
		{"distinct axes", 1, 2, 3, [16]float64{3, 1, -1, -3, 4, 2, -2, -4, 5, 1, -1, -5, 3, 1, 1, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for h := 0; h < 16; h++ {
				if got := Grad3(uint8(h), tt.x, tt.y, tt.z); got != tt.want[h] {
					t.Errorf("Grad3(%d, %v, %v, %v) = %v, want %v", h, tt.x, tt.y, tt.z, got, tt.want[h])
				}
			}
		})
	}
}
