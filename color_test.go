package solids

import (
	"math"
	"testing"
)

func colorNear(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{
			name: "six digit",
			hex:  "#888888",
			want: RGBA{R: 136.0 / 255, G: 136.0 / 255, B: 136.0 / 255, A: 1},
		},
		{
			name: "six digit without hash",
			hex:  "FF8080",
			want: RGBA{R: 1, G: 128.0 / 255, B: 128.0 / 255, A: 1},
		},
		{
			name: "three digit",
			hex:  "#F00",
			want: RGBA{R: 1, G: 0, B: 0, A: 1},
		},
		{
			name: "four digit with alpha",
			hex:  "#F008",
			want: RGBA{R: 1, G: 0, B: 0, A: 136.0 / 255},
		},
		{
			name: "eight digit with alpha",
			hex:  "#FF000080",
			want: RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255},
		},
		{
			name: "lowercase",
			hex:  "#a6cf8c",
			want: RGBA{R: 166.0 / 255, G: 207.0 / 255, B: 140.0 / 255, A: 1},
		},
		{
			name: "invalid length falls back to opaque black",
			hex:  "#12345",
			want: RGBA{R: 0, G: 0, B: 0, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorNear(got, tt.want, 1e-12) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	c := RGB(0.25, 0.5, 0.75)
	want := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if c != want {
		t.Errorf("RGB(0.25, 0.5, 0.75) = %v, want %v", c, want)
	}
}

func TestRGBA_HexString(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{name: "white", c: White, want: "#ffffff"},
		{name: "gray", c: Gray, want: "#888888"},
		{name: "yellow", c: Yellow, want: "#ffff00"},
		{name: "axis green", c: GreenB, want: "#a6cf8c"},
		{name: "axis blue", c: BlueB, want: "#9cdceb"},
		{name: "axis red", c: RedB, want: "#ff8080"},
		{name: "alpha dropped", c: RGBA{R: 1, G: 0, B: 0, A: 0.5}, want: "#ff0000"},
		{name: "out of range clamps", c: RGBA{R: 2, G: -1, B: 1, A: 1}, want: "#ff00ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.HexString(); got != tt.want {
				t.Errorf("HexString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHex_HexString_RoundTrip(t *testing.T) {
	for _, s := range []string{"#888888", "#bbbbbb", "#a6cf8c", "#9cdceb", "#ff8080"} {
		if got := Hex(s).HexString(); got != s {
			t.Errorf("Hex(%q).HexString() = %q, want %q", s, got, s)
		}
	}
}
