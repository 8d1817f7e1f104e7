package solids

import (
	"math"
	"testing"
)

const ptTol = 1e-12

func pointNear(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name  string
		r     float64
		theta float64
		want  Point
	}{
		{name: "zero angle", r: 2, theta: 0, want: Pt(2, 0)},
		{name: "quarter turn", r: 2, theta: math.Pi / 2, want: Pt(0, 2)},
		{name: "half turn", r: 1.5, theta: math.Pi, want: Pt(-1.5, 0)},
		{name: "lower left vertex angle", r: 2, theta: 7 * math.Pi / 6, want: Pt(-math.Sqrt(3), -1)},
		{name: "zero radius", r: 0, theta: 1.23, want: Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Polar(tt.r, tt.theta)
			if !pointNear(got, tt.want, ptTol) {
				t.Errorf("Polar(%v, %v) = %v, want %v", tt.r, tt.theta, got, tt.want)
			}
		})
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got, want := a.Add(b), Pt(4, 2); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), Pt(2, 6); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Mul(0.5), Pt(1.5, 2); got != want {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
}

func TestPoint_Length(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("Length() = %v, want 0", got)
	}
}

func TestPoint_Distance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	got := Pt(3, 4).Normalize()
	want := Pt(0.6, 0.8)
	if !pointNear(got, want, ptTol) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}

	if got := Pt(0, 0).Normalize(); got != Pt(0, 0) {
		t.Errorf("Normalize() of zero vector = %v, want origin", got)
	}
}

func TestPoint_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{name: "quarter turn", p: Pt(1, 0), angle: math.Pi / 2, want: Pt(0, 1)},
		{name: "half turn", p: Pt(1, 2), angle: math.Pi, want: Pt(-1, -2)},
		{
			name:  "oblique axis direction",
			p:     Pt(1, 0),
			angle: -3 * math.Pi / 4,
			want:  Pt(-math.Sqrt2/2, -math.Sqrt2/2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !pointNear(got, tt.want, ptTol) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}
