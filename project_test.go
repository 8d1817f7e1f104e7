package solids

import (
	"math"
	"testing"
)

func TestDefaultAxisAngle(t *testing.T) {
	if DefaultAxisAngle != -3*math.Pi/4 {
		t.Errorf("DefaultAxisAngle = %v, want -3*pi/4", DefaultAxisAngle)
	}
}

func TestOblique_Project(t *testing.T) {
	ob := Oblique{SkewFactor: 0.4, AxisAngle: DefaultAxisAngle}

	t.Run("zero axial passes through", func(t *testing.T) {
		got := ob.Project(0, 1.5, -2.5)
		if got != Pt(1.5, -2.5) {
			t.Errorf("Project(0, 1.5, -2.5) = %v, want (1.5, -2.5)", got)
		}
	})

	t.Run("positive axial projects away from the viewer", func(t *testing.T) {
		got := ob.Project(1, 0, 0)
		want := Pt(0.4*math.Sqrt2/2, 0.4*math.Sqrt2/2)
		if !pointNear(got, want, ptTol) {
			t.Errorf("Project(1, 0, 0) = %v, want %v", got, want)
		}
	})

	t.Run("negative axial lands on the depth glyph direction", func(t *testing.T) {
		d := 1.5
		got := ob.Project(-d, 0, 0)
		want := ob.DepthDirection().Mul(d * ob.SkewFactor)
		if !pointNear(got, want, ptTol) {
			t.Errorf("Project(-d, 0, 0) = %v, want %v", got, want)
		}
	})

	t.Run("components compose linearly", func(t *testing.T) {
		a := ob.Project(1, 0, 0)
		b := ob.Project(0, 2, 0)
		c := ob.Project(0, 0, 3)
		sum := a.Add(b).Add(c)
		got := ob.Project(1, 2, 3)
		if !pointNear(got, sum, ptTol) {
			t.Errorf("Project(1, 2, 3) = %v, want component sum %v", got, sum)
		}
	})
}

func TestOblique_ProjectLocal(t *testing.T) {
	ob := Oblique{SkewFactor: 0.4, AxisAngle: DefaultAxisAngle}

	tests := []struct {
		name     string
		radial   float64
		vertical float64
		want     Point
	}{
		{name: "right rim", radial: 2, vertical: 0, want: Pt(2, 0)},
		{name: "back of circle", radial: 0, vertical: 2, want: Pt(0, 0.8)},
		{name: "front of circle", radial: 0, vertical: -2, want: Pt(0, -0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ob.ProjectLocal(tt.radial, tt.vertical)
			if !pointNear(got, tt.want, ptTol) {
				t.Errorf("ProjectLocal(%v, %v) = %v, want %v", tt.radial, tt.vertical, got, tt.want)
			}
		})
	}

	t.Run("rim point lands on the compressed ellipse", func(t *testing.T) {
		r, skew := 2.0, 0.4
		for _, theta := range []float64{0, math.Pi / 3, math.Pi / 2, 7 * math.Pi / 6} {
			p := Polar(r, theta)
			got := ob.ProjectLocal(p.X, p.Y)
			// x^2/r^2 + y^2/(r*skew)^2 = 1
			res := got.X*got.X/(r*r) + got.Y*got.Y/(r*skew*r*skew) - 1
			if math.Abs(res) > 1e-12 {
				t.Errorf("theta %v: ellipse residual = %v, want 0", theta, res)
			}
		}
	})
}

func TestOblique_DepthDirection(t *testing.T) {
	ob := Oblique{SkewFactor: 0.4, AxisAngle: DefaultAxisAngle}
	got := ob.DepthDirection()
	want := Pt(math.Cos(DefaultAxisAngle), math.Sin(DefaultAxisAngle))
	if !pointNear(got, want, ptTol) {
		t.Errorf("DepthDirection() = %v, want %v", got, want)
	}
	if math.Abs(got.Length()-1) > ptTol {
		t.Errorf("DepthDirection().Length() = %v, want 1", got.Length())
	}
	if got.X >= 0 || got.Y >= 0 {
		t.Errorf("DepthDirection() = %v, want lower-left quadrant", got)
	}
}
