package solids

import (
	"math"
	"testing"
)

func TestNewArc(t *testing.T) {
	a := NewArc(Pt(1, 2), 3, 1.5, 0, math.Pi)

	if a.Center() != Pt(1, 2) {
		t.Errorf("Center() = %v, want (1, 2)", a.Center())
	}
	if a.RadiusX() != 3 || a.RadiusY() != 1.5 {
		t.Errorf("radii = (%v, %v), want (3, 1.5)", a.RadiusX(), a.RadiusY())
	}
	if a.StartAngle() != 0 || a.Sweep() != math.Pi {
		t.Errorf("angles = (%v, %v), want (0, pi)", a.StartAngle(), a.Sweep())
	}
	if a.IsClosed() {
		t.Error("IsClosed() = true for a half arc")
	}

	if got := a.StartPoint(); got != Pt(4, 2) {
		t.Errorf("StartPoint() = %v, want (4, 2)", got)
	}
	// Endpoints are evaluated once at construction and must agree with
	// PointAt exactly.
	if a.StartPoint() != a.PointAt(a.StartAngle()) {
		t.Error("StartPoint() differs from PointAt(StartAngle())")
	}
	if a.EndPoint() != a.PointAt(a.StartAngle()+a.Sweep()) {
		t.Error("EndPoint() differs from PointAt(StartAngle()+Sweep())")
	}
}

func TestNewCircle(t *testing.T) {
	c := NewCircle(Pt(0, 1), 2)
	if c.RadiusX() != 2 || c.RadiusY() != 2 {
		t.Errorf("radii = (%v, %v), want (2, 2)", c.RadiusX(), c.RadiusY())
	}
	if !c.IsClosed() {
		t.Error("IsClosed() = false for a circle")
	}
}

func TestNewEllipse(t *testing.T) {
	e := NewEllipse(Pt(0, 0), 2, 0.8)
	if e.RadiusX() != 2 || e.RadiusY() != 0.8 {
		t.Errorf("radii = (%v, %v), want (2, 0.8)", e.RadiusX(), e.RadiusY())
	}
	if !e.IsClosed() {
		t.Error("IsClosed() = false for an ellipse")
	}
	if e.StartPoint() != Pt(2, 0) {
		t.Errorf("StartPoint() = %v, want (2, 0)", e.StartPoint())
	}
}

func TestArc_PointAt(t *testing.T) {
	a := NewCircle(Pt(1, -1), 2)

	tests := []struct {
		name  string
		theta float64
		want  Point
	}{
		{name: "right", theta: 0, want: Pt(3, -1)},
		{name: "top", theta: math.Pi / 2, want: Pt(1, 1)},
		{name: "left", theta: math.Pi, want: Pt(-1, -1)},
		{name: "bottom", theta: 3 * math.Pi / 2, want: Pt(1, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.PointAt(tt.theta)
			if !pointNear(got, tt.want, ptTol) {
				t.Errorf("PointAt(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}
}

func TestArc_StretchAbout(t *testing.T) {
	t.Run("pivot at center stays bit-exact", func(t *testing.T) {
		center := Pt(0.1, 0.2)
		a := NewArc(center, 2, 2, 0, math.Pi).StretchAbout(center, 1, 0.4)
		if a.Center() != center {
			t.Errorf("Center() = %v, want exactly %v", a.Center(), center)
		}
		if a.RadiusX() != 2 || a.RadiusY() != 0.8 {
			t.Errorf("radii = (%v, %v), want (2, 0.8)", a.RadiusX(), a.RadiusY())
		}
	})

	t.Run("parameter angles survive", func(t *testing.T) {
		a := NewArc(Pt(0, 0), 2, 2, math.Pi, math.Pi).StretchAbout(Pt(0, 0), 1, 0.4)
		if a.StartAngle() != math.Pi || a.Sweep() != math.Pi {
			t.Errorf("angles = (%v, %v), want (pi, pi)", a.StartAngle(), a.Sweep())
		}
	})

	t.Run("offset pivot moves the center", func(t *testing.T) {
		a := NewCircle(Pt(2, 2), 1).StretchAbout(Pt(0, 0), 0.5, 0.25)
		if got := a.Center(); got != Pt(1, 0.5) {
			t.Errorf("Center() = %v, want (1, 0.5)", got)
		}
	})

	t.Run("negative scale keeps radii positive", func(t *testing.T) {
		a := NewCircle(Pt(0, 0), 2).StretchAbout(Pt(0, 0), -1, 0.4)
		if a.RadiusX() != 2 {
			t.Errorf("RadiusX() = %v, want 2", a.RadiusX())
		}
	})
}

func TestArc_Bounds(t *testing.T) {
	a := NewCircle(Pt(1, 2), 3)
	lo, hi := a.Bounds()
	if lo != Pt(-2, -1) || hi != Pt(4, 5) {
		t.Errorf("Bounds() = %v, %v, want (-2, -1), (4, 5)", lo, hi)
	}
}

func TestLine(t *testing.T) {
	l := NewLine(Pt(1, 2), Pt(4, 6))

	if l.Start() != Pt(1, 2) || l.End() != Pt(4, 6) {
		t.Errorf("endpoints = %v, %v, want (1, 2), (4, 6)", l.Start(), l.End())
	}
	if got := l.Vector(); got != Pt(3, 4) {
		t.Errorf("Vector() = %v, want (3, 4)", got)
	}
	if got := l.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}

	lo, hi := l.Bounds()
	if lo != Pt(1, 2) || hi != Pt(4, 6) {
		t.Errorf("Bounds() = %v, %v, want (1, 2), (4, 6)", lo, hi)
	}
}

func TestLine_EndpointsExact(t *testing.T) {
	// Welding depends on endpoints passing through construction untouched.
	p := Pt(0.1+0.2, -3.7e-9)
	l := NewLine(p, p)
	if l.Start() != p || l.End() != p {
		t.Errorf("endpoints = %v, %v, want exactly %v", l.Start(), l.End(), p)
	}
}

func TestArrow(t *testing.T) {
	a := NewArrow(Pt(0, 0), Pt(3, 4))

	if a.Start() != Pt(0, 0) || a.End() != Pt(3, 4) {
		t.Errorf("endpoints = %v, %v, want (0, 0), (3, 4)", a.Start(), a.End())
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := a.Direction(); !pointNear(got, Pt(0.6, 0.8), ptTol) {
		t.Errorf("Direction() = %v, want (0.6, 0.8)", got)
	}
}

func TestDot(t *testing.T) {
	d := NewDot(Pt(1, 1), 0.06)
	if d.At() != Pt(1, 1) {
		t.Errorf("At() = %v, want (1, 1)", d.At())
	}
	if d.Radius() != 0.06 {
		t.Errorf("Radius() = %v, want 0.06", d.Radius())
	}
	lo, hi := d.Bounds()
	if !pointNear(lo, Pt(0.94, 0.94), ptTol) || !pointNear(hi, Pt(1.06, 1.06), ptTol) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
}

func TestTextLabel(t *testing.T) {
	l := NewTextLabel("O'", Pt(0, 4))
	if l.Text() != "O'" {
		t.Errorf("Text() = %q, want \"O'\"", l.Text())
	}
	if l.At() != Pt(0, 4) {
		t.Errorf("At() = %v, want (0, 4)", l.At())
	}
	if l.Size() != 24 {
		t.Errorf("Size() = %v, want 24", l.Size())
	}
	lo, hi := l.Bounds()
	if lo != l.At() || hi != l.At() {
		t.Errorf("Bounds() = %v, %v, want the anchor twice", lo, hi)
	}
}
