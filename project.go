package solids

import "math"

// DefaultAxisAngle is the conventional screen direction of the oblique
// depth axis: -135 degrees, toward the lower left.
const DefaultAxisAngle = -3 * math.Pi / 4

// Oblique is the fixed oblique (cavalier) projection used throughout the
// package. It is pure arithmetic; the SkewFactor range is enforced by the
// variant configs before any projection happens.
type Oblique struct {
	SkewFactor float64 // depth compression ratio, in (0, 1]
	AxisAngle  float64 // screen direction of the depth axis, radians
}

// Project maps a 3D semantic coordinate to a 2D figure point. The three
// components are axial (along the depth axis), radial (along the width
// axis, screen right) and vertical (along the height axis, screen up).
func (o Oblique) Project(axial, radial, vertical float64) Point {
	return Point{
		X: radial - axial*o.SkewFactor*math.Cos(o.AxisAngle),
		Y: vertical - axial*o.SkewFactor*math.Sin(o.AxisAngle),
	}
}

// ProjectLocal maps a point of a round cross-section given in the circle's
// own local frame. The radial coordinate passes through and the second
// coordinate is compressed by SkewFactor, matching the textbook convention
// that the ellipse's minor axis is the compressed circle.
func (o Oblique) ProjectLocal(radial, vertical float64) Point {
	return Point{X: radial, Y: vertical * o.SkewFactor}
}

// DepthDirection returns the unit screen direction of the depth axis.
func (o Oblique) DepthDirection() Point {
	return Pt(1, 0).Rotate(o.AxisAngle)
}
