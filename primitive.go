package solids

import "math"

// Primitive is the common interface of the stroke primitives a Figure is
// assembled from. Bounds exists for viewport fitting in renderers only;
// anchors are never derived from it.
type Primitive interface {
	Bounds() (min, max Point)
}

// Arc is an axis-aligned elliptical arc, parameterized counter-clockwise
// from StartAngle over Sweep radians. A Sweep of 2*pi is a full ellipse.
// The point at parameter theta is Center + (RadiusX*cos(theta),
// RadiusY*sin(theta)).
//
// The construction inputs are stored as given, and the start and end points
// are evaluated once at construction time. The accessors return those stored
// values so that two primitives welded to the same anchor report the same
// coordinates bit for bit.
type Arc struct {
	center  Point
	rx, ry  float64
	start   float64
	sweep   float64
	startPt Point
	endPt   Point
}

// NewArc creates an elliptical arc about center with semi-axes rx, ry,
// beginning at angle start (radians) and sweeping counter-clockwise by
// sweep radians.
func NewArc(center Point, rx, ry, start, sweep float64) Arc {
	a := Arc{center: center, rx: rx, ry: ry, start: start, sweep: sweep}
	a.startPt = a.PointAt(start)
	a.endPt = a.PointAt(start + sweep)
	return a
}

// NewCircle creates a full circle of the given radius about center.
func NewCircle(center Point, radius float64) Arc {
	return NewArc(center, radius, radius, 0, 2*math.Pi)
}

// NewEllipse creates a full ellipse with semi-axes rx, ry about center.
func NewEllipse(center Point, rx, ry float64) Arc {
	return NewArc(center, rx, ry, 0, 2*math.Pi)
}

// Center returns the center point the arc was constructed with.
func (a Arc) Center() Point { return a.center }

// RadiusX returns the horizontal semi-axis.
func (a Arc) RadiusX() float64 { return a.rx }

// RadiusY returns the vertical semi-axis.
func (a Arc) RadiusY() float64 { return a.ry }

// StartAngle returns the starting parameter angle in radians.
func (a Arc) StartAngle() float64 { return a.start }

// Sweep returns the angular span in radians.
func (a Arc) Sweep() float64 { return a.sweep }

// StartPoint returns the arc's first endpoint, evaluated once at
// construction.
func (a Arc) StartPoint() Point { return a.startPt }

// EndPoint returns the arc's second endpoint, evaluated once at
// construction.
func (a Arc) EndPoint() Point { return a.endPt }

// IsClosed reports whether the arc spans a full ellipse.
func (a Arc) IsClosed() bool { return a.sweep >= 2*math.Pi }

// PointAt evaluates the arc's parameterization at angle theta.
func (a Arc) PointAt(theta float64) Point {
	return Point{
		X: a.center.X + a.rx*math.Cos(theta),
		Y: a.center.Y + a.ry*math.Sin(theta),
	}
}

// StretchAbout returns the arc scaled by (sx, sy) about the pivot point.
// A pivot equal to the arc's center stays fixed bit for bit: the center
// moves by the component-scaled offset from the pivot, which is exactly
// zero in that case. Parameter angles are preserved; the semi-axes absorb
// the scaling.
func (a Arc) StretchAbout(pivot Point, sx, sy float64) Arc {
	off := a.center.Sub(pivot)
	center := pivot.Add(Point{X: off.X * sx, Y: off.Y * sy})
	return NewArc(center, a.rx*math.Abs(sx), a.ry*math.Abs(sy), a.start, a.sweep)
}

// Bounds returns the bounding box of the arc's full ellipse. Conservative
// for partial arcs; renderers only use it to size viewports.
func (a Arc) Bounds() (min, max Point) {
	return Pt(a.center.X-a.rx, a.center.Y-a.ry), Pt(a.center.X+a.rx, a.center.Y+a.ry)
}

// Line is a straight segment between two points. The endpoints are stored
// exactly as given and returned unmodified by the accessors.
type Line struct {
	start, end Point
}

// NewLine creates a line from one point to another.
func NewLine(from, to Point) Line {
	return Line{start: from, end: to}
}

// Start returns the literal start point the line was constructed with.
func (l Line) Start() Point { return l.start }

// End returns the literal end point the line was constructed with.
func (l Line) End() Point { return l.end }

// Vector returns End minus Start.
func (l Line) Vector() Point { return l.end.Sub(l.start) }

// Length returns the segment length.
func (l Line) Length() float64 { return l.start.Distance(l.end) }

// Bounds returns the endpoint bounding box.
func (l Line) Bounds() (min, max Point) {
	return Pt(math.Min(l.start.X, l.end.X), math.Min(l.start.Y, l.end.Y)),
		Pt(math.Max(l.start.X, l.end.X), math.Max(l.start.Y, l.end.Y))
}

// Arrow is a straight segment terminated by an arrowhead at its end point.
// Like Line, the endpoints are stored exactly as constructed.
type Arrow struct {
	start, end Point
}

// NewArrow creates an arrow from one point to another, head at the end.
func NewArrow(from, to Point) Arrow {
	return Arrow{start: from, end: to}
}

// Start returns the literal tail point.
func (a Arrow) Start() Point { return a.start }

// End returns the literal tip point.
func (a Arrow) End() Point { return a.end }

// Direction returns the unit vector from tail to tip.
func (a Arrow) Direction() Point { return a.end.Sub(a.start).Normalize() }

// Length returns the shaft length.
func (a Arrow) Length() float64 { return a.start.Distance(a.end) }

// Bounds returns the endpoint bounding box.
func (a Arrow) Bounds() (min, max Point) {
	return Pt(math.Min(a.start.X, a.end.X), math.Min(a.start.Y, a.end.Y)),
		Pt(math.Max(a.start.X, a.end.X), math.Max(a.start.Y, a.end.Y))
}

// Dot is a small filled disc marking a point, such as the sphere's axis
// piercing points.
type Dot struct {
	at     Point
	radius float64
}

// NewDot creates a dot of the given radius at a point.
func NewDot(at Point, radius float64) Dot {
	return Dot{at: at, radius: radius}
}

// At returns the literal center point.
func (d Dot) At() Point { return d.at }

// Radius returns the dot radius.
func (d Dot) Radius() float64 { return d.radius }

// Bounds returns the dot's bounding box.
func (d Dot) Bounds() (min, max Point) {
	return Pt(d.at.X-d.radius, d.at.Y-d.radius), Pt(d.at.X+d.radius, d.at.Y+d.radius)
}

// TextLabel is a short text annotation placed at a fixed point. The point
// is the label's visual center; renderers center their text on it.
type TextLabel struct {
	text string
	at   Point
	size float64
}

// NewTextLabel creates a label at a point with the default annotation size.
func NewTextLabel(text string, at Point) TextLabel {
	return TextLabel{text: text, at: at, size: labelFontSize}
}

// Text returns the label text.
func (t TextLabel) Text() string { return t.text }

// At returns the literal anchor point.
func (t TextLabel) At() Point { return t.at }

// Size returns the nominal font size: device pixels at a renderer's default
// scale. Renderers grow it proportionally at other scales.
func (t TextLabel) Size() float64 { return t.size }

// Bounds returns a point box at the label anchor; renderers apply their own
// text metrics on top.
func (t TextLabel) Bounds() (min, max Point) {
	return t.at, t.at
}
