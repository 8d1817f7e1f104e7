package solids

// AxisKind identifies one of the three oblique coordinate axes.
type AxisKind int

const (
	// AxisWidth runs screen right; the textbook y axis.
	AxisWidth AxisKind = iota
	// AxisHeight runs screen up; the textbook z axis.
	AxisHeight
	// AxisDepth runs along the oblique AxisAngle; the textbook x axis.
	AxisDepth
)

func (k AxisKind) String() string {
	switch k {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	case AxisDepth:
		return "depth"
	}
	return "unknown"
}

// Letter returns the conventional axis letter: y for width, z for height,
// x for depth.
func (k AxisKind) Letter() string {
	switch k {
	case AxisWidth:
		return "y"
	case AxisHeight:
		return "z"
	default:
		return "x"
	}
}

// Fixed visual lengths shared by all variants: how far each outer arrow
// extends past its anchor, and where the inner depth segment stops, as a
// fraction of the radius (the depth axis has no drawn silhouette point to
// end at, so it uses a clearance fraction instead).
const (
	widthAxisExtension  = 1.5
	heightAxisExtension = 1.0
	depthAxisExtension  = 1.5

	depthInnerFraction = 0.7
	prismWidthFraction = 0.8
)

// Axis is one oblique coordinate axis, split into a dashed inner segment
// crossing the solid and a solid outer segment carrying the arrowhead and
// the axis letter. The outer segment starts bit-identically where the inner
// segment ends: both read the same anchor value.
type Axis struct {
	Kind  AxisKind
	Inner Line
	Outer Arrow
	Label TextLabel
}

// buildAxis assembles one axis from the shared origin anchor, the anchor
// its inner segment ends at, and the outward unit direction of its outer
// arrow.
func buildAxis(kind AxisKind, origin, innerEnd, dir Point, extension float64) Axis {
	tip := innerEnd.Add(dir.Mul(extension))
	return Axis{
		Kind:  kind,
		Inner: NewLine(origin, innerEnd),
		Outer: NewArrow(innerEnd, tip),
		Label: NewTextLabel(kind.Letter(), tip.Add(axisLabelOffset(kind, dir))),
	}
}

// axisLabelOffset returns the fixed offset of the axis letter past the
// arrow tip.
func axisLabelOffset(kind AxisKind, dir Point) Point {
	switch kind {
	case AxisWidth:
		return Pt(0.3, 0)
	case AxisHeight:
		return Pt(0, 0.3)
	default:
		return dir.Mul(0.5)
	}
}

// buildStandardAxes builds the three axes for a solid with a round base:
// the width axis inner segment ends at the right rim anchor, the height
// axis at heightEnd (the top center or apex anchor), and the depth axis at
// the clearance fraction of the radius along the oblique direction.
func buildStandardAxes(anchors AnchorSet, radius float64, ob Oblique, heightEnd Point) []Axis {
	dir := ob.DepthDirection()
	depthEnd := anchors.CenterBottom.Add(dir.Mul(radius * depthInnerFraction))
	return []Axis{
		buildAxis(AxisWidth, anchors.CenterBottom, anchors.RightBottom, Pt(1, 0), widthAxisExtension),
		buildAxis(AxisHeight, anchors.CenterBottom, heightEnd, Pt(0, 1), heightAxisExtension),
		buildAxis(AxisDepth, anchors.CenterBottom, depthEnd, dir, depthAxisExtension),
	}
}
