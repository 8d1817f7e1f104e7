package solids

import (
	"fmt"
	"math"
)

// buildBaseArcs constructs the two halves of a round base: the hidden back
// arc spanning parameter angles [0, pi] and the visible front arc spanning
// [pi, 2*pi]. The halves meet at the left and right rim anchors, where the
// local depth coordinate changes sign.
//
// Both arcs are built at full radius about the center anchor and then
// compressed by StretchAbout the same anchor. Stretching about anything
// else (the arc's own centroid, a bounding box) shifts one half relative to
// the other and opens a seam at the rim; the pivot must be the shared
// center.
func buildBaseArcs(center Point, radius, skew float64) (hidden, visible Arc) {
	hidden = NewArc(center, radius, radius, 0, math.Pi).StretchAbout(center, 1, skew)
	visible = NewArc(center, radius, radius, math.Pi, math.Pi).StretchAbout(center, 1, skew)
	return hidden, visible
}

// buildTopEllipse constructs the full top ellipse about the top-center
// anchor. The top ring is entirely visible, so it needs no split.
func buildTopEllipse(center Point, radius, skew float64) Arc {
	return NewEllipse(center, radius, radius*skew)
}

// buildSideEdges returns the left and right silhouette edges, welded to the
// bottom rim anchors and to the top ring or apex per topology.
func buildSideEdges(anchors AnchorSet, topo topology) (left, right Line) {
	if topo == topoCone {
		return NewLine(anchors.LeftBottom, anchors.Apex), NewLine(anchors.RightBottom, anchors.Apex)
	}
	return NewLine(anchors.LeftBottom, anchors.LeftTop), NewLine(anchors.RightBottom, anchors.RightTop)
}

// sphereParts is the constructed silhouette of a sphere: the full circular
// contour, the equator split front/back, and the optional meridian split
// front/back.
type sphereParts struct {
	contour       Arc
	equatorFront  Arc
	equatorBack   Arc
	meridianFront Arc
	meridianBack  Arc
	hasMeridian   bool
}

// buildSphereParts constructs the sphere silhouette. The contour stays a
// true circle; the equator is the base-arc pair squashed vertically; the
// meridian is the complementary pair squashed horizontally. All three
// compressions pivot on the center anchor.
func buildSphereParts(center Point, radius, skew float64, showMeridian bool) sphereParts {
	p := sphereParts{
		contour: NewCircle(center, radius),
	}
	p.equatorBack, p.equatorFront = buildBaseArcs(center, radius, skew)
	if showMeridian {
		p.meridianFront = NewArc(center, radius, radius, -math.Pi/2, math.Pi).StretchAbout(center, skew, 1)
		p.meridianBack = NewArc(center, radius, radius, math.Pi/2, math.Pi).StretchAbout(center, skew, 1)
		p.hasMeridian = true
	}
	return p
}

// axisEllipseIntersection solves, analytically, the near intersection of
// the depth axis with the equator ellipse of semi-axes a (horizontal) and b
// (vertical) centered on the given anchor. For axis slope k = tan(angle)
// the root is
//
//	x = -(a*b) / sqrt(b*b + a*a*k*k),  y = k*x
//
// Exact roots; never found by sampling. A vertical depth axis has no slope
// and therefore no distinct piercing point, which is reported as degenerate
// geometry rather than approximated.
func axisEllipseIntersection(center Point, a, b, axisAngle float64) (Point, error) {
	if math.Abs(math.Cos(axisAngle)) < 1e-12 {
		return Point{}, &DegenerateGeometryError{
			Op:     "sphere axis intersection",
			Detail: fmt.Sprintf("depth axis angle %v is vertical; the slope-form intersection has no root", axisAngle),
		}
	}
	k := math.Tan(axisAngle)
	x := -(a * b) / math.Sqrt(b*b+a*a*k*k)
	return center.Add(Pt(x, k*x)), nil
}

// coneTangentPoints computes the true silhouette tangency points of a cone
// whose base ellipse has semi-axes a, b and whose apex sits height above
// the base center:
//
//	yOff = b*b/height,  xOff = a*sqrt(1 - b*b/(height*height))
//
// The points satisfy the ellipse equation exactly. Tangency only exists
// when the apex clears the compressed base, height > b; anything else is
// degenerate and is never clamped to the rim.
func coneTangentPoints(center Point, a, b, height float64) (left, right Point, err error) {
	if height <= b {
		return Point{}, Point{}, &DegenerateGeometryError{
			Op:     "cone tangency",
			Detail: fmt.Sprintf("height %v does not clear the compressed base semi-axis %v", height, b),
		}
	}
	yOff := b * b / height
	xOff := a * math.Sqrt(1-(b*b)/(height*height))
	return center.Add(Pt(-xOff, yOff)), center.Add(Pt(xOff, yOff)), nil
}
