package solids

// topology identifies which anchors exist and which silhouette pieces are
// built for a solid variant.
type topology int

const (
	topoCylinder topology = iota
	topoCone
	topoFrustum
	topoSphere
	topoPrism
	topoCuboid
	topoPyramid
)

func (t topology) String() string {
	switch t {
	case topoCylinder:
		return "cylinder"
	case topoCone:
		return "cone"
	case topoFrustum:
		return "frustum"
	case topoSphere:
		return "sphere"
	case topoPrism:
		return "prism"
	case topoCuboid:
		return "cuboid"
	case topoPyramid:
		return "pyramid"
	}
	return "unknown"
}

// AnchorSet holds the named reference points of one solid. It is resolved
// once from the configuration, algebraically from the center, and every
// downstream primitive that needs one of these points reads it from here.
// Reading anchors back from a rendered primitive's bounding box is the
// forbidden alternative: stroke widths and padding make boxes unreliable.
//
// HasTop and HasApex report which optional anchors are meaningful for the
// variant's topology.
type AnchorSet struct {
	CenterBottom Point
	LeftBottom   Point
	RightBottom  Point
	CenterTop    Point
	LeftTop      Point
	RightTop     Point
	Apex         Point

	HasTop  bool
	HasApex bool
}

// resolveAnchors computes the anchor set for the round topologies. The
// bottom row always exists; cylinders and frustums get a top ring, cones an
// apex, spheres neither (their left/right bottom anchors are the equator
// rim). Faceted variants (prism, cuboid, pyramid) resolve their own vertex
// anchors in their constructors, against the same welding rules.
func resolveAnchors(center Point, radius, topRadius, height float64, topo topology) AnchorSet {
	a := AnchorSet{
		CenterBottom: center,
		LeftBottom:   center.Add(Pt(-radius, 0)),
		RightBottom:  center.Add(Pt(radius, 0)),
	}
	switch topo {
	case topoCone:
		a.Apex = center.Add(Pt(0, height))
		a.HasApex = true
	case topoSphere:
		// contour only, no top ring
	default:
		a.CenterTop = center.Add(Pt(0, height))
		a.LeftTop = a.CenterTop.Add(Pt(-topRadius, 0))
		a.RightTop = a.CenterTop.Add(Pt(topRadius, 0))
		a.HasTop = true
	}
	return a
}
