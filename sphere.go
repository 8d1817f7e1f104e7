package solids

// SphereConfig configures a sphere. The contour circle never compresses; the
// skew factor only squashes the equator and meridian rings.
type SphereConfig struct {
	Radius       float64
	SkewFactor   float64
	AxisAngle    float64
	Center       Point
	ShowMeridian bool
	ShowAxes     bool
	ShowLabels   bool

	// ShowIntersectionDots marks the points where the drawn axes pierce the
	// surface: the right rim, the north pole, and the analytic depth-axis
	// intersection with the equator ellipse. It only applies when ShowAxes
	// is set; without axes there is nothing to mark.
	ShowIntersectionDots bool
}

// DefaultSphereConfig returns the textbook defaults: radius 2, skew factor
// 0.3, meridian and piercing dots drawn.
func DefaultSphereConfig() SphereConfig {
	return SphereConfig{
		Radius:               2,
		SkewFactor:           0.3,
		AxisAngle:            DefaultAxisAngle,
		ShowMeridian:         true,
		ShowAxes:             true,
		ShowLabels:           true,
		ShowIntersectionDots: true,
	}
}

func (cfg SphereConfig) validate() error {
	if err := checkPositive("Radius", cfg.Radius); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg SphereConfig) params() Params {
	return Params{
		Radius:     cfg.Radius,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewSphere constructs a sphere figure: the circular contour, the squashed
// equator and meridian rings split at their visibility boundaries, and axes
// whose inner segments end exactly where they pierce the surface.
//
// The depth piercing point is the analytic intersection of the oblique axis
// with the equator ellipse. A vertical AxisAngle has no such intersection and
// returns a DegenerateGeometryError when axes are requested.
func NewSphere(cfg SphereConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	anchors := resolveAnchors(cfg.Center, cfg.Radius, 0, 0, topoSphere)
	parts := buildSphereParts(anchors.CenterBottom, cfg.Radius, cfg.SkewFactor, cfg.ShowMeridian)
	northPole := anchors.CenterBottom.Add(Pt(0, cfg.Radius))

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, parts.equatorBack, strokeDetailHidden)
	if parts.hasMeridian {
		asm.add(LayerHiddenBase, Hidden, parts.meridianBack, strokeDetailHidden)
	}
	if cfg.ShowAxes {
		ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
		depthPierce, err := axisEllipseIntersection(anchors.CenterBottom, cfg.Radius, cfg.Radius*cfg.SkewFactor, cfg.AxisAngle)
		if err != nil {
			return nil, err
		}
		asm.addAxes([]Axis{
			buildAxis(AxisWidth, anchors.CenterBottom, anchors.RightBottom, Pt(1, 0), widthAxisExtension),
			buildAxis(AxisHeight, anchors.CenterBottom, northPole, Pt(0, 1), heightAxisExtension),
			buildAxis(AxisDepth, anchors.CenterBottom, depthPierce, ob.DepthDirection(), depthAxisExtension),
		})
		if cfg.ShowIntersectionDots {
			asm.add(LayerMarkers, Visible, NewDot(anchors.RightBottom, dotRadius), strokeDot(AxisWidth))
			asm.add(LayerMarkers, Visible, NewDot(northPole, dotRadius), strokeDot(AxisHeight))
			asm.add(LayerMarkers, Visible, NewDot(depthPierce, dotRadius), strokeDot(AxisDepth))
		}
	}
	asm.add(LayerVisibleBase, Visible, parts.contour, strokeContour)
	asm.add(LayerSideEdges, Visible, parts.equatorFront, strokeDetail)
	if parts.hasMeridian {
		asm.add(LayerSideEdges, Visible, parts.meridianFront, strokeDetail)
	}
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, placeOriginLabel(anchors), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, placeNorthLabel(northPole), strokeAnchorLabel)
	}

	return newFigure(topoSphere, cfg.params(), anchors, asm.finish()), nil
}
