package solids

// ConeConfig configures an upright circular cone.
type ConeConfig struct {
	Radius     float64
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool

	// ExactTangents draws the slant edges from the true silhouette tangency
	// points on the base ellipse instead of the rim anchors. It requires
	// Height > Radius*SkewFactor; flatter cones have no tangency and fail
	// with a DegenerateGeometryError rather than falling back to the rim.
	ExactTangents bool
}

// DefaultConeConfig returns the textbook defaults: radius 2, height 3.5,
// skew factor 0.4, rim-anchored slant edges.
func DefaultConeConfig() ConeConfig {
	return ConeConfig{
		Radius:     2,
		Height:     3.5,
		SkewFactor: 0.4,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg ConeConfig) validate() error {
	if err := checkPositive("Radius", cfg.Radius); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg ConeConfig) params() Params {
	return Params{
		Radius:     cfg.Radius,
		Height:     cfg.Height,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewCone constructs a cone figure: the split base ellipse, two slant edges
// (generatrices) meeting at the apex, and optionally the axes, the dashed
// interior height line, and the labels. There is no top curve.
func NewCone(cfg ConeConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	anchors := resolveAnchors(cfg.Center, cfg.Radius, 0, cfg.Height, topoCone)
	hiddenArc, visibleArc := buildBaseArcs(anchors.CenterBottom, cfg.Radius, cfg.SkewFactor)

	leftEdge, rightEdge := buildSideEdges(anchors, topoCone)
	if cfg.ExactTangents {
		lt, rt, err := coneTangentPoints(anchors.CenterBottom, cfg.Radius, cfg.Radius*cfg.SkewFactor, cfg.Height)
		if err != nil {
			return nil, err
		}
		leftEdge = NewLine(lt, anchors.Apex)
		rightEdge = NewLine(rt, anchors.Apex)
	}

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, hiddenArc, strokeHiddenArc)
	if cfg.ShowAxes {
		ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
		asm.addAxes(buildStandardAxes(anchors, cfg.Radius, ob, anchors.Apex))
		asm.add(LayerHiddenBase, Hidden, NewLine(anchors.CenterBottom, anchors.Apex), strokeHeightLine)
	}
	asm.add(LayerVisibleBase, Visible, visibleArc, strokeVisible)
	asm.add(LayerSideEdges, Visible, leftEdge, strokeVisible)
	asm.add(LayerSideEdges, Visible, rightEdge, strokeVisible)
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, placeOriginLabel(anchors), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, placeApexLabel(anchors), strokeAnchorLabel)
	}

	return newFigure(topoCone, cfg.params(), anchors, asm.finish()), nil
}
