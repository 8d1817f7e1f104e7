package solids

// CylinderConfig configures an upright circular cylinder.
type CylinderConfig struct {
	Radius     float64
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// DefaultCylinderConfig returns the textbook defaults: radius 2, height
// 3.5, skew factor 0.4, depth axis at -135 degrees, axes and labels on.
func DefaultCylinderConfig() CylinderConfig {
	return CylinderConfig{
		Radius:     2,
		Height:     3.5,
		SkewFactor: 0.4,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg CylinderConfig) validate() error {
	if err := checkPositive("Radius", cfg.Radius); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg CylinderConfig) params() Params {
	return Params{
		Radius:     cfg.Radius,
		TopRadius:  cfg.Radius,
		Height:     cfg.Height,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewCylinder constructs a cylinder figure: the split base ellipse, two
// vertical side edges, the full top ellipse, and optionally the axes and
// labels. Validation runs before any anchor is computed; a failed
// construction returns no figure at all.
func NewCylinder(cfg CylinderConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	anchors := resolveAnchors(cfg.Center, cfg.Radius, cfg.Radius, cfg.Height, topoCylinder)
	hiddenArc, visibleArc := buildBaseArcs(anchors.CenterBottom, cfg.Radius, cfg.SkewFactor)
	leftEdge, rightEdge := buildSideEdges(anchors, topoCylinder)
	top := buildTopEllipse(anchors.CenterTop, cfg.Radius, cfg.SkewFactor)

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, hiddenArc, strokeHiddenArc)
	if cfg.ShowAxes {
		ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
		asm.addAxes(buildStandardAxes(anchors, cfg.Radius, ob, anchors.CenterTop))
	}
	asm.add(LayerVisibleBase, Visible, visibleArc, strokeVisible)
	asm.add(LayerSideEdges, Visible, leftEdge, strokeVisible)
	asm.add(LayerSideEdges, Visible, rightEdge, strokeVisible)
	asm.add(LayerTopCurve, Visible, top, strokeVisible)
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, placeOriginLabel(anchors), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, placeTopLabel(anchors), strokeAnchorLabel)
	}

	return newFigure(topoCylinder, cfg.params(), anchors, asm.finish()), nil
}
