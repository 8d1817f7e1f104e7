package solids

// FrustumConfig configures a conical frustum (a cone with its top cut off
// parallel to the base).
type FrustumConfig struct {
	Radius     float64 // bottom radius
	TopRadius  float64 // top radius, smaller than Radius
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// DefaultFrustumConfig returns the textbook defaults: bottom radius 2, top
// radius 1.2, height 3.5, skew factor 0.4.
func DefaultFrustumConfig() FrustumConfig {
	return FrustumConfig{
		Radius:     2,
		TopRadius:  1.2,
		Height:     3.5,
		SkewFactor: 0.4,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg FrustumConfig) validate() error {
	if err := checkPositive("Radius", cfg.Radius); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	if err := checkSkewFactor(cfg.SkewFactor); err != nil {
		return err
	}
	if cfg.TopRadius <= 0 || cfg.TopRadius >= cfg.Radius {
		return &ConfigError{Field: "TopRadius", Value: cfg.TopRadius, Constraint: "in (0, Radius)"}
	}
	return nil
}

func (cfg FrustumConfig) params() Params {
	return Params{
		Radius:     cfg.Radius,
		TopRadius:  cfg.TopRadius,
		Height:     cfg.Height,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewFrustum constructs a frustum figure: the split bottom ellipse, two
// slant edges joining the bottom rim to the narrower top rim, and the full
// top ellipse.
func NewFrustum(cfg FrustumConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	anchors := resolveAnchors(cfg.Center, cfg.Radius, cfg.TopRadius, cfg.Height, topoFrustum)
	hiddenArc, visibleArc := buildBaseArcs(anchors.CenterBottom, cfg.Radius, cfg.SkewFactor)
	leftEdge, rightEdge := buildSideEdges(anchors, topoFrustum)
	top := buildTopEllipse(anchors.CenterTop, cfg.TopRadius, cfg.SkewFactor)

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

	return newFigure(topoFrustum, cfg.params(), anchors, asm.finish()), nil
}
