package solids

// PyramidConfig configures a right square pyramid. BaseLength is the
// diagonal of the base square: the four corners sit on the width and depth
// axes at half that length, so the base draws as a rhombus with one corner
// toward the viewer.
type PyramidConfig struct {
	BaseLength float64
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// DefaultPyramidConfig returns the textbook defaults: base diagonal 2,
// height 3, skew factor 0.5.
func DefaultPyramidConfig() PyramidConfig {
	return PyramidConfig{
		BaseLength: 2,
		Height:     3,
		SkewFactor: 0.5,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg PyramidConfig) validate() error {
	if err := checkPositive("BaseLength", cfg.BaseLength); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg PyramidConfig) params() Params {
	return Params{
		Width:      cfg.BaseLength,
		Depth:      cfg.BaseLength,
		Height:     cfg.Height,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewPyramid constructs a square pyramid figure. The back corner is the far
// one; its two base edges and its slant edge are hidden, while the slant
// edges from the left, right and front corners form the visible silhouette.
func NewPyramid(cfg PyramidConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
	half := cfg.BaseLength / 2

	front := cfg.Center.Add(ob.Project(-half, 0, 0))
	back := cfg.Center.Add(ob.Project(half, 0, 0))
	left := cfg.Center.Add(Pt(-half, 0))
	right := cfg.Center.Add(Pt(half, 0))
	apex := cfg.Center.Add(Pt(0, cfg.Height))

	anchors := AnchorSet{
		CenterBottom: cfg.Center,
		LeftBottom:   left,
		RightBottom:  right,
		Apex:         apex,
		HasApex:      true,
	}

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, NewLine(right, back), strokeHiddenEdge)
	asm.add(LayerHiddenBase, Hidden, NewLine(back, left), strokeHiddenEdge)
	asm.add(LayerHiddenBase, Hidden, NewLine(back, apex), strokeHiddenEdge)
	if cfg.ShowAxes {
		dir := ob.DepthDirection()
		asm.addAxes([]Axis{
			buildAxis(AxisWidth, cfg.Center, right, Pt(1, 0), widthAxisExtension),
			buildAxis(AxisHeight, cfg.Center, apex, Pt(0, 1), heightAxisExtension),
			buildAxis(AxisDepth, cfg.Center, front, dir, depthAxisExtension),
		})
	}
	asm.add(LayerVisibleBase, Visible, NewLine(front, right), strokeVisible)
	asm.add(LayerVisibleBase, Visible, NewLine(left, front), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(front, apex), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(left, apex), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(right, apex), strokeVisible)
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, NewTextLabel("A", front.Add(Pt(0, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("B", right.Add(Pt(0.5, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("C", back.Add(Pt(0.5, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("D", left.Add(Pt(-0.5, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, placeApexLabel(anchors), strokeAnchorLabel)
	}

	f := newFigure(topoPyramid, cfg.params(), anchors, asm.finish())
	f.extras = map[string]Point{"front": front, "back": back}
	return f, nil
}
