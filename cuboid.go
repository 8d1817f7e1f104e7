package solids

// CuboidConfig configures an axis-aligned box. Width runs along the screen
// horizontal, Depth along the oblique axis, Height straight up. The base
// rectangle is centered on Center.
type CuboidConfig struct {
	Width      float64
	Depth      float64
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// DefaultCuboidConfig returns the textbook defaults: width 2, depth 1.5,
// height 2.5, skew factor 0.5.
func DefaultCuboidConfig() CuboidConfig {
	return CuboidConfig{
		Width:      2,
		Depth:      1.5,
		Height:     2.5,
		SkewFactor: 0.5,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg CuboidConfig) validate() error {
	if err := checkPositive("Width", cfg.Width); err != nil {
		return err
	}
	if err := checkPositive("Depth", cfg.Depth); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg CuboidConfig) params() Params {
	return Params{
		Width:      cfg.Width,
		Depth:      cfg.Depth,
		Height:     cfg.Height,
		SkewFactor: cfg.SkewFactor,
		AxisAngle:  cfg.AxisAngle,
		Center:     cfg.Center,
		ShowAxes:   cfg.ShowAxes,
		ShowLabels: cfg.ShowLabels,
	}
}

// NewCuboid constructs a cuboid figure. All eight corners are projected once
// from the base center, half the depth in front of it and half behind, so
// opposite faces stay congruent. At the default axis angle the back face
// lands up-right of the front face; the three edges meeting at the
// back-bottom-left corner are the hidden ones.
func NewCuboid(cfg CuboidConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
	halfW, halfD := cfg.Width/2, cfg.Depth/2

	frontLeft := cfg.Center.Add(ob.Project(-halfD, -halfW, 0))
	frontRight := cfg.Center.Add(ob.Project(-halfD, halfW, 0))
	backRight := cfg.Center.Add(ob.Project(halfD, halfW, 0))
	backLeft := cfg.Center.Add(ob.Project(halfD, -halfW, 0))

	lift := Pt(0, cfg.Height)
	frontLeftTop := frontLeft.Add(lift)
	frontRightTop := frontRight.Add(lift)
	backRightTop := backRight.Add(lift)
	backLeftTop := backLeft.Add(lift)

	anchors := AnchorSet{
		CenterBottom: cfg.Center,
		LeftBottom:   frontLeft,
		RightBottom:  frontRight,
		CenterTop:    cfg.Center.Add(lift),
		LeftTop:      frontLeftTop,
		RightTop:     frontRightTop,
		HasTop:       true,
	}

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, NewLine(backLeft, backRight), strokeHiddenEdge)
	asm.add(LayerHiddenBase, Hidden, NewLine(backLeft, frontLeft), strokeHiddenEdge)
	asm.add(LayerHiddenBase, Hidden, NewLine(backLeft, backLeftTop), strokeHiddenEdge)
	if cfg.ShowAxes {
		dir := ob.DepthDirection()
		widthEnd := cfg.Center.Add(Pt(halfW, 0))
		depthEnd := cfg.Center.Add(dir.Mul(halfD * cfg.SkewFactor))
		asm.addAxes([]Axis{
			buildAxis(AxisWidth, cfg.Center, widthEnd, Pt(1, 0), widthAxisExtension),
			buildAxis(AxisHeight, cfg.Center, anchors.CenterTop, Pt(0, 1), heightAxisExtension),
			buildAxis(AxisDepth, cfg.Center, depthEnd, dir, depthAxisExtension),
		})
	}
	asm.add(LayerVisibleBase, Visible, NewLine(frontLeft, frontRight), strokeVisible)
	asm.add(LayerVisibleBase, Visible, NewLine(frontRight, backRight), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(frontLeft, frontLeftTop), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(frontRight, frontRightTop), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(backRight, backRightTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(frontLeftTop, frontRightTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(frontRightTop, backRightTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(backRightTop, backLeftTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(backLeftTop, frontLeftTop), strokeVisible)
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, NewTextLabel("A", frontLeft.Add(Pt(-0.5, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("B", frontRight.Add(Pt(0.5, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("C", backRight.Add(Pt(0.5, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("D", backLeft.Add(Pt(-0.5, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("A'", frontLeftTop.Add(Pt(-0.5, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("B'", frontRightTop.Add(Pt(0.5, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("C'", backRightTop.Add(Pt(0.5, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("D'", backLeftTop.Add(Pt(-0.5, 0.5))), strokeAnchorLabel)
	}

	f := newFigure(topoCuboid, cfg.params(), anchors, asm.finish())
	f.extras = map[string]Point{
		"back_left":      backLeft,
		"back_right":     backRight,
		"top_back_left":  backLeftTop,
		"top_back_right": backRightTop,
	}
	return f, nil
}
