package solids

import "math"

// Base vertex angles of the triangular prism: one vertex in back, two in
// front. The back vertex is the source of every dashed edge.
const (
	prismBackAngle  = math.Pi / 2
	prismLeftAngle  = 7 * math.Pi / 6
	prismRightAngle = 11 * math.Pi / 6
)

// TriangularPrismConfig configures a right prism over an equilateral
// triangle. Radius is the circumradius of the base triangle; the vertices
// sit on the compressed base ellipse at 90, 210 and 330 degrees.
type TriangularPrismConfig struct {
	Radius     float64
	Height     float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// DefaultTriangularPrismConfig returns the textbook defaults: circumradius
// 2, height 3.5, skew factor 0.4.
func DefaultTriangularPrismConfig() TriangularPrismConfig {
	return TriangularPrismConfig{
		Radius:     2,
		Height:     3.5,
		SkewFactor: 0.4,
		AxisAngle:  DefaultAxisAngle,
		ShowAxes:   true,
		ShowLabels: true,
	}
}

func (cfg TriangularPrismConfig) validate() error {
	if err := checkPositive("Radius", cfg.Radius); err != nil {
		return err
	}
	if err := checkPositive("Height", cfg.Height); err != nil {
		return err
	}
	return checkSkewFactor(cfg.SkewFactor)
}

func (cfg TriangularPrismConfig) params() Params {
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

// NewTriangularPrism constructs a triangular prism figure by discrete vertex
// connection: the six vertices are computed once from the center, then every
// edge is a line between two of them. The back vertex and its three edges
// (two base edges and the back vertical) are hidden; everything else,
// including the whole top face, is visible.
func NewTriangularPrism(cfg TriangularPrismConfig) (*Figure, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ob := Oblique{SkewFactor: cfg.SkewFactor, AxisAngle: cfg.AxisAngle}
	vertexAt := func(theta float64) Point {
		p := Polar(cfg.Radius, theta)
		return cfg.Center.Add(ob.ProjectLocal(p.X, p.Y))
	}
	backBottom := vertexAt(prismBackAngle)
	leftBottom := vertexAt(prismLeftAngle)
	rightBottom := vertexAt(prismRightAngle)

	lift := Pt(0, cfg.Height)
	backTop := backBottom.Add(lift)

	anchors := AnchorSet{
		CenterBottom: cfg.Center,
		LeftBottom:   leftBottom,
		RightBottom:  rightBottom,
		CenterTop:    cfg.Center.Add(lift),
		LeftTop:      leftBottom.Add(lift),
		RightTop:     rightBottom.Add(lift),
		HasTop:       true,
	}

	asm := &assembler{}
	asm.add(LayerHiddenBase, Hidden, NewLine(backBottom, anchors.LeftBottom), strokeHiddenEdge)
	asm.add(LayerHiddenBase, Hidden, NewLine(backBottom, anchors.RightBottom), strokeHiddenEdge)
	if cfg.ShowAxes {
		widthEnd := cfg.Center.Add(Pt(cfg.Radius*prismWidthFraction, 0))
		dir := ob.DepthDirection()
		depthEnd := cfg.Center.Add(dir.Mul(cfg.Radius * depthInnerFraction))
		asm.addAxes([]Axis{
			buildAxis(AxisWidth, cfg.Center, widthEnd, Pt(1, 0), widthAxisExtension),
			buildAxis(AxisHeight, cfg.Center, anchors.CenterTop, Pt(0, 1), heightAxisExtension),
			buildAxis(AxisDepth, cfg.Center, depthEnd, dir, depthAxisExtension),
		})
	}
	asm.add(LayerVisibleBase, Visible, NewLine(anchors.LeftBottom, anchors.RightBottom), strokeVisible)
	asm.add(LayerSideEdges, Hidden, NewLine(backBottom, backTop), strokeHiddenEdge)
	asm.add(LayerSideEdges, Visible, NewLine(anchors.LeftBottom, anchors.LeftTop), strokeVisible)
	asm.add(LayerSideEdges, Visible, NewLine(anchors.RightBottom, anchors.RightTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(backTop, anchors.LeftTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(backTop, anchors.RightTop), strokeVisible)
	asm.add(LayerTopCurve, Visible, NewLine(anchors.LeftTop, anchors.RightTop), strokeVisible)
	if cfg.ShowLabels {
		asm.add(LayerLabels, Visible, NewTextLabel("A", backBottom.Add(Pt(0, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("B", anchors.LeftBottom.Add(Pt(-0.3, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("C", anchors.RightBottom.Add(Pt(0.3, -0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("A'", backTop.Add(Pt(0, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("B'", anchors.LeftTop.Add(Pt(-0.3, 0.5))), strokeAnchorLabel)
		asm.add(LayerLabels, Visible, NewTextLabel("C'", anchors.RightTop.Add(Pt(0.3, 0.5))), strokeAnchorLabel)
	}

	f := newFigure(topoPrism, cfg.params(), anchors, asm.finish())
	f.extras = map[string]Point{"back": backBottom, "top_back": backTop}
	return f, nil
}
