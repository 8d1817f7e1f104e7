// Package ggrender rasterizes solid figures through the gg drawing library.
//
// Figures live in a y-up mathematical frame; gg draws in a y-down pixel
// frame. The bridge owns that mapping: a uniform scale, a Y flip, and a
// pixel margin fitted around the figure bounds. Stroke widths are device
// pixels and pass through unchanged; dash patterns are figure units and
// scale with the view. Elements are drawn strictly in figure order, which
// already encodes the hidden-under-visible stacking.
package ggrender

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/solids"
)

// arrowHeadLen is the arrowhead length in device pixels.
const arrowHeadLen = 12.0

// view maps figure coordinates to device pixels: a uniform scale, a Y flip
// and a translation to the device position of the figure origin, composed
// as one affine matrix.
type view struct {
	scale float64
	m     solids.Matrix
}

func newView(scale float64, origin solids.Point) view {
	return view{
		scale: scale,
		m:     solids.Translate(origin.X, origin.Y).Multiply(solids.Scale(scale, -scale)),
	}
}

func (v view) point(p solids.Point) (x, y float64) {
	q := v.m.TransformPoint(p)
	return q.X, q.Y
}

// Render draws the figure onto a new context sized to its bounds plus the
// margin. The context is returned for further composition or encoding.
func Render(fig *solids.Figure, opts ...Option) (*gg.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		return nil, fmt.Errorf("ggrender: scale must be positive, got %v", o.scale)
	}
	if o.margin < 0 {
		return nil, fmt.Errorf("ggrender: margin must not be negative, got %v", o.margin)
	}

	lo, hi := fig.Bounds()
	width := int(math.Ceil((hi.X-lo.X)*o.scale + 2*o.margin))
	height := int(math.Ceil((hi.Y-lo.Y)*o.scale + 2*o.margin))
	v := newView(o.scale, solids.Pt(o.margin-lo.X*o.scale, o.margin+hi.Y*o.scale))

	source, err := text.NewFontSource(o.fontData)
	if err != nil {
		return nil, fmt.Errorf("ggrender: load font: %w", err)
	}
	faces := map[float64]text.Face{}

	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(gg.RGBA{R: o.background.R, G: o.background.G, B: o.background.B, A: o.background.A})

	for _, el := range fig.Elements() {
		applyStroke(ctx, el.Stroke, v.scale)

		switch p := el.Prim.(type) {
		case solids.Arc:
			drawArc(ctx, v, p)
			err = ctx.Stroke()
		case solids.Line:
			x1, y1 := v.point(p.Start())
			x2, y2 := v.point(p.End())
			ctx.DrawLine(x1, y1, x2, y2)
			err = ctx.Stroke()
		case solids.Arrow:
			err = drawArrow(ctx, v, p)
		case solids.Dot:
			x, y := v.point(p.At())
			ctx.DrawCircle(x, y, p.Radius()*v.scale)
			err = ctx.Fill()
		case solids.TextLabel:
			size := p.Size() * v.scale / DefaultScale
			face, ok := faces[size]
			if !ok {
				face = source.Face(size)
				faces[size] = face
			}
			ctx.SetFont(face)
			x, y := v.point(p.At())
			ctx.DrawStringAnchored(p.Text(), x, y, 0.5, 0.5)
		default:
			err = fmt.Errorf("unsupported primitive %T", el.Prim)
		}
		if err != nil {
			return nil, fmt.Errorf("ggrender: draw %T: %w", el.Prim, err)
		}
	}

	return ctx, nil
}

// SavePNG renders the figure and writes it to a PNG file.
func SavePNG(path string, fig *solids.Figure, opts ...Option) error {
	ctx, err := Render(fig, opts...)
	if err != nil {
		return err
	}
	return ctx.SavePNG(path)
}

// EncodePNG renders the figure and encodes it as PNG to w.
func EncodePNG(w io.Writer, fig *solids.Figure, opts ...Option) error {
	ctx, err := Render(fig, opts...)
	if err != nil {
		return err
	}
	return ctx.EncodePNG(w)
}

// applyStroke moves a figure stroke onto the context: color with the
// opacity folded into alpha, pixel line width, and the dash pattern scaled
// from figure units to pixels.
func applyStroke(ctx *gg.Context, s solids.Stroke, scale float64) {
	c := s.Color
	ctx.SetRGBA(c.R, c.G, c.B, c.A*s.Opacity)
	ctx.SetLineWidth(s.Width)
	if d := s.Dash.Scale(scale); d.IsDashed() {
		ctx.SetDash(d.Array...)
		ctx.SetDashOffset(d.Offset)
	} else {
		ctx.ClearDash()
	}
}

// drawArc appends the arc to the context path. The Y flip mirrors the
// parameterization, so a world arc over [start, start+sweep] runs over
// [-start, -start-sweep] in device angles; walking it in that direction
// keeps the dash phase anchored at the world start point.
func drawArc(ctx *gg.Context, v view, a solids.Arc) {
	cx, cy := v.point(a.Center())
	rx, ry := a.RadiusX()*v.scale, a.RadiusY()*v.scale
	if a.IsClosed() {
		ctx.DrawEllipse(cx, cy, rx, ry)
		return
	}
	arcPath(ctx, cx, cy, rx, ry, -a.StartAngle(), -(a.StartAngle() + a.Sweep()))
}

// arcPath flattens an elliptical arc into cubic segments of at most a
// quarter turn, built through the context's own path verbs.
func arcPath(ctx *gg.Context, cx, cy, rx, ry, a1, a2 float64) {
	const maxSegment = math.Pi / 2
	n := int(math.Ceil(math.Abs(a2-a1) / maxSegment))
	if n < 1 {
		n = 1
	}
	step := (a2 - a1) / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		arcSegment(ctx, cx, cy, rx, ry, s, s+step, i == 0)
	}
}

// arcSegment appends one cubic approximation of the elliptical arc between
// parameter angles a1 and a2. The control distance alpha is the standard
// circular-arc fit; the ellipse enters through the tangent components.
func arcSegment(ctx *gg.Context, cx, cy, rx, ry, a1, a2 float64, first bool) {
	half := (a2 - a1) / 2
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan(half)*math.Tan(half)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)
	x1, y1 := cx+rx*cos1, cy+ry*sin1
	x2, y2 := cx+rx*cos2, cy+ry*sin2

	if first {
		ctx.MoveTo(x1, y1)
	}
	ctx.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2,
	)
}

// drawArrow strokes the shaft up to the head base and fills the head as a
// triangle, so the tip lands exactly on the arrow's end point.
func drawArrow(ctx *gg.Context, v view, a solids.Arrow) error {
	x1, y1 := v.point(a.Start())
	x2, y2 := v.point(a.End())
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	head := arrowHeadLen
	if head > length {
		head = length
	}
	bx, by := x2-ux*head, y2-uy*head
	px, py := -uy*head*0.35, ux*head*0.35

	ctx.DrawLine(x1, y1, bx, by)
	if err := ctx.Stroke(); err != nil {
		return err
	}
	ctx.MoveTo(x2, y2)
	ctx.LineTo(bx+px, by+py)
	ctx.LineTo(bx-px, by-py)
	ctx.ClosePath()
	return ctx.Fill()
}
