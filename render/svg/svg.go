// Package svg writes solid figures as standalone SVG documents.
//
// The writer is dependency free: elements are assembled with a
// strings.Builder in figure order, which already encodes the stacking of
// hidden under visible line work. Like the raster bridge, it maps the y-up
// figure frame onto the y-down SVG frame with a uniform scale and a margin;
// stroke widths stay in device units and dash patterns scale with the view.
package svg

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gogpu/solids"
)

// Default view parameters, matching the raster bridge.
const (
	DefaultScale  = 60
	DefaultMargin = 40
)

// arrowHeadLen is the arrowhead length in device units.
const arrowHeadLen = 12.0

// Options configures the SVG output.
type Options struct {
	Scale      float64 // device units per figure unit
	Margin     float64 // padding around the figure bounds
	Background solids.RGBA
}

// DefaultOptions returns the textbook look: dark background, 60 units per
// figure unit, 40 units of padding.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale, Margin: DefaultMargin, Background: solids.Black}
}

// Write renders the figure as an SVG document to w.
func Write(w io.Writer, fig *solids.Figure, opts Options) error {
	doc, err := document(fig, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// WriteFile renders the figure as an SVG document into a file.
func WriteFile(path string, fig *solids.Figure, opts Options) error {
	doc, err := document(fig, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// view maps figure coordinates to SVG user units with one affine matrix:
// a uniform scale, a Y flip and a translation to the figure origin.
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

func document(fig *solids.Figure, opts Options) (string, error) {
	if opts.Scale <= 0 {
		return "", fmt.Errorf("svg: scale must be positive, got %v", opts.Scale)
	}
	if opts.Margin < 0 {
		return "", fmt.Errorf("svg: margin must not be negative, got %v", opts.Margin)
	}

	lo, hi := fig.Bounds()
	width := (hi.X-lo.X)*opts.Scale + 2*opts.Margin
	height := (hi.Y-lo.Y)*opts.Scale + 2*opts.Margin
	v := newView(opts.Scale, solids.Pt(opts.Margin-lo.X*opts.Scale, opts.Margin+hi.Y*opts.Scale))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(math.Ceil(width)), num(math.Ceil(height)), num(math.Ceil(width)), num(math.Ceil(height)))
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background.HexString())

	for _, el := range fig.Elements() {
		switch p := el.Prim.(type) {
		case solids.Arc:
			writeArc(&b, v, p, el.Stroke)
		case solids.Line:
			x1, y1 := v.point(p.Start())
			x2, y2 := v.point(p.End())
			fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
				num(x1), num(y1), num(x2), num(y2), strokeAttrs(el.Stroke, v.scale))
		case solids.Arrow:
			writeArrow(&b, v, p, el.Stroke)
		case solids.Dot:
			x, y := v.point(p.At())
			fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
				num(x), num(y), num(p.Radius()*v.scale), el.Stroke.Color.HexString(), opacityAttr("fill-opacity", el.Stroke.Opacity))
		case solids.TextLabel:
			x, y := v.point(p.At())
			fmt.Fprintf(&b, `<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="central" fill="%s"%s>%s</text>`+"\n",
				num(x), num(y), num(p.Size()*v.scale/DefaultScale), el.Stroke.Color.HexString(),
				opacityAttr("fill-opacity", el.Stroke.Opacity), textEscaper.Replace(p.Text()))
		default:
			return "", fmt.Errorf("svg: unsupported primitive %T", el.Prim)
		}
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// writeArc emits a closed arc as an ellipse element and a partial arc as a
// path of elliptical segments. Segments span at most a quarter turn, so the
// endpoint pair of each is never antipodal and the arc flags stay
// unambiguous.
func writeArc(b *strings.Builder, v view, a solids.Arc, s solids.Stroke) {
	cx, cy := v.point(a.Center())
	rx, ry := a.RadiusX()*v.scale, a.RadiusY()*v.scale

	if a.IsClosed() {
		fmt.Fprintf(b, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`+"\n",
			num(cx), num(cy), num(rx), num(ry), strokeAttrs(s, v.scale))
		return
	}

	const maxSegment = math.Pi / 2
	n := int(math.Ceil(a.Sweep() / maxSegment))
	if n < 1 {
		n = 1
	}
	step := a.Sweep() / float64(n)

	x, y := v.point(a.StartPoint())
	var d strings.Builder
	fmt.Fprintf(&d, "M %s %s", num(x), num(y))
	for i := 1; i <= n; i++ {
		p := a.PointAt(a.StartAngle() + float64(i)*step)
		ex, ey := v.point(p)
		// Increasing world angles run clockwise on screen after the Y
		// flip, hence sweep flag 0.
		fmt.Fprintf(&d, " A %s %s 0 0 0 %s %s", num(rx), num(ry), num(ex), num(ey))
	}
	fmt.Fprintf(b, `<path d="%s"%s/>`+"\n", d.String(), strokeAttrs(s, v.scale))
}

// writeArrow emits the shaft up to the head base and the head as a filled
// polygon with its tip on the arrow end point.
func writeArrow(b *strings.Builder, v view, a solids.Arrow, s solids.Stroke) {
	x1, y1 := v.point(a.Start())
	x2, y2 := v.point(a.End())
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	head := arrowHeadLen
	if head > length {
		head = length
	}
	bx, by := x2-ux*head, y2-uy*head
	px, py := -uy*head*0.35, ux*head*0.35

	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		num(x1), num(y1), num(bx), num(by), strokeAttrs(s, v.scale))
	fmt.Fprintf(b, `<polygon points="%s,%s %s,%s %s,%s" fill="%s"%s/>`+"\n",
		num(x2), num(y2), num(bx+px), num(by+py), num(bx-px), num(by-py),
		s.Color.HexString(), opacityAttr("fill-opacity", s.Opacity))
}

// strokeAttrs renders the stroke attributes shared by outline elements.
func strokeAttrs(s solids.Stroke, scale float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, ` fill="none" stroke="%s" stroke-width="%s"`, s.Color.HexString(), num(s.Width))
	b.WriteString(opacityAttr("stroke-opacity", s.Opacity))
	if d := s.Dash.Scale(scale); d.IsDashed() {
		parts := make([]string, len(d.Array))
		for i, l := range d.Array {
			parts[i] = num(l)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
		if d.Offset != 0 {
			fmt.Fprintf(&b, ` stroke-dashoffset="%s"`, num(d.Offset))
		}
	}
	return b.String()
}

// opacityAttr renders an opacity attribute, omitted when fully opaque.
func opacityAttr(name string, opacity float64) string {
	if opacity >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(opacity))
}

// num formats a coordinate with two decimals, enough for sub-pixel SVG
// placement without noisy float tails.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
