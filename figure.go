package solids

import (
	"cmp"
	"slices"
)

// Visibility classifies an element as drawn solid or dashed.
type Visibility int

const (
	// Visible elements are stroked solid.
	Visible Visibility = iota
	// Hidden elements are stroked dashed; they lie behind the solid.
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Layer is the stacking position of an element. Figures keep their elements
// sorted by layer, bottom first, and renderers must draw in that order.
// The ordering is a correctness contract, not a style: the visible base arc
// sits above the hidden arc and the inner axes exactly so its stroke covers
// the seam where the two base halves meet at the rim. Swapping
// LayerInnerAxes and LayerVisibleBase reopens that seam.
type Layer int

const (
	LayerHiddenBase Layer = iota + 1
	LayerInnerAxes
	LayerVisibleBase
	LayerSideEdges
	LayerTopCurve
	LayerMarkers
	LayerOuterAxes
	LayerLabels
)

// Element is one draw-ordered primitive with its stroke.
type Element struct {
	Layer      Layer
	Visibility Visibility
	Prim       Primitive
	Stroke     Stroke
}

// Params is the read-only snapshot of the configuration a figure was built
// from. Fields a topology does not use stay zero.
type Params struct {
	Radius     float64
	TopRadius  float64
	Height     float64
	Width      float64
	Depth      float64
	SkewFactor float64
	AxisAngle  float64
	Center     Point
	ShowAxes   bool
	ShowLabels bool
}

// Level selects the bottom or top ring for side edge queries.
type Level int

const (
	LevelBottom Level = iota
	LevelTop
)

// Figure is a fully constructed solid: the resolved anchor set, the ordered
// element list, and the configuration snapshot. A figure is immutable after
// construction; repositioning a solid means constructing a new one with a
// different center, never shifting built primitives.
type Figure struct {
	topo     topology
	params   Params
	anchors  AnchorSet
	elements []Element
	extras   map[string]Point
}

func newFigure(topo topology, params Params, anchors AnchorSet, elements []Element) *Figure {
	Logger().Debug("constructed figure",
		"variant", topo.String(),
		"center", params.Center,
		"elements", len(elements))
	return &Figure{topo: topo, params: params, anchors: anchors, elements: elements}
}

// Elements returns the draw-ordered element list. The slice is owned by the
// figure; callers must not modify it.
func (f *Figure) Elements() []Element { return f.elements }

// Anchors returns the resolved anchor set.
func (f *Figure) Anchors() AnchorSet { return f.anchors }

// Params returns the configuration snapshot the figure was built from.
func (f *Figure) Params() Params { return f.params }

// CenterBottom returns the bottom center anchor, the solid's origin.
func (f *Figure) CenterBottom() Point { return f.anchors.CenterBottom }

// CenterTop returns the top center anchor. The second return is false for
// topologies without a top ring (cones, spheres).
func (f *Figure) CenterTop() (Point, bool) {
	return f.anchors.CenterTop, f.anchors.HasTop
}

// Apex returns the apex anchor for cones and pyramids.
func (f *Figure) Apex() (Point, bool) {
	return f.anchors.Apex, f.anchors.HasApex
}

// SideEdgePoints returns the left and right anchors of the requested ring.
func (f *Figure) SideEdgePoints(level Level) (left, right Point, ok bool) {
	switch level {
	case LevelBottom:
		return f.anchors.LeftBottom, f.anchors.RightBottom, true
	case LevelTop:
		if !f.anchors.HasTop {
			return Point{}, Point{}, false
		}
		return f.anchors.LeftTop, f.anchors.RightTop, true
	}
	return Point{}, Point{}, false
}

// KeyPoints returns the named anchors of the figure, keyed by the
// conventional names. Faceted variants add their remaining vertices under
// their own keys.
func (f *Figure) KeyPoints() map[string]Point {
	pts := map[string]Point{
		"center": f.anchors.CenterBottom,
		"left":   f.anchors.LeftBottom,
		"right":  f.anchors.RightBottom,
	}
	if f.anchors.HasTop {
		pts["top_center"] = f.anchors.CenterTop
		pts["top_left"] = f.anchors.LeftTop
		pts["top_right"] = f.anchors.RightTop
	}
	if f.anchors.HasApex {
		pts["apex"] = f.anchors.Apex
	}
	for name, p := range f.extras {
		pts[name] = p
	}
	return pts
}

// Bounds returns the union of the element bounds. Renderers use it to size
// viewports; it is never a source of anchors.
func (f *Figure) Bounds() (min, max Point) {
	min, max = f.elements[0].Prim.Bounds()
	for _, el := range f.elements[1:] {
		lo, hi := el.Prim.Bounds()
		if lo.X < min.X {
			min.X = lo.X
		}
		if lo.Y < min.Y {
			min.Y = lo.Y
		}
		if hi.X > max.X {
			max.X = hi.X
		}
		if hi.Y > max.Y {
			max.Y = hi.Y
		}
	}
	return min, max
}

// assembler accumulates elements during construction and emits them in
// stacking order.
type assembler struct {
	elements []Element
}

func (asm *assembler) add(layer Layer, vis Visibility, prim Primitive, stroke Stroke) {
	asm.elements = append(asm.elements, Element{Layer: layer, Visibility: vis, Prim: prim, Stroke: stroke})
}

// addAxes schedules each axis's inner segment on the inner layer and its
// arrow and letter on the outer layer.
func (asm *assembler) addAxes(axes []Axis) {
	for _, ax := range axes {
		asm.add(LayerInnerAxes, Hidden, ax.Inner, strokeInnerAxis(ax.Kind))
	}
	for _, ax := range axes {
		asm.add(LayerOuterAxes, Visible, ax.Outer, strokeOuterAxis(ax.Kind))
		asm.add(LayerOuterAxes, Visible, ax.Label, strokeAxisLabel(ax.Kind))
	}
}

// finish returns the elements sorted by layer. The sort is stable so pieces
// sharing a layer keep their insertion order.
func (asm *assembler) finish() []Element {
	slices.SortStableFunc(asm.elements, func(a, b Element) int {
		return cmp.Compare(a.Layer, b.Layer)
	})
	return asm.elements
}
