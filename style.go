package solids

// Stroke describes how a primitive is drawn: width, color, opacity and an
// optional dash pattern. Widths are device pixels and do not scale with the
// figure; dash lengths are figure units and do (see Dash.Scale).
type Stroke struct {
	Width   float64
	Color   RGBA
	Opacity float64
	Dash    *Dash
}

// Styling constants shared by every variant.
const (
	labelFontSize = 24
	dotRadius     = 0.06
	hiddenDashLen = 0.15
	axisDashLen   = 0.15
	heightDashLen = 0.1
)

// Stroke presets. Variants pick from these and never invent their own
// styles, so the whole gallery shares one visual vocabulary.
var (
	strokeVisible      = Stroke{Width: 3, Color: White, Opacity: 1}
	strokeHiddenArc    = Stroke{Width: 3, Color: Gray, Opacity: 1, Dash: NewDash(hiddenDashLen, hiddenDashLen)}
	strokeHiddenEdge   = Stroke{Width: 2, Color: Gray, Opacity: 1, Dash: NewDash(hiddenDashLen, hiddenDashLen)}
	strokeContour      = Stroke{Width: 4, Color: White, Opacity: 1}
	strokeDetail       = Stroke{Width: 2, Color: GrayB, Opacity: 1}
	strokeDetailHidden = Stroke{Width: 2, Color: GrayB, Opacity: 1, Dash: NewDash(hiddenDashLen, hiddenDashLen)}
	strokeHeightLine   = Stroke{Width: 2, Color: Gray, Opacity: 0.5, Dash: NewDash(heightDashLen, heightDashLen)}
	strokeAnchorLabel  = Stroke{Width: 1, Color: Yellow, Opacity: 1}
)

// strokeInnerAxis returns the dashed in-solid style for an axis.
func strokeInnerAxis(kind AxisKind) Stroke {
	return Stroke{Width: 3, Color: axisColor(kind), Opacity: 0.7, Dash: NewDash(axisDashLen, axisDashLen)}
}

// strokeOuterAxis returns the solid arrowed style for an axis.
func strokeOuterAxis(kind AxisKind) Stroke {
	return Stroke{Width: 4, Color: axisColor(kind), Opacity: 1}
}

// strokeAxisLabel returns the style for an axis letter.
func strokeAxisLabel(kind AxisKind) Stroke {
	return Stroke{Width: 1, Color: axisColor(kind), Opacity: 1}
}

// strokeDot returns the style for an axis piercing dot.
func strokeDot(kind AxisKind) Stroke {
	return Stroke{Width: 1, Color: axisColor(kind), Opacity: 1}
}

// axisColor maps each axis to its conventional color: green width, blue
// height, red depth.
func axisColor(kind AxisKind) RGBA {
	switch kind {
	case AxisWidth:
		return GreenB
	case AxisHeight:
		return BlueB
	default:
		return RedB
	}
}
