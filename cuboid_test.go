package solids

import (
	"errors"
	"math"
	"testing"
)

// cuboidCorners reads the four bottom corners back from anchors and key
// points: the front pair are the rim anchors, the back pair extras.
func cuboidCorners(t *testing.T, fig *Figure) (frontLeft, frontRight, backRight, backLeft Point) {
	t.Helper()
	pts := fig.KeyPoints()
	for _, name := range []string{"back_left", "back_right", "top_back_left", "top_back_right"} {
		if _, ok := pts[name]; !ok {
			t.Fatalf("KeyPoints() missing %q", name)
		}
	}
	a := fig.Anchors()
	return a.LeftBottom, a.RightBottom, pts["back_right"], pts["back_left"]
}

func TestNewCuboid_Corners(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	frontLeft, frontRight, backRight, backLeft := cuboidCorners(t, fig)

	// At the default angle the skewed half depth 0.75*0.5 projects along
	// (-cos45, -sin45) toward the viewer, so the front face sits down-left
	// of center.
	off := 0.75 * 0.5 * math.Sqrt2 / 2
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"front left", frontLeft, Pt(-1-off, -off)},
		{"front right", frontRight, Pt(1-off, -off)},
		{"back right", backRight, Pt(1+off, off)},
		{"back left", backLeft, Pt(-1+off, off)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointNear(tt.got, tt.want, ptTol) {
				t.Errorf("corner = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNewCuboid_FacesCongruent(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	frontLeft, frontRight, backRight, backLeft := cuboidCorners(t, fig)

	frontEdge := frontRight.Sub(frontLeft)
	backEdge := backRight.Sub(backLeft)
	if !pointNear(frontEdge, backEdge, ptTol) {
		t.Errorf("front edge %v and back edge %v are not parallel translates", frontEdge, backEdge)
	}

	// Both depth edges carry the same projected offset.
	leftDepth := backLeft.Sub(frontLeft)
	rightDepth := backRight.Sub(frontRight)
	if !pointNear(leftDepth, rightDepth, ptTol) {
		t.Errorf("depth edges differ: %v vs %v", leftDepth, rightDepth)
	}
	dir := Oblique{SkewFactor: 0.5, AxisAngle: DefaultAxisAngle}.DepthDirection()
	want := dir.Mul(-1.5 * 0.5)
	if !pointNear(leftDepth, want, ptTol) {
		t.Errorf("depth offset = %v, want %v", leftDepth, want)
	}

	// The top face is the bottom face lifted by the height.
	pts := fig.KeyPoints()
	a := fig.Anchors()
	lift := Pt(0, 2.5)
	if a.LeftTop != frontLeft.Add(lift) || a.RightTop != frontRight.Add(lift) {
		t.Error("front top corners are not lifted bottom corners")
	}
	if pts["top_back_left"] != backLeft.Add(lift) || pts["top_back_right"] != backRight.Add(lift) {
		t.Error("back top corners are not lifted bottom corners")
	}
}

func TestNewCuboid_HiddenTrio(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	backLeft := fig.KeyPoints()["back_left"]

	hidden := layerElements(fig, LayerHiddenBase)
	if len(hidden) != 3 {
		t.Fatalf("hidden edge count = %d, want 3", len(hidden))
	}
	ends := map[Point]bool{}
	for i, el := range hidden {
		line := el.Prim.(Line)
		if line.Start() != backLeft {
			t.Errorf("hidden edge %d starts at %v, want back-left corner %v", i, line.Start(), backLeft)
		}
		if el.Visibility != Hidden || !el.Stroke.Dash.IsDashed() {
			t.Errorf("hidden edge %d not drawn hidden and dashed", i)
		}
		ends[line.End()] = true
	}
	// The trio fans out to the three neighbors of the hidden corner.
	pts := fig.KeyPoints()
	for _, want := range []Point{pts["back_right"], fig.Anchors().LeftBottom, pts["top_back_left"]} {
		if !ends[want] {
			t.Errorf("no hidden edge ends at neighbor %v", want)
		}
	}
}

func TestNewCuboid_TwelveEdges(t *testing.T) {
	cfg := DefaultCuboidConfig()
	cfg.ShowAxes = false
	cfg.ShowLabels = false
	fig, err := NewCuboid(cfg)
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}

	els := fig.Elements()
	if len(els) != 12 {
		t.Fatalf("bare element count = %d, want the 12 box edges", len(els))
	}
	counts := map[Layer]int{}
	for _, el := range els {
		if _, ok := el.Prim.(Line); !ok {
			t.Fatalf("bare cuboid primitive = %T, want Line", el.Prim)
		}
		counts[el.Layer]++
	}
	want := map[Layer]int{
		LayerHiddenBase:  3,
		LayerVisibleBase: 2,
		LayerSideEdges:   3,
		LayerTopCurve:    4,
	}
	for layer, n := range want {
		if counts[layer] != n {
			t.Errorf("layer %v edge count = %d, want %d", layer, counts[layer], n)
		}
	}
}

func TestNewCuboid_VerticalEdges(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	for i, el := range layerElements(fig, LayerSideEdges) {
		line := el.Prim.(Line)
		if line.Start().X != line.End().X {
			t.Errorf("vertical edge %d not vertical: X %v -> %v", i, line.Start().X, line.End().X)
		}
		if el.Visibility != Visible {
			t.Errorf("vertical edge %d drawn hidden", i)
		}
	}
}

func TestNewCuboid_Labels(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	labels := layerElements(fig, LayerLabels)
	want := []string{"A", "B", "C", "D", "A'", "B'", "C'", "D'"}
	if len(labels) != len(want) {
		t.Fatalf("label count = %d, want %d", len(labels), len(want))
	}
	for i, el := range labels {
		lbl := el.Prim.(TextLabel)
		if lbl.Text() != want[i] {
			t.Errorf("label %d = %q, want %q", i, lbl.Text(), want[i])
		}
	}
}

func TestNewCuboid_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CuboidConfig)
		wantField string
	}{
		{"zero width", func(c *CuboidConfig) { c.Width = 0 }, "Width"},
		{"negative depth", func(c *CuboidConfig) { c.Depth = -1 }, "Depth"},
		{"zero height", func(c *CuboidConfig) { c.Height = 0 }, "Height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCuboidConfig()
			tt.mutate(&cfg)
			_, err := NewCuboid(cfg)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error = %v, want ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewCuboid_Params(t *testing.T) {
	fig, err := NewCuboid(DefaultCuboidConfig())
	if err != nil {
		t.Fatalf("NewCuboid() error = %v", err)
	}
	p := fig.Params()
	if p.Width != 2 || p.Depth != 1.5 || p.Height != 2.5 {
		t.Errorf("Params box = (%v, %v, %v), want (2, 1.5, 2.5)", p.Width, p.Depth, p.Height)
	}
	if p.Radius != 0 {
		t.Errorf("Params.Radius = %v, want 0 for a box", p.Radius)
	}
}
