// Command solidsdemo renders textbook line drawings of solids to PNG and
// SVG files: either the built-in gallery of all seven variants or the
// solids listed in a YAML scene file.
//
// Usage:
//
//	solidsdemo -out figures -format both
//	solidsdemo -scene scene.yaml -size 90
//
// A scene file is a list of solid definitions:
//
//	- type: cylinder
//	  radius: 2
//	  height: 3.5
//	- type: frustum
//	  top_radius: 1.2
//	  labels: false
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/solids"
	"github.com/gogpu/solids/render/ggrender"
	"github.com/gogpu/solids/render/svg"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "output directory")
		format  = flag.String("format", "png", "output format: png, svg or both")
		scene   = flag.String("scene", "", "YAML scene file (default: built-in gallery)")
		size    = flag.Float64("size", ggrender.DefaultScale, "device pixels per figure unit")
		verbose = flag.Bool("v", false, "log construction diagnostics to stderr")
	)
	flag.Parse()

	if *format != "png" && *format != "svg" && *format != "both" {
		log.Fatalf("unknown format %q (want png, svg or both)", *format)
	}
	if *verbose {
		solids.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var (
		entries []entry
		err     error
	)
	if *scene != "" {
		entries, err = loadScene(*scene)
	} else {
		entries, err = gallery()
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		if err := writeFigure(e, *outDir, *format, *size); err != nil {
			log.Fatal(err)
		}
	}
}

// entry pairs a figure with its output file stem.
type entry struct {
	name string
	fig  *solids.Figure
}

// gallery builds all seven variants with their textbook defaults.
func gallery() ([]entry, error) {
	builders := []struct {
		name  string
		build func() (*solids.Figure, error)
	}{
		{"cylinder", func() (*solids.Figure, error) { return solids.NewCylinder(solids.DefaultCylinderConfig()) }},
		{"cone", func() (*solids.Figure, error) { return solids.NewCone(solids.DefaultConeConfig()) }},
		{"frustum", func() (*solids.Figure, error) { return solids.NewFrustum(solids.DefaultFrustumConfig()) }},
		{"sphere", func() (*solids.Figure, error) { return solids.NewSphere(solids.DefaultSphereConfig()) }},
		{"prism", func() (*solids.Figure, error) { return solids.NewTriangularPrism(solids.DefaultTriangularPrismConfig()) }},
		{"cuboid", func() (*solids.Figure, error) { return solids.NewCuboid(solids.DefaultCuboidConfig()) }},
		{"pyramid", func() (*solids.Figure, error) { return solids.NewPyramid(solids.DefaultPyramidConfig()) }},
	}

	entries := make([]entry, 0, len(builders))
	for _, b := range builders {
		fig, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", b.name, err)
		}
		entries = append(entries, entry{b.name, fig})
	}
	return entries, nil
}

// SolidDef is the YAML definition of one solid in a scene file. Zero-valued
// numeric fields keep the textbook default of their variant; absent booleans
// keep theirs.
type SolidDef struct {
	Name       string     `yaml:"name,omitempty"`
	Type       string     `yaml:"type"`
	Radius     float64    `yaml:"radius,omitempty"`
	TopRadius  float64    `yaml:"top_radius,omitempty"`
	Height     float64    `yaml:"height,omitempty"`
	Width      float64    `yaml:"width,omitempty"`
	Depth      float64    `yaml:"depth,omitempty"`
	BaseLength float64    `yaml:"base_length,omitempty"`
	Skew       float64    `yaml:"skew,omitempty"`
	Center     [2]float64 `yaml:"center,omitempty"`
	Meridian   *bool      `yaml:"meridian,omitempty"`
	Dots       *bool      `yaml:"dots,omitempty"`
	Tangents   *bool      `yaml:"exact_tangents,omitempty"`
	Axes       *bool      `yaml:"axes,omitempty"`
	Labels     *bool      `yaml:"labels,omitempty"`
}

// loadScene reads a YAML scene file and builds each listed solid.
func loadScene(path string) ([]entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var defs []SolidDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: scene file lists no solids", path)
	}

	entries := make([]entry, 0, len(defs))
	for i, def := range defs {
		fig, err := buildSolid(def)
		if err != nil {
			return nil, fmt.Errorf("solid %d (%s): %w", i+1, def.Type, err)
		}
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("%02d-%s", i+1, def.Type)
		}
		entries = append(entries, entry{name, fig})
	}
	return entries, nil
}

// buildSolid maps a scene definition onto the matching variant config and
// constructs the figure. Validation happens in the constructors, so a bad
// value in the file surfaces as the library's own config error.
func buildSolid(def SolidDef) (*solids.Figure, error) {
	center := solids.Pt(def.Center[0], def.Center[1])
	switch def.Type {
	case "cylinder":
		cfg := solids.DefaultCylinderConfig()
		setNum(&cfg.Radius, def.Radius)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewCylinder(cfg)
	case "cone":
		cfg := solids.DefaultConeConfig()
		setNum(&cfg.Radius, def.Radius)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ExactTangents, def.Tangents)
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewCone(cfg)
	case "frustum":
		cfg := solids.DefaultFrustumConfig()
		setNum(&cfg.Radius, def.Radius)
		setNum(&cfg.TopRadius, def.TopRadius)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewFrustum(cfg)
	case "sphere":
		cfg := solids.DefaultSphereConfig()
		setNum(&cfg.Radius, def.Radius)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowMeridian, def.Meridian)
		setFlag(&cfg.ShowIntersectionDots, def.Dots)
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewSphere(cfg)
	case "prism":
		cfg := solids.DefaultTriangularPrismConfig()
		setNum(&cfg.Radius, def.Radius)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewTriangularPrism(cfg)
	case "cuboid":
		cfg := solids.DefaultCuboidConfig()
		setNum(&cfg.Width, def.Width)
		setNum(&cfg.Depth, def.Depth)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewCuboid(cfg)
	case "pyramid":
		cfg := solids.DefaultPyramidConfig()
		setNum(&cfg.BaseLength, def.BaseLength)
		setNum(&cfg.Height, def.Height)
		setNum(&cfg.SkewFactor, def.Skew)
		cfg.Center = center
		setFlag(&cfg.ShowAxes, def.Axes)
		setFlag(&cfg.ShowLabels, def.Labels)
		return solids.NewPyramid(cfg)
	default:
		return nil, fmt.Errorf("unknown solid type %q", def.Type)
	}
}

// setNum overrides dst when the scene file held an explicit nonzero value.
func setNum(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// setFlag overrides dst when the scene file held an explicit value.
func setFlag(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// writeFigure renders one figure in the requested formats.
func writeFigure(e entry, dir, format string, scale float64) error {
	if format == "png" || format == "both" {
		path := filepath.Join(dir, e.name+".png")
		if err := ggrender.SavePNG(path, e.fig, ggrender.WithScale(scale)); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	if format == "svg" || format == "both" {
		opts := svg.DefaultOptions()
		opts.Scale = scale
		path := filepath.Join(dir, e.name+".svg")
		if err := svg.WriteFile(path, e.fig, opts); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
