// Package solids constructs flat, textbook-style line drawings of 3D
// solids (cylinders, cones, frustums, spheres, prisms, cuboids, pyramids)
// under a fixed oblique (cavalier) projection.
//
// # Overview
//
// Each solid is built as an immutable Figure: an ordered list of stroke
// primitives (arcs, lines, arrows, labels) whose endpoints are welded to a
// single set of named anchor points derived from the solid's center. The
// draw order of the list is part of the contract: later elements visually
// cover the seams of earlier ones, so renderers must draw in slice order.
//
// # Quick Start
//
//	import "github.com/gogpu/solids"
//
//	fig, err := solids.NewCylinder(solids.DefaultCylinderConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, el := range fig.Elements() {
//		// hand el.Prim and el.Stroke to a renderer, in order
//	}
//
// The render/ggrender and render/svg subpackages provide ready-made PNG and
// SVG renderers for Figures.
//
// # Coordinate System
//
// Figures live in a y-up world space: the height axis points up, the width
// axis points right, and the oblique depth axis runs at AxisAngle
// (conventionally -135 degrees, toward the lower left). Renderers flip to
// their own device space; the construction core never does.
//
// # Construction Rules
//
// Three rules keep the line work closed:
//
//   - Every shared coordinate is read from the solid's AnchorSet (or from
//     the literal endpoint of a primitive built from it), never recomputed.
//   - Compressing a circle into an ellipse is always done about the shared
//     center anchor, never about a primitive's own centroid.
//   - Elements stack in a fixed layer order, hidden strokes first.
package solids

// Version is the current version of the library.
const Version = "0.1.0"
