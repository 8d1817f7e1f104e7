package ggrender

import (
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/solids"
)

// Default view parameters. Labels carry a nominal size tuned for
// DefaultScale and grow with the scale, so a figure rendered larger keeps
// its proportions.
const (
	DefaultScale  = 60 // device pixels per figure unit
	DefaultMargin = 40 // device pixels around the figure bounds
)

// Option configures a render call.
//
// Example:
//
//	ctx, err := ggrender.Render(fig, ggrender.WithScale(120))
type Option func(*renderOptions)

// renderOptions holds optional configuration for rendering.
type renderOptions struct {
	scale      float64
	margin     float64
	background solids.RGBA
	fontData   []byte
}

// defaultOptions returns the textbook look: dark background, white line
// work, the Go regular face for labels.
func defaultOptions() renderOptions {
	return renderOptions{
		scale:      DefaultScale,
		margin:     DefaultMargin,
		background: solids.Black,
		fontData:   goregular.TTF,
	}
}

// WithScale sets the device pixels drawn per figure unit.
func WithScale(pixelsPerUnit float64) Option {
	return func(o *renderOptions) {
		o.scale = pixelsPerUnit
	}
}

// WithMargin sets the pixel padding around the figure bounds.
func WithMargin(pixels float64) Option {
	return func(o *renderOptions) {
		o.margin = pixels
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(c solids.RGBA) Option {
	return func(o *renderOptions) {
		o.background = c
	}
}

// WithFont sets the TTF bytes used for label text.
func WithFont(ttf []byte) Option {
	return func(o *renderOptions) {
		o.fontData = ttf
	}
}
