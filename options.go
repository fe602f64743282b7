package gifout

import (
	"image/draw"
	"log/slog"
)

type options struct {
	numColors int
	quantizer draw.Quantizer
	drawer    draw.Drawer
	dither    bool
	loopCount int
	comment   string
	optimize  bool
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{numColors: 256, dither: true}
}

type option func(*options)

// WithNumColors sets the maximum size of the palette used for each frame,
// between 1 and 256.
func WithNumColors(n int) option {
	return func(o *options) {
		o.numColors = n
	}
}

// WithQuantizer sets the quantizer used to produce each frame's palette.
func WithQuantizer(q draw.Quantizer) option {
	return func(o *options) {
		o.quantizer = q
	}
}

// WithDrawer sets the drawer used to render frames onto their palettes,
// overriding the dithering setting.
func WithDrawer(d draw.Drawer) option {
	return func(o *options) {
		o.drawer = d
	}
}

// WithDithering enables or disables Floyd-Steinberg dithering. Dithering is
// on by default.
func WithDithering(dither bool) option {
	return func(o *options) {
		o.dither = dither
	}
}

// WithLoopCount sets the number of times the animation restarts during
// display. Zero, the default, loops forever; -1 plays once.
func WithLoopCount(n int) option {
	return func(o *options) {
		o.loopCount = n
	}
}

// WithComment writes a comment extension block after the stream header.
func WithComment(c string) option {
	return func(o *options) {
		o.comment = c
	}
}

// WithOptimization replaces pixels unchanged since the previous frame with a
// transparent palette index and crops each frame to its changed region. All
// frames share one fixed palette in this mode.
func WithOptimization() option {
	return func(o *options) {
		o.optimize = true
	}
}

// WithLogger sets a logger for debug-level lifecycle events. By default
// nothing is logged.
func WithLogger(l *slog.Logger) option {
	return func(o *options) {
		o.logger = l
	}
}
