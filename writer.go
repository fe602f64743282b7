// Package gifout writes animated GIFs incrementally, one scanline at a time.
//
// A Writer accepts fixed-size RGB or RGBA frames row by row, staging each
// frame in an in-memory canvas and handing completed frames to the gifx block
// encoder, so an animation of any length streams through a bounded amount of
// memory. Palette construction, LZW compression and block framing belong to
// gifx; this package owns the frame lifecycle, the staging canvas and the
// validation policy.
package gifout

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Writer produces a single animated GIF stream from scanline-oriented frame
// writes. A Writer owns its stream exclusively between Open and Close and is
// not safe for concurrent use.
type Writer struct {
	w    io.Writer
	opts options

	file *os.File // owned when constructed by Create

	open    bool
	pending bool // canvas started but not yet flushed to the encoder
	frame   int
	nframes int
	spec    FrameSpec
	delay   int
	canvas  *canvas
	enc     frameEncoder
}

// NewWriter returns a Writer that writes the encoded stream to w. The stream
// is not started until Open is called.
func NewWriter(w io.Writer, opts ...option) *Writer {
	g := &Writer{w: w, opts: defaultOptions()}
	for _, o := range opts {
		o(&g.opts)
	}
	return g
}

// Create opens the named file and begins an animation of len(specs) frames
// within it. The file is closed by Close. On failure no resources remain
// held.
func Create(name string, specs ...FrameSpec) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("gifout: %w", err)
	}
	g := NewWriter(f)
	g.file = f
	if err := g.Open(specs...); err != nil {
		f.Close()
		return nil, err
	}
	return g, nil
}

// Open begins an animation of len(specs) frames, writing the stream header
// and preparing the canvas for frame zero. The inter-frame delay is derived
// from the first spec's FramesPerSecond and fixed for the whole stream.
func (g *Writer) Open(specs ...FrameSpec) error {
	if g.open {
		return statef("animation already open")
	}
	if len(specs) < 1 {
		return validationf("animation must declare at least one frame, got %d", len(specs))
	}
	g.spec = specs[0]
	g.frame = 0
	g.nframes = len(specs)
	g.delay = specs[0].delay()
	if g.enc == nil {
		g.enc = newGIFXEncoder(asSink(g.w), &g.opts, g.nframes)
	}
	g.open = true
	if err := g.startFrame(); err != nil {
		g.reset()
		return err
	}
	g.logger().Debug("animation open",
		"frames", g.nframes, "width", g.spec.Width, "height", g.spec.Height, "delay", g.delay)
	return nil
}

// startFrame validates the working spec, writes the stream header if this is
// frame zero, and replaces the canvas. A header write failure is fatal to the
// open.
func (g *Writer) startFrame() error {
	if err := g.spec.validate(); err != nil {
		return err
	}
	if g.frame == 0 {
		if err := g.enc.writeHeader(g.spec.Width, g.spec.Height, g.delay); err != nil {
			return fmt.Errorf("gifout: writing stream header: %w", err)
		}
	}
	g.canvas = newCanvas(g.spec.Width, g.spec.Height)
	g.pending = true
	return nil
}

// WriteScanline deposits one row of the current frame. Source data holds
// Width pixels of Channels channels in the given format, converted to 8-bit
// RGBA on the way into the canvas; xstride is the byte distance between
// successive source pixels, with zero meaning tightly packed. Rows may arrive
// in any order and a rewritten row replaces the earlier write.
func (g *Writer) WriteScanline(y int, format PixelFormat, data []byte, xstride int) error {
	if !g.pending {
		return statef("no frame in progress")
	}
	return g.canvas.setRow(y, format, data, xstride, g.spec.Channels)
}

// finishFrame hands the canvas to the encoder. It is a no-op when no frame is
// pending, and clears the pending flag even when the encoder fails so the
// frame is never flushed twice.
func (g *Writer) finishFrame() error {
	if !g.pending {
		return nil
	}
	g.pending = false
	if err := g.enc.writeFrame(g.canvas.image(), g.delay); err != nil {
		return fmt.Errorf("gifout: writing frame %d: %w", g.frame, err)
	}
	g.logger().Debug("frame written", "frame", g.frame)
	return nil
}

// AppendFrame finalizes any pending frame and begins the next one with the
// given spec. Frames advance one at a time, in order, and no more may be
// appended than were declared at Open. A failure flushing the previous frame
// is surfaced but does not prevent the advance.
func (g *Writer) AppendFrame(spec FrameSpec) error {
	if !g.open {
		return statef("animation not open")
	}
	if g.frame+1 >= g.nframes {
		return statef("frame %d exceeds the %d declared at open", g.frame+1, g.nframes)
	}
	err := g.finishFrame()
	g.frame++
	g.spec = spec
	if serr := g.startFrame(); err == nil {
		err = serr
	}
	return err
}

// AppendMIPLevel reports that the GIF container has no MIP levels.
func (g *Writer) AppendMIPLevel(FrameSpec) error {
	return unsupportedf("MIP levels are not supported")
}

// Close finalizes any pending frame, writes the stream trailer and releases
// all resources. Internal state is always cleared, so Close is safe after a
// prior failure and a second Close is a no-op; the returned error reports
// whether every step succeeded.
func (g *Writer) Close() error {
	if !g.open {
		return nil
	}
	var err error
	if g.pending {
		err = g.finishFrame()
		if terr := g.enc.writeTrailer(); err == nil && terr != nil {
			err = fmt.Errorf("gifout: writing stream trailer: %w", terr)
		}
	}
	if g.file != nil {
		if cerr := g.file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gifout: %w", cerr)
		}
		g.file = nil
	}
	g.logger().Debug("animation closed", "frames", g.frame+1)
	g.reset()
	return err
}

func (g *Writer) reset() {
	g.open = false
	g.pending = false
	g.frame = 0
	g.nframes = 0
	g.canvas = nil
	g.enc = nil
}

func (g *Writer) logger() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}
	return discard
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
