package gifout

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"time"

	gif "github.com/NathanBaulch/gifx"
)

// frameEncoder is the boundary to the block-level encoder: one stream header,
// one block per finished frame, one trailer. All three are fallible I/O.
type frameEncoder interface {
	writeHeader(width, height, delay int) error
	writeFrame(img *image.RGBA, delay int) error
	writeTrailer() error
}

// gifxEncoder drives the gifx block encoder, quantizing each finished RGBA
// canvas to a paletted frame on the way through.
type gifxEncoder struct {
	enc    *gif.Encoder
	opt    *gif.Optimizer
	pal    color.Palette // fixed shared palette when optimizing
	opts   *options
	frames int
}

// transparentIndex is the palette slot reserved for unchanged pixels when
// inter-frame optimization is enabled.
const transparentIndex = 0xff

func newGIFXEncoder(s Sink, opts *options, frames int) *gifxEncoder {
	e := &gifxEncoder{enc: gif.NewEncoder(s), opts: opts, frames: frames}
	if opts.optimize {
		e.pal = make(color.Palette, transparentIndex+1)
		copy(e.pal, palette.Plan9[:transparentIndex])
		e.pal[transparentIndex] = color.Transparent
		e.opt = gif.NewOptimizer(transparentIndex)
	}
	return e
}

func (e *gifxEncoder) writeHeader(width, height, _ int) error {
	// The container carries the delay on each frame, not in the header.
	cfg := image.Config{Width: width, Height: height}
	if e.pal != nil {
		cfg.ColorModel = e.pal
	}
	if err := e.enc.WriteHeader(cfg, 0); err != nil {
		return err
	}
	if e.frames > 1 && e.opts.loopCount >= 0 {
		if err := e.enc.WriteApplicationNetscape(&gif.ApplicationNetscape{LoopCount: e.opts.loopCount}); err != nil {
			return err
		}
	}
	if e.opts.comment != "" {
		return e.enc.WriteComment(&gif.Comment{Strings: []string{e.opts.comment}})
	}
	return nil
}

func (e *gifxEncoder) writeFrame(img *image.RGBA, delay int) error {
	b := img.Bounds()
	var pm *image.Paletted
	if e.opt != nil {
		pm = image.NewPaletted(b, e.pal)
	} else {
		n := e.opts.numColors
		if n < 1 || 256 < n {
			n = 256
		}
		pal := color.Palette(palette.Plan9[:n])
		if e.opts.quantizer != nil {
			pal = e.opts.quantizer.Quantize(make(color.Palette, 0, n), img)
		}
		pm = image.NewPaletted(b, pal)
	}

	drawer := e.opts.drawer
	if drawer == nil {
		if e.opts.dither {
			drawer = draw.FloydSteinberg
		} else {
			drawer = draw.Src
		}
	}
	drawer.Draw(pm, b, img, b.Min)

	if e.opt != nil {
		var err error
		if pm, err = e.opt.Optimize(pm); err != nil {
			return err
		}
	}

	return e.enc.WriteFrame(&gif.Frame{
		Image:     pm,
		DelayTime: time.Duration(delay) * 10 * time.Millisecond,
	})
}

func (e *gifxEncoder) writeTrailer() error {
	if err := e.enc.WriteTrailer(); err != nil {
		return err
	}
	return e.enc.Flush()
}
