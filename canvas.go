package gifout

import (
	"encoding/binary"
	"image"
	"math"
)

// PixelFormat identifies the element type of scanline data passed to
// [Writer.WriteScanline]. All formats are narrowed to 8 bits per channel on
// the way into the canvas; GIF has no deeper color.
type PixelFormat int

const (
	UInt8 PixelFormat = iota
	UInt16
	Float32
)

// Size returns the width of one channel element in bytes, or zero for an
// unknown format.
func (f PixelFormat) Size() int {
	switch f {
	case UInt8:
		return 1
	case UInt16:
		return 2
	case Float32:
		return 4
	}
	return 0
}

// canvas stages one frame's pixels as 8-bit RGBA until the frame is
// finalized. Pixels start opaque white so a caller that writes only some rows
// still produces a well-formed frame.
type canvas struct {
	pix    []byte
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{pix: make([]byte, width*height*4), width: width, height: height}
	for i := range c.pix {
		c.pix[i] = 0xff
	}
	return c
}

// setRow converts one scanline of nchannels source data into canvas row y.
// xstride is the byte distance between successive source pixels; zero means
// tightly packed. Rewriting a row replaces it.
func (c *canvas) setRow(y int, format PixelFormat, data []byte, xstride, nchannels int) error {
	if y < 0 || y >= c.height {
		return validationf("scanline %d outside image height %d", y, c.height)
	}
	sz := format.Size()
	if sz == 0 {
		return validationf("unknown pixel format %d", format)
	}
	if xstride == 0 {
		xstride = nchannels * sz
	}
	if need := (c.width-1)*xstride + nchannels*sz; len(data) < need {
		return validationf("scanline has %d bytes, need %d", len(data), need)
	}
	row := c.pix[y*c.width*4 : (y+1)*c.width*4]
	for x := 0; x < c.width; x++ {
		px := data[x*xstride:]
		for ch := 0; ch < nchannels; ch++ {
			var v byte
			switch format {
			case UInt8:
				v = px[ch]
			case UInt16:
				v = byte(binary.LittleEndian.Uint16(px[ch*2:]) >> 8)
			case Float32:
				f := math.Float32frombits(binary.LittleEndian.Uint32(px[ch*4:]))
				switch {
				case f <= 0:
					v = 0
				case f >= 1:
					v = 0xff
				default:
					v = byte(f*255 + 0.5)
				}
			}
			row[x*4+ch] = v
		}
		if nchannels == 3 {
			row[x*4+3] = 0xff
		}
	}
	return nil
}

// image returns an RGBA view sharing the canvas pixels.
func (c *canvas) image() *image.RGBA {
	return &image.RGBA{Pix: c.pix, Stride: c.width * 4, Rect: image.Rect(0, 0, c.width, c.height)}
}
