package main

import (
	"image/color"
	"math"

	"github.com/NathanBaulch/gifout"
	"golang.org/x/image/colornames"
)

const (
	width  = 128
	height = 64
	frames = 48
)

func main() {
	spec := gifout.FrameSpec{Width: width, Height: height, Channels: 3, FramesPerSecond: 24}
	specs := make([]gifout.FrameSpec, frames)
	for i := range specs {
		specs[i] = spec
	}

	w, err := gifout.Create("pulse.gif", specs...)
	if err != nil {
		panic(err)
	}

	row := make([]byte, width*3)
	for f := 0; f < frames; f++ {
		if f > 0 {
			if err := w.AppendFrame(spec); err != nil {
				panic(err)
			}
		}
		phase := 2 * math.Pi * float64(f) / frames
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx := float64(x-width/2) / (width / 2)
				dy := float64(y-height/2) / (height / 2)
				v := 0.5 + 0.5*math.Sin(8*math.Hypot(dx, dy)-phase)
				c := blend(colornames.Navy, colornames.Orange, v)
				row[x*3], row[x*3+1], row[x*3+2] = c.R, c.G, c.B
			}
			if err := w.WriteScanline(y, gifout.UInt8, row, 0); err != nil {
				panic(err)
			}
		}
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
		A: 0xff,
	}
}
