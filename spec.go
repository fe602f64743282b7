package gifout

// A FrameSpec describes one frame of an animation: its geometry, the channel
// layout of source scanlines, and the display rate attribute used to derive
// the inter-frame delay.
type FrameSpec struct {
	Width  int
	Height int
	// Depth is the z extent. Zero is coerced to one; GIF has no volumetric
	// frames, so anything greater than one is rejected.
	Depth int
	// Channels is the number of channels in source scanline data, either 3
	// (RGB, alpha synthesized opaque) or 4 (RGBA).
	Channels int
	// FramesPerSecond sets the display rate for the whole animation. Zero
	// means no automatic frame advance. Only the first frame's rate is
	// consulted; the delay is fixed for the life of the stream.
	FramesPerSecond float64
}

func (s *FrameSpec) validate() error {
	if s.Width < 1 || s.Height < 1 {
		return validationf("image resolution must be at least 1x1, got %dx%d", s.Width, s.Height)
	}
	if s.Depth < 1 {
		s.Depth = 1
	}
	if s.Depth > 1 {
		return unsupportedf("volume images are not supported (depth %d)", s.Depth)
	}
	if s.Channels != 3 && s.Channels != 4 {
		return unsupportedf("%d-channel images are not supported", s.Channels)
	}
	return nil
}

// delay returns the inter-frame display delay in hundredths of a second.
func (s *FrameSpec) delay() int {
	if s.FramesPerSecond == 0 {
		return 0
	}
	return int(100 / s.FramesPerSecond)
}
