package core

import "image/color"

var (
	ColorWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorNet        = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	ColorScore      = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	ColorWinningRed = color.RGBA{R: 255, G: 51, B: 51, A: 255}
)

// Canvas is the drawing surface a frame is rendered onto. Coordinates are in
// game units with (0, 0) at the top left of the arena.
type Canvas interface {
	Clear()
	DrawRectangle(rect Rectangle, c color.RGBA) error
	Present() error
}

// FrameContext describes the tick being simulated. It is built fresh for every
// tick and never stored.
type FrameContext struct {
	DT         float64 // seconds to advance
	GameWidth  float64
	GameHeight float64
}
