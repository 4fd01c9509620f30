package core

import (
	"errors"
	"image/color"
)

// sequenceRandom returns its values in order, wrapping around.
type sequenceRandom struct {
	values []float64
	next   int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

type drawCall struct {
	rect  Rectangle
	color color.RGBA
}

type recordingCanvas struct {
	clears   int
	presents int
	draws    []drawCall
	failDraw bool
}

var errDraw = errors.New("draw failed")

func (c *recordingCanvas) Clear() { c.clears++ }

func (c *recordingCanvas) DrawRectangle(rect Rectangle, col color.RGBA) error {
	if c.failDraw {
		return errDraw
	}
	c.draws = append(c.draws, drawCall{rect: rect, color: col})
	return nil
}

func (c *recordingCanvas) Present() error {
	c.presents++
	return nil
}

func testContext(dt float64) *FrameContext {
	return &FrameContext{DT: dt, GameWidth: DefaultGameWidth, GameHeight: DefaultGameHeight}
}

func testPaddles() (*Paddle, *Paddle) {
	left := NewPaddle(paddleInset, DefaultGameHeight/2, "left", LeftControls)
	right := NewPaddle(DefaultGameWidth-paddleInset, DefaultGameHeight/2, "right", RightControls)
	return left, right
}

// movingBall returns a ball that is not frozen, with the given top-left corner and velocity.
func movingBall(x, y, vx, vy float64) *Ball {
	b := NewBall(DefaultGameWidth/2, DefaultGameHeight/2, &sequenceRandom{values: []float64{0.5}})
	b.Bounds.X, b.Bounds.Y = x, y
	b.VX, b.VY = vx, vy
	b.StartTimer = 0
	return b
}
