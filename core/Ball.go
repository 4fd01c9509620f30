package core

const (
	BallWidth          = 15.0
	BallHeight         = 15.0
	BallBounceSpeedup  = 1.15
	BallServeSpeed     = 500.0
	BallAngleFactor    = 10.0
	BallFreezeDuration = 1.0 // seconds the ball waits before each serve
)

// Random is the source used for serves. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Events reports what happened to the ball during one update.
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventLeftGoal  // the left player scored
	EventRightGoal // the right player scored
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Ball is frozen while StartTimer > 0 and moving otherwise. Only Reset freezes it.
type Ball struct {
	Bounds     Rectangle
	VX, VY     float64
	StartTimer float64

	freeze float64
	rng    Random
}

// NewBall creates a ball centred on (cx, cy), frozen and ready to serve.
func NewBall(cx, cy float64, rng Random) *Ball {
	b := &Ball{
		Bounds: NewRectangle(0, 0, BallWidth, BallHeight),
		freeze: BallFreezeDuration,
		rng:    rng,
	}
	b.Reset(cx, cy)
	return b
}

// SetFreezeDuration changes how long the ball waits after later resets.
func (b *Ball) SetFreezeDuration(seconds float64) {
	b.freeze = seconds
}

func (b *Ball) Frozen() bool {
	return b.StartTimer > 0
}

// Reset recentres the ball on (cx, cy), picks a new serve and freezes it.
func (b *Ball) Reset(cx, cy float64) {
	b.Bounds = NewCenteredRectangle(cx, cy, b.Bounds.Width, b.Bounds.Height)

	b.VX = BallServeSpeed
	if b.rng.Float64() < 0.5 {
		b.VX = -BallServeSpeed
	}
	b.VY = (b.rng.Float64()*2 - 1) * BallServeSpeed

	b.StartTimer = b.freeze
}

// Update advances the ball and resolves collisions. Both paddles are borrowed
// for the duration of the call because a goal increments a paddle's score.
func (b *Ball) Update(ctx *FrameContext, left, right *Paddle) Events {
	if b.StartTimer > 0 {
		b.StartTimer -= ctx.DT
	} else {
		b.Bounds.X += b.VX * ctx.DT
		b.Bounds.Y += b.VY * ctx.DT
	}

	// Order matters: a goal resets the ball and must override any bounce.
	var events Events
	if b.checkPaddleCollision(left) {
		events |= EventPaddleHit
	}
	if b.checkPaddleCollision(right) {
		events |= EventPaddleHit
	}
	if b.checkWallCollision(ctx) {
		events |= EventWallBounce
	}
	events |= b.checkGoal(ctx, left, right)
	return events
}

func (b *Ball) Render(canvas Canvas) error {
	return canvas.DrawRectangle(b.Bounds, ColorWhite)
}

// checkPaddleCollision snaps the ball flush against the paddle face it came
// from, reflects it with a speedup and aims it by where it struck the paddle.
func (b *Ball) checkPaddleCollision(paddle *Paddle) bool {
	if !b.Bounds.Intersects(paddle.Bounds) {
		return false
	}

	if b.VX < 0 {
		b.Bounds.X = paddle.Bounds.Right()
	} else {
		b.Bounds.X = paddle.Bounds.Left() - b.Bounds.Width
	}

	b.VX = -BallBounceSpeedup * b.VX

	_, ballCY := b.Bounds.Center()
	_, paddleCY := paddle.Bounds.Center()
	b.VY = (ballCY - paddleCY) * BallAngleFactor
	return true
}

// checkWallCollision leaves the position alone, so the ball may overlap a wall
// for a frame.
func (b *Ball) checkWallCollision(ctx *FrameContext) bool {
	if b.Bounds.Top() <= 0 || b.Bounds.Bottom() >= ctx.GameHeight {
		b.VY = -b.VY
		return true
	}
	return false
}

func (b *Ball) checkGoal(ctx *FrameContext, left, right *Paddle) Events {
	var scored Events
	if b.Bounds.Left() <= 0 {
		right.Score++
		scored = EventRightGoal
	} else if b.Bounds.Right() >= ctx.GameWidth {
		left.Score++
		scored = EventLeftGoal
	} else {
		return 0
	}

	b.Reset(ctx.GameWidth/2, ctx.GameHeight/2)
	return scored
}
