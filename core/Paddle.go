package core

const (
	PaddleWidth  = 20.0
	PaddleHeight = 100.0
	PaddleSpeed  = 500.0 // units per second while a key is held
)

type Paddle struct {
	Bounds   Rectangle
	Score    uint32
	NickName string
	Controls Controls
}

// NewPaddle places a paddle centred on (cx, cy). Paddles only ever move vertically.
func NewPaddle(cx, cy float64, nickName string, controls Controls) *Paddle {
	return &Paddle{
		Bounds:   NewCenteredRectangle(cx, cy, PaddleWidth, PaddleHeight),
		NickName: nickName,
		Controls: controls,
	}
}

// Update moves the paddle from the held keys and keeps it inside the arena.
func (p *Paddle) Update(ctx *FrameContext, keys KeySet) {
	var vy float64
	if keys.Contains(p.Controls.Up) {
		vy -= PaddleSpeed
	}
	if keys.Contains(p.Controls.Down) {
		vy += PaddleSpeed
	}

	p.Bounds.Y += vy * ctx.DT

	if p.Bounds.Y < 0 {
		p.Bounds.Y = 0
	} else if p.Bounds.Bottom() > ctx.GameHeight {
		p.Bounds.Y = ctx.GameHeight - p.Bounds.Height
	}
}

func (p *Paddle) Render(canvas Canvas) error {
	return canvas.DrawRectangle(p.Bounds, ColorWhite)
}
