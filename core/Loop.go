package core

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultFrameRate = 60.0
	maxFrameTime     = 250 * time.Millisecond
)

// Clock supplies wall-clock readings to the loop.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// Loop steps the game at a fixed logical rate. Measured frame time is only ever
// used to decide how many fixed steps are due; the simulation itself always
// sees the same dt.
type Loop struct {
	game   *Game
	input  Input
	canvas Canvas
	clock  Clock

	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func NewLoop(game *Game, input Input, canvas Canvas, frameRate float64, clock Clock) *Loop {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Loop{
		game:   game,
		input:  input,
		canvas: canvas,
		clock:  clock,
		step:   time.Duration(float64(time.Second) / frameRate),
	}
}

// Step is the fixed logical time step.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Advance banks elapsed wall time and runs every fixed step now due. It returns
// the number of steps run. Leftover time carries over to the next call.
func (l *Loop) Advance(elapsed time.Duration, keys KeySet) int {
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	if elapsed > 0 {
		l.accumulator += elapsed
	}

	dt := l.step.Seconds()
	steps := 0
	for l.accumulator >= l.step {
		l.game.Update(dt, keys)
		l.accumulator -= l.step
		steps++
	}
	return steps
}

// Run drives input, simulation and rendering until the player quits or ctx is
// cancelled. It only returns an error when a frame fails to render.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.step)
	defer ticker.Stop()

	l.last = l.clock.Now()
	if err := l.game.Render(l.canvas); err != nil {
		return fmt.Errorf("render first frame: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		keys, quit := l.input.Poll()
		if quit {
			return nil
		}

		now := l.clock.Now()
		l.Advance(now.Sub(l.last), keys)
		l.last = now

		if err := l.game.Render(l.canvas); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
	}
}
