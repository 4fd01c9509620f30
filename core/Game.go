package core

import (
	"fmt"

	"github.com/ShawnSWu/Pong/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultGameWidth  = 1280.0
	DefaultGameHeight = 720.0
	DefaultScoreToWin = 10

	paddleInset = 25.0 // distance from the side wall to a paddle's centre

	netWidth         = 8.0
	netSegmentHeight = 50.0
	scoreDotSize     = 5.0
	scoreDotSpacing  = 8.0
	scoreDotsPerRow  = 5
	scoreTop         = 10.0
)

type Side int

const (
	NoSide Side = iota
	LeftSide
	RightSide
)

func (s Side) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	return "none"
}

// Listener is told about ball events after each simulated tick.
type Listener interface {
	OnBallEvents(events Events)
}

// Settings configures a match. Zero Width, Height, ScoreToWin or FreezeDuration
// fall back to the matching DefaultSettings value.
type Settings struct {
	Width          float64
	Height         float64
	ScoreToWin     uint32
	FreezeDuration float64
}

func DefaultSettings() Settings {
	return Settings{
		Width:          DefaultGameWidth,
		Height:         DefaultGameHeight,
		ScoreToWin:     DefaultScoreToWin,
		FreezeDuration: BallFreezeDuration,
	}
}

func (s Settings) withDefaults() Settings {
	defaults := DefaultSettings()
	if s.Width <= 0 {
		s.Width = defaults.Width
	}
	if s.Height <= 0 {
		s.Height = defaults.Height
	}
	if s.ScoreToWin == 0 {
		s.ScoreToWin = defaults.ScoreToWin
	}
	if s.FreezeDuration <= 0 {
		s.FreezeDuration = defaults.FreezeDuration
	}
	return s
}

// Game owns both paddles and the ball and advances them one tick at a time.
type Game struct {
	MatchID string

	LeftPaddle  *Paddle
	RightPaddle *Paddle
	Ball        *Ball

	width, height float64
	scoreToWin    uint32
	listeners     []Listener
	announced     bool
}

func NewGame(settings Settings, rng Random) *Game {
	settings = settings.withDefaults()
	w, h := settings.Width, settings.Height

	ball := NewBall(w/2, h/2, rng)
	ball.SetFreezeDuration(settings.FreezeDuration)
	ball.StartTimer = settings.FreezeDuration

	g := &Game{
		MatchID:     uuid.NewString(),
		LeftPaddle:  NewPaddle(paddleInset, h/2, "Player one", LeftControls),
		RightPaddle: NewPaddle(w-paddleInset, h/2, "Player two", RightControls),
		Ball:        ball,
		width:       w,
		height:      h,
		scoreToWin:  settings.ScoreToWin,
	}

	g.log().Info(fmt.Sprintf(logger.MatchStartMsg,
		g.LeftPaddle.NickName, g.RightPaddle.NickName, g.scoreToWin))
	return g
}

func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) Size() (float64, float64) {
	return g.width, g.height
}

func (g *Game) Scores() (uint32, uint32) {
	return g.LeftPaddle.Score, g.RightPaddle.Score
}

func (g *Game) HasWinner() bool {
	return g.Winner() != NoSide
}

// Winner is the first side to reach the winning score.
func (g *Game) Winner() Side {
	switch {
	case g.LeftPaddle.Score >= g.scoreToWin:
		return LeftSide
	case g.RightPaddle.Score >= g.scoreToWin:
		return RightSide
	}
	return NoSide
}

// Update advances the match by dt seconds. Once a side has won it does nothing.
func (g *Game) Update(dt float64, keys KeySet) {
	if g.HasWinner() {
		return
	}

	ctx := &FrameContext{DT: dt, GameWidth: g.width, GameHeight: g.height}
	g.LeftPaddle.Update(ctx, keys)
	g.RightPaddle.Update(ctx, keys)
	events := g.Ball.Update(ctx, g.LeftPaddle, g.RightPaddle)

	if events != 0 {
		g.report(events)
	}
}

func (g *Game) report(events Events) {
	left, right := g.Scores()
	switch {
	case events.Has(EventLeftGoal):
		g.log().Info(fmt.Sprintf(logger.GoalMsg, g.LeftPaddle.NickName, left, right))
	case events.Has(EventRightGoal):
		g.log().Info(fmt.Sprintf(logger.GoalMsg, g.RightPaddle.NickName, left, right))
	}

	for _, l := range g.listeners {
		l.OnBallEvents(events)
	}

	if winner := g.Winner(); winner != NoSide && !g.announced {
		g.announced = true
		name := g.LeftPaddle.NickName
		if winner == RightSide {
			name = g.RightPaddle.NickName
		}
		g.log().WithField("winner", winner.String()).
			Info(fmt.Sprintf(logger.WinnerMsg, name, left, right))
	}
}

func (g *Game) log() *logrus.Entry {
	left, right := g.Scores()
	return logger.Log.WithFields(logrus.Fields{
		"match": g.MatchID,
		"left":  left,
		"right": right,
	})
}

// Render draws the whole frame and presents it.
func (g *Game) Render(canvas Canvas) error {
	canvas.Clear()

	if err := g.drawNet(canvas); err != nil {
		return err
	}
	if err := g.drawScore(canvas, g.LeftPaddle.Score, g.width*0.25); err != nil {
		return err
	}
	if err := g.drawScore(canvas, g.RightPaddle.Score, g.width*0.75); err != nil {
		return err
	}

	if err := g.LeftPaddle.Render(canvas); err != nil {
		return err
	}
	if err := g.RightPaddle.Render(canvas); err != nil {
		return err
	}
	if err := g.Ball.Render(canvas); err != nil {
		return err
	}

	return canvas.Present()
}

// drawNet draws a dotted line down the middle of the arena.
func (g *Game) drawNet(canvas Canvas) error {
	rect := NewRectangle((g.width-netWidth)/2, 0, netWidth, netSegmentHeight)
	for rect.Y < g.height {
		if err := canvas.DrawRectangle(rect, ColorNet); err != nil {
			return err
		}
		rect.Y += netSegmentHeight * 1.5
	}
	return nil
}

// drawScore draws one dot per point, five to a row. A winning score is red.
func (g *Game) drawScore(canvas Canvas, score uint32, x float64) error {
	c := ColorScore
	if score >= g.scoreToWin {
		c = ColorWinningRed
	}

	for i := uint32(0); i < score; i++ {
		column := float64(i % scoreDotsPerRow)
		row := float64(i / scoreDotsPerRow)
		rect := NewRectangle(x+scoreDotSpacing*column, scoreTop+scoreDotSpacing*row, scoreDotSize, scoreDotSize)
		if err := canvas.DrawRectangle(rect, c); err != nil {
			return err
		}
	}
	return nil
}
