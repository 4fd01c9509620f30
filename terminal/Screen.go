package terminal

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/ShawnSWu/Pong/core"
	"github.com/gdamore/tcell"
)

const BlockSymbol = 0x2588 // █

// Screen draws game-space rectangles as blocks of terminal cells. The whole
// arena is stretched over the terminal, whatever its size.
type Screen struct {
	screen     tcell.Screen
	gameWidth  float64
	gameHeight float64
	finiOnce   sync.Once
}

func NewScreen(gameWidth, gameHeight float64) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s, gameWidth, gameHeight)
}

// NewScreenFrom initialises an existing tcell screen, e.g. a simulation screen.
func NewScreenFrom(s tcell.Screen, gameWidth, gameHeight float64) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	s.SetStyle(defaultStyle)
	s.HideCursor()

	return &Screen{screen: s, gameWidth: gameWidth, gameHeight: gameHeight}, nil
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// DrawRectangle fills every cell the rectangle covers. Anything non-empty
// covers at least one cell so small objects never vanish.
func (s *Screen) DrawRectangle(rect core.Rectangle, c color.RGBA) error {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	x0, x1 := s.span(rect.Left(), rect.Right(), s.gameWidth, cols)
	y0, y1 := s.span(rect.Top(), rect.Bottom(), s.gameHeight, rows)

	style := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.screen.SetContent(col, row, BlockSymbol, nil, style)
		}
	}
	return nil
}

// span maps [from, to) in game units onto a clipped cell range.
func (s *Screen) span(from, to, gameSize float64, cells int) (int, int) {
	n := float64(cells)
	start := int(math.Floor(from * n / gameSize))
	end := int(math.Ceil(to * n / gameSize))
	if end <= start {
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end > cells {
		end = cells
	}
	return start, end
}

func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}

// Sync repaints everything, used after the terminal is resized.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen has been finalised.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Fini restores the terminal. Safe to call more than once.
func (s *Screen) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}
