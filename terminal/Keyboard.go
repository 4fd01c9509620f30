package terminal

import (
	"sync"
	"time"

	"github.com/ShawnSWu/Pong/core"
	"github.com/gdamore/tcell"
)

// EventSource is anything that blocks for tcell events, normally *Screen.
type EventSource interface {
	PollEvent() tcell.Event
}

// Keyboard turns terminal key events into a held-key set. Terminals only
// report presses (and auto-repeat), never releases, so a key counts as held
// until no press for it has arrived within the hold window.
type Keyboard struct {
	events   chan tcell.Event
	done     chan struct{}
	doneOnce sync.Once
	clock    core.Clock
	hold     *KeyHold
	onResize func()
}

func NewKeyboard(source EventSource, hold time.Duration, clock core.Clock, onResize func()) *Keyboard {
	if clock == nil {
		clock = core.SystemClock()
	}
	k := &Keyboard{
		events:   make(chan tcell.Event, 64),
		done:     make(chan struct{}),
		clock:    clock,
		hold:     NewKeyHold(hold),
		onResize: onResize,
	}

	//PollEvent blocks, so it gets its own goroutine; game state is still only
	//touched from the loop through Poll
	go func() {
		defer close(k.events)
		for {
			ev := source.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-k.done:
				return
			default:
			}
			select {
			case k.events <- ev:
			case <-k.done:
				return
			}
		}
	}()

	return k
}

// Close lets the reader goroutine exit on its next event instead of blocking
// on a full buffer once nothing polls anymore.
func (k *Keyboard) Close() {
	k.doneOnce.Do(func() { close(k.done) })
}

// Poll drains pending events without blocking.
func (k *Keyboard) Poll() (core.KeySet, bool) {
	now := k.clock.Now()
	quit := false

	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return k.hold.Held(now), true
			}
			if k.handle(ev, now) {
				quit = true
			}
			continue
		default:
		}
		break
	}

	return k.hold.Held(now), quit
}

func (k *Keyboard) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if k.onResize != nil {
			k.onResize()
		}
	case *tcell.EventKey:
		key := TranslateKey(ev)
		if key == core.KeyQuit {
			return true
		}
		if key != core.KeyUnknown {
			k.hold.Press(key, now)
		}
	}
	return false
}

// TranslateKey maps a tcell key event onto the game's logical keys.
func TranslateKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.KeyW
		case 's', 'S':
			return core.KeyS
		case 'q', 'Q':
			return core.KeyQuit
		}
	}
	return core.KeyUnknown
}

// KeyHold remembers when each key was last pressed.
type KeyHold struct {
	window  time.Duration
	pressed map[core.Key]time.Time
}

func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{window: window, pressed: make(map[core.Key]time.Time)}
}

func (h *KeyHold) Press(key core.Key, at time.Time) {
	h.pressed[key] = at
}

// Held returns the keys pressed within the window before now and forgets the rest.
func (h *KeyHold) Held(now time.Time) core.KeySet {
	held := core.NewKeySet()
	for key, at := range h.pressed {
		if now.Sub(at) < h.window {
			held[key] = struct{}{}
		} else {
			delete(h.pressed, key)
		}
	}
	return held
}
