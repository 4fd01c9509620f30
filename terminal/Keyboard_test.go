package terminal

import (
	"testing"
	"time"

	"github.com/ShawnSWu/Pong/core"
	"github.com/gdamore/tcell"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// chanSource feeds events to a Keyboard; closing it ends the stream.
type chanSource chan tcell.Event

func (s chanSource) PollEvent() tcell.Event {
	ev, ok := <-s
	if !ok {
		return nil
	}
	return ev
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want core.Key
	}{
		{tcell.KeyUp, 0, core.KeyUp},
		{tcell.KeyDown, 0, core.KeyDown},
		{tcell.KeyRune, 'w', core.KeyW},
		{tcell.KeyRune, 'W', core.KeyW},
		{tcell.KeyRune, 's', core.KeyS},
		{tcell.KeyRune, 'q', core.KeyQuit},
		{tcell.KeyEscape, 0, core.KeyQuit},
		{tcell.KeyCtrlC, 0, core.KeyQuit},
		{tcell.KeyRune, 'x', core.KeyUnknown},
		{tcell.KeyLeft, 0, core.KeyUnknown},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		if got := TranslateKey(ev); got != tt.want {
			t.Errorf("TranslateKey(%s) = %v, want %v", ev.Name(), got, tt.want)
		}
	}
}

func TestKeyHoldExpires(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hold := NewKeyHold(150 * time.Millisecond)

	hold.Press(core.KeyW, start)
	hold.Press(core.KeyUp, start.Add(100*time.Millisecond))

	held := hold.Held(start.Add(120 * time.Millisecond))
	if !held.Contains(core.KeyW) || !held.Contains(core.KeyUp) {
		t.Fatalf("held = %v, want W and Up", held)
	}

	held = hold.Held(start.Add(200 * time.Millisecond))
	if held.Contains(core.KeyW) || !held.Contains(core.KeyUp) {
		t.Fatalf("held = %v, want only Up", held)
	}

	held = hold.Held(start.Add(time.Second))
	if len(held) != 0 {
		t.Fatalf("held = %v, want nothing", held)
	}
	if len(hold.pressed) != 0 {
		t.Fatalf("expired keys not forgotten: %v", hold.pressed)
	}
}

// pollUntil polls until check passes or a second has gone by.
func pollUntil(t *testing.T, kb *Keyboard, check func(core.KeySet, bool) bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if check(kb.Poll()) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestKeyboardPollReportsHeldKeys(t *testing.T) {
	source := make(chanSource, 4)
	defer close(source)
	clock := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	kb := NewKeyboard(source, 150*time.Millisecond, clock, nil)

	source <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	source <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)

	pollUntil(t, kb, func(keys core.KeySet, quit bool) bool {
		return !quit && keys.Contains(core.KeyW) && keys.Contains(core.KeyDown)
	})

	clock.now = clock.now.Add(time.Second)
	if keys, _ := kb.Poll(); len(keys) != 0 {
		t.Fatalf("keys %v still held after the hold window", keys)
	}
}

func TestKeyboardPollQuits(t *testing.T) {
	source := make(chanSource, 1)
	defer close(source)
	kb := NewKeyboard(source, 150*time.Millisecond, nil, nil)

	source <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	pollUntil(t, kb, func(_ core.KeySet, quit bool) bool { return quit })
}

func TestKeyboardQuitsWhenSourceEnds(t *testing.T) {
	source := make(chanSource)
	kb := NewKeyboard(source, 150*time.Millisecond, nil, nil)

	close(source)

	pollUntil(t, kb, func(_ core.KeySet, quit bool) bool { return quit })
}

func TestKeyboardCloseReleasesReader(t *testing.T) {
	source := make(chanSource)
	kb := NewKeyboard(source, 150*time.Millisecond, nil, nil)

	kb.Close()
	kb.Close()

	// the reader picks this up after Close and exits instead of forwarding it
	source <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-kb.events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("reader goroutine did not exit after Close")
		}
	}
}

func TestKeyboardResize(t *testing.T) {
	source := make(chanSource, 1)
	defer close(source)
	resized := 0
	kb := NewKeyboard(source, 150*time.Millisecond, nil, func() { resized++ })

	source <- tcell.NewEventResize(100, 40)

	pollUntil(t, kb, func(core.KeySet, bool) bool { return resized == 1 })
}
