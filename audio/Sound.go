package audio

import (
	"fmt"
	"time"

	"github.com/ShawnSWu/Pong/core"
	"github.com/ShawnSWu/Pong/logger"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

var (
	GoalTone   = Tone{Frequency: 440, Duration: 250 * time.Millisecond}
	PaddleTone = Tone{Frequency: 880, Duration: 50 * time.Millisecond}
	WallTone   = Tone{Frequency: 660, Duration: 30 * time.Millisecond}
)

// Speaker plays a tone for ball events. A zero Speaker is silent.
type Speaker struct {
	ready bool
}

// NewSpeaker opens the audio device. The caller may carry on with a silent
// Speaker when this fails.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Speaker{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{ready: true}, nil
}

func (s *Speaker) OnBallEvents(events core.Events) {
	tone, ok := ToneFor(events)
	if !ok || !s.ready {
		return
	}
	s.play(tone)
}

func (s *Speaker) play(tone Tone) {
	sine, err := generators.SineTone(sampleRate, tone.Frequency)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AudioUnavailableMsg, err))
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

func (s *Speaker) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// ToneFor picks one tone per tick, goals first.
func ToneFor(events core.Events) (Tone, bool) {
	switch {
	case events.Has(core.EventLeftGoal), events.Has(core.EventRightGoal):
		return GoalTone, true
	case events.Has(core.EventPaddleHit):
		return PaddleTone, true
	case events.Has(core.EventWallBounce):
		return WallTone, true
	}
	return Tone{}, false
}
