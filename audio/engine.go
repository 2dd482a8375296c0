package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine plays short UI feedback tones. Audio is strictly optional: if
// speaker initialization fails every method is a silent no-op and the
// simulation runs on.
type Engine struct {
	initialized bool
}

// NewEngine initializes the speaker. The returned engine is usable even
// when err is non-nil.
func NewEngine() (*Engine, error) {
	e := &Engine{}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return e, err
	}
	e.initialized = true
	return e, nil
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.initialized {
		speaker.Close()
		e.initialized = false
	}
}

func (e *Engine) play(freq float64, duration time.Duration, wave WaveType) {
	if !e.initialized {
		return
	}
	speaker.Play(newOscillator(freq, duration, wave, sampleRate, 0.3))
}

// PlayPause marks a pause toggle: low blip paused, higher blip resumed
func (e *Engine) PlayPause(paused bool) {
	if paused {
		e.play(220, 80*time.Millisecond, WaveSquare)
	} else {
		e.play(440, 80*time.Millisecond, WaveSquare)
	}
}

// PlaySelect marks a body selection
func (e *Engine) PlaySelect() {
	e.play(880, 60*time.Millisecond, WaveSine)
}

// PlaySpeed marks a speed change, pitched by direction
func (e *Engine) PlaySpeed(up bool) {
	if up {
		e.play(660, 40*time.Millisecond, WaveSine)
	} else {
		e.play(330, 40*time.Millisecond, WaveSine)
	}
}
