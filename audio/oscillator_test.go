package audio

import (
	"math"
	"testing"
	"time"
)

// TestOscillatorBounds verifies generated samples stay within [-1, 1]
// and both channels carry the same signal
func TestOscillatorBounds(t *testing.T) {
	osc := newOscillator(440, 50*time.Millisecond, WaveSine, sampleRate, 0.3)

	buf := make([][2]float64, 512)
	for {
		n, ok := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", i, buf[i])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("Expected mono signal on both channels, got %v", buf[i])
			}
		}
		if !ok {
			break
		}
	}
}

// TestOscillatorDuration verifies the streamer ends after the requested
// duration
func TestOscillatorDuration(t *testing.T) {
	d := 25 * time.Millisecond
	osc := newOscillator(880, d, WaveSquare, sampleRate, 0.5)

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := sampleRate.N(d); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestSilentEngine verifies an uninitialized engine is safe to use
func TestSilentEngine(t *testing.T) {
	e := &Engine{}
	e.PlayPause(true)
	e.PlaySelect()
	e.PlaySpeed(false)
	e.Close()
}
