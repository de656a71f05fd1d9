// Package audio provides the low-time cue.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/letterbox/tui-go/internal/countdown"
)

// Cue modes accepted by New
const (
	ModeOff  = "off"
	ModeBell = "bell"
	ModeTone = "tone"
)

const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Bell rings the terminal bell
type Bell struct {
	W io.Writer
}

// Play writes BEL to the terminal
func (b Bell) Play() {
	if b.W != nil {
		_, _ = io.WriteString(b.W, "\a")
	}
}

// Tone plays a short sine beep on the default audio device
type Tone struct {
	freq   float64
	length time.Duration
	volume float64
}

// NewTone opens the speaker and returns a tone cue.
// It fails when no audio device is available.
func NewTone(freq float64, length time.Duration, volume float64) (*Tone, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", speakerErr)
	}
	return &Tone{freq: freq, length: length, volume: volume}, nil
}

// Play queues one beep; it does not block
func (t *Tone) Play() {
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.length), sine(sampleRate, t.freq)),
		Base:     2,
		Volume:   t.volume,
		Silent:   false,
	})
}

// sine generates an endless sine wave at freq Hz
func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(phase) * 0.5
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase > 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}

// New returns the cue for mode. Mode "off" returns a nil cue.
// When the tone device cannot be opened it returns a Bell together with the
// error, so the caller can log the fallback and carry on.
func New(mode string, w io.Writer) (countdown.Cue, error) {
	switch mode {
	case ModeOff:
		return nil, nil
	case ModeBell, "":
		return Bell{W: w}, nil
	case ModeTone:
		tone, err := NewTone(880, 120*time.Millisecond, 0)
		if err != nil {
			return Bell{W: w}, err
		}
		return tone, nil
	default:
		return nil, fmt.Errorf("audio: unknown cue mode %q", mode)
	}
}
