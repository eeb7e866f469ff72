// Package buzzer plays short tones for game events on the host speaker.
package buzzer

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"joysnake/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one fixed-pitch beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Event tones.
var (
	EatTone   = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	CrashTone = Tone{Freq: 220, Duration: 200 * time.Millisecond}
)

// ToneFor returns the tone played for an event type, if any.
func ToneFor(t game.EventType) (Tone, bool) {
	switch t {
	case game.EventFruitEaten:
		return EatTone, true
	case game.EventCollision:
		return CrashTone, true
	default:
		return Tone{}, false
	}
}

// Streamer renders the tone at sr.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(t.Duration), &square{sr: sr, freq: t.Freq})
}

// square is a piezo-style square wave.
type square struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

const amplitude = 0.2

// Stream fills samples with the wave; it never ends on its own.
func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	period := float64(s.sr) / s.freq
	for i := range samples {
		v := amplitude
		if float64(s.pos%int(period)) >= period/2 {
			v = -amplitude
		}
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (s *square) Err() error {
	return nil
}

// Buzzer mixes event tones into the speaker.
type Buzzer struct {
	mixer *beep.Mixer
}

// New opens the speaker. Only one Buzzer may be open at a time.
func New() (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	b := &Buzzer{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

// Play queues a tone. Overlapping tones are mixed.
func (b *Buzzer) Play(t Tone) {
	speaker.Lock()
	b.mixer.Add(t.Streamer(sampleRate))
	speaker.Unlock()
}

// Handle is a game.EventHandler.
func (b *Buzzer) Handle(ev game.Event) {
	if t, ok := ToneFor(ev.Type); ok {
		b.Play(t)
	}
}

// Close stops all tones and releases the speaker.
func (b *Buzzer) Close() {
	speaker.Clear()
	speaker.Close()
}
