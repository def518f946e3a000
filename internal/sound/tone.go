// Package sound holds the short synthesized cues the chart host plays.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a sine burst with a linear fade-out, streamed once.
type Tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	pos        int
	length     int
}

// NewTone returns a tone of the given frequency (Hz), duration and peak volume.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		length:     sr.N(d),
	}
}

// Stream fills samples with the next part of the tone.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		secs := float64(t.pos) / float64(t.sampleRate)
		fade := 1 - float64(t.pos)/float64(t.length)
		v := t.volume * fade * math.Sin(2*math.Pi*t.freq*secs)
		samples[i][0], samples[i][1] = v, v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error { return nil }

// Len returns the tone length in samples.
func (t *Tone) Len() int { return t.length }

// Position returns how many samples have been streamed.
func (t *Tone) Position() int { return t.pos }
