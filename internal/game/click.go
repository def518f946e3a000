package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/radial-chart/internal/config"
	"github.com/iburimskiy/radial-chart/internal/sound"
)

// clickPlayer plays a short tone on every selection change. A nil
// *clickPlayer is silent.
type clickPlayer struct {
	sampleRate beep.SampleRate
}

// newClickPlayer initialises the speaker. It returns nil, with the error
// logged, when no audio device is available.
func newClickPlayer(log logrus.FieldLogger) *clickPlayer {
	sr := beep.SampleRate(config.ClickSampleRate)
	bufferSize := sr.N(time.Second / 20)
	if err := speaker.Init(sr, bufferSize); err != nil {
		log.WithError(err).Warn("audio unavailable, selection click muted")
		return nil
	}
	return &clickPlayer{sampleRate: sr}
}

func (p *clickPlayer) play() {
	if p == nil {
		return
	}
	speaker.Play(sound.NewTone(p.sampleRate, config.ClickFrequency, config.ClickLength, config.ClickVolume))
}
