// Package tween drives a time-bounded interpolation between two values.
//
// A Tween does not own a clock. The caller advances it with Tick, once per
// host frame, and reads back the interpolated value together with a finished
// flag.
package tween

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrConfiguration is returned (wrapped) when a tween is started with an
// unusable duration.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports the rejected duration.
type ConfigurationError struct {
	Duration time.Duration
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tween duration must be positive, got %s", e.Duration)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Tween interpolates from one value to another over a fixed duration.
// The zero value is an idle tween; Tick on it does nothing until Start.
type Tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	value    float64

	running bool
	done    bool

	ease Easing
	log  logrus.FieldLogger
}

// Option configures a Tween.
type Option func(*Tween)

// WithEasing sets the easing curve. Linear is used when unset.
func WithEasing(e Easing) Option {
	return func(t *Tween) {
		if e != nil {
			t.ease = e
		}
	}
}

// WithLogger sets the logger used for rejected starts.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tween) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns an idle tween.
func New(opts ...Option) *Tween {
	t := &Tween{ease: Linear, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start arms the tween. Calling Start on a running tween discards its
// progress and starts over from `from`.
func (t *Tween) Start(from, to float64, d time.Duration) error {
	if d <= 0 {
		err := &ConfigurationError{Duration: d}
		t.logger().WithError(err).Warn("tween start rejected")
		return err
	}
	t.from, t.to = from, to
	t.duration = d
	t.elapsed = 0
	t.value = from
	t.running = true
	t.done = false
	return nil
}

// Tick advances the tween by delta and returns the interpolated value and
// whether the tween has reached its end. On a tween that is not running
// (never started, cancelled or already finished) Tick does not advance and
// reports the current value.
func (t *Tween) Tick(delta time.Duration) (value float64, finished bool) {
	if !t.running {
		return t.value, t.done
	}
	switch {
	case delta >= t.duration-t.elapsed:
		t.elapsed = t.duration
	case delta > 0:
		t.elapsed += delta
	}

	progress := clamp01(float64(t.elapsed) / float64(t.duration))
	t.value = Lerp(t.from, t.to, t.easing()(progress))

	if t.elapsed == t.duration {
		// Land exactly on the endpoint regardless of easing rounding.
		t.value = t.to
		t.running = false
		t.done = true
	}
	return t.value, t.done
}

// Cancel stops the tween where it is.
func (t *Tween) Cancel() {
	t.running = false
}

// Value returns the last computed value.
func (t *Tween) Value() float64 { return t.value }

// Running reports whether the tween is armed and not yet finished.
func (t *Tween) Running() bool { return t.running }

// Done reports whether the tween ran to completion.
func (t *Tween) Done() bool { return t.done }

// Duration returns the configured duration of the current run.
func (t *Tween) Duration() time.Duration { return t.duration }

// Target returns the end value of the current run.
func (t *Tween) Target() float64 { return t.to }

func (t *Tween) easing() Easing {
	if t.ease == nil {
		return Linear
	}
	return t.ease
}

func (t *Tween) logger() logrus.FieldLogger {
	if t.log == nil {
		return logrus.StandardLogger()
	}
	return t.log
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
