package chart

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/radial-chart/internal/tween"
)

// Selection tracks the selected sector and animates the hand-over between
// the previously selected sector (shrinking) and the new one (growing).
//
// States are Idle (selected == None) and Selected(i). Re-hitting the
// selected sector is a no-op, not a toggle.
type Selection struct {
	selected int
	previous int

	growing   *tween.Tween
	shrinking *tween.Tween

	growInset   float64
	shrinkInset float64

	maxInset float64
	duration time.Duration

	log logrus.FieldLogger
}

// NewSelection returns an idle controller. The duration must be positive
// and maxInset must be a finite non-negative number.
func NewSelection(maxInset float64, d time.Duration, log logrus.FieldLogger) (*Selection, error) {
	if d <= 0 {
		return nil, &tween.ConfigurationError{Duration: d}
	}
	if maxInset < 0 || math.IsNaN(maxInset) || math.IsInf(maxInset, 0) {
		return nil, &ValidationError{Index: None, Field: "MaxSelectionInset", Reason: "must be a finite number >= 0"}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Selection{
		selected: None,
		previous: None,
		maxInset: maxInset,
		duration: d,
		log:      log,
	}, nil
}

// Hit feeds a hit-test result into the state machine and reports whether a
// transition happened.
func (s *Selection) Hit(i int) bool {
	if i == None || i < 0 || i == s.selected {
		return false
	}

	// The outgoing sector decays from wherever its grow got to.
	from := s.growInset

	s.cancel()
	s.previous = s.selected
	s.selected = i

	s.growing = tween.New(tween.WithLogger(s.log))
	if err := s.growing.Start(0, s.maxInset, s.duration); err != nil {
		// Unreachable: the duration was checked in NewSelection.
		s.log.WithError(err).Error("selection grow not started")
		s.growing = nil
	}
	s.growInset = 0

	s.shrinkInset = 0
	if s.previous != None {
		s.shrinking = tween.New(tween.WithLogger(s.log))
		if err := s.shrinking.Start(from, 0, s.duration); err != nil {
			s.log.WithError(err).Error("selection shrink not started")
			s.shrinking = nil
		} else {
			s.shrinkInset = from
		}
	}

	s.log.WithFields(logrus.Fields{
		"selected": s.selected,
		"previous": s.previous,
	}).Debug("selection changed")
	return true
}

// Advance ticks both animation slots. Finished handles are released and
// their end values kept. It reports whether any animation was live.
func (s *Selection) Advance(delta time.Duration) bool {
	live := false
	if s.growing != nil {
		live = true
		v, done := s.growing.Tick(delta)
		s.growInset = v
		if done {
			s.growing = nil
		}
	}
	if s.shrinking != nil {
		live = true
		v, done := s.shrinking.Tick(delta)
		s.shrinkInset = v
		if done {
			s.shrinking = nil
		}
	}
	return live
}

// Reset returns to Idle and drops any animation in flight.
func (s *Selection) Reset() {
	s.cancel()
	s.selected = None
	s.previous = None
	s.growInset = 0
	s.shrinkInset = 0
}

// Inset returns the current outward grow of sector i.
func (s *Selection) Inset(i int) float64 {
	switch {
	case i == None:
		return 0
	case i == s.selected:
		return s.growInset
	case i == s.previous:
		return s.shrinkInset
	default:
		return 0
	}
}

// Animating reports whether either slot holds a live tween.
func (s *Selection) Animating() bool {
	return s.growing != nil || s.shrinking != nil
}

func (s *Selection) Selected() int { return s.selected }
func (s *Selection) Previous() int { return s.previous }
func (s *Selection) Growing() *tween.Tween { return s.growing }
func (s *Selection) Shrinking() *tween.Tween { return s.shrinking }
func (s *Selection) MaxInset() float64 { return s.maxInset }
func (s *Selection) Duration() time.Duration { return s.duration }

func (s *Selection) cancel() {
	if s.growing != nil {
		s.growing.Cancel()
		s.growing = nil
	}
	if s.shrinking != nil {
		s.shrinking.Cancel()
		s.shrinking = nil
	}
}
