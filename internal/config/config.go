package config

import "time"

const (
	WindowWidth  = 640
	WindowHeight = 480

	// "Open data" button
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Backdrop animation
	ColorShiftSpeed = 0.01
	BackdropBands   = 48

	// Selection click
	ClickSampleRate = 44100
	ClickFrequency  = 880
	ClickLength     = 40 * time.Millisecond
	ClickVolume     = 0.25
)

// Chart defaults, taken from the stock widget: the hole fits a "100.0%"
// label and the selected sector grows by a quarter of that.
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultInnerRadius       = 48.0
	DefaultMaxSelectionInset = DefaultInnerRadius * 0.25
)
