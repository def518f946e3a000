package chart

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/radial-chart/internal/config"
	"github.com/iburimskiy/radial-chart/internal/tween"
)

// With the default config the chart measures 192x192: centre (96, 96),
// base radius 72 and a hit radius of 84.
const center = 96.0

func testConfig(values ...float64) config.ChartConfig {
	cfg := config.Default()
	cfg.InitialSectors = nil
	for i, v := range values {
		cfg.InitialSectors = append(cfg.InitialSectors, config.SectorConfig{
			Name:  string(rune('A' + i)),
			Value: v,
			Color: config.PaletteColor(i, len(values)),
		})
	}
	return cfg
}

func newTestChart(t *testing.T, values ...float64) *RadialChart {
	t.Helper()
	logger, _ := test.NewNullLogger()
	c, err := New(testConfig(values...), WithLogger(logger))
	require.NoError(t, err)
	w, h := c.Measure(0, 0)
	require.Equal(t, 2*center, w)
	require.Equal(t, 2*center, h)
	return c
}

// tapAt presses at the given clockwise-from-top angle, 50px from the centre.
func tapAt(c *RadialChart, deg float64) bool {
	rad := deg * math.Pi / 180
	return c.HandleInteraction(center+50*math.Sin(rad), center-50*math.Cos(rad), Press)
}

func TestNew_DefaultConfig(t *testing.T) {
	c, err := New(config.Default())
	require.NoError(t, err)
	require.Len(t, c.Sectors(), 5)
	assert.Equal(t, None, c.Selected())
}

func TestNew_RejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AnimationDuration = 0
	_, err := New(cfg)
	assert.ErrorIs(t, err, tween.ErrConfiguration)

	cfg = config.Default()
	cfg.InnerRadius = 0
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrValidation)

	cfg = config.Default()
	cfg.InitialSectors[1].Value = -1
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChart_TapSelectsSector(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)

	require.True(t, tapAt(c, 90))
	assert.Equal(t, 0, c.Selected())

	require.True(t, tapAt(c, 270))
	assert.Equal(t, 1, c.Selected())

	require.True(t, tapAt(c, 300))
	assert.Equal(t, 2, c.Selected())
}

func TestChart_RetapIsNoop(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	require.True(t, tapAt(c, 90))
	c.Advance(100 * time.Millisecond)
	before := c.RenderDescriptor()
	growing := c.selection.Growing()

	assert.False(t, tapAt(c, 45))
	assert.Equal(t, before, c.RenderDescriptor())
	assert.Same(t, growing, c.selection.Growing())
}

func TestChart_ReleaseDoesNothing(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	assert.False(t, c.HandleInteraction(center+50, center, Release))
	assert.Equal(t, None, c.Selected())
}

func TestChart_TapOutsideChartIsIgnored(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	assert.False(t, c.HandleInteraction(center+85, center, Press))
	assert.True(t, c.HandleInteraction(center+83, center, Press))
}

func TestChart_NoDataOrNoLayout(t *testing.T) {
	cfg := config.Default()
	cfg.InitialSectors = nil
	c, err := New(cfg)
	require.NoError(t, err)
	c.Measure(0, 0)
	assert.False(t, c.HandleInteraction(center+50, center, Press))

	c, err = New(config.Default())
	require.NoError(t, err)
	assert.False(t, c.HandleInteraction(10, 10, Press), "not measured yet")
}

func TestChart_DegenerateChartNeverSelects(t *testing.T) {
	c := newTestChart(t, 0, 0, 0)
	for deg := 0.0; deg < 360; deg += 15 {
		assert.False(t, tapAt(c, deg))
	}
	assert.Nil(t, c.RenderDescriptor().CenterLabel)
}

func TestChart_SetSectorsRejectsBadInput(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	require.True(t, tapAt(c, 90))
	before := c.Sectors()

	tests := []struct {
		name    string
		entries []Entry
		field   string
	}{
		{"negative", []Entry{{Name: "A", Value: 1}, {Name: "B", Value: -2}}, "Value"},
		{"empty name", []Entry{{Name: "", Value: 1}}, "Name"},
		{"nan", []Entry{{Name: "A", Value: math.NaN()}}, "Value"},
		{"inf", []Entry{{Name: "A", Value: math.Inf(1)}}, "Value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.SetSectors(tt.entries)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			assert.Equal(t, before, c.Sectors())
			assert.Equal(t, 0, c.Selected())
		})
	}
}

func TestChart_SetSectorsResetsSelection(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	require.True(t, tapAt(c, 90))
	c.Advance(testDuration)
	require.True(t, tapAt(c, 270))
	c.Advance(50 * time.Millisecond)
	growing, shrinking := c.selection.Growing(), c.selection.Shrinking()
	require.True(t, c.Animating())

	require.NoError(t, c.SetSectors(entries(1, 1)))

	assert.Equal(t, None, c.Selected())
	assert.False(t, c.Animating())
	assert.False(t, growing.Running())
	assert.False(t, shrinking.Running())
	for _, sv := range c.RenderDescriptor().Sectors {
		assert.Equal(t, 0.0, sv.BoundsInset)
	}
	assert.True(t, c.NeedsRedraw())
}

func TestChart_AdvanceReportsRedraw(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)
	assert.True(t, c.Advance(16*time.Millisecond), "measure requests a frame")
	assert.False(t, c.Advance(16*time.Millisecond))
	assert.False(t, c.NeedsRedraw())

	require.True(t, tapAt(c, 90))
	assert.True(t, c.NeedsRedraw())
	assert.True(t, c.Advance(100*time.Millisecond))
	assert.True(t, c.Advance(200*time.Millisecond), "frame that completes the tween")
	assert.False(t, c.Advance(16*time.Millisecond))
}

func TestChart_RenderDescriptor(t *testing.T) {
	c := newTestChart(t, 50, 30, 20)

	d := c.RenderDescriptor()
	require.Len(t, d.Sectors, 3)
	assert.Nil(t, d.CenterLabel)
	assert.Equal(t, center, d.CenterX)
	assert.Equal(t, center, d.CenterY)
	assert.Equal(t, 48.0, d.HoleRadius)
	assert.Equal(t, Rect{MinX: 24, MinY: 24, MaxX: 168, MaxY: 168}, d.Sectors[0].Bounds)

	require.True(t, tapAt(c, 200))
	c.Advance(testDuration)

	d = c.RenderDescriptor()
	require.NotNil(t, d.CenterLabel)
	assert.Equal(t, "30.0%", d.CenterLabel.Text)
	assert.Equal(t, "B", d.CenterLabel.Subtext)
	assert.Equal(t, testInset, d.Sectors[1].BoundsInset)
	assert.Equal(t, 2*(72+testInset), d.Sectors[1].Bounds.Dx())
	assert.Equal(t, 0.0, d.Sectors[0].BoundsInset)
	assert.InDelta(t, 180.0, d.Sectors[1].StartAngle, 1e-9)
	assert.InDelta(t, 108.0, d.Sectors[1].SweepAngle, 1e-9)
	assert.Equal(t, config.PaletteColor(1, 3), d.Sectors[1].Color)
}

func TestChart_MeasureRespectsLimits(t *testing.T) {
	c := newTestChart(t, 1)

	w, h := c.Measure(100, 300)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 192.0, h)

	l := c.Layout()
	assert.Equal(t, 50.0, l.CenterX)
	assert.Equal(t, 96.0, l.CenterY)
	assert.Equal(t, 50.0, l.Outer)
	assert.Equal(t, 26.0, l.BaseRadius)
	assert.Equal(t, 26.0, l.HoleRadius)

	w, h = c.Measure(500, 500)
	assert.Equal(t, 192.0, w)
	assert.Equal(t, 192.0, h)
}

func TestChart_LogsRejectedSectors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c, err := New(testConfig(1, 2), WithLogger(logger))
	require.NoError(t, err)

	require.Error(t, c.SetSectors([]Entry{{Name: "A", Value: -1, Color: color.RGBA{}}}))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
