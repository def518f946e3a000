// Package chart implements an interactive radial (pie) chart as plain data:
// sector geometry, hit-testing and the selection animation. It draws
// nothing itself; hosts turn a Descriptor into draw calls, either directly
// or through Draw and a Surface.
//
// All methods must be called from one goroutine, typically the host's
// frame loop.
package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/radial-chart/internal/config"
	"github.com/iburimskiy/radial-chart/internal/validate"
)

// Action is the kind of pointer event delivered to HandleInteraction.
type Action int

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Widget is what a host needs from an interactive chart.
type Widget interface {
	Measure(maxWidth, maxHeight float64) (width, height float64)
	HandleInteraction(x, y float64, a Action) bool
	Advance(delta time.Duration) bool
	RenderDescriptor() Descriptor
}

var _ Widget = (*RadialChart)(nil)

// Layout is the geometry recorded by the last Measure.
type Layout struct {
	Width, Height    float64
	CenterX, CenterY float64
	// Outer is the radius available to the chart, BaseRadius the radius of
	// an unselected sector and HoleRadius the radius of the centre hole.
	Outer      float64
	BaseRadius float64
	HoleRadius float64
}

// RadialChart owns the sector list, the selection state and its animations.
type RadialChart struct {
	sectors   []Sector
	hasData   bool
	selection *Selection

	innerRadius float64
	maxInset    float64

	layout   Layout
	measured bool

	pending bool
	redraw  bool

	log logrus.FieldLogger
}

// Option configures a RadialChart.
type Option func(*RadialChart)

// WithLogger routes chart logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *RadialChart) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds a chart from cfg and applies its initial sectors.
func New(cfg config.ChartConfig, opts ...Option) (*RadialChart, error) {
	c := &RadialChart{log: logrus.StandardLogger()}
	for _, o := range opts {
		o(c)
	}

	if cfg.InnerRadius <= 0 || math.IsNaN(cfg.InnerRadius) || math.IsInf(cfg.InnerRadius, 0) {
		return nil, &ValidationError{Index: None, Field: "InnerRadius", Reason: "must be a finite number > 0"}
	}
	sel, err := NewSelection(cfg.MaxSelectionInset, cfg.AnimationDuration, c.log)
	if err != nil {
		return nil, err
	}
	c.selection = sel
	c.innerRadius = cfg.InnerRadius
	c.maxInset = cfg.MaxSelectionInset

	if cfg.InitialSectors != nil {
		if err := c.SetSectors(EntriesFromConfig(cfg.InitialSectors)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// EntriesFromConfig converts configured sectors into chart entries.
func EntriesFromConfig(in []config.SectorConfig) []Entry {
	out := make([]Entry, len(in))
	for i, s := range in {
		out[i] = Entry{Name: s.Name, Value: s.Value, Color: s.Color}
	}
	return out
}

// SetSectors replaces the chart data. On error the previous data and
// selection are left untouched. On success the selection is reset to Idle
// and any animation is dropped.
func (c *RadialChart) SetSectors(entries []Entry) error {
	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			c.log.WithError(err).Warn("sectors rejected")
			return err
		}
	}

	c.sectors = AssignAngles(entries)
	c.hasData = true
	c.selection.Reset()
	c.pending = true

	c.log.WithField("count", len(c.sectors)).Debug("sectors replaced")
	return nil
}

func checkEntry(i int, e Entry) error {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return &ValidationError{Index: i, Field: "Value", Reason: "must be finite"}
	}
	if err := validate.Struct(e); err != nil {
		field, tag := validate.FirstField(err)
		reason := "failed " + tag
		switch tag {
		case "required":
			reason = "must not be empty"
		case "gte":
			reason = "must be >= 0"
		}
		return &ValidationError{Index: i, Field: field, Reason: reason}
	}
	return nil
}

// Measure resolves the chart size against the host's limits (a limit <= 0
// means unconstrained) and records the layout used for hit-testing and
// rendering. The preferred size is a square four hole radii wide.
func (c *RadialChart) Measure(maxWidth, maxHeight float64) (width, height float64) {
	desired := c.innerRadius * 4
	width = resolveSize(desired, maxWidth)
	height = resolveSize(desired, maxHeight)

	outer := math.Min(width, height) / 2
	base := math.Max(0, outer-2*c.maxInset)
	c.layout = Layout{
		Width:      width,
		Height:     height,
		CenterX:    width / 2,
		CenterY:    height / 2,
		Outer:      outer,
		BaseRadius: base,
		HoleRadius: math.Min(c.innerRadius, base),
	}
	c.measured = true
	c.pending = true
	return width, height
}

func resolveSize(desired, limit float64) float64 {
	if limit <= 0 {
		return desired
	}
	return math.Min(desired, limit)
}

// HandleInteraction hit-tests a pointer event given in chart coordinates.
// Selection commits on Press; Release never changes state. It reports
// whether the selection changed.
func (c *RadialChart) HandleInteraction(x, y float64, a Action) bool {
	if a != Press {
		return false
	}
	idx := c.hit(x, y)
	if !c.selection.Hit(idx) {
		return false
	}
	c.pending = true
	return true
}

func (c *RadialChart) hit(x, y float64) int {
	if !c.hasData || !c.measured {
		return None
	}
	l := c.layout
	if math.Hypot(x-l.CenterX, y-l.CenterY) > l.BaseRadius+c.maxInset {
		return None
	}
	return HitTest(PointToAngle(x, y, l.CenterX, l.CenterY), c.sectors)
}

// Advance moves the selection animations forward by delta and reports
// whether the host should redraw.
func (c *RadialChart) Advance(delta time.Duration) bool {
	live := c.selection.Advance(delta)
	c.redraw = c.pending || live
	c.pending = false
	return c.redraw
}

// NeedsRedraw reports whether the last Advance, or any change since,
// requires a redraw.
func (c *RadialChart) NeedsRedraw() bool {
	return c.redraw || c.pending
}

// Sectors returns a copy of the current sector snapshots.
func (c *RadialChart) Sectors() []Sector {
	out := make([]Sector, len(c.sectors))
	copy(out, c.sectors)
	return out
}

// Selected returns the selected sector index, or None.
func (c *RadialChart) Selected() int { return c.selection.Selected() }

// Layout returns the geometry recorded by the last Measure.
func (c *RadialChart) Layout() Layout { return c.layout }

// Animating reports whether a selection animation is in flight.
func (c *RadialChart) Animating() bool { return c.selection.Animating() }
