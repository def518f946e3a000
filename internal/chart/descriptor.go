package chart

import (
	"fmt"
	"image/color"
)

// Rect is an axis-aligned box in chart coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// SectorView is what a host needs to draw one wedge. BoundsInset is how far
// the wedge currently grows past the base radius; Bounds is the square
// enclosing the wedge's circle.
type SectorView struct {
	StartAngle  float64
	SweepAngle  float64
	Color       color.RGBA
	BoundsInset float64
	Bounds      Rect
}

// Label is the two-line text shown in the hole while a sector is selected.
type Label struct {
	Text    string
	Subtext string
}

// Descriptor is a side-effect-free snapshot of everything to draw.
type Descriptor struct {
	Sectors     []SectorView
	CenterLabel *Label

	CenterX, CenterY float64
	HoleRadius       float64
}

// RenderDescriptor snapshots the chart for drawing. Angles are stored
// angles (0 at the top); the draw-time rotation is left to the renderer.
func (c *RadialChart) RenderDescriptor() Descriptor {
	l := c.layout
	d := Descriptor{
		Sectors:    make([]SectorView, len(c.sectors)),
		CenterX:    l.CenterX,
		CenterY:    l.CenterY,
		HoleRadius: l.HoleRadius,
	}
	for i, s := range c.sectors {
		inset := c.selection.Inset(i)
		r := l.BaseRadius + inset
		d.Sectors[i] = SectorView{
			StartAngle:  s.StartAngle,
			SweepAngle:  s.SweepAngle,
			Color:       s.Color,
			BoundsInset: inset,
			Bounds:      Rect{MinX: l.CenterX - r, MinY: l.CenterY - r, MaxX: l.CenterX + r, MaxY: l.CenterY + r},
		}
	}
	if sel := c.selection.Selected(); sel != None && sel < len(c.sectors) {
		s := c.sectors[sel]
		d.CenterLabel = &Label{Text: FormatPercent(s.Percent), Subtext: s.Name}
	}
	return d
}

// FormatPercent renders a percentage the way the centre label shows it.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
