package chart

import "image/color"

// Stored angles start at the top; drawing surfaces start at 3 o'clock.
const drawRotation = -90.0

// TextRole tells a Surface which of the two label lines it is drawing.
type TextRole int

const (
	TextMain TextRole = iota
	TextSecondary
)

// TextStyle is the resolved style of one text draw call.
type TextStyle struct {
	Role  TextRole
	Color color.RGBA
}

// Surface is the set of primitives Draw issues. Angles are in degrees,
// 0 pointing right, increasing clockwise on screen.
type Surface interface {
	FillArc(cx, cy, r, startDeg, sweepDeg float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	DrawText(text string, cx, cy float64, style TextStyle)
}

// Palette holds the colors that are not part of the sector data.
type Palette struct {
	Hole       color.RGBA
	Text       color.RGBA
	Subtext    color.RGBA
	LineHeight float64
}

// DefaultPalette is a white hole with black percent and gray name.
func DefaultPalette() Palette {
	return Palette{
		Hole:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{A: 255},
		Subtext:    color.RGBA{R: 128, G: 128, B: 128, A: 255},
		LineHeight: 16,
	}
}

// Draw issues the draw calls for d: wedges in list order, then the hole,
// then the label if a sector is selected.
func Draw(s Surface, d Descriptor, p Palette) {
	for _, sv := range d.Sectors {
		if sv.SweepAngle <= 0 {
			continue
		}
		r := sv.Bounds.Dx() / 2
		s.FillArc(d.CenterX, d.CenterY, r, sv.StartAngle+drawRotation, sv.SweepAngle, sv.Color)
	}
	if d.HoleRadius > 0 {
		s.FillCircle(d.CenterX, d.CenterY, d.HoleRadius, p.Hole)
	}
	if d.CenterLabel != nil {
		s.DrawText(d.CenterLabel.Text, d.CenterX, d.CenterY, TextStyle{Role: TextMain, Color: p.Text})
		s.DrawText(d.CenterLabel.Subtext, d.CenterX, d.CenterY+p.LineHeight, TextStyle{Role: TextSecondary, Color: p.Subtext})
	}
}
