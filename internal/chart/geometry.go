package chart

import (
	"image/color"
	"math"
)

// None marks "no sector".
const None = -1

const fullTurn = 360.0

// Entry is caller-supplied sector input.
type Entry struct {
	Name  string  `validate:"required"`
	Value float64 `validate:"gte=0"`
	Color color.RGBA
}

// Sector is an immutable snapshot of one wedge. Angles are in degrees with
// 0 at the top of the chart, increasing clockwise.
type Sector struct {
	Name       string
	Value      float64
	Color      color.RGBA
	StartAngle float64
	SweepAngle float64
	Percent    float64
}

// AssignAngles lays entries out contiguously from 0 degrees in list order.
// With a non-positive sum every sector gets zero sweep and zero percent.
func AssignAngles(entries []Entry) []Sector {
	sectors := make([]Sector, len(entries))
	maxV := 0.0
	last := None
	for i, e := range entries {
		sectors[i] = Sector{Name: e.Name, Value: e.Value, Color: e.Color}
		if e.Value > 0 {
			last = i
			maxV = math.Max(maxV, e.Value)
		}
	}
	if last == None {
		return sectors
	}

	// Values are summed relative to the largest so huge inputs cannot
	// overflow the total.
	sum := 0.0
	for _, s := range sectors {
		if s.Value > 0 {
			sum += s.Value / maxV
		}
	}

	start := 0.0
	for i := range sectors {
		s := &sectors[i]
		s.StartAngle = NormalizeDegrees(start)
		share := 0.0
		if s.Value > 0 {
			share = s.Value / maxV / sum
		}
		s.Percent = share * 100
		switch {
		case i == last:
			// The last wedge with any area closes the circle exactly.
			s.SweepAngle = math.Max(0, fullTurn-start)
		case i > last:
			// Past the closing wedge; park at the seam.
			s.StartAngle = 0
			s.SweepAngle = 0
		default:
			s.SweepAngle = share * fullTurn
		}
		start += s.SweepAngle
	}
	return sectors
}

// PointToAngle returns the clockwise angle from the top of the chart to the
// point (px, py), in [0, 360). Screen coordinates are assumed: y grows down.
func PointToAngle(px, py, centerX, centerY float64) float64 {
	dx := px - centerX
	dy := py - centerY
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	return NormalizeDegrees(deg)
}

// HitTest returns the index of the sector whose span [start, start+sweep)
// holds angle, or None.
func HitTest(angle float64, sectors []Sector) int {
	angle = NormalizeDegrees(angle)
	for i, s := range sectors {
		if s.SweepAngle <= 0 {
			continue
		}
		if s.StartAngle <= angle && angle < s.StartAngle+s.SweepAngle {
			return i
		}
	}
	return None
}

// NormalizeDegrees wraps a into [0, 360).
func NormalizeDegrees(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	// -tiny + 360 rounds to 360.
	if a >= fullTurn {
		a = 0
	}
	return a
}
