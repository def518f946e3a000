package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/radial-chart/internal/chart"
)

// statusLine formats the debug line drawn above the button.
func statusLine(c *chart.RadialChart, delta time.Duration, lastErr error) string {
	var s string
	if sel := c.Selected(); sel == chart.None {
		s = "Tap a sector to select it | R: reset, Esc/Q: quit"
	} else {
		sec := c.Sectors()[sel]
		s = fmt.Sprintf("Selected %s (%s) | R: reset, Esc/Q: quit", sec.Name, chart.FormatPercent(sec.Percent))
	}
	s += fmt.Sprintf(" | frame %.1fms", float64(delta)/float64(time.Millisecond))
	if lastErr != nil {
		s += " | Error: " + lastErr.Error()
	}
	return s
}
