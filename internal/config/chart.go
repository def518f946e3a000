package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/radial-chart/internal/validate"
)

// SectorConfig is one initial chart entry.
type SectorConfig struct {
	Name  string     `validate:"required"`
	Value float64    `validate:"gte=0"`
	Color color.RGBA
}

// ChartConfig is everything a chart needs at construction.
//
// Data file format (all keys optional, missing numbers fall back to Default):
//
//	animationDurationMs: 300
//	maxSelectionInset: 12
//	innerRadius: 48
//	sectors:
//	  - name: Facebook
//	    value: 32.5
//	    color: "#ff00ff"
type ChartConfig struct {
	InitialSectors    []SectorConfig `validate:"dive"`
	AnimationDuration time.Duration  `validate:"gt=0"`
	MaxSelectionInset float64        `validate:"gte=0"`
	InnerRadius       float64        `validate:"gt=0"`
}

type fileSector struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color,omitempty"`
}

type fileConfig struct {
	AnimationDurationMs *int          `yaml:"animationDurationMs"`
	MaxSelectionInset   *float64      `yaml:"maxSelectionInset"`
	InnerRadius         *float64      `yaml:"innerRadius"`
	Sectors             *[]fileSector `yaml:"sectors"`
}

// Default returns the stock chart: five sectors, 300ms transitions.
func Default() ChartConfig {
	return ChartConfig{
		InitialSectors: []SectorConfig{
			{Name: "Facebook", Value: 32.5, Color: color.RGBA{R: 255, G: 0, B: 255, A: 255}},
			{Name: "Google", Value: 25, Color: color.RGBA{R: 0, G: 255, B: 255, A: 255}},
			{Name: "Youtube", Value: 15, Color: color.RGBA{R: 255, G: 255, B: 0, A: 255}},
			{Name: "Dropbox", Value: 14, Color: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
			{Name: "Other", Value: 12.5, Color: color.RGBA{R: 0, G: 255, B: 0, A: 255}},
		},
		AnimationDuration: DefaultAnimationDuration,
		MaxSelectionInset: DefaultMaxSelectionInset,
		InnerRadius:       DefaultInnerRadius,
	}
}

// Validate checks the struct tags.
func (c ChartConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		field, tag := validate.FirstField(err)
		return fmt.Errorf("invalid chart config: field %s failed %q: %w", field, tag, err)
	}
	return nil
}

// Load reads a chart data file.
func Load(path string) (ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChartConfig{}, fmt.Errorf("failed to read chart config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ChartConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes yaml chart data on top of Default.
func Parse(data []byte) (ChartConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return ChartConfig{}, fmt.Errorf("failed to parse chart config: %w", err)
	}

	cfg := Default()
	if fc.AnimationDurationMs != nil {
		cfg.AnimationDuration = time.Duration(*fc.AnimationDurationMs) * time.Millisecond
	}
	if fc.MaxSelectionInset != nil {
		cfg.MaxSelectionInset = *fc.MaxSelectionInset
	}
	if fc.InnerRadius != nil {
		cfg.InnerRadius = *fc.InnerRadius
	}
	if fc.Sectors != nil {
		sectors, err := convertSectors(*fc.Sectors)
		if err != nil {
			return ChartConfig{}, err
		}
		cfg.InitialSectors = sectors
	}

	if err := cfg.Validate(); err != nil {
		return ChartConfig{}, err
	}
	return cfg, nil
}

func convertSectors(in []fileSector) ([]SectorConfig, error) {
	out := make([]SectorConfig, 0, len(in))
	for i, s := range in {
		c, err := parseColor(s.Color, i, len(in))
		if err != nil {
			return nil, fmt.Errorf("sector %d (%s): %w", i, s.Name, err)
		}
		out = append(out, SectorConfig{Name: s.Name, Value: s.Value, Color: c})
	}
	return out, nil
}

// parseColor reads a hex color; an empty string picks an evenly spaced hue.
func parseColor(s string, index, total int) (color.RGBA, error) {
	if s == "" {
		return PaletteColor(index, total), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// PaletteColor returns the index-th of total evenly spaced hues.
func PaletteColor(index, total int) color.RGBA {
	if total <= 0 {
		total = 1
	}
	hue := float64(index) * 360 / float64(total)
	r, g, b := colorful.Hsv(hue, 0.8, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// BackdropColor returns the color of the backdrop band at ratio (0 top, 1
// bottom) for the given animation phase. The hue drifts with phase.
func BackdropColor(phase, ratio float64) color.RGBA {
	hue := math.Mod((phase*0.2+ratio*0.15)*360, 360)
	if hue < 0 {
		hue += 360
	}
	ratio = math.Max(0, math.Min(1, ratio))
	r, g, b := colorful.Hsv(hue, 0.5, 0.12+0.04*ratio).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HexColor formats c as #rrggbb.
func HexColor(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
