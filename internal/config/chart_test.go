package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.InitialSectors, 5)
	assert.Equal(t, "Facebook", cfg.InitialSectors[0].Name)
	assert.Equal(t, 300*time.Millisecond, cfg.AnimationDuration)
	assert.Equal(t, 12.0, cfg.MaxSelectionInset)
}

func TestParse_FullFile(t *testing.T) {
	data := []byte(`
animationDurationMs: 150
maxSelectionInset: 8
innerRadius: 30
sectors:
  - name: A
    value: 50
    color: "#ff0000"
  - name: B
    value: 30
  - name: C
    value: 20
    color: "#00f"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 150*time.Millisecond, cfg.AnimationDuration)
	assert.Equal(t, 8.0, cfg.MaxSelectionInset)
	assert.Equal(t, 30.0, cfg.InnerRadius)
	require.Len(t, cfg.InitialSectors, 3)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, cfg.InitialSectors[0].Color)
	assert.Equal(t, PaletteColor(1, 3), cfg.InitialSectors[1].Color)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, cfg.InitialSectors[2].Color)
}

func TestParse_MissingKeysFallBackToDefault(t *testing.T) {
	cfg, err := Parse([]byte("innerRadius: 20\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.AnimationDuration, cfg.AnimationDuration)
	assert.Equal(t, def.InitialSectors, cfg.InitialSectors)
	assert.Equal(t, 20.0, cfg.InnerRadius)
}

func TestParse_EmptySectorListIsAllowed(t *testing.T) {
	cfg, err := Parse([]byte("sectors: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.InitialSectors)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero duration", "animationDurationMs: 0\n"},
		{"negative inset", "maxSelectionInset: -1\n"},
		{"negative value", "sectors:\n  - {name: A, value: -3}\n"},
		{"missing name", "sectors:\n  - {value: 3}\n"},
		{"bad color", "sectors:\n  - {name: A, value: 3, color: \"#zz\"}\n"},
		{"bad yaml", "sectors: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sectors:\n  - {name: Only, value: 1}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.InitialSectors, 1)
	assert.Equal(t, "Only", cfg.InitialSectors[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff00ff", HexColor(color.RGBA{R: 255, B: 255, A: 255}))
}

func TestBackdropColor(t *testing.T) {
	top := BackdropColor(0, 0)
	assert.Equal(t, uint8(255), top.A)
	// hue 0 at value 0.12: a dark red
	assert.Equal(t, color.RGBA{R: 31, G: 15, B: 15, A: 255}, top)

	// phase wraps around the hue circle
	assert.Equal(t, BackdropColor(0, 0.5), BackdropColor(5, 0.5))
	assert.Equal(t, BackdropColor(0, 0.5), BackdropColor(-5, 0.5))

	// bands get slightly brighter towards the bottom
	bottom := BackdropColor(0, 1)
	assert.Greater(t, int(bottom.R)+int(bottom.G)+int(bottom.B), int(top.R)+int(top.G)+int(top.B))
}

func TestLoad_SampleDataFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "data", "chart.yaml"))
	require.NoError(t, err)

	def := Default()
	require.Len(t, cfg.InitialSectors, len(def.InitialSectors))
	for i := range def.InitialSectors[:4] {
		assert.Equal(t, def.InitialSectors[i], cfg.InitialSectors[i])
	}
	assert.Equal(t, PaletteColor(4, 5), cfg.InitialSectors[4].Color)
}
