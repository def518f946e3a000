// Package game hosts a radial chart in an ebiten window: it feeds pointer
// events and frame time into the chart and paints its render descriptor.
package game

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/radial-chart/internal/chart"
	"github.com/iburimskiy/radial-chart/internal/config"
)

// Space above the chart reserved for the button and status line.
const chartTop = config.ButtonY + config.ButtonHeight + 20

// Game implements ebiten.Game.
type Game struct {
	chart   *chart.RadialChart
	cfg     config.ChartConfig
	palette chart.Palette
	surface ebitenSurface
	click   *clickPlayer
	log     logrus.FieldLogger

	// chart origin on screen
	originX, originY float64

	// backdrop animation
	colorPhase float64

	lastUpdate time.Time
	lastDelta  time.Duration

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes host and chart logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSound enables the selection click.
func WithSound(enabled bool) Option {
	return func(g *Game) {
		if enabled {
			g.click = newClickPlayer(g.logger())
		}
	}
}

// NewGame builds the chart from cfg and lays it out in the window.
func NewGame(cfg config.ChartConfig, opts ...Option) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logrus.StandardLogger(),
		palette: chart.Palette{
			Hole:       color.RGBA{R: 24, G: 28, B: 40, A: 255},
			Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Subtext:    color.RGBA{R: 160, G: 160, B: 170, A: 255},
			LineHeight: debugCharHeight,
		},
	}
	for _, o := range opts {
		o(g)
	}

	c, err := chart.New(cfg, chart.WithLogger(g.log))
	if err != nil {
		return nil, err
	}
	g.chart = c

	availW := float64(config.WindowWidth - 40)
	availH := float64(config.WindowHeight - chartTop - 20)
	w, h := c.Measure(availW, availH)
	g.originX = (float64(config.WindowWidth) - w) / 2
	g.originY = float64(chartTop) + (availH-h)/2

	g.log.WithFields(logrus.Fields{
		"width":    w,
		"height":   h,
		"sectors":  len(c.Sectors()),
		"duration": cfg.AnimationDuration,
	}).Debug("chart laid out")
	return g, nil
}

func (g *Game) logger() logrus.FieldLogger {
	if g.log == nil {
		return logrus.StandardLogger()
	}
	return g.log
}

func (g *Game) Update() error {
	now := time.Now()
	if !g.lastUpdate.IsZero() {
		g.lastDelta = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.buttonHovered {
			g.buttonPressed = true
		} else {
			g.press(float64(mouseX), float64(mouseY))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openAndLoadFileDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
		g.chart.HandleInteraction(float64(mouseX)-g.originX, float64(mouseY)-g.originY, chart.Release)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.press(float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.colorPhase += config.ColorShiftSpeed
	g.chart.Advance(g.lastDelta)
	return nil
}

func (g *Game) press(x, y float64) {
	if g.chart.HandleInteraction(x-g.originX, y-g.originY, chart.Press) {
		g.click.play()
	}
}

// reset puts the configured sectors back.
func (g *Game) reset() {
	if err := g.chart.SetSectors(chart.EntriesFromConfig(g.cfg.InitialSectors)); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawButton(screen)

	g.surface.dst = screen
	g.surface.ox, g.surface.oy = g.originX, g.originY
	chart.Draw(&g.surface, g.chart.RenderDescriptor(), g.palette)

	ebitenutil.DebugPrintAt(screen, statusLine(g.chart, g.lastDelta, g.lastErr), 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	bandHeight := float32(config.WindowHeight) / config.BackdropBands
	for i := 0; i < config.BackdropBands; i++ {
		c := config.BackdropColor(g.colorPhase, float64(i)/config.BackdropBands)
		vector.DrawFilledRect(screen, 0, float32(i)*bandHeight, config.WindowWidth, bandHeight+1, c, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "Open data"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*debugCharWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-debugCharHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) openAndLoadFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open chart data"),
		zenity.FileFilters{{
			Name:     "Chart data",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		g.logger().WithError(err).Warn("file dialog failed")
		return err
	}
	return g.LoadFile(filename)
}

// LoadFile replaces the chart sectors with the ones in a data file. Timing
// and size keys in the file only apply when it is given at startup.
func (g *Game) LoadFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := g.chart.SetSectors(chart.EntriesFromConfig(cfg.InitialSectors)); err != nil {
		return err
	}
	g.cfg.InitialSectors = cfg.InitialSectors
	g.lastErr = nil
	g.logger().WithField("path", path).Info("chart data loaded")
	return nil
}

// Chart exposes the hosted chart.
func (g *Game) Chart() *chart.RadialChart { return g.chart }
