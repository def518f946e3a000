package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/radial-chart/internal/chart"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	labelFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenSurface maps chart draw calls onto an ebiten image, offset by the
// chart's on-screen origin.
type ebitenSurface struct {
	dst    *ebiten.Image
	ox, oy float64

	vs []ebiten.Vertex
	is []uint16
}

var _ chart.Surface = (*ebitenSurface)(nil)

func (s *ebitenSurface) FillArc(cx, cy, r, startDeg, sweepDeg float64, c color.RGBA) {
	if r <= 0 || sweepDeg <= 0 {
		return
	}
	x, y := float32(cx+s.ox), float32(cy+s.oy)
	start := startDeg * math.Pi / 180
	end := (startDeg + sweepDeg) * math.Pi / 180

	var p vector.Path
	p.MoveTo(x, y)
	p.Arc(x, y, float32(r), float32(start), float32(end), vector.Clockwise)
	p.Close()

	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	cr, cg, cb, ca := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(cr) / 0xffff
		s.vs[i].ColorG = float32(cg) / 0xffff
		s.vs[i].ColorB = float32(cb) / 0xffff
		s.vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(cx+s.ox), float32(cy+s.oy), float32(r), c, true)
}

// DrawText centres text on (cx, cy) in the style's color.
func (s *ebitenSurface) DrawText(str string, cx, cy float64, style chart.TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx+s.ox, cy+s.oy)
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, labelFace, op)
}
