package render

import (
	"image/color"

	"go-td-sim/internal/component"
	"go-td-sim/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует снимок мира: предрендеренный задник с путём, затем тени
// и сами сущности в порядке снимка.
type Renderer struct {
	palette      Palette
	path         []geom.Point
	shadowOffset float32
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Предрендеренный задник
}

func NewRenderer(path []geom.Point, palette Palette, shadowOffset float64, screenWidth, screenHeight int) *Renderer {
	r := &Renderer{
		palette:      palette,
		path:         append([]geom.Point(nil), path...),
		shadowOffset: float32(shadowOffset),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	// Задник статичен, рисуем его один раз
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает задник: фон и линию пути.
func (r *Renderer) RenderMapImage() {
	r.mapImage.Fill(r.palette.BackgroundColor)
	for i := 1; i < len(r.path); i++ {
		a, b := r.path[i-1], r.path[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			r.palette.PathWidth, r.palette.PathColor, true)
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, sprites []component.Renderable) {
	screen.DrawImage(r.mapImage, nil)

	// Сначала все тени, чтобы ни одна не легла поверх соседней сущности
	for _, s := range sprites {
		r.drawShape(screen, s, r.shadowOffset, r.palette.ShadowColor)
	}
	for _, s := range sprites {
		r.drawShape(screen, s, 0, s.Color)
	}
}

func (r *Renderer) drawShape(screen *ebiten.Image, s component.Renderable, offset float32, c color.Color) {
	x := float32(s.Bounds.Min.X) + offset
	y := float32(s.Bounds.Min.Y) + offset
	w := float32(s.Bounds.Dx())
	h := float32(s.Bounds.Dy())
	switch s.Shape {
	case component.ShapeCircle:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, c, true)
	default:
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}
}

func (r *Renderer) Background() color.RGBA {
	return r.palette.BackgroundColor
}
