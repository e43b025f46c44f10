package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// drawTriangle заливает треугольник и обводит его белой линией.
func drawTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(dst, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(dst, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(dst, x3, y3, x1, y1, 1, color.White, true)
}

// pulse — кнопка на мгновение увеличивается после клика и плавно возвращается.
func pulse(elapsedSeconds float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsedSeconds*8))
}
