// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» из двух полос, а на паузе — треугольник «play».
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * pulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		drawTriangle(screen,
			b.X-rectSize, b.Y-rectSize*1.2,
			b.X-rectSize, b.Y+rectSize*1.2,
			b.X+rectSize, b.Y,
			b.PlayColor)
		return
	}

	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	for _, x := range []float32{left, right} {
		vector.DrawFilledRect(screen, x, top, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, top, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused == paused {
		return
	}
	b.IsPaused = paused
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}
