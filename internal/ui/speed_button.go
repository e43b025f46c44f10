// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка множителя скорости, две стрелки «перемотки».
// Цвет показывает текущий множитель.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * pulse(time.Since(b.LastClickTime).Seconds())
	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	// Правый треугольник
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

// IsClicked — попадание проверяется по кругу, форма у кнопки сложная.
func (b *SpeedButton) IsClicked(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState синхронизирует кнопку с множителем и запускает анимацию.
func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}
