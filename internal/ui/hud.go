package ui

import (
	"fmt"
	"image/color"

	"go-td-sim/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD выводит счётчики мира в левом верхнем углу.
type HUD struct {
	X, Y      int
	fontFace  font.Face
	textColor color.RGBA
}

func NewHUD(x, y int, textColor color.RGBA) *HUD {
	return &HUD{X: x, Y: y, fontFace: basicfont.Face7x13, textColor: textColor}
}

func (h *HUD) Draw(screen *ebiten.Image, stats app.Stats, enemies, towers, projectiles, speed int) {
	lines := []string{
		fmt.Sprintf("enemies %d  towers %d  projectiles %d", enemies, towers, projectiles),
		fmt.Sprintf("spawned %d  killed %d  reached end %d", stats.Spawned, stats.Killed, stats.ReachedEnd),
		fmt.Sprintf("speed x%d", speed),
	}
	lineHeight := h.fontFace.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, h.fontFace, h.X, h.Y+(i+1)*lineHeight, h.textColor)
	}
}
