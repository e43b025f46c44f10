// internal/state/menu_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран, ждёт пробела и переходит в игру.
type MenuState struct {
	sm   *StateMachine
	game *GameState
}

func NewMenuState(sm *StateMachine, game *GameState) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(dt time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.game)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.game.renderer.Background())
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "go-td-sim", w/2-27, h/2-24)
	ebitenutil.DebugPrintAt(screen, "press SPACE to start", w/2-60, h/2)
}

func (m *MenuState) Exit() {}
