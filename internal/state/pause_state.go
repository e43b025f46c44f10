// internal/state/pause_state.go
package state

import (
	"time"

	"go-td-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает мир и рисует поверх последнего кадра затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(dt time.Duration) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Кнопка паузы остаётся кликабельной: она же кнопка «play»
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		button := s.previousState.pauseButton
		if button.IsClicked(float32(x), float32(y)) && time.Since(button.LastToggleTime) >= config.ClickCooldown {
			unpause = true
		}
	}

	if unpause {
		s.previousState.resume()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PauseOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2-8)
}

func (s *PauseState) Exit() {}
