// internal/state/game_state.go
package state

import (
	"log/slog"
	"time"

	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/ui"
	"go-td-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — основное состояние окна: переводит ввод в команды мира,
// двигает мир через Driver и рисует снимок.
type GameState struct {
	sm          *StateMachine
	driver      *app.Driver
	renderer    *render.Renderer
	hud         *ui.HUD
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	logger      *slog.Logger
}

func NewGameState(sm *StateMachine, driver *app.Driver, settings *config.Settings, logger *slog.Logger) *GameState {
	palette := render.Palette{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		ShadowColor:     config.ShadowColor,
		PathWidth:       float32(settings.Enemy.Size),
	}
	renderer := render.NewRenderer(settings.PathPoints(), palette, config.ShadowOffset,
		settings.Screen.Width, settings.Screen.Height)

	width := float32(settings.Screen.Width)
	return &GameState{
		sm:          sm,
		driver:      driver,
		renderer:    renderer,
		hud:         ui.NewHUD(8, 4, config.TextColor),
		speedButton: ui.NewSpeedButton(width-config.SpeedButtonOffsetX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(width-config.PauseButtonOffsetX, config.PauseButtonY, config.PauseButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		logger:      logger,
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(dt time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cycleSpeed()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Клик по UI не должен ставить башню под кнопкой
		if !g.handleUIClick(float32(x), float32(y)) {
			g.driver.Game.Enqueue(app.PlaceTowerAt{X: float64(x), Y: float64(y)})
		}
		if g.sm.Current() != g {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.driver.Game.Enqueue(app.RemoveTowerAt{X: float64(x), Y: float64(y)})
	}

	g.driver.Frame(dt)
}

// handleUIClick обрабатывает клики по кнопкам и сообщает, попал ли клик в UI.
func (g *GameState) handleUIClick(x, y float32) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= config.ClickCooldown {
			g.cycleSpeed()
		}
		return true
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= config.ClickCooldown {
			g.pause()
		}
		return true
	}
	return false
}

func (g *GameState) cycleSpeed() {
	speed := g.driver.CycleSpeed()
	g.speedButton.SetState(g.driver.SpeedIndex())
	g.logger.Debug("speed changed", "multiplier", speed)
}

func (g *GameState) pause() {
	if !g.driver.Paused() {
		g.driver.TogglePause()
	}
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// resume вызывается из PauseState при выходе из паузы.
func (g *GameState) resume() {
	if g.driver.Paused() {
		g.driver.TogglePause()
	}
	g.pauseButton.SetPaused(false)
	g.sm.SetState(g)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	world := g.driver.Game
	g.renderer.Draw(screen, world.Snapshot())

	enemies, towers, projectiles := world.ECS.Counts()
	g.hud.Draw(screen, *world.Stats, enemies, towers, projectiles, g.driver.Speed())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
