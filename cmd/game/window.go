package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-td-sim/internal/state"
)

var windowMenu bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the simulation in a window (default)",
	RunE:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&windowMenu, "menu", false, "Start from the title screen")
}

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdateTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(dt)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func runWindow(cmd *cobra.Command, args []string) error {
	settings, logger, driver, err := setup(cmd)
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, driver, settings, logger)
	if windowMenu {
		sm.SetState(state.NewMenuState(sm, gameState))
	} else {
		sm.SetState(gameState)
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Screen.Width,
		height:         settings.Screen.Height,
	}
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("go-td-sim")
	return ebiten.RunGame(a)
}
