package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go-td-sim/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the simulation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui mode needs an interactive terminal, use headless instead")
		}
		settings, logger, driver, err := setup(cmd)
		if err != nil {
			return err
		}

		m := tui.New(driver, float64(settings.Screen.Width), float64(settings.Screen.Height), settings.TickDuration())
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		logger.Info("tui stopped", "stats", *driver.Game.Stats)
		return err
	},
}
