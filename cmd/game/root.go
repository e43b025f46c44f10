package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/logging"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "go-td-sim",
	Short:         "Minimal real-time tower defense simulation",
	Long:          "go-td-sim runs a tower defense simulation in a window, in the terminal or headless.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings YAML (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(headlessCmd)
}

// setup loads settings and builds the logger and world shared by all modes.
func setup(cmd *cobra.Command) (*config.Settings, *slog.Logger, *app.Driver, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.WithRun(logging.New(level))

	settings, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cmd.SetContext(logging.NewContext(cmd.Context(), logger))

	logger.Info("starting", "mode", cmd.Name(), "config", configPath,
		"tps", settings.TPS, "path_points", len(settings.Path), "towers", len(settings.Towers))

	game := app.NewGame(settings, logger)
	return settings, logger, app.NewDriver(game, settings.Spawn.Interval), nil
}
