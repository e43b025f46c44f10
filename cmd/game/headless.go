package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go-td-sim/internal/app"
)

var (
	headlessTicks       int
	headlessReportEvery int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without any output but logs",
	Long:  "headless advances the world a fixed number of ticks as fast as possible and logs periodic summaries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if headlessTicks <= 0 {
			return fmt.Errorf("--ticks must be positive, got %d", headlessTicks)
		}
		settings, logger, driver, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app.RunHeadless(ctx, driver, settings.TickDuration(), headlessTicks, headlessReportEvery, logger)
		return nil
	},
}

func init() {
	headlessCmd.Flags().IntVar(&headlessTicks, "ticks", 3600, "Number of simulation ticks to run")
	headlessCmd.Flags().IntVar(&headlessReportEvery, "report-every", 600, "Log a summary every N ticks (0 disables)")
}
