package app

import (
	"context"
	"log/slog"
	"time"
)

// RunHeadless крутит мир без окна: ticks кадров по dt каждый, без задержек.
// Каждые reportEvery тиков пишет сводку в лог (0 — только итоговую).
// Останавливается раньше, если ctx отменён.
func RunHeadless(ctx context.Context, d *Driver, dt time.Duration, ticks, reportEvery int, logger *slog.Logger) Stats {
	logger.Info("headless run started", "ticks", ticks, "dt", dt)
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("headless run interrupted", "tick", i-1, "err", err)
			break
		}
		d.Step(dt)
		if reportEvery > 0 && i%reportEvery == 0 {
			enemies, towers, projectiles := d.Game.ECS.Counts()
			logger.Info("progress", "sim_time", d.Now(),
				"enemies", enemies, "towers", towers, "projectiles", projectiles,
				"stats", *d.Game.Stats)
		}
	}
	stats := *d.Game.Stats
	logger.Info("headless run finished", "sim_time", d.Now(), "stats", stats)
	return stats
}
